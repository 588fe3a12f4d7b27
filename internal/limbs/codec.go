package limbs

import (
	"encoding/binary"
	"strings"
)

// FromBytesLE reads 4-byte little-endian limbs; a short final limb is
// zero-extended.
func FromBytesLE(b []byte) Limbs {
	if len(b) == 0 {
		return Zero()
	}
	z := make(Limbs, (len(b)+3)/4)
	for i := range z {
		var word [4]byte
		copy(word[:], b[i*4:])
		z[i] = binary.LittleEndian.Uint32(word[:])
	}
	return Norm(z)
}

// BytesLE writes every limb of canonical x as 4 little-endian bytes.
func BytesLE(x Limbs) []byte {
	x = Norm(x)
	out := make([]byte, 4*len(x))
	for i, d := range x {
		binary.LittleEndian.PutUint32(out[i*4:], d)
	}
	return out
}

// FromBytesBE reads a big-endian byte string of any length.
func FromBytesBE(b []byte) Limbs {
	if len(b) == 0 {
		return Zero()
	}
	z := make(Limbs, (len(b)+3)/4)
	for i := 0; i < len(b); i++ {
		// byte i counted from the least significant end
		pos := len(b) - 1 - i
		z[i/4] |= uint32(b[pos]) << (8 * (i % 4))
	}
	return Norm(z)
}

// BytesBE returns the minimal big-endian encoding of x; zero encodes as an
// empty slice.
func BytesBE(x Limbs) []byte {
	n := (BitLen(x) + 7) / 8
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = byte(x[i/4] >> (8 * (i % 4)))
	}
	return out
}

// FromHex parses a hexadecimal string. A leading "0x" or "0X" is accepted and
// an odd number of digits is fine. It returns the offending offset on failure.
func FromHex(s string) (Limbs, int, bool) {
	body := s
	prefix := 0
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		body = body[2:]
		prefix = 2
	}
	if len(body) == 0 {
		return nil, prefix, false
	}
	z := make(Limbs, (len(body)+7)/8)
	for i := 0; i < len(body); i++ {
		pos := len(body) - 1 - i
		v, ok := hexDigit(body[pos])
		if !ok {
			return nil, prefix + pos, false
		}
		z[i/8] |= uint32(v) << (4 * (i % 8))
	}
	return Norm(z), 0, true
}

// Hex formats x as lowercase hexadecimal without leading zeros.
func Hex(x Limbs) string {
	x = Norm(x)
	const digits = "0123456789abcdef"
	n := (BitLen(x) + 3) / 4
	if n == 0 {
		return "0"
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = digits[(x[i/8]>>(4*(i%8)))&0xf]
	}
	return string(out)
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
