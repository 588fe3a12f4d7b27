package hugeint

import (
	"strconv"
	"strings"

	"github.com/crypto330/crypto330-go/internal/limbs"
	"github.com/crypto330/crypto330-go/pkg/crypto330"
)

// decimal digits handled per limb-sized chunk
const (
	chunkDigits = 9
	chunkBase   = 1_000_000_000
)

// Parse reads an unsigned decimal string. The empty string parses as 0. Any
// character other than '0'..'9' fails with crypto330.ErrParse.
func Parse(s string) (Uint, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Uint{}, crypto330.Errorf("hugeint.Parse", "%w: invalid decimal digit %q at offset %d", crypto330.ErrParse, s[i], i)
		}
	}
	z := Uint{}
	head := len(s) % chunkDigits
	if head == 0 && len(s) > 0 {
		head = chunkDigits
	}
	for start, end := 0, head; start < len(s); start, end = end, end+chunkDigits {
		chunk, _ := strconv.ParseUint(s[start:end], 10, 32)
		scale := uint64(1)
		for i := start; i < end; i++ {
			scale *= 10
		}
		z = z.MulUint64(scale).AddUint64(chunk)
	}
	return z, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// package-level constants.
func MustParse(s string) Uint {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}

// FromHex parses a hexadecimal string, with or without a 0x prefix. Digits are
// case-insensitive.
func FromHex(s string) (Uint, error) {
	d, off, ok := limbs.FromHex(s)
	if !ok {
		return Uint{}, crypto330.Errorf("hugeint.FromHex", "%w: invalid hex string at offset %d", crypto330.ErrParse, off)
	}
	return Uint{d: d}, nil
}

// MustFromHex is like FromHex but panics on malformed input.
func MustFromHex(s string) Uint {
	z, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return z
}

// Hex returns x in lowercase hexadecimal without a prefix.
func (x Uint) Hex() string {
	return limbs.Hex(x.limbs())
}

// String returns x in decimal.
func (x Uint) String() string {
	if x.IsZero() {
		return "0"
	}
	var chunks []uint32
	cur := x.limbs()
	for !limbs.IsZero(cur) {
		var rem uint32
		cur, rem = divWord(cur, chunkBase)
		chunks = append(chunks, rem)
	}
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(chunks[len(chunks)-1]), 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		part := strconv.FormatUint(uint64(chunks[i]), 10)
		sb.WriteString(strings.Repeat("0", chunkDigits-len(part)))
		sb.WriteString(part)
	}
	return sb.String()
}
