package rsa

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/crypto330/crypto330-go/pkg/crypto330"
	"github.com/crypto330/crypto330-go/pkg/hugeint"
)

const (
	seedLen    = 256 / 8 // random seed per block
	zeroLen    = 256 / 8 // zero bytes checked on decryption
	trailerLen = 8       // little-endian plaintext length
)

// OAEPParams configures EncryptOAEP and DecryptOAEP. A nil *OAEPParams or
// zero fields select SHA256 and crypto/rand.Reader.
type OAEPParams struct {
	// Hash derives the masks. Both sides must use the same function.
	Hash HashFunc

	// Random supplies the per-block seeds. Only EncryptOAEP reads it.
	Random io.Reader
}

func (p *OAEPParams) hash() HashFunc {
	if p == nil || p.Hash == nil {
		return SHA256
	}
	return p.Hash
}

func (p *OAEPParams) random() io.Reader {
	if p == nil || p.Random == nil {
		return rand.Reader
	}
	return p.Random
}

// oaepLayout describes how a modulus of a given size is carved into blocks.
type oaepLayout struct {
	modLen   int // ciphertext block length
	blockLen int // padded plaintext block length, one byte below modLen
	dataLen  int // message bytes carried per block
}

func layoutFor(n hugeint.Uint) (oaepLayout, error) {
	l := oaepLayout{modLen: (n.BitLen() + 7) / 8}
	l.blockLen = l.modLen - 1
	l.dataLen = l.blockLen - seedLen - zeroLen
	if l.dataLen < 1 {
		return oaepLayout{}, ErrKeySize
	}
	return l, nil
}

// EncryptOAEP pads msg and encrypts it block by block under pub. The result
// is a whole number of modulus-sized blocks; the empty message still yields
// one block holding its length.
func EncryptOAEP(msg []byte, pub PublicKey, params *OAEPParams) ([]byte, error) {
	const op = "rsa.EncryptOAEP"
	l, err := layoutFor(pub.N)
	if err != nil {
		return nil, crypto330.Errorf(op, "%w: %d-bit modulus", err, pub.N.BitLen())
	}
	h, random := params.hash(), params.random()

	padded := len(msg) + trailerLen
	if rem := padded % l.dataLen; rem != 0 {
		padded += l.dataLen - rem
	}
	data := make([]byte, padded)
	copy(data, msg)
	binary.LittleEndian.PutUint64(data[padded-trailerLen:], uint64(len(msg)))
	defer crypto330.ZeroizeBytes(data)

	out := make([]byte, 0, padded/l.dataLen*l.modLen)
	seed := make([]byte, seedLen)
	defer crypto330.ZeroizeBytes(seed)
	for off := 0; off < padded; off += l.dataLen {
		if _, err := io.ReadFull(random, seed); err != nil {
			return nil, crypto330.Wrap(op, err)
		}
		x := make([]byte, l.blockLen-seedLen)
		copy(x, data[off:off+l.dataLen])
		xorInto(x, mask(h, seed, len(x)))
		y := mask(h, x, seedLen)
		xorInto(y, seed)

		c, err := Encrypt(hugeint.FromBytes(append(x, y...)), pub)
		if err != nil {
			return nil, crypto330.Wrap(op, err)
		}
		out = append(out, leftPad(c.Bytes(), l.modLen)...)
	}
	return out, nil
}

// DecryptOAEP reverses EncryptOAEP. Empty input decrypts to an empty
// message. Any malformed block, non-zero padding or inconsistent length
// trailer fails with ErrDecryption.
func DecryptOAEP(ct []byte, priv PrivateKey, params *OAEPParams) ([]byte, error) {
	const op = "rsa.DecryptOAEP"
	if len(ct) == 0 {
		return []byte{}, nil
	}
	n := priv.N()
	l, err := layoutFor(n)
	if err != nil {
		return nil, crypto330.Errorf(op, "%w: %d-bit modulus", err, n.BitLen())
	}
	if len(ct)%l.modLen != 0 {
		return nil, crypto330.Errorf(op, "%w: length %d is not a multiple of %d", ErrDecryption, len(ct), l.modLen)
	}
	h := params.hash()

	res := make([]byte, 0, len(ct)/l.modLen*l.dataLen)
	for off := 0; off < len(ct); off += l.modLen {
		m, err := Decrypt(hugeint.FromBytes(ct[off:off+l.modLen]), priv)
		if err != nil {
			return nil, crypto330.Wrap(op, err)
		}
		if m.BitLen() > l.blockLen*8 {
			return nil, crypto330.Errorf(op, "%w", ErrDecryption)
		}
		block := leftPad(m.Bytes(), l.blockLen)
		x, y := block[:l.blockLen-seedLen], block[l.blockLen-seedLen:]
		xorInto(y, mask(h, x, seedLen))
		xorInto(x, mask(h, y, len(x)))
		for _, b := range x[l.dataLen:] {
			if b != 0 {
				crypto330.ZeroizeBytes(block)
				return nil, crypto330.Errorf(op, "%w", ErrDecryption)
			}
		}
		res = append(res, x[:l.dataLen]...)
		crypto330.ZeroizeBytes(block)
	}

	// with fewer than eight data bytes per block, a truncated ciphertext can
	// end before the length trailer does
	if len(res) < trailerLen {
		crypto330.ZeroizeBytes(res)
		return nil, crypto330.Errorf(op, "%w: ciphertext shorter than the length trailer", ErrDecryption)
	}
	size := binary.LittleEndian.Uint64(res[len(res)-trailerLen:])
	if size > uint64(len(res)-trailerLen) {
		crypto330.ZeroizeBytes(res)
		return nil, crypto330.Errorf(op, "%w", ErrDecryption)
	}
	return res[:size], nil
}

// leftPad returns b right-aligned in a fresh slice of n bytes.
func leftPad(b []byte, n int) []byte {
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	return out
}
