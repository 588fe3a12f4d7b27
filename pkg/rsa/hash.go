package rsa

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// HashFunc is the digest used to derive OAEP masks. It must return a
// non-empty output for every input.
type HashFunc func(data []byte) []byte

// SHA256 is the default OAEP hash.
func SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// SHA3_256 hashes with SHA3-256.
func SHA3_256(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}

// BLAKE2b256 hashes with unkeyed BLAKE2b-256.
func BLAKE2b256(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}

// RIPEMD160 hashes with RIPEMD-160. Its 20-byte output is shorter than the
// mask lengths, so every mask takes several iterations.
func RIPEMD160(data []byte) []byte {
	h := ripemd160.New()
	h.Write(data)
	return h.Sum(nil)
}

// mask returns n bytes derived from seed by hashing it repeatedly and
// prepending each digest to the output.
func mask(h HashFunc, seed []byte, n int) []byte {
	var out []byte
	for len(out) < n {
		seed = h(seed)
		out = append(append(make([]byte, 0, len(seed)+len(out)), seed...), out...)
	}
	return out[:n]
}

func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
