// Package rsa implements textbook RSA over hugeint.Uint together with a
// block-oriented OAEP-style padding.
//
// Keys are generated deterministically from a 64-bit seed so that test runs
// are reproducible; the generator is not suitable for production keys.
// Decrypt uses the Chinese remainder theorem with the precomputed Dp, Dq and
// QInv; DecryptNoCRT exponentiates modulo N directly and exists mainly as a
// cross-check.
//
// # Padding
//
// EncryptOAEP splits a message into blocks of one byte less than the modulus.
// Each block holds, before masking,
//
//	data || 32 zero bytes || 32-byte random seed
//
// where the data and zero bytes are masked by G(seed) and the seed by
// H(masked data). Both masks come from iterating the configured HashFunc and
// prepending each output. The plaintext is zero padded and followed by its
// length as a little-endian uint64 so the final block boundary can be
// recovered on decryption.
package rsa
