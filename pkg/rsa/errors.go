package rsa

import "errors"

var (
	// ErrMessageTooLong indicates a message representative that is not below
	// the modulus.
	ErrMessageTooLong = errors.New("rsa: message too long for key")

	// ErrDecryption indicates a ciphertext that does not decode under the key.
	// The cause is deliberately not more specific.
	ErrDecryption = errors.New("rsa: decryption error")

	// ErrKeySize indicates a key or requested key size that is too small for
	// the operation.
	ErrKeySize = errors.New("rsa: key size too small")
)
