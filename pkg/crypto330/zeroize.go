package crypto330

import "runtime"

// ZeroizeBytes overwrites the provided slice with zeros and prevents compiler
// dead store elimination using runtime.KeepAlive.
//
// The Go garbage collector may still hold copies made before the call, so this
// is best effort. It is used on OAEP seeds and decoded plaintext blocks once
// they are no longer needed.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
