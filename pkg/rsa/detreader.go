package rsa

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	seedSalt = "crypto330-rsa-oaep-seed"
	seedInfo = "crypto330-rsa-oaep"

	// hkdfLimit is the most output a single HKDF-SHA256 instance produces.
	hkdfLimit = 255 * sha256.Size
)

// deterministicReader chains HKDF-SHA256 instances over the same seed. The
// n-th instance uses info || uint64be(n), and a new one starts whenever the
// previous has produced hkdfLimit bytes.
type deterministicReader struct {
	seed  []byte
	epoch uint64
	cur   io.Reader
	left  int
}

// NewDeterministicReader returns a reader producing the same unbounded stream
// for the same seed. Passing it as OAEPParams.Random makes EncryptOAEP
// reproducible, which is useful for test vectors and unsafe for anything
// else.
func NewDeterministicReader(seed []byte) io.Reader {
	return &deterministicReader{seed: append([]byte(nil), seed...)}
}

func (r *deterministicReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if r.left == 0 {
			info := binary.BigEndian.AppendUint64([]byte(seedInfo), r.epoch)
			r.cur = hkdf.New(sha256.New, r.seed, []byte(seedSalt), info)
			r.left = hkdfLimit
			r.epoch++
		}
		chunk := min(len(p)-n, r.left)
		m, err := io.ReadFull(r.cur, p[n:n+chunk])
		n += m
		r.left -= m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
