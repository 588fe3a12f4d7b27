package ecsign

import (
	"context"

	"github.com/crypto330/crypto330-go/pkg/crypto330"
	"github.com/crypto330/crypto330-go/pkg/elliptic"
	"github.com/crypto330/crypto330-go/pkg/hugeint"
	"github.com/crypto330/crypto330-go/pkg/logging"
	"github.com/crypto330/crypto330-go/pkg/numtheory"
)

// maxNonceAttempts bounds the retries Sign makes when a nonce yields r = 0,
// s = 0 or has no inverse modulo n.
const maxNonceAttempts = 64

// PrivateKey is the secret scalar X in [1, n-1].
type PrivateKey struct {
	X hugeint.Uint
}

// PublicKey is the point Q = X·G.
type PublicKey struct {
	Q elliptic.Point
}

// Signature is the pair (R, S), both in [1, n-1] when valid.
type Signature struct {
	R, S hugeint.Uint
}

// Signer bundles a curve with a randomness source and a logger.
//
// Signer is not safe for concurrent use because its Source is not.
type Signer struct {
	curve  *elliptic.Curve
	src    numtheory.Source
	logger logging.Logger
}

// NewSigner returns a Signer for curve that draws keys and nonces from src
// and logs through cfg.Logger.
func NewSigner(curve *elliptic.Curve, src numtheory.Source, cfg crypto330.Config) (*Signer, error) {
	const op = "ecsign.NewSigner"
	if err := checkArgs(op, curve, src); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, crypto330.Wrap(op, err)
	}
	return &Signer{
		curve:  curve,
		src:    src,
		logger: logging.OrNop(cfg.Logger).With("component", "ecsign"),
	}, nil
}

// GenerateKeys draws a fresh key pair.
func (s *Signer) GenerateKeys(ctx context.Context) (PrivateKey, PublicKey, error) {
	priv, pub, err := GenerateKeys(s.curve, s.src)
	if err != nil {
		s.logger.Error(ctx, "key generation failed", "error", err)
		return PrivateKey{}, PublicKey{}, err
	}
	s.logger.Debug(ctx, "generated key pair",
		logging.Redacted("private"),
		"public_x", pub.Q.X().Hex(),
	)
	return priv, pub, nil
}

// Sign signs msg with key.
func (s *Signer) Sign(ctx context.Context, msg hugeint.Uint, key PrivateKey) (Signature, error) {
	sig, attempts, err := sign(s.curve, msg, key, s.src)
	if err != nil {
		s.logger.Error(ctx, "sign failed", "attempts", attempts, "error", err)
		return Signature{}, err
	}
	if attempts > 1 {
		s.logger.Warn(ctx, "nonce rejected, redrawn", "attempts", attempts)
	}
	s.logger.Debug(ctx, "signed message", logging.Redacted("nonce"), "attempts", attempts)
	return sig, nil
}

// Verify checks sig over msg against pub.
func (s *Signer) Verify(ctx context.Context, msg hugeint.Uint, sig Signature, pub PublicKey) bool {
	ok := Verify(s.curve, msg, sig, pub)
	if !ok {
		s.logger.Info(ctx, "signature rejected")
	}
	return ok
}

// GenerateKeys draws x uniformly from [1, n-1] and returns (x, x·G).
func GenerateKeys(c *elliptic.Curve, src numtheory.Source) (PrivateKey, PublicKey, error) {
	if err := checkArgs("ecsign.GenerateKeys", c, src); err != nil {
		return PrivateKey{}, PublicKey{}, err
	}
	x := numtheory.RandRange(hugeint.New(1), c.N().SubUint64(1), src)
	q, err := c.G().Mul(x)
	if err != nil {
		return PrivateKey{}, PublicKey{}, crypto330.Wrap("ecsign.GenerateKeys", err)
	}
	return PrivateKey{X: x}, PublicKey{Q: q}, nil
}

// Sign signs msg with key. The nonce k is drawn from [1, n]; draws that give
// r = 0 or s = 0, or that are not invertible modulo n, are discarded.
func Sign(c *elliptic.Curve, msg hugeint.Uint, key PrivateKey, src numtheory.Source) (Signature, error) {
	sig, _, err := sign(c, msg, key, src)
	return sig, err
}

func sign(c *elliptic.Curve, msg hugeint.Uint, key PrivateKey, src numtheory.Source) (Signature, int, error) {
	const op = "ecsign.Sign"
	if err := checkArgs(op, c, src); err != nil {
		return Signature{}, 0, err
	}
	n := c.N()
	for attempt := 1; attempt <= maxNonceAttempts; attempt++ {
		k := numtheory.RandRange(hugeint.New(1), n, src)
		kg, err := c.G().Mul(k)
		if err != nil {
			return Signature{}, attempt, crypto330.Wrap(op, err)
		}
		r := modN(kg.X().Uint(), n)
		if r.IsZero() {
			continue
		}
		kinv, err := numtheory.InverseModulo(k, n)
		if err != nil {
			continue
		}
		s := modN(kinv.Mul(msg.Add(key.X.Mul(r))), n)
		if s.IsZero() {
			continue
		}
		return Signature{R: r, S: s}, attempt, nil
	}
	return Signature{}, maxNonceAttempts, crypto330.Errorf(op, "%w: no usable nonce after %d attempts", crypto330.ErrInvalidParameter, maxNonceAttempts)
}

// Verify reports whether sig is a valid signature over msg for pub. It
// returns false for out-of-range signature components and for keys on a
// different curve.
func Verify(c *elliptic.Curve, msg hugeint.Uint, sig Signature, pub PublicKey) bool {
	if c == nil {
		return false
	}
	n := c.N()
	if !inRange(sig.R, n) || !inRange(sig.S, n) {
		return false
	}
	if pub.Q.Curve() != c || pub.Q.IsInfinity() {
		return false
	}
	sinv, err := numtheory.InverseModulo(sig.S, n)
	if err != nil {
		return false
	}
	u1 := modN(sinv.Mul(msg), n)
	u2 := modN(sinv.Mul(sig.R), n)

	p1, err := c.G().Mul(u1)
	if err != nil {
		return false
	}
	p2, err := pub.Q.Mul(u2)
	if err != nil {
		return false
	}
	sum, err := p1.Add(p2)
	if err != nil || sum.IsInfinity() {
		return false
	}
	return modN(sum.X().Uint(), n).Equal(sig.R)
}

func checkArgs(op string, c *elliptic.Curve, src numtheory.Source) error {
	if c == nil {
		return crypto330.Errorf(op, "%w: nil curve", crypto330.ErrInvalidParameter)
	}
	if src == nil {
		return crypto330.Errorf(op, "%w: nil source", crypto330.ErrInvalidParameter)
	}
	return nil
}

func inRange(v, n hugeint.Uint) bool {
	return !v.IsZero() && v.Less(n)
}

// modN reduces v modulo the curve order, which is never zero.
func modN(v, n hugeint.Uint) hugeint.Uint {
	r, _ := v.Mod(n)
	return r
}
