package rsa

import (
	"context"

	"github.com/crypto330/crypto330-go/pkg/crypto330"
	"github.com/crypto330/crypto330-go/pkg/hugeint"
	"github.com/crypto330/crypto330-go/pkg/logging"
	"github.com/crypto330/crypto330-go/pkg/numtheory"
)

const (
	// MinKeyBits is the smallest modulus GenerateKeys accepts.
	MinKeyBits = 16

	defaultExponent = 65537
)

// PublicKey is the modulus N and public exponent E.
type PublicKey struct {
	N hugeint.Uint
	E hugeint.Uint
}

// PrivateKey holds the prime factors of N, the private exponent D and the
// CRT parameters derived from them.
type PrivateKey struct {
	P, Q hugeint.Uint
	D    hugeint.Uint
	Dp   hugeint.Uint // D mod (P-1)
	Dq   hugeint.Uint // D mod (Q-1)
	QInv hugeint.Uint // Q⁻¹ mod P
}

// NewPrivateKey derives the CRT parameters for the factors p, q and private
// exponent d. It fails with crypto330.ErrInvalidParameter when p or q is
// below 2 and with crypto330.ErrInvalidInverse when q has no inverse modulo p.
func NewPrivateKey(p, q, d hugeint.Uint) (PrivateKey, error) {
	const op = "rsa.NewPrivateKey"
	two := hugeint.New(2)
	if p.Less(two) || q.Less(two) {
		return PrivateKey{}, crypto330.Errorf(op, "%w: factors must be at least 2", crypto330.ErrInvalidParameter)
	}
	dp, _ := d.Mod(p.SubUint64(1))
	dq, _ := d.Mod(q.SubUint64(1))
	qinv, err := numtheory.InverseModulo(q, p)
	if err != nil {
		return PrivateKey{}, crypto330.Wrap(op, err)
	}
	return PrivateKey{P: p, Q: q, D: d, Dp: dp, Dq: dq, QInv: qinv}, nil
}

// N returns the modulus P·Q.
func (k PrivateKey) N() hugeint.Uint {
	return k.P.Mul(k.Q)
}

// KeyGenerator searches for RSA primes with a configurable primality test and
// reports progress through a logger.
type KeyGenerator struct {
	tester numtheory.PrimeTester
	logger logging.Logger
}

// NewKeyGenerator returns a KeyGenerator configured from cfg.
func NewKeyGenerator(cfg crypto330.Config) (*KeyGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, crypto330.Wrap("rsa.NewKeyGenerator", err)
	}
	cfg = cfg.WithDefaults()
	return &KeyGenerator{
		tester: numtheory.PrimeTester{Rounds: cfg.PrimalityRounds},
		logger: cfg.Logger.With("component", "rsa"),
	}, nil
}

// GenerateKeys generates a key pair with a modulus of about bits bits using
// the default configuration. The same seed always yields the same keys.
func GenerateKeys(bits uint, seed uint64) (PrivateKey, PublicKey, error) {
	g, err := NewKeyGenerator(crypto330.Config{})
	if err != nil {
		return PrivateKey{}, PublicKey{}, err
	}
	return g.Generate(context.Background(), bits, seed)
}

// Generate draws P with bits/2 bits and Q with (bits+1)/2 bits from a source
// seeded with seed, then picks the smallest E >= 65537 coprime to
// (P-1)(Q-1). It stops early with ctx.Err() when ctx is cancelled.
func (g *KeyGenerator) Generate(ctx context.Context, bits uint, seed uint64) (PrivateKey, PublicKey, error) {
	const op = "rsa.GenerateKeys"
	if bits < MinKeyBits {
		return PrivateKey{}, PublicKey{}, crypto330.Errorf(op, "%w: %d bits requested, minimum is %d", ErrKeySize, bits, MinKeyBits)
	}
	src := numtheory.NewSource(seed)

	p, err := g.prime(ctx, bits/2, src)
	if err != nil {
		return PrivateKey{}, PublicKey{}, crypto330.Wrap(op, err)
	}
	var q hugeint.Uint
	for q.IsZero() || q.Equal(p) {
		if q, err = g.prime(ctx, (bits+1)/2, src); err != nil {
			return PrivateKey{}, PublicKey{}, crypto330.Wrap(op, err)
		}
	}

	n := p.Mul(q)
	phi := p.SubUint64(1).Mul(q.SubUint64(1))
	e := hugeint.New(defaultExponent)
	for !numtheory.GCD(e, phi).EqualUint64(1) {
		e = e.AddUint64(1)
	}
	d, err := numtheory.InverseModulo(e, phi)
	if err != nil {
		return PrivateKey{}, PublicKey{}, crypto330.Wrap(op, err)
	}
	priv, err := NewPrivateKey(p, q, d)
	if err != nil {
		return PrivateKey{}, PublicKey{}, crypto330.Wrap(op, err)
	}

	g.logger.Info(ctx, "generated RSA key",
		"bits", n.BitLen(),
		"e", e.String(),
		logging.Redacted("p"),
		logging.Redacted("q"),
	)
	return priv, PublicKey{N: n, E: e}, nil
}

// prime returns the first probable prime at or above a random odd bits-bit
// starting point, stepping by two. A walk that runs past 2^bits starts over
// from a fresh draw.
func (g *KeyGenerator) prime(ctx context.Context, bits uint, src numtheory.Source) (hugeint.Uint, error) {
	lo := hugeint.New(1).Lsh(bits - 1)
	hi := hugeint.New(1).Lsh(bits).SubUint64(1)
	candidates := 0
	for {
		n := numtheory.RandRange(lo, hi, src)
		if !n.IsOdd() {
			n = n.AddUint64(1)
		}
		for n.BitLen() == int(bits) {
			if err := ctx.Err(); err != nil {
				return hugeint.Uint{}, err
			}
			candidates++
			if g.tester.IsProbablePrime(n) {
				g.logger.Debug(ctx, "found prime", "bits", bits, "candidates", candidates)
				return n, nil
			}
			n = n.AddUint64(2)
		}
	}
}

// Encrypt returns m^E mod N. It fails with ErrMessageTooLong when m >= N.
func Encrypt(m hugeint.Uint, pub PublicKey) (hugeint.Uint, error) {
	const op = "rsa.Encrypt"
	if m.GreaterEq(pub.N) {
		return hugeint.Uint{}, crypto330.Errorf(op, "%w", ErrMessageTooLong)
	}
	c, err := numtheory.PowMod(m, pub.E, pub.N)
	if err != nil {
		return hugeint.Uint{}, crypto330.Wrap(op, err)
	}
	return c, nil
}

// Decrypt returns c^D mod N, computed modulo P and Q separately and
// recombined with Garner's formula. It fails with ErrDecryption when c >= N.
func Decrypt(c hugeint.Uint, priv PrivateKey) (hugeint.Uint, error) {
	const op = "rsa.Decrypt"
	n := priv.N()
	if c.GreaterEq(n) {
		return hugeint.Uint{}, crypto330.Errorf(op, "%w: ciphertext out of range", ErrDecryption)
	}
	m1, err := numtheory.PowMod(c, priv.Dp, priv.P)
	if err != nil {
		return hugeint.Uint{}, crypto330.Wrap(op, err)
	}
	m2, err := numtheory.PowMod(c, priv.Dq, priv.Q)
	if err != nil {
		return hugeint.Uint{}, crypto330.Wrap(op, err)
	}
	m2p, _ := m2.Mod(priv.P)
	h, _ := priv.QInv.Mul(m1.Add(priv.P).Sub(m2p)).Mod(priv.P)
	m, _ := m2.Add(h.Mul(priv.Q)).Mod(n)
	return m, nil
}

// DecryptNoCRT returns c^D mod N without the CRT speedup.
func DecryptNoCRT(c hugeint.Uint, priv PrivateKey) (hugeint.Uint, error) {
	const op = "rsa.DecryptNoCRT"
	n := priv.N()
	if c.GreaterEq(n) {
		return hugeint.Uint{}, crypto330.Errorf(op, "%w: ciphertext out of range", ErrDecryption)
	}
	m, err := numtheory.PowMod(c, priv.D, n)
	if err != nil {
		return hugeint.Uint{}, crypto330.Wrap(op, err)
	}
	return m, nil
}
