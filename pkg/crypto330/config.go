package crypto330

import (
	"fmt"

	"github.com/crypto330/crypto330-go/pkg/logging"
)

// DefaultPrimalityRounds is the number of Miller-Rabin witnesses drawn when a
// Config leaves PrimalityRounds unset.
const DefaultPrimalityRounds = 16

// Config carries the knobs shared by the key generation and signing helpers.
// The zero value is usable: unset fields fall back to their defaults.
type Config struct {
	// PrimalityRounds is the Miller-Rabin round count used when searching for
	// RSA primes. Zero selects DefaultPrimalityRounds.
	PrimalityRounds int

	// Logger receives progress messages. Nil discards them.
	Logger logging.Logger
}

// DefaultConfig returns a Config with every field populated.
func DefaultConfig() Config {
	return Config{
		PrimalityRounds: DefaultPrimalityRounds,
		Logger:          logging.Nop(),
	}
}

// Validate rejects configurations that cannot be used.
func (c Config) Validate() error {
	if c.PrimalityRounds < 0 {
		return Errorf("crypto330.Config", "%w: negative primality rounds %d", ErrInvalidParameter, c.PrimalityRounds)
	}
	return nil
}

// WithDefaults returns a copy of c with unset fields filled in.
func (c Config) WithDefaults() Config {
	if c.PrimalityRounds == 0 {
		c.PrimalityRounds = DefaultPrimalityRounds
	}
	c.Logger = logging.OrNop(c.Logger)
	return c
}

func (c Config) String() string {
	return fmt.Sprintf("Config{PrimalityRounds: %d}", c.PrimalityRounds)
}
