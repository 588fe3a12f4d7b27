// Package logging is the logging facade of crypto330-go, a thin adapter over
// log/slog.
//
// The arithmetic packages (hugeint, poly2, numtheory, elliptic) never log.
// Only the multi-step procedures built on them do:
//
//   - ecsign.Signer logs key generation, nonce redraws and rejected
//     signatures under component=ecsign
//   - rsa.KeyGenerator logs each prime found and the finished key under
//     component=rsa
//
// Both take their Logger from crypto330.Config; a nil Logger becomes Nop().
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	cfg := crypto330.Config{Logger: logging.New(slog.New(handler))}
//
// # Redaction
//
// The private scalar of an ecsign key, signing nonces and the RSA factors P
// and Q appear in log records only as Redacted attributes. Public data (bit
// lengths, the public exponent, the x coordinate of a public key, attempt
// counts) is logged as is. Hex formatting verbs are banned from the
// key-handling packages by the internalcheck tests.
//
//	logger.Info(ctx, "generated RSA key", "bits", 1024, logging.Redacted("p"))
//	// level=INFO msg="generated RSA key" bits=1024 p=[redacted]
package logging
