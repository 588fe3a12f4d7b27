package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/crypto330/crypto330-go/pkg/crypto330"
	"github.com/crypto330/crypto330-go/pkg/ecsign"
	"github.com/crypto330/crypto330-go/pkg/elliptic"
	"github.com/crypto330/crypto330-go/pkg/hugeint"
	"github.com/crypto330/crypto330-go/pkg/logging"
	"github.com/crypto330/crypto330-go/pkg/numtheory"
	"github.com/crypto330/crypto330-go/pkg/rsa"
)

func main() {
	rsaBits := flag.Uint("rsa-bits", 1024, "RSA modulus size for the self-check")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed for key and nonce generation")
	verbose := flag.Bool("v", false, "log debug output to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	cfg := crypto330.Config{
		Logger: logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))),
	}

	log.Printf("crypto330-go version: %s", crypto330.WrapperVersion())
	ctx := context.Background()

	if err := checkSignature(ctx, cfg, *seed); err != nil {
		log.Fatalf("signature self-check failed: %v", err)
	}
	fmt.Println("DSTU 4145 M=307 sign/verify: ok")

	if err := checkRSA(ctx, cfg, *rsaBits, *seed); err != nil {
		log.Fatalf("RSA self-check failed: %v", err)
	}
	fmt.Printf("RSA-%d OAEP round trip: ok\n", *rsaBits)
}

func checkSignature(ctx context.Context, cfg crypto330.Config, seed uint64) error {
	signer, err := ecsign.NewSigner(elliptic.DSTU4145M307(), numtheory.NewSource(seed), cfg)
	if err != nil {
		return err
	}
	priv, pub, err := signer.GenerateKeys(ctx)
	if err != nil {
		return err
	}
	msg := hugeint.FromBytes([]byte("This is my message! And only my!"))
	sig, err := signer.Sign(ctx, msg, priv)
	if err != nil {
		return err
	}
	if !signer.Verify(ctx, msg, sig, pub) {
		return errors.New("valid signature rejected")
	}
	if signer.Verify(ctx, msg.AddUint64(1), sig, pub) {
		return errors.New("signature accepted for a different message")
	}
	return nil
}

func checkRSA(ctx context.Context, cfg crypto330.Config, bits uint, seed uint64) error {
	gen, err := rsa.NewKeyGenerator(cfg)
	if err != nil {
		return err
	}
	priv, pub, err := gen.Generate(ctx, bits, seed)
	if err != nil {
		return err
	}
	msg := []byte("This is test message! RANDOM DATA DATA DATA DATA DATA DATA DATA")
	ct, err := rsa.EncryptOAEP(msg, pub, nil)
	if err != nil {
		return err
	}
	pt, err := rsa.DecryptOAEP(ct, priv, nil)
	if err != nil {
		return err
	}
	if !bytes.Equal(pt, msg) {
		return errors.New("decrypted plaintext differs")
	}
	return nil
}
