package internalcheck

import (
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/crypto330/crypto330-go"

// keyHandling lists the packages that touch private keys, nonces or
// plaintext.
var keyHandling = []string{
	modulePath + "/pkg/ecsign",
	modulePath + "/pkg/rsa",
	modulePath + "/pkg/logging",
}

// arithmetic lists the packages that implement multi-precision arithmetic
// from scratch.
var arithmetic = []string{
	modulePath + "/internal/limbs",
	modulePath + "/pkg/hugeint",
	modulePath + "/pkg/poly2",
	modulePath + "/pkg/numtheory",
	modulePath + "/pkg/elliptic",
}

func load(t *testing.T, mode packages.LoadMode, patterns ...string) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{Mode: mode}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("packages contain errors")
	}
	return pkgs
}
