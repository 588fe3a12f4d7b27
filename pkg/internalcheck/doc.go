// Package internalcheck holds static policy tests over the module's own
// source. It has no exported API.
//
// The tests load packages with golang.org/x/tools/go/packages and walk their
// syntax trees. They enforce that
//
//   - key-handling packages never format values with %x
//   - key-handling packages never compare byte sequences with == or
//     bytes.Equal
//   - the arithmetic packages stay independent of math/big
package internalcheck
