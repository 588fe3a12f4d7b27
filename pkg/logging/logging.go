package logging

import (
	"context"
	"io"
	"log/slog"
)

const redactedPlaceholder = "[redacted]"

// Logger is what ecsign.Signer and rsa.KeyGenerator log through. Every call
// takes the caller's context so handlers can pick up request-scoped values.
//
// Implementations receive only public values (bit lengths, attempt counts,
// public coordinates and exponents) and Redacted attributes; no secret
// scalar, nonce or prime factor is ever passed as an argument.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New adapts l. A nil l logs to slog.Default().
func New(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return slogAdapter{l: l}
}

// Nop returns a Logger that drops every record. It is the default when a
// crypto330.Config carries no Logger.
func Nop() Logger {
	return slogAdapter{l: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// OrNop returns l, or Nop() when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop()
	}
	return l
}

type slogAdapter struct {
	l *slog.Logger
}

func (a slogAdapter) Debug(ctx context.Context, msg string, args ...any) {
	a.l.DebugContext(ctx, msg, args...)
}

func (a slogAdapter) Info(ctx context.Context, msg string, args ...any) {
	a.l.InfoContext(ctx, msg, args...)
}

func (a slogAdapter) Warn(ctx context.Context, msg string, args ...any) {
	a.l.WarnContext(ctx, msg, args...)
}

func (a slogAdapter) Error(ctx context.Context, msg string, args ...any) {
	a.l.ErrorContext(ctx, msg, args...)
}

func (a slogAdapter) With(args ...any) Logger {
	return slogAdapter{l: a.l.With(args...)}
}

// Redacted records that a secret named key took part in the step being
// logged. Only the name reaches the handler; the value is replaced by
// Placeholder().
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Placeholder is the value Redacted attributes carry.
func Placeholder() string {
	return redactedPlaceholder
}
