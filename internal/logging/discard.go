// Package logging provides slog helpers for the command-line tool.
package logging

import (
	"context"
	"log/slog"
)

// DiscardHandler implements slog.Handler and drops every record. It is
// the handler behind --quiet.
type DiscardHandler struct{}

func (h DiscardHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return false
}

func (h DiscardHandler) Handle(ctx context.Context, record slog.Record) error {
	return nil
}

func (h DiscardHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h DiscardHandler) WithGroup(name string) slog.Handler {
	return h
}
