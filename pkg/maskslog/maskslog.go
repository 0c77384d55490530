// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package maskslog provides a slog.Handler which masks record messages
// and attribute values before they reach the wrapped handler.
package maskslog

import (
	"context"
	"log/slog"
)

type attrMasker struct {
	match func(string) bool
	mask  func(slog.Attr) slog.Attr
}

type options struct {
	attrMaskers []attrMasker
	msgMaskers  []func(string) string
}

// Option helps configure the Handler.
type Option interface {
	applyOption(*options)
}

type optionFunc func(*options)

func (f optionFunc) applyOption(opts *options) {
	f(opts)
}

// Message registers a function for masking slog.Record messages.
func Message(f func(string) string) Option {
	return optionFunc(func(o *options) {
		o.msgMaskers = append(o.msgMaskers, f)
	})
}

// Attr registers a function for masking a slog.Attr given its key.
func Attr(key string, f func(slog.Attr) slog.Attr) Option {
	return Match(func(k string) bool { return k == key }, f)
}

// Match registers a function for masking any slog.Attr whose key
// satisfies match. Attrs nested in groups are matched as well, but
// a group is never masked as a whole.
func Match(match func(string) bool, f func(slog.Attr) slog.Attr) Option {
	return optionFunc(func(o *options) {
		o.attrMaskers = append(o.attrMaskers, attrMasker{match: match, mask: f})
	})
}

// AnonymousStringAttr is a helper function for converting any slog.Attr
// into the anonymized string, "****". It completely ignores the given
// slog.Attr value type and always return a string value.
func AnonymousStringAttr(a slog.Attr) slog.Attr {
	return slog.String(a.Key, "****")
}

// Handler is an slog.Handler.
type Handler struct {
	slog slog.Handler

	attrMaskers []attrMasker
	msgMaskers  []func(string) string
}

// NewHandler returns a new Handler.
func NewHandler(h slog.Handler, opts ...Option) *Handler {
	o := &options{}
	for _, opt := range opts {
		opt.applyOption(o)
	}
	return &Handler{
		slog:        h,
		attrMaskers: o.attrMaskers,
		msgMaskers:  o.msgMaskers,
	}
}

func (h *Handler) with(sh slog.Handler) *Handler {
	return &Handler{
		slog:        sh,
		attrMaskers: h.attrMaskers,
		msgMaskers:  h.msgMaskers,
	}
}

// Enabled implements the slog.Handler interface.
func (h *Handler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.slog.Enabled(ctx, lvl)
}

// Handle implements the slog.Handler interface.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	msg := record.Message
	for _, f := range h.msgMaskers {
		msg = f(msg)
	}

	nr := slog.NewRecord(record.Time, record.Level, msg, record.PC)
	record.Attrs(func(a slog.Attr) bool {
		nr.AddAttrs(h.mask(a))
		return true
	})
	return h.slog.Handle(ctx, nr)
}

func (h *Handler) mask(a slog.Attr) slog.Attr {
	if len(h.attrMaskers) == 0 {
		return a
	}

	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		masked := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			masked[i] = h.mask(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(masked...)}
	}

	for _, m := range h.attrMaskers {
		if m.match(a.Key) {
			return m.mask(a)
		}
	}
	return a
}

// WithAttrs implements the slog.Handler interface.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = h.mask(a)
	}
	return h.with(h.slog.WithAttrs(masked))
}

// WithGroup implements the slog.Handler interface.
func (h *Handler) WithGroup(name string) slog.Handler {
	return h.with(h.slog.WithGroup(name))
}
