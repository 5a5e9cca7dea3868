// Package defaultlocale holds the "current" locale of a process or of a
// request.
//
// There is no ambient global: a Holder is created by the program and
// passed to whoever needs it, or a locale is attached to a context with
// WithContext. A Holder is a single slot with a single-writer contract:
// it is meant to be set once early in the program's life and read
// afterwards. It does no locking, so concurrent Set calls must be
// serialized by the caller.
package defaultlocale

import (
	"context"
	"errors"
	"fmt"

	"github.com/minios-linux/localeid/registry"
)

var (
	ErrNoDefault = errors.New("defaultlocale: no default locale set")
	ErrNilLocale = errors.New("defaultlocale: locale must not be nil")
)

// Holder is a single-slot store for the default locale.
type Holder struct {
	entry *registry.Entry
}

// New returns an empty holder.
func New() *Holder {
	return &Holder{}
}

// Set overwrites the held locale.
func (h *Holder) Set(e *registry.Entry) error {
	if e == nil {
		return ErrNilLocale
	}
	h.entry = e
	return nil
}

// Get returns the held locale, or ErrNoDefault if Set was never called.
func (h *Holder) Get() (*registry.Entry, error) {
	if h.entry == nil {
		return nil, ErrNoDefault
	}
	return h.entry, nil
}

// MustGet is like Get but panics when no locale has been set. Reading an
// unset default is a programming error.
func (h *Holder) MustGet() *registry.Entry {
	e, err := h.Get()
	if err != nil {
		panic(err)
	}
	return e
}

// IsSet reports whether a locale has been set.
func (h *Holder) IsSet() bool {
	return h.entry != nil
}

type contextKey struct{}

// WithContext returns a copy of ctx carrying e.
func WithContext(ctx context.Context, e *registry.Entry) context.Context {
	return context.WithValue(ctx, contextKey{}, e)
}

// FromContext returns the locale carried by ctx.
func FromContext(ctx context.Context) (*registry.Entry, bool) {
	e, ok := ctx.Value(contextKey{}).(*registry.Entry)
	return e, ok && e != nil
}

// Resolve matches raw against r and stores the result in h. The holder is
// left untouched when raw matches nothing.
func (h *Holder) Resolve(r *registry.Registry, raw string) error {
	e, err := r.Match(raw)
	if err != nil {
		return fmt.Errorf("resolving default locale: %w", err)
	}
	return h.Set(e)
}
