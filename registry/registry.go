// Package registry implements the table of supported locales and the
// matcher that looks identifiers up in it.
//
// A Registry is built once from a YAML data source (the embedded
// data/locales.yaml unless another one is supplied) and is read-only
// afterwards, so it is safe for concurrent use. Matching is exact: the
// canonical form of the requested tag must equal, ignoring case, the
// canonical tag of an entry. No fallback to shorter tags is attempted.
//
// Tags listed in the exclusion set are reported with ErrUnsupported,
// which callers can tell apart from a plain ErrNotFound:
//
//	e, err := registry.Default().Match("en_AU")
//	switch {
//	case errors.Is(err, registry.ErrUnsupported):
//		// known gap
//	case errors.Is(err, registry.ErrNotFound):
//		// surprising miss
//	}
package registry

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/minios-linux/localeid/tag"
)

//go:embed data/locales.yaml
var embedded []byte

// Registry is an immutable table of locale entries keyed by canonical tag.
type Registry struct {
	entries     []*Entry
	index       map[string]*Entry // lowercase canonical tag -> entry
	unsupported map[string]struct{}
	named       map[string]*Entry
}

var loadDefault = sync.OnceValues(func() (*Registry, error) {
	return Open()
})

// Default returns the process-wide registry built from the embedded data.
// It is built on first use; concurrent callers all observe the same fully
// built value. Default panics if the embedded data is malformed.
func Default() *Registry {
	r, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("registry: building default registry: %v", err))
	}
	return r
}

// Open builds a registry from the embedded data.
func Open(opts ...Option) (*Registry, error) {
	return Load(bytes.NewReader(embedded), opts...)
}

// LoadFile builds a registry from the YAML file at path.
func LoadFile(path string, opts ...Option) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	r, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Load builds a registry from YAML read from src. Building is
// all-or-nothing: any malformed record fails the whole registry with an
// error wrapping ErrInvalidData.
func Load(src io.Reader, opts ...Option) (*Registry, error) {
	o := &options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(o)
	}

	doc, err := decode(src)
	if err != nil {
		return nil, err
	}
	return build(doc, o)
}

func build(doc *document, o *options) (*Registry, error) {
	r := &Registry{
		index:       make(map[string]*Entry, len(doc.Locales)),
		unsupported: make(map[string]struct{}),
		named:       make(map[string]*Entry, len(doc.Named)),
	}

	for _, raw := range append(slices.Clone(doc.Unsupported), o.unsupported...) {
		r.unsupported[key(tag.Canonicalize(raw))] = struct{}{}
	}

	all := make(map[string]*Entry, len(doc.Locales))
	for i, rec := range doc.Locales {
		t := tag.Parse(rec.Tag)
		if t.String() != rec.Tag {
			return nil, fmt.Errorf("%w: locale #%d: tag %q is not canonical (want %q)", ErrInvalidData, i+1, rec.Tag, t.String())
		}
		k := key(rec.Tag)
		if _, dup := all[k]; dup {
			return nil, fmt.Errorf("%w: locale #%d: duplicate tag %q", ErrInvalidData, i+1, rec.Tag)
		}
		b := rec.bundle()
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("%w: locale %q: %w", ErrInvalidData, rec.Tag, err)
		}

		e := &Entry{tag: t, symbols: b}
		all[k] = e

		switch {
		case !o.keepsLanguage(t):
			o.logger.Debug("locale dropped by language filter", "tag", rec.Tag)
			continue
		case r.excluded(k):
			o.logger.Debug("locale excluded as unsupported", "tag", rec.Tag)
			continue
		}
		r.entries = append(r.entries, e)
		r.index[k] = e
	}

	for name, raw := range doc.Named {
		if _, ok := all[key(raw)]; !ok {
			return nil, fmt.Errorf("%w: named locale %s refers to unknown tag %q", ErrInvalidData, name, raw)
		}
		if e, ok := r.index[key(raw)]; ok {
			r.named[strings.ToUpper(name)] = e
		}
	}

	o.logger.Debug("locale registry built",
		"entries", len(r.entries),
		"unsupported", len(r.unsupported),
		"named", len(r.named),
	)
	return r, nil
}

// key folds a canonical tag into the case-insensitive lookup key.
func key(canonical string) string {
	return strings.ToLower(canonical)
}

func (r *Registry) excluded(k string) bool {
	_, ok := r.unsupported[k]
	return ok
}

// Lookup returns the entry whose canonical tag equals canonical, ignoring
// case. Tags in the exclusion set yield ErrUnsupported regardless of the
// registry contents; anything else that has no entry yields ErrNotFound.
func (r *Registry) Lookup(canonical string) (*Entry, error) {
	k := key(canonical)
	if r.excluded(k) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, canonical)
	}
	if e, ok := r.index[k]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, canonical)
}

// Match parses raw, canonicalizes it and looks the result up.
func (r *Registry) Match(raw string) (*Entry, error) {
	return r.Lookup(tag.Canonicalize(raw))
}

// Supported reports whether raw matches an entry.
func (r *Registry) Supported(raw string) bool {
	_, err := r.Match(raw)
	return err == nil
}

// All returns every entry in data source order.
func (r *Registry) All() []*Entry {
	return slices.Clone(r.entries)
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Unsupported returns the exclusion set as sorted canonical keys.
func (r *Registry) Unsupported() []string {
	out := make([]string, 0, len(r.unsupported))
	for k := range r.unsupported {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Named returns the entry registered under a well-known name such as
// "ENGLISH" or "CANADA". Names are matched case-insensitively.
func (r *Registry) Named(name string) (*Entry, bool) {
	e, ok := r.named[strings.ToUpper(name)]
	return e, ok
}

// Names returns the well-known names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.named))
	for name := range r.named {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
