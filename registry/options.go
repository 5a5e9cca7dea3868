package registry

import (
	"log/slog"
	"strings"

	"github.com/minios-linux/localeid/tag"
)

type options struct {
	logger      *slog.Logger
	languages   map[string]struct{}
	unsupported []string
}

// Option configures how a Registry is built.
type Option func(*options)

// WithLanguages restricts the registry to locales whose language subtag is
// one of langs. Entries for other languages are dropped while building, so
// All never returns them. An empty list keeps every language.
func WithLanguages(langs ...string) Option {
	return func(o *options) {
		for _, l := range langs {
			l = strings.ToLower(strings.TrimSpace(l))
			if l == "" {
				continue
			}
			if o.languages == nil {
				o.languages = make(map[string]struct{})
			}
			o.languages[l] = struct{}{}
		}
	}
}

// WithUnsupported adds tags to the exclusion set on top of the ones listed
// in the data source. Tags are canonicalized before use.
func WithUnsupported(tags ...string) Option {
	return func(o *options) {
		o.unsupported = append(o.unsupported, tags...)
	}
}

// WithLogger sets the logger used while building the registry.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func (o *options) keepsLanguage(t tag.Tag) bool {
	if len(o.languages) == 0 {
		return true
	}
	_, ok := o.languages[t.Language()]
	return ok
}
