package registry

import (
	"github.com/minios-linux/localeid/symbols"
	"github.com/minios-linux/localeid/tag"
)

// Entry is one supported locale: its canonical tag and the symbol bundles
// built for it. Entries are created by the registry and never modified.
type Entry struct {
	tag     tag.Tag
	symbols symbols.Bundle
}

// Tag returns the canonical tag of the entry.
func (e *Entry) Tag() tag.Tag { return e.tag }

// String returns the canonical tag string, which is also the registry key.
func (e *Entry) String() string { return e.tag.String() }

// Symbols returns a copy of the entry's date and number symbols.
func (e *Entry) Symbols() symbols.Bundle { return e.symbols.Clone() }

// Date returns a copy of the entry's date symbols.
func (e *Entry) Date() symbols.Date { return e.symbols.Date.Clone() }

// Decimal returns the entry's number symbols.
func (e *Entry) Decimal() symbols.Decimal { return e.symbols.Decimal }
