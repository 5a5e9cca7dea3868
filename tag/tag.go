// Package tag implements locale identifier parsing and canonicalization.
//
// A Tag is an immutable value holding the language, script, country,
// variant and extension subtags of a locale identifier. Tags are created
// with Parse, which accepts both BCP-47 style ("en-AU") and legacy
// underscore style ("en_AU") input in any letter case, and rendered with
// String (canonical form, also used as the registry key) or Legacy
// (underscore display form).
//
// Usage:
//
//	t := tag.Parse("EN_au")
//	t.String()   // "en-AU"
//	t.Legacy()   // "en_AU"
//	t.Country()  // "AU"
package tag

import (
	"strings"

	"golang.org/x/text/language"
)

// Tag is a parsed locale identifier in canonical form.
//
// The zero value is the root tag. Two tags are equal (==) iff all their
// subtags match in canonical form.
type Tag struct {
	language  string
	script    string
	country   string
	variant   string
	extension string
}

// Root is the tag with every subtag empty.
var Root = Tag{}

// undetermined is the BCP-47 code for an unknown language.
const undetermined = "und"

// Language returns the lowercase language subtag, or "" for the root tag.
func (t Tag) Language() string { return t.language }

// Script returns the title-cased script subtag ("Latn"), if any.
func (t Tag) Script() string { return t.script }

// Country returns the uppercase region subtag ("AU") or the three-digit
// UN M.49 area code ("419"), if any.
func (t Tag) Country() string { return t.country }

// Variant returns the variant subtags joined with "-". Recognized variants
// are lowercase; unrecognized subtags are kept as they appeared in the input.
func (t Tag) Variant() string { return t.variant }

// Extension returns the extension and private-use tail exactly as it
// appeared in the input (joined with "-").
func (t Tag) Extension() string { return t.extension }

// IsRoot reports whether t is the root tag.
func (t Tag) IsRoot() bool { return t == Root }

// String returns the canonical form:
//
//	language[-Script][-COUNTRY][-variant][-extension...]
//
// Empty subtags are omitted, so the root tag renders as "".
func (t Tag) String() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{t.language, t.script, t.country, t.variant, t.extension} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}

// Legacy returns the underscore display form used by the legacy
// locale-to-string convention:
//
//	language[_COUNTRY][_variant][_#Script]
//
// The "und" language renders as "". The country slot is emitted (possibly
// empty) whenever a language is followed by a variant, script or extension,
// so "en" with script "Latn" renders as "en__#Latn".
func (t Tag) Legacy() string {
	lang := t.language
	if lang == undetermined {
		lang = ""
	}

	l := lang != ""
	s := t.script != ""
	r := t.country != ""
	v := t.variant != ""
	e := t.extension != ""

	var b strings.Builder
	b.WriteString(lang)
	if r || (l && (v || s || e)) {
		b.WriteByte('_')
		b.WriteString(t.country)
	}
	if v && (l || r) {
		b.WriteByte('_')
		b.WriteString(strings.ReplaceAll(t.variant, "-", "_"))
	}
	if s && (l || r) {
		b.WriteString("_#")
		b.WriteString(t.script)
	}
	if e && (l || r) {
		b.WriteByte('_')
		if !s {
			b.WriteByte('#')
		}
		b.WriteString(t.extension)
	}
	return b.String()
}

// Canonicalize parses raw and returns its canonical form.
func Canonicalize(raw string) string {
	return Parse(raw).String()
}

// WellFormed reports whether the canonical form of t is accepted by a
// strict BCP-47 parser. Tags with unrecognized subtags (for example the
// legacy "no-NO-NY") are still valid registry keys; this check is only
// informational. The root tag is always well-formed.
func WellFormed(t Tag) bool {
	if t.IsRoot() {
		return true
	}
	_, err := language.Parse(t.String())
	return err == nil
}
