package tag

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// privateUse is the singleton that starts a private-use sequence.
const privateUse = "x"

// Parse turns a raw locale identifier into a Tag. It never fails:
// subtags that match none of the expected shapes are kept verbatim in the
// variant position, so the result simply won't match any registry entry.
//
// Subtags are separated by '-' or '_' and classified left to right:
//
//  1. language: 2-8 letters (lowercased)
//  2. script:   4 letters (title-cased)
//  3. country:  2 letters (uppercased) or 3 digits
//  4. variant:  5-8 alphanumerics, or 4 starting with a digit (lowercased)
//  5. a single letter other than "x" followed by more subtags starts an
//     extension; it and everything after it is kept verbatim
//  6. "x" starts a private-use sequence, kept verbatim
//
// Space around a subtag is trimmed, and empty subtags (leading, trailing
// or doubled separators) are ignored.
func Parse(raw string) Tag {
	tokens := subtags(raw)
	if len(tokens) == 0 {
		return Root
	}

	var t Tag
	switch {
	case isLanguage(tokens[0]):
		t.language = strings.ToLower(tokens[0])
	case strings.EqualFold(tokens[0], privateUse):
		t.extension = strings.Join(tokens, "-")
		return t
	default:
		// Without a language there is no position to anchor the other
		// subtags to; keep the whole identifier so it round-trips.
		t.variant = strings.Join(tokens, "-")
		return t
	}

	i := 1
	if i < len(tokens) && isScript(tokens[i]) {
		t.script = titleCase(tokens[i])
		i++
	}
	if i < len(tokens) && isCountry(tokens[i]) {
		t.country = strings.ToUpper(tokens[i])
		i++
	}

	var variants []string
	for ; i < len(tokens); i++ {
		tok := tokens[i]
		if isSingleton(tok) && (strings.EqualFold(tok, privateUse) || i+1 < len(tokens)) {
			t.extension = strings.Join(tokens[i:], "-")
			break
		}
		if isVariant(tok) {
			variants = append(variants, strings.ToLower(tok))
			continue
		}
		variants = append(variants, tok)
	}
	t.variant = strings.Join(variants, "-")

	return t
}

// subtags splits raw on separators, trimming surrounding space from each
// subtag and dropping the ones left empty.
func subtags(raw string) []string {
	var out []string
	for _, tok := range strings.FieldsFunc(raw, isSeparator) {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func isSeparator(r rune) bool {
	return r == '-' || r == '_'
}

func isLanguage(s string) bool {
	return len(s) >= 2 && len(s) <= 8 && isAlpha(s)
}

func isScript(s string) bool {
	return len(s) == 4 && isAlpha(s)
}

func isCountry(s string) bool {
	return (len(s) == 2 && isAlpha(s)) || (len(s) == 3 && isDigit(s))
}

func isVariant(s string) bool {
	if !isAlphaNum(s) {
		return false
	}
	switch {
	case len(s) == 4:
		return isDigit(s[:1])
	case len(s) >= 5 && len(s) <= 8:
		return true
	}
	return false
}

func isSingleton(s string) bool {
	return len(s) == 1 && isAlpha(s)
}

func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func isDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isAlphaNum(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i:i+1]) && !isDigit(s[i:i+1]) {
			return false
		}
	}
	return true
}
