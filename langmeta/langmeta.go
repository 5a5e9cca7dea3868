// Package langmeta provides English display names and emoji flags for
// locale tags, used by the CLI when listing registry entries.
package langmeta

import (
	"strings"

	"github.com/minios-linux/localeid/tag"
)

// Meta describes locale display metadata.
type Meta struct {
	Name string
	Flag string
}

// Languages maps language subtags to English names.
var Languages = map[string]string{
	"ar": "Arabic",
	"de": "German",
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"nb": "Norwegian Bokmål",
	"nl": "Dutch",
	"nn": "Norwegian Nynorsk",
	"no": "Norwegian",
	"pt": "Portuguese",
	"sv": "Swedish",
	"zh": "Chinese",
}

// Scripts maps script subtags to English names.
var Scripts = map[string]string{
	"Arab": "Arabic",
	"Cyrl": "Cyrillic",
	"Hans": "Simplified",
	"Hant": "Traditional",
	"Latn": "Latin",
}

// Regions maps region subtags to English names.
var Regions = map[string]string{
	"419": "Latin America",
	"AT":  "Austria",
	"AU":  "Australia",
	"BR":  "Brazil",
	"CA":  "Canada",
	"CH":  "Switzerland",
	"CN":  "China",
	"DE":  "Germany",
	"EG":  "Egypt",
	"ES":  "Spain",
	"FR":  "France",
	"GB":  "United Kingdom",
	"IE":  "Ireland",
	"IN":  "India",
	"IT":  "Italy",
	"JP":  "Japan",
	"KR":  "South Korea",
	"MX":  "Mexico",
	"NL":  "Netherlands",
	"NO":  "Norway",
	"NZ":  "New Zealand",
	"SE":  "Sweden",
	"SG":  "Singapore",
	"TW":  "Taiwan",
	"US":  "United States",
	"ZA":  "South Africa",
}

// Resolve returns display metadata for t: the language name followed by
// the script, region and variant in parentheses, e.g.
// "Chinese (Traditional, Taiwan)". Unknown subtags are shown as-is. The
// root tag is named "Root".
func Resolve(t tag.Tag) Meta {
	if t.IsRoot() {
		return Meta{Name: "Root"}
	}

	name, ok := Languages[t.Language()]
	if !ok {
		return Meta{Name: t.String(), Flag: FlagFromRegion(t.Country())}
	}

	var details []string
	if t.Script() != "" {
		details = append(details, lookup(Scripts, t.Script()))
	}
	if t.Country() != "" {
		details = append(details, lookup(Regions, t.Country()))
	}
	if t.Variant() != "" {
		details = append(details, t.Variant())
	}
	if len(details) > 0 {
		name += " (" + strings.Join(details, ", ") + ")"
	}

	return Meta{Name: name, Flag: FlagFromRegion(t.Country())}
}

func lookup(m map[string]string, key string) string {
	if key == "" {
		return ""
	}
	if v, ok := m[key]; ok {
		return v
	}
	return key
}

// FlagFromRegion returns the emoji flag for a two-letter region code, or
// "" for anything else (numeric areas, empty input).
func FlagFromRegion(region string) string {
	if len(region) != 2 {
		return ""
	}
	region = strings.ToUpper(region)
	var b strings.Builder
	for i := 0; i < 2; i++ {
		c := region[i]
		if c < 'A' || c > 'Z' {
			return ""
		}
		b.WriteRune(rune(c-'A') + 0x1F1E6)
	}
	return b.String()
}
