// Package i18n provides internationalization support for localeid itself.
//
// It wraps the gotext library to provide simple T() and N() functions
// for translating the CLI's user-facing strings. Catalogs are embedded
// in the binary via //go:embed and loaded at startup via Init().
//
// Usage:
//
//	import "github.com/minios-linux/localeid/i18n"
//
//	func main() {
//	    i18n.Init("")  // auto-detect from LANGUAGE/LC_ALL/LC_MESSAGES/LANG
//	    fmt.Println(i18n.T("Locale not found"))
//	    fmt.Println(i18n.N("%d locale", "%d locales", count, count))
//	}
package i18n

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"

	"github.com/minios-linux/localeid/localeenv"
)

// locales embeds the translation catalogs.
// Directory structure: locales/{lang}/LC_MESSAGES/localeid.po
//
//go:embed all:locales
var locales embed.FS

// domain is the gettext domain name for localeid.
const domain = "localeid"

// po is the gotext locale object used for translations.
var po *gotext.Locale

// Init initializes the i18n system. If lang is empty, it is taken from the
// environment (see localeenv.Name), falling back to English.
//
// Init should be called once at program startup, before any T() or N() calls.
func Init(lang string) {
	if lang == "" {
		lang = localeenv.Name()
	}
	if lang == "" {
		lang = "en"
	}

	po = gotext.NewLocaleFSWithPath(lang, locales, "locales")
	po.AddDomain(domain)
	po.SetDomain(domain)
}

// T translates a string. If no translation is available, returns the
// original string unchanged (standard gettext passthrough behavior).
func T(msgid string, vars ...any) string {
	if po == nil {
		return sprintf(msgid, vars...)
	}
	return po.Get(msgid, vars...)
}

// N translates a string with plural forms. The singular form is used
// when n == 1, the plural form otherwise (exact rules depend on the
// target language's plural formula).
func N(singular, plural string, n int, vars ...any) string {
	if po == nil {
		if n == 1 {
			return sprintf(singular, vars...)
		}
		return sprintf(plural, vars...)
	}
	return po.GetN(singular, plural, n, vars...)
}

// sprintf mirrors gotext's formatting: the format string is only
// interpreted when arguments are given.
func sprintf(format string, vars ...any) string {
	if len(vars) == 0 {
		return format
	}
	return fmt.Sprintf(format, vars...)
}
