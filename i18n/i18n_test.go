package i18n

import (
	"testing"

	"github.com/leonelquinteros/gotext"
	"github.com/stretchr/testify/assert"
)

func resetLocale(t *testing.T) {
	t.Helper()
	old := po
	t.Cleanup(func() { po = old })
}

func clearLocaleEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LANGUAGE", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
}

func TestTAndNFallbackWhenUninitialized(t *testing.T) {
	resetLocale(t)
	po = nil

	assert.Equal(t, "Hello", T("Hello"))
	assert.Equal(t, "100%", T("100%"))
	assert.Equal(t, "tag en", T("tag %s", "en"))
	assert.Equal(t, "1 locale", N("%d locale", "%d locales", 1, 1))
	assert.Equal(t, "2 locales", N("%d locale", "%d locales", 2, 2))
}

func TestInitGerman(t *testing.T) {
	resetLocale(t)
	Init("de")

	assert.Equal(t, "ja", T("yes"))
	assert.Equal(t, "Sprache", T("Language"))
	assert.Equal(t, "1 Gebietsschema", N("%d locale", "%d locales", 1, 1))
	assert.Equal(t, "3 Gebietsschemata", N("%d locale", "%d locales", 3, 3))
	assert.Equal(t, "no such message", T("no such message"))
}

func TestInitRussianPlurals(t *testing.T) {
	resetLocale(t)
	Init("ru")

	assert.Equal(t, "1 локаль", N("%d locale", "%d locales", 1, 1))
	assert.Equal(t, "3 локали", N("%d locale", "%d locales", 3, 3))
	assert.Equal(t, "5 локалей", N("%d locale", "%d locales", 5, 5))
	assert.Equal(t, "21 локаль", N("%d locale", "%d locales", 21, 21))
}

func TestInitFromEnvironment(t *testing.T) {
	resetLocale(t)
	clearLocaleEnv(t)
	t.Setenv("LC_ALL", "de_DE.UTF-8")

	Init("")
	assert.Equal(t, "nein", T("no"))
}

func TestInitUnknownLanguagePassesThrough(t *testing.T) {
	resetLocale(t)
	clearLocaleEnv(t)

	Init("")
	assert.Equal(t, "yes", T("yes"))
	assert.Equal(t, "2 locales", N("%d locale", "%d locales", 2, 2))

	Init("xx")
	assert.Equal(t, "Language", T("Language"))
}

func TestCatalogsEmbedded(t *testing.T) {
	want := map[string]string{"de": "ja", "ru": "да"}
	for lang, yes := range want {
		l := gotext.NewLocaleFSWithPath(lang, locales, "locales")
		l.AddDomain(domain)
		assert.Equal(t, yes, l.GetD(domain, "yes"), lang)
	}
}
