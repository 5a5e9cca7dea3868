package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minios-linux/localeid/defaultlocale"
	"github.com/minios-linux/localeid/propfile"
	"github.com/minios-linux/localeid/registry"
)

// isolate unsets every variable the CLI reads so the host environment
// cannot leak into a test.
func isolate(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"LOCALEID_DATA", "LOCALEID_LANGUAGES", "LOCALEID_UNSUPPORTED",
		"LOCALEID_DEFAULT", "LOCALEID_LOG_LEVEL", "LOCALEID_NO_COLOR",
		"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

// run executes the CLI against a project root and returns stdout and stderr.
func run(t *testing.T, root string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--root", root}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseCommand(t *testing.T) {
	isolate(t)

	out, _, err := run(t, t.TempDir(), "parse", "EN-AU", "no_NO_NY", "")
	require.NoError(t, err)

	blocks := strings.Split(out, "\n\n")
	require.Len(t, blocks, 3)

	assert.Contains(t, blocks[0], `"en-AU"`)
	assert.Contains(t, blocks[0], `"en_AU"`)
	assert.Contains(t, blocks[0], "yes")

	assert.Contains(t, blocks[1], `"no-NO-NY"`)
	assert.Contains(t, blocks[1], `"no_NO_NY"`)
	assert.Regexp(t, `Variant:\s+NY`, blocks[1])

	assert.Contains(t, blocks[2], `Canonical:  ""`)
	assert.Regexp(t, `Language:\s+-`, blocks[2])
}

func TestLookupCommand(t *testing.T) {
	isolate(t)
	root := t.TempDir()

	t.Run("supported", func(t *testing.T) {
		out, _, err := run(t, root, "lookup", "en_au", "ZH-tw")
		require.NoError(t, err)
		assert.Contains(t, out, "en-AU")
		assert.Contains(t, out, "English (Australia)")
		assert.Contains(t, out, "Chinese (Taiwan)")
	})

	t.Run("not found", func(t *testing.T) {
		out, _, err := run(t, root, "lookup", "en", "xx-YY")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 locale not found: xx-YY")
		assert.Contains(t, out, "not found")
	})

	t.Run("unsupported fails by default", func(t *testing.T) {
		out, stderr, err := run(t, root, "lookup", "no_NO_NY")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 locale unsupported: no-NO-NY")
		assert.Contains(t, out, "unsupported")
		assert.Contains(t, stderr, "locales known to be unsupported")
	})

	t.Run("allow unsupported", func(t *testing.T) {
		out, _, err := run(t, root, "lookup", "--allow-unsupported", "nn-NO", "de")
		require.NoError(t, err)
		assert.Contains(t, out, "nn-NO")
		assert.Contains(t, out, "German")
	})
}

func TestListCommand(t *testing.T) {
	isolate(t)
	root := t.TempDir()

	out, _, err := run(t, root, "list", "--language", "DE")
	require.NoError(t, err)
	for _, want := range []string{"de-AT", "de_CH", "German (Switzerland)", "4 locales"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "en-US")

	out, _, err = run(t, root, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Root")
	assert.NotContains(t, out, "nn-NO")
	assert.Contains(t, out, "no-NO")
}

func TestSymbolsCommand(t *testing.T) {
	isolate(t)
	root := t.TempDir()

	t.Run("text", func(t *testing.T) {
		out, _, err := run(t, root, "symbols", "fr-FR")
		require.NoError(t, err)
		assert.Contains(t, out, "janvier, février")
		assert.Contains(t, out, `"€"`)
	})

	t.Run("yaml", func(t *testing.T) {
		out, _, err := run(t, root, "symbols", "en-US", "--format", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "international_currency: USD")
		assert.Contains(t, out, "- January")
	})

	t.Run("properties to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "en_GB.properties")
		_, _, err := run(t, root, "symbols", "en-GB", "-f", "properties", "-o", path)
		require.NoError(t, err)

		f, err := propfile.ParseFile(path)
		require.NoError(t, err)
		b, err := propfile.ToBundle(f)
		require.NoError(t, err)
		assert.Equal(t, "£", b.Decimal.CurrencySymbol)
		assert.Equal(t, []string{"am", "pm"}, b.Date.AmPm)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := run(t, root, "symbols", "en", "--format", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
	})

	t.Run("unknown locale", func(t *testing.T) {
		_, _, err := run(t, root, "symbols", "xx")
		require.ErrorIs(t, err, registry.ErrNotFound)
	})
}

func TestFormatCommand(t *testing.T) {
	isolate(t)
	root := t.TempDir()

	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "grouped number", args: []string{"de-DE", "1234567.891"}, want: "1.234.567,89"},
		{name: "currency", args: []string{"en-US", "--style", "currency", "--", "-1234.5"}, want: "-$1,234.50"},
		{name: "percent", args: []string{"fr-FR", "0.256", "--style", "percent", "--fraction", "1"}, want: "25,6%"},
		{name: "scientific", args: []string{"en", "12345", "--style", "scientific"}, want: "1.23E4"},
		{name: "date", args: []string{"en", "2024-03-05", "--style", "date"}, want: "Tuesday, 5 March 2024 AD"},
		{name: "arabic digits", args: []string{"ar-EG", "12", "--fraction", "0"}, want: "١٢"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, root, append([]string{"format"}, tc.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tc.want+"\n", out)
		})
	}

	_, _, err := run(t, root, "format", "en", "abc")
	require.Error(t, err)
	_, _, err = run(t, root, "format", "en", "1", "--style", "roman")
	require.Error(t, err)
}

func TestNamesCommand(t *testing.T) {
	isolate(t)
	root := t.TempDir()

	out, _, err := run(t, root, "names")
	require.NoError(t, err)
	assert.Regexp(t, `CANADA_FRENCH\s+"fr-CA"`, out)
	assert.Regexp(t, `ROOT\s+""`, out)

	out, _, err = run(t, root, "names", "prc")
	require.NoError(t, err)
	assert.Regexp(t, `^PRC\s+"zh-CN"\n$`, out)

	_, _, err = run(t, root, "names", "atlantis")
	require.Error(t, err)
}

func TestDefaultCommand(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		isolate(t)
		t.Setenv("LOCALEID_DEFAULT", "fr_CA")
		t.Setenv("LANG", "de_DE.UTF-8")

		out, _, err := run(t, t.TempDir(), "default")
		require.NoError(t, err)
		assert.Contains(t, out, "fr-CA")
		assert.Contains(t, out, "French (Canada)")
	})

	t.Run("detected", func(t *testing.T) {
		isolate(t)
		t.Setenv("LANG", "de_DE.UTF-8")

		out, _, err := run(t, t.TempDir(), "default")
		require.NoError(t, err)
		assert.Contains(t, out, "de-DE")
	})

	t.Run("unsupported configured default", func(t *testing.T) {
		isolate(t)
		t.Setenv("LOCALEID_DEFAULT", "nn-NO")

		_, stderr, err := run(t, t.TempDir(), "default")
		require.ErrorIs(t, err, defaultlocale.ErrNoDefault)
		assert.Contains(t, stderr, "configured default locale not usable")
	})

	t.Run("none", func(t *testing.T) {
		isolate(t)
		_, _, err := run(t, t.TempDir(), "default")
		require.ErrorIs(t, err, defaultlocale.ErrNoDefault)
	})
}

func TestSetDefault(t *testing.T) {
	var logs bytes.Buffer
	a := &app{
		logger: newLogger(&logs, slog.LevelInfo, true),
		locale: defaultlocale.New(),
	}

	a.setDefault(nil, "environment")
	assert.False(t, a.locale.IsSet())
	assert.Contains(t, logs.String(), "default locale not usable")
	assert.Contains(t, logs.String(), defaultlocale.ErrNilLocale.Error())

	e, err := registry.Default().Match("en-AU")
	require.NoError(t, err)
	a.setDefault(e, "environment")
	got, err := a.locale.Get()
	require.NoError(t, err)
	assert.Same(t, e, got)
}

func TestConfigFileShapesRegistry(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	cfg := "languages: [en]\nunsupported: [en-IN]\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".localeid.yaml"), []byte(cfg), 0o644))

	_, _, err := run(t, root, "lookup", "de")
	require.ErrorContains(t, err, "not found")

	_, stderr, err := run(t, root, "lookup", "en-IN")
	require.ErrorContains(t, err, "unsupported")
	assert.Contains(t, stderr, "locale registry built")

	out, _, err := run(t, root, "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "fr-FR")
	assert.NotContains(t, out, "en-IN")
}

func TestInvalidConfig(t *testing.T) {
	isolate(t)
	root := t.TempDir()

	_, _, err := run(t, root, "--log-level", "loud", "list")
	require.Error(t, err)

	data := filepath.Join(root, "missing.yaml")
	t.Setenv("LOCALEID_DATA", data)
	_, _, err = run(t, root, "list")
	require.ErrorContains(t, err, "building locale registry")
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	out, _, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "localeid version dev")
}
