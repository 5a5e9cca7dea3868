// Package localeenv reads the user's locale from the POSIX locale
// environment variables.
package localeenv

import (
	"os"
	"strings"
)

// Vars lists the locale variables in GNU gettext priority order.
var Vars = []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"}

// Name returns the locale named by the environment, stripped of its
// codeset and modifier ("ru_RU.UTF-8@euro" -> "ru_RU"). The "C" and
// "POSIX" locales are skipped. It returns "" when nothing usable is set.
func Name() string {
	for _, env := range Vars {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		// LANGUAGE can be a colon-separated list; take the first
		if env == "LANGUAGE" {
			val, _, _ = strings.Cut(val, ":")
		}
		if i := strings.IndexAny(val, ".@"); i >= 0 {
			val = val[:i]
		}
		if val == "C" || val == "POSIX" || val == "" {
			continue
		}
		return val
	}
	return ""
}
