package defaultlocale

import (
	"fmt"

	"github.com/minios-linux/localeid/localeenv"
	"github.com/minios-linux/localeid/registry"
)

// Detect matches the environment locale (see localeenv.Name) against r. It
// returns registry.ErrNotFound (wrapped) when the environment names no
// locale.
func Detect(r *registry.Registry) (*registry.Entry, error) {
	raw := localeenv.Name()
	if raw == "" {
		return nil, fmt.Errorf("%w: no locale in environment", registry.ErrNotFound)
	}
	return r.Match(raw)
}
