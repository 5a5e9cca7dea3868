package registry

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/minios-linux/localeid/symbols"
)

// document is the YAML schema of a registry data source.
type document struct {
	// Unsupported lists tags the target runtime lacks data for.
	Unsupported []string `yaml:"unsupported"`
	// Named maps well-known names to canonical tags.
	Named map[string]string `yaml:"named"`
	// Locales lists every locale in presentation order.
	Locales []record `yaml:"locales"`
}

type record struct {
	Tag     string          `yaml:"tag"`
	Date    symbols.Date    `yaml:"date"`
	Decimal symbols.Decimal `yaml:"decimal"`
}

func (rec record) bundle() symbols.Bundle {
	return symbols.Bundle{Date: rec.Date, Decimal: rec.Decimal}.Clone()
}

func decode(src io.Reader) (*document, error) {
	dec := yaml.NewDecoder(src)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty data source", ErrInvalidData)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	if len(doc.Locales) == 0 {
		return nil, fmt.Errorf("%w: no locales", ErrInvalidData)
	}
	return &doc, nil
}
