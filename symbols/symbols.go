// Package symbols holds the date and number formatting symbol sets attached
// to every registry entry, plus small helpers that render numbers and
// calendar names with them.
//
// Bundles are precomputed when the registry is built; Of hands them out
// unchanged.
package symbols

import "slices"

// Date holds the display names used to format dates.
type Date struct {
	Eras          []string `yaml:"eras"`
	Months        []string `yaml:"months"`
	ShortMonths   []string `yaml:"short_months"`
	Weekdays      []string `yaml:"weekdays"`
	ShortWeekdays []string `yaml:"short_weekdays"`
	AmPm          []string `yaml:"am_pm"`
}

// Decimal holds the scalar symbols used to format numbers.
type Decimal struct {
	DecimalSeparator         string `yaml:"decimal_separator"`
	GroupingSeparator        string `yaml:"grouping_separator"`
	Percent                  string `yaml:"percent"`
	PerMill                  string `yaml:"per_mill"`
	Digit                    string `yaml:"digit"`
	ZeroDigit                string `yaml:"zero_digit"`
	MinusSign                string `yaml:"minus_sign"`
	ExponentSeparator        string `yaml:"exponent_separator"`
	PatternSeparator         string `yaml:"pattern_separator"`
	NaN                      string `yaml:"nan"`
	Infinity                 string `yaml:"infinity"`
	CurrencySymbol           string `yaml:"currency_symbol"`
	InternationalCurrency    string `yaml:"international_currency"`
	MonetaryDecimalSeparator string `yaml:"monetary_decimal_separator"`
}

// Bundle groups the date and number symbols of one locale.
type Bundle struct {
	Date    Date    `yaml:"date"`
	Decimal Decimal `yaml:"decimal"`
}

// Source is anything that carries a precomputed symbol bundle.
type Source interface {
	Symbols() Bundle
}

// Of returns the symbol bundle of src.
func Of(src Source) Bundle {
	return src.Symbols()
}

// Clone returns a deep copy of d so callers can't mutate shared arrays.
func (d Date) Clone() Date {
	return Date{
		Eras:          slices.Clone(d.Eras),
		Months:        slices.Clone(d.Months),
		ShortMonths:   slices.Clone(d.ShortMonths),
		Weekdays:      slices.Clone(d.Weekdays),
		ShortWeekdays: slices.Clone(d.ShortWeekdays),
		AmPm:          slices.Clone(d.AmPm),
	}
}

// Clone returns a deep copy of b.
func (b Bundle) Clone() Bundle {
	return Bundle{Date: b.Date.Clone(), Decimal: b.Decimal}
}
