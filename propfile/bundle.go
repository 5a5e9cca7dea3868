package propfile

import (
	"fmt"
	"strconv"

	"github.com/minios-linux/localeid/symbols"
)

// ---------------------------------------------------------------------------
// Symbol bundles
// ---------------------------------------------------------------------------

// Keys for the name arrays of a date bundle.
const (
	KeyEras             = "Eras"
	KeyMonthNames       = "MonthNames"
	KeyMonthAbbrevs     = "MonthAbbreviations"
	KeyDayNames         = "DayNames"
	KeyDayAbbreviations = "DayAbbreviations"
	KeyAmPmMarkers      = "AmPmMarkers"
)

type arrayField struct {
	key string
	get func(*symbols.Date) *[]string
	n   int
}

var dateArrays = []arrayField{
	{KeyEras, func(d *symbols.Date) *[]string { return &d.Eras }, symbols.EraCount},
	{KeyMonthNames, func(d *symbols.Date) *[]string { return &d.Months }, symbols.MonthCount},
	{KeyMonthAbbrevs, func(d *symbols.Date) *[]string { return &d.ShortMonths }, symbols.MonthCount},
	{KeyDayNames, func(d *symbols.Date) *[]string { return &d.Weekdays }, symbols.WeekdayCount},
	{KeyDayAbbreviations, func(d *symbols.Date) *[]string { return &d.ShortWeekdays }, symbols.WeekdayCount},
	{KeyAmPmMarkers, func(d *symbols.Date) *[]string { return &d.AmPm }, symbols.AmPmCount},
}

type scalarField struct {
	key string
	get func(*symbols.Decimal) *string
}

var decimalScalars = []scalarField{
	{"DecimalSeparator", func(d *symbols.Decimal) *string { return &d.DecimalSeparator }},
	{"GroupingSeparator", func(d *symbols.Decimal) *string { return &d.GroupingSeparator }},
	{"Percent", func(d *symbols.Decimal) *string { return &d.Percent }},
	{"PerMill", func(d *symbols.Decimal) *string { return &d.PerMill }},
	{"Digit", func(d *symbols.Decimal) *string { return &d.Digit }},
	{"ZeroDigit", func(d *symbols.Decimal) *string { return &d.ZeroDigit }},
	{"MinusSign", func(d *symbols.Decimal) *string { return &d.MinusSign }},
	{"Exponential", func(d *symbols.Decimal) *string { return &d.ExponentSeparator }},
	{"PatternSeparator", func(d *symbols.Decimal) *string { return &d.PatternSeparator }},
	{"NaN", func(d *symbols.Decimal) *string { return &d.NaN }},
	{"Infinity", func(d *symbols.Decimal) *string { return &d.Infinity }},
	{"CurrencySymbol", func(d *symbols.Decimal) *string { return &d.CurrencySymbol }},
	{"InternationalCurrencySymbol", func(d *symbols.Decimal) *string { return &d.InternationalCurrency }},
	{"MonetaryDecimalSeparator", func(d *symbols.Decimal) *string { return &d.MonetaryDecimalSeparator }},
}

// FromBundle renders b as a properties file. The locale tag is recorded in
// a header comment.
func FromBundle(locale string, b symbols.Bundle) *File {
	f := New()
	f.Comment("Format symbols for locale " + strconv.Quote(locale))
	f.Blank()

	for _, a := range dateArrays {
		for i, name := range *a.get(&b.Date) {
			f.Set(a.key+"."+strconv.Itoa(i), name)
		}
	}
	f.Blank()
	for _, s := range decimalScalars {
		f.Set(s.key, *s.get(&b.Decimal))
	}
	return f
}

// ToBundle reads a symbol bundle back from f. Missing keys and bundles that
// fail symbols validation are reported as errors.
func ToBundle(f *File) (symbols.Bundle, error) {
	var b symbols.Bundle

	for _, a := range dateArrays {
		names := make([]string, a.n)
		for i := range names {
			k := a.key + "." + strconv.Itoa(i)
			v, ok := f.Get(k)
			if !ok {
				return symbols.Bundle{}, fmt.Errorf("missing key %s", k)
			}
			names[i] = v
		}
		*a.get(&b.Date) = names
	}
	for _, s := range decimalScalars {
		v, ok := f.Get(s.key)
		if !ok {
			return symbols.Bundle{}, fmt.Errorf("missing key %s", s.key)
		}
		*s.get(&b.Decimal) = v
	}

	if err := b.Validate(); err != nil {
		return symbols.Bundle{}, err
	}
	return b, nil
}
