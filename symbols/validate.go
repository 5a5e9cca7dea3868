package symbols

import (
	"errors"
	"fmt"
)

var (
	ErrLength  = errors.New("symbols: wrong number of names")
	ErrMissing = errors.New("symbols: required symbol is empty")
)

// Expected array lengths of a Date bundle.
const (
	EraCount     = 2
	MonthCount   = 12
	WeekdayCount = 7
	AmPmCount    = 2
)

// Validate checks that every name array has the expected length.
func (d Date) Validate() error {
	checks := []struct {
		name  string
		names []string
		want  int
	}{
		{"eras", d.Eras, EraCount},
		{"months", d.Months, MonthCount},
		{"short_months", d.ShortMonths, MonthCount},
		{"weekdays", d.Weekdays, WeekdayCount},
		{"short_weekdays", d.ShortWeekdays, WeekdayCount},
		{"am_pm", d.AmPm, AmPmCount},
	}
	for _, c := range checks {
		if len(c.names) != c.want {
			return fmt.Errorf("%w: %s has %d, want %d", ErrLength, c.name, len(c.names), c.want)
		}
	}
	return nil
}

// Validate checks that the symbols needed to render a number are set.
// Currency fields are optional.
func (d Decimal) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"decimal_separator", d.DecimalSeparator},
		{"grouping_separator", d.GroupingSeparator},
		{"percent", d.Percent},
		{"per_mill", d.PerMill},
		{"digit", d.Digit},
		{"zero_digit", d.ZeroDigit},
		{"minus_sign", d.MinusSign},
		{"exponent_separator", d.ExponentSeparator},
		{"pattern_separator", d.PatternSeparator},
		{"nan", d.NaN},
		{"infinity", d.Infinity},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s", ErrMissing, r.name)
		}
	}
	return nil
}

// Validate checks both halves of the bundle.
func (b Bundle) Validate() error {
	if err := b.Date.Validate(); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	if err := b.Decimal.Validate(); err != nil {
		return fmt.Errorf("decimal: %w", err)
	}
	return nil
}
