package symbols

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// groupSize is the number of integer digits between grouping separators.
const groupSize = 3

// MonthName returns the full name of m, or "" if the bundle has none.
func (d Date) MonthName(m time.Month) string {
	return pick(d.Months, int(m)-1)
}

// ShortMonthName returns the abbreviated name of m.
func (d Date) ShortMonthName(m time.Month) string {
	return pick(d.ShortMonths, int(m)-1)
}

// WeekdayName returns the full name of w. Weekday arrays start on Sunday,
// like time.Weekday.
func (d Date) WeekdayName(w time.Weekday) string {
	return pick(d.Weekdays, int(w))
}

// ShortWeekdayName returns the abbreviated name of w.
func (d Date) ShortWeekdayName(w time.Weekday) string {
	return pick(d.ShortWeekdays, int(w))
}

// AmPmMarker returns the AM marker for hours 0-11 and the PM marker
// otherwise.
func (d Date) AmPmMarker(hour int) string {
	if hour < 12 {
		return pick(d.AmPm, 0)
	}
	return pick(d.AmPm, 1)
}

// Era returns the era name for a proleptic Gregorian year. Years <= 0 are
// before the common era.
func (d Date) Era(year int) string {
	if year <= 0 {
		return pick(d.Eras, 0)
	}
	return pick(d.Eras, 1)
}

func pick(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

// FormatInt renders v with the locale's digits, minus sign and, when
// grouping is set, grouping separator.
func (d Decimal) FormatInt(v int64, grouping bool) string {
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	return d.compose(strings.TrimPrefix(s, "-"), "", neg, d.DecimalSeparator, grouping)
}

// FormatFloat renders v rounded to fraction digits after the decimal
// separator. NaN and infinities use the locale's NaN and infinity strings.
func (d Decimal) FormatFloat(v float64, fraction int, grouping bool) string {
	return d.formatFloat(v, fraction, grouping, d.DecimalSeparator)
}

// FormatPercent renders v*100 followed by the percent sign. NaN renders
// as the NaN string alone.
func (d Decimal) FormatPercent(v float64, fraction int) string {
	if math.IsNaN(v) {
		return d.NaN
	}
	return d.FormatFloat(v*100, fraction, true) + d.Percent
}

// FormatPerMill renders v*1000 followed by the per-mille sign. NaN renders
// as the NaN string alone.
func (d Decimal) FormatPerMill(v float64, fraction int) string {
	if math.IsNaN(v) {
		return d.NaN
	}
	return d.FormatFloat(v*1000, fraction, true) + d.PerMill
}

// FormatCurrency renders v as a monetary amount prefixed by the currency
// symbol, using the monetary decimal separator when one is set.
func (d Decimal) FormatCurrency(v float64, fraction int) string {
	sep := d.MonetaryDecimalSeparator
	if sep == "" {
		sep = d.DecimalSeparator
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return d.formatFloat(v, fraction, true, sep)
	}
	s := d.formatFloat(math.Abs(v), fraction, true, sep)
	if v < 0 && s != d.formatFloat(0, fraction, true, sep) {
		return d.MinusSign + d.CurrencySymbol + s
	}
	return d.CurrencySymbol + s
}

// FormatScientific renders v in scientific notation with fraction digits
// in the mantissa, e.g. "1.23E4".
func (d Decimal) FormatScientific(v float64, fraction int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return d.FormatFloat(v, fraction, false)
	}
	s := strconv.FormatFloat(v, 'e', max(fraction, 0), 64)
	mantissa, exp, _ := strings.Cut(s, "e")

	m, err := strconv.ParseFloat(mantissa, 64)
	if err != nil {
		return s
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return d.FormatFloat(m, fraction, false) + d.ExponentSeparator + d.FormatInt(int64(e), false)
}

func (d Decimal) formatFloat(v float64, fraction int, grouping bool, sep string) string {
	switch {
	case math.IsNaN(v):
		return d.NaN
	case math.IsInf(v, 1):
		return d.Infinity
	case math.IsInf(v, -1):
		return d.MinusSign + d.Infinity
	}

	s := strconv.FormatFloat(math.Abs(v), 'f', max(fraction, 0), 64)
	integer, frac, _ := strings.Cut(s, ".")
	neg := v < 0 && strings.Trim(integer+frac, "0") != ""
	return d.compose(integer, frac, neg, sep, grouping)
}

// compose assembles ASCII integer and fraction digits into the localized
// form.
func (d Decimal) compose(integer, frac string, neg bool, sep string, grouping bool) string {
	var b strings.Builder
	if neg {
		b.WriteString(d.MinusSign)
	}
	for i := 0; i < len(integer); i++ {
		if grouping && i > 0 && (len(integer)-i)%groupSize == 0 {
			b.WriteString(d.GroupingSeparator)
		}
		b.WriteRune(d.digit(integer[i]))
	}
	if frac != "" {
		b.WriteString(sep)
		for i := 0; i < len(frac); i++ {
			b.WriteRune(d.digit(frac[i]))
		}
	}
	return b.String()
}

// digit maps an ASCII digit to the locale's digit run.
func (d Decimal) digit(c byte) rune {
	zero, _ := utf8.DecodeRuneInString(d.ZeroDigit)
	if zero == utf8.RuneError || zero == '0' {
		return rune(c)
	}
	return zero + rune(c-'0')
}
