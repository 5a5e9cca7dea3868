package symbols_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minios-linux/localeid/symbols"
)

var english = symbols.Bundle{
	Date: symbols.Date{
		Eras:          []string{"BC", "AD"},
		Months:        []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		ShortMonths:   []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Weekdays:      []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		ShortWeekdays: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		AmPm:          []string{"AM", "PM"},
	},
	Decimal: symbols.Decimal{
		DecimalSeparator:         ".",
		GroupingSeparator:        ",",
		Percent:                  "%",
		PerMill:                  "‰",
		Digit:                    "#",
		ZeroDigit:                "0",
		MinusSign:                "-",
		ExponentSeparator:        "E",
		PatternSeparator:         ";",
		NaN:                      "NaN",
		Infinity:                 "∞",
		CurrencySymbol:           "$",
		InternationalCurrency:    "USD",
		MonetaryDecimalSeparator: ".",
	},
}

type source struct{ b symbols.Bundle }

func (s source) Symbols() symbols.Bundle { return s.b }

func TestOf(t *testing.T) {
	got := symbols.Of(source{english})
	assert.Equal(t, english, got)
}

func TestClone(t *testing.T) {
	c := english.Clone()
	c.Date.Months[0] = "changed"
	assert.Equal(t, "January", english.Date.Months[0])
}

func TestDateNames(t *testing.T) {
	d := english.Date
	assert.Equal(t, "March", d.MonthName(time.March))
	assert.Equal(t, "Dec", d.ShortMonthName(time.December))
	assert.Equal(t, "Sunday", d.WeekdayName(time.Sunday))
	assert.Equal(t, "Sat", d.ShortWeekdayName(time.Saturday))
	assert.Equal(t, "AM", d.AmPmMarker(0))
	assert.Equal(t, "PM", d.AmPmMarker(13))
	assert.Equal(t, "BC", d.Era(-44))
	assert.Equal(t, "AD", d.Era(2024))
	assert.Empty(t, d.MonthName(time.Month(13)))
	assert.Empty(t, symbols.Date{}.WeekdayName(time.Monday))
}

func TestFormatInt(t *testing.T) {
	d := english.Decimal
	assert.Equal(t, "1,234,567", d.FormatInt(1234567, true))
	assert.Equal(t, "1234567", d.FormatInt(1234567, false))
	assert.Equal(t, "-123", d.FormatInt(-123, true))
	assert.Equal(t, "0", d.FormatInt(0, true))
	assert.Equal(t, "-9,223,372,036,854,775,808", d.FormatInt(math.MinInt64, true))
}

func TestFormatFloat(t *testing.T) {
	d := english.Decimal
	tests := []struct {
		name     string
		v        float64
		fraction int
		grouping bool
		want     string
	}{
		{name: "grouped", v: 1234.5, fraction: 2, grouping: true, want: "1,234.50"},
		{name: "negative fraction", v: -0.1, fraction: 1, want: "-0.1"},
		{name: "negative rounds to zero", v: -0.0001, fraction: 0, want: "0"},
		{name: "NaN", v: math.NaN(), fraction: 2, grouping: true, want: "NaN"},
		{name: "positive infinity", v: math.Inf(1), fraction: 2, grouping: true, want: "∞"},
		{name: "negative infinity", v: math.Inf(-1), fraction: 2, grouping: true, want: "-∞"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, d.FormatFloat(tc.v, tc.fraction, tc.grouping))
		})
	}
}

func TestFormatLocalized(t *testing.T) {
	d := english.Decimal
	d.DecimalSeparator = ","
	d.GroupingSeparator = "."
	d.MonetaryDecimalSeparator = ","
	d.CurrencySymbol = "€"
	assert.Equal(t, "1.234,50", d.FormatFloat(1234.5, 2, true))
	assert.Equal(t, "€1.234,50", d.FormatCurrency(1234.5, 2))
	assert.Equal(t, "-€2,00", d.FormatCurrency(-2, 2))

	arabic := english.Decimal
	arabic.ZeroDigit = "٠"
	assert.Equal(t, "١,٢٣٤", arabic.FormatInt(1234, true))
}

func TestFormatStyles(t *testing.T) {
	d := english.Decimal
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "percent", got: d.FormatPercent(0.125, 1), want: "12.5%"},
		{name: "percent NaN", got: d.FormatPercent(math.NaN(), 1), want: "NaN"},
		{name: "percent infinity", got: d.FormatPercent(math.Inf(1), 0), want: "∞%"},
		{name: "per mille", got: d.FormatPerMill(1.5, 0), want: "1,500‰"},
		{name: "per mille NaN", got: d.FormatPerMill(math.NaN(), 0), want: "NaN"},
		{name: "currency", got: d.FormatCurrency(1000, 2), want: "$1,000.00"},
		{name: "scientific", got: d.FormatScientific(12345, 2), want: "1.23E4"},
		{name: "scientific negative exponent", got: d.FormatScientific(0.0015, 1), want: "1.5E-3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, english.Validate())

	short := english.Clone()
	short.Date.Months = short.Date.Months[:11]
	err := short.Validate()
	require.ErrorIs(t, err, symbols.ErrLength)
	assert.Contains(t, err.Error(), "months")

	missing := english.Clone()
	missing.Decimal.NaN = ""
	require.ErrorIs(t, missing.Validate(), symbols.ErrMissing)

	noCurrency := english.Clone()
	noCurrency.Decimal.CurrencySymbol = ""
	require.NoError(t, noCurrency.Validate())
}
