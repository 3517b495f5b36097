package budget

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/time-budget/generic"
)

var (
	one           = decimal.NewFromInt(1)
	minutesInHour = decimal.NewFromInt(generic.MinutesPerHour)
)

// FormatDuration renders hours as "8 hours and 15 minutes".
//
// The hour part is floored, the remainder is rounded to the nearest minute
// (60 carries into the hours) and the minutes clause is dropped when it
// rounds to zero. "hour" is singular only for exactly one whole hour.
// Negative durations floor toward minus infinity: -2.5 is "-3 hours and 30 minutes".
func FormatDuration(hours decimal.Decimal) string {
	whole := hours.Floor()
	minutes := hours.Sub(whole).Mul(minutesInHour).Round(0)
	if minutes.Equal(minutesInHour) {
		whole = whole.Add(one)
		minutes = decimal.Zero
	}

	unit := "hours"
	if whole.Equal(one) {
		unit = "hour"
	}

	s := fmt.Sprintf("%s %s", whole.StringFixed(0), unit)
	if !minutes.IsZero() {
		s += fmt.Sprintf(" and %s minutes", minutes.StringFixed(0))
	}
	return s
}

// FormatPercent renders a 0-100 percentage with one decimal, dropping the
// decimal when it is zero: 57.14 is "57.1%", 50 is "50%".
func FormatPercent(percent decimal.Decimal) string {
	rounded := percent.Round(1)
	if rounded.Equal(rounded.Truncate(0)) {
		return rounded.StringFixed(0) + "%"
	}
	return rounded.StringFixed(1) + "%"
}
