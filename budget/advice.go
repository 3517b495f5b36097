package budget

import (
	"fmt"

	"github.com/warp/time-budget/generic"
)

// Severity ranks an advisory for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Advisory is a remark about the inputs or the resulting ledger.
type Advisory struct {
	Field    string
	Severity Severity
	Message  string
}

// SleepAdvice classifies daily sleep hours. It returns nil for the
// unremarkable band (more than 4 and less than 12 hours).
func SleepAdvice(hours float64) *Advisory {
	var sev Severity
	var msg string
	switch {
	case hours <= 0:
		sev, msg = SeverityInfo, "You're not a vampire. Let's be real here, yeah?"
	case hours <= 2:
		sev, msg = SeverityError, "Congrats. You're on your way to meet Jesus soon."
	case hours <= 4:
		sev, msg = SeverityWarning, "Seriously??? Get more sleep. Now!"
	case hours >= 16:
		sev, msg = SeverityInfo, "You took the tale of Rip Van Winkle way too literal."
	case hours >= 12:
		sev, msg = SeverityWarning, `"As a door turns back and forth on its hinges, so the lazy person turns over in bed" (Prov. 27:16).`
	default:
		return nil
	}
	return &Advisory{Field: "sleep_hours_per_day", Severity: sev, Message: msg}
}

// WorkAdvice classifies daily work hours. It returns nil for the
// unremarkable band (more than 2 and less than 12 hours).
func WorkAdvice(hours float64) *Advisory {
	var sev Severity
	var msg string
	switch {
	case hours <= 0:
		sev, msg = SeveritySuccess, "Oh, so you're retired. Good for you."
	case hours <= 2:
		sev, msg = SeverityError, "If anyone isn't willing to work, he should not eat (1 Thess. 3:10)."
	case hours >= 18:
		sev, msg = SeverityInfo, "You're an ice-road trucker, aren't you?"
	case hours >= 12:
		sev, msg = SeverityWarning, "You might be working too much..."
	default:
		return nil
	}
	return &Advisory{Field: "work_hours_per_day", Severity: sev, Message: msg}
}

// Advise collects the input advisories and the over-committed week warning.
func Advise(in TimeInputs, week WeeklyLedger) []Advisory {
	var out []Advisory
	if a := SleepAdvice(in.SleepHoursPerDay); a != nil {
		out = append(out, *a)
	}
	if a := WorkAdvice(in.WorkHoursPerDay); a != nil {
		out = append(out, *a)
	}
	if week.OverCommitted() {
		out = append(out, Advisory{
			Field:    "week",
			Severity: SeverityError,
			Message: fmt.Sprintf("Your weekly hour inputs are nonsensical. There's only %d hours in a week.",
				generic.HoursPerWeek),
		})
	}
	return out
}

// AdviseYear flags a year ledger whose numbers cannot all be true.
func AdviseYear(y YearLedger) []Advisory {
	var out []Advisory
	if y.OverCommitted() {
		out = append(out, Advisory{
			Field:    "year",
			Severity: SeverityError,
			Message:  fmt.Sprintf("Allocated hours exceed the %d hours in %d.", y.DayCount()*generic.HoursPerDay, y.Year),
		})
	}
	if y.TimeOffExceedsWorkdays() {
		out = append(out, Advisory{
			Field:    "days_off",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("Holidays and vacation exceed your scheduled workdays by %d.", -y.WorkingDaysCount),
		})
	}
	return out
}
