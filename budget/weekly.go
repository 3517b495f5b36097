package budget

import (
	"github.com/shopspring/decimal"
	"github.com/warp/time-budget/generic"
)

// ComputeWeeklyLedger totals one week of the given inputs.
//
// Work hours are the daily figure times the number of workdays, so an empty
// workday set yields zero work regardless of WorkHoursPerDay. The ledger is
// reported even when the week is over-committed.
func ComputeWeeklyLedger(in TimeInputs) WeeklyLedger {
	sleep := generic.Hours(in.SleepHoursPerDay).Mul(decimal.NewFromInt(generic.DaysPerWeek))
	work := generic.Hours(in.WorkHoursPerDay).Mul(decimal.NewFromInt(int64(in.Workdays.Len())))
	extra := generic.Hours(in.ExtraHoursPerWeek)

	total := generic.SumHours(sleep, work, extra)
	week := generic.HoursInt(generic.HoursPerWeek)

	return WeeklyLedger{
		SleepHours:  sleep,
		WorkHours:   work,
		ExtraHours:  extra,
		TotalHours:  total,
		FreeHours:   week.Sub(total),
		PercentBusy: total.Div(week),
	}
}
