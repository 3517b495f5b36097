package budget

import (
	"github.com/shopspring/decimal"
	"github.com/warp/time-budget/generic"
)

// extraPrecision is the number of decimals kept for the daily share of the
// weekly extra hours.
const extraPrecision = 2

// ExpandToYear assigns sleep, work and extra hours to every date of the year,
// Jan 1 through Dec 31, in date order.
//
// Sleep is the daily figure on every day. The weekly work total is spread
// evenly over the chosen workdays, so weekly and yearly totals agree. Extra
// hours are the weekly figure divided by seven, rounded to two decimals.
func ExpandToYear(in TimeInputs, year int) []DayRecord {
	weekly := ComputeWeeklyLedger(in)

	sleep := generic.Hours(in.SleepHoursPerDay)
	extra := weekly.ExtraHours.Div(decimal.NewFromInt(generic.DaysPerWeek)).Round(extraPrecision)
	workPerWorkday := decimal.Zero
	if n := in.Workdays.Len(); n > 0 {
		workPerWorkday = weekly.WorkHours.Div(decimal.NewFromInt(int64(n)))
	}
	day := generic.HoursInt(generic.HoursPerDay)

	dates := generic.CalendarYear(year).Days()
	records := make([]DayRecord, 0, len(dates))
	for _, date := range dates {
		work := decimal.Zero
		if date.IsWorkday(in.Workdays) {
			work = workPerWorkday
		}
		occupied := generic.SumHours(sleep, work, extra)
		records = append(records, DayRecord{
			Date:          date,
			Weekday:       date.Weekday(),
			SleepHours:    sleep,
			WorkHours:     work,
			ExtraHours:    extra,
			OccupiedHours: occupied,
			FreeHours:     day.Sub(occupied),
		})
	}
	return records
}
