package budget

import (
	"github.com/shopspring/decimal"
	"github.com/warp/time-budget/generic"
	"golang.org/x/sync/errgroup"
)

// National-average reference figures.
const (
	BaselineWorkHoursPerDay  = 8
	BaselineSleepHoursPerDay = 7
)

// BaselineWorkWeek is the canonical Monday-Friday week the baseline counts.
const BaselineWorkWeek = generic.StandardWorkWeek

// NationalBaseline returns the reference figures for a year. Work is the
// Monday-Friday count times eight hours, less eight hours per holiday or
// vacation day. Sleep is seven hours on every day of the year.
func NationalBaseline(year, holidays, vacationDays int) Baseline {
	period := generic.CalendarYear(year)
	workdays := period.CountWeekdays(BaselineWorkWeek)
	perDay := decimal.NewFromInt(BaselineWorkHoursPerDay)

	return Baseline{
		Workdays: workdays,
		WorkHours: perDay.Mul(decimal.NewFromInt(int64(workdays))).
			Sub(perDay.Mul(decimal.NewFromInt(int64(holidays + vacationDays)))),
		SleepHours: decimal.NewFromInt(int64(BaselineSleepHoursPerDay * period.Len())),
	}
}

// ComputeYearLedger expands the inputs over the year and aggregates them.
func ComputeYearLedger(in TimeInputs, year int) YearLedger {
	return AggregateYear(ExpandToYear(in, year), in)
}

// AggregateYear reduces a year of day records to yearly totals.
//
// Work hours lose (holidays + vacation) × WorkHoursPerDay when any workday is
// scheduled. WorkingDaysCount is the scheduled workdays less the days off and
// is zero when no work is scheduled at all; it may be negative. The target
// year is taken from the records.
func AggregateYear(days []DayRecord, in TimeInputs) YearLedger {
	if len(days) == 0 {
		return YearLedger{}
	}
	year := days[0].Date.Year()
	totals := sumConcurrently(partitionByMonth(days), in.Workdays)

	offHours := decimal.Zero
	if !in.Workdays.IsEmpty() {
		offHours = generic.Hours(in.WorkHoursPerDay).Mul(decimal.NewFromInt(int64(in.DaysOff())))
	}
	totalWork := totals.work.Sub(offHours)

	workingDays := 0
	if in.WorkHoursPerDay != 0 && !in.Workdays.IsEmpty() {
		workingDays = totals.scheduled - in.DaysOff()
	}

	dayCount := len(days)
	available := generic.HoursInt(dayCount * generic.HoursPerDay)
	free := available.Sub(totals.sleep).Sub(totalWork).Sub(totals.extra)

	baseline := NationalBaseline(year, in.HolidaysPerYear, in.VacationDaysPerYear)
	baseline.SleepHours = decimal.NewFromInt(int64(BaselineSleepHoursPerDay * dayCount))

	return YearLedger{
		Year:                year,
		Days:                days,
		TotalSleepHours:     totals.sleep,
		TotalWorkHours:      totalWork,
		TotalExtraHours:     totals.extra,
		TotalFreeHours:      free,
		WorkingDaysCount:    workingDays,
		FreeDaysCount:       dayCount - workingDays,
		FreeTimePercent:     free.Div(available).Mul(decimal.NewFromInt(100)).Round(1),
		SleepDeltaVsAverage: totals.sleep.Sub(baseline.SleepHours),
		WorkDeltaVsAverage:  totalWork.Sub(baseline.WorkHours),
		Baseline:            baseline,
	}
}

// =============================================================================
// REDUCTION
// =============================================================================

// dayTotals is a partial sum over some day records. merge is associative
// and commutative.
type dayTotals struct {
	sleep     decimal.Decimal
	work      decimal.Decimal
	extra     decimal.Decimal
	scheduled int
}

func (t dayTotals) merge(o dayTotals) dayTotals {
	return dayTotals{
		sleep:     t.sleep.Add(o.sleep),
		work:      t.work.Add(o.work),
		extra:     t.extra.Add(o.extra),
		scheduled: t.scheduled + o.scheduled,
	}
}

func sumDays(days []DayRecord, workdays generic.WeekdaySet) dayTotals {
	var t dayTotals
	for _, d := range days {
		t.sleep = t.sleep.Add(d.SleepHours)
		t.work = t.work.Add(d.WorkHours)
		t.extra = t.extra.Add(d.ExtraHours)
		if workdays.Contains(d.Weekday) {
			t.scheduled++
		}
	}
	return t
}

// partitionByMonth splits the records into runs of the same month.
func partitionByMonth(days []DayRecord) [][]DayRecord {
	var parts [][]DayRecord
	start := 0
	for i := 1; i <= len(days); i++ {
		if i == len(days) || days[i].Date.Month() != days[start].Date.Month() {
			parts = append(parts, days[start:i])
			start = i
		}
	}
	return parts
}

// sumConcurrently sums each partition in its own goroutine and merges the
// partial totals in partition order.
func sumConcurrently(parts [][]DayRecord, workdays generic.WeekdaySet) dayTotals {
	partials := make([]dayTotals, len(parts))

	var g errgroup.Group
	for i, part := range parts {
		i, part := i, part
		g.Go(func() error {
			partials[i] = sumDays(part, workdays)
			return nil
		})
	}
	// Workers never return an error.
	_ = g.Wait()

	var total dayTotals
	for _, p := range partials {
		total = total.merge(p)
	}
	return total
}
