package budget

import (
	"github.com/warp/time-budget/generic"
)

// HolidaysOnWorkdays counts the distinct holiday dates of the year that fall
// on one of the given workdays. A holiday on a day off costs no work hours,
// so this is the figure to feed into HolidaysPerYear.
func HolidaysOnWorkdays(calendar generic.HolidayCalendar, year int, workdays generic.WeekdaySet) int {
	if calendar == nil {
		return 0
	}
	seen := make(map[string]bool)
	for _, h := range calendar.GetHolidays(year) {
		date, ok := h.OccursIn(year)
		if !ok || !date.IsWorkday(workdays) {
			continue
		}
		seen[date.String()] = true
	}
	return len(seen)
}
