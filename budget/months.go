package budget

// SummarizeMonths groups day records by month, in the order the months first
// appear. A full year of records yields twelve summaries.
func SummarizeMonths(days []DayRecord) []MonthSummary {
	var summaries []MonthSummary
	for _, part := range partitionByMonth(days) {
		s := MonthSummary{Month: part[0].Date.Month(), Days: len(part)}
		for _, d := range part {
			s.SleepHours = s.SleepHours.Add(d.SleepHours)
			s.WorkHours = s.WorkHours.Add(d.WorkHours)
			s.ExtraHours = s.ExtraHours.Add(d.ExtraHours)
			s.FreeHours = s.FreeHours.Add(d.FreeHours)
			if d.WorkHours.IsPositive() {
				s.WorkingDays++
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}
