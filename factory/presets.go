package factory

// =============================================================================
// PRESETS - Ready-made input profiles
// =============================================================================

// Preset is a named example profile with a short explanation.
type Preset struct {
	ID          string
	Description string
	Profile     ProfileJSON
}

var standardWeek = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
var everyDay = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Presets returns the built-in example profiles. Each call returns fresh
// values, so callers may modify them.
func Presets() []Preset {
	return []Preset{
		{
			ID:          "standard",
			Description: "8h sleep, 8h work Monday-Friday: 96 busy hours, 72 free",
			Profile: ProfileJSON{ID: "standard", Name: "Standard office job", InputsJSON: InputsJSON{
				SleepHoursPerDay: 8, WorkHoursPerDay: 8, Workdays: append([]string(nil), standardWeek...),
				HolidaysPerYear: 10, VacationDaysPerYear: 14,
			}},
		},
		{
			ID:          "retired",
			Description: "No workdays selected: work hours are zero whatever the daily figure",
			Profile: ProfileJSON{ID: "retired", Name: "Retired", InputsJSON: InputsJSON{
				SleepHoursPerDay: 8, WorkHoursPerDay: 8, Workdays: []string{},
			}},
		},
		{
			ID:          "busy",
			Description: "10h sleep, 9h work every day, 20 extra hours: 153 hours, still fits",
			Profile: ProfileJSON{ID: "busy", Name: "Busy but feasible", InputsJSON: InputsJSON{
				SleepHoursPerDay: 10, WorkHoursPerDay: 9, Workdays: append([]string(nil), everyDay...),
				ExtraHoursPerWeek: 20,
			}},
		},
		{
			ID:          "over-committed",
			Description: "12h sleep, 10h work every day, 40 extra hours: 194 hours, 26 more than a week has",
			Profile: ProfileJSON{ID: "over-committed", Name: "Over-committed", InputsJSON: InputsJSON{
				SleepHoursPerDay: 12, WorkHoursPerDay: 10, Workdays: append([]string(nil), everyDay...),
				ExtraHoursPerWeek: 40,
			}},
		},
	}
}

// FindPreset returns the preset with the given ID.
func FindPreset(id string) (Preset, bool) {
	for _, p := range Presets() {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
