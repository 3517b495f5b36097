package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/warp/time-budget/budget"
	"github.com/warp/time-budget/factory"
	"gopkg.in/yaml.v3"
)

// inputFlags are the flags shared by every subcommand.
type inputFlags struct {
	config   string
	preset   string
	sleep    float64
	work     float64
	workdays string
	holidays int
	vacation int
	extra    float64
	year     int
}

func newRootCmd() *cobra.Command {
	var flags inputFlags

	root := &cobra.Command{
		Use:           "budget",
		Short:         "See where the hours of your week and year go",
		Long:          `budget splits a week and a calendar year into sleep, work, extracurricular and free time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "YAML profile to read inputs from")
	pf.StringVar(&flags.preset, "preset", "", "start from a built-in profile (standard, retired, busy, over-committed)")
	pf.Float64Var(&flags.sleep, "sleep", 8, "sleep hours per day")
	pf.Float64Var(&flags.work, "work", 8, "work hours per workday")
	pf.StringVar(&flags.workdays, "workdays", "Mon,Tue,Wed,Thu,Fri", "comma-separated workdays")
	pf.IntVar(&flags.holidays, "holidays", 10, "holidays per year")
	pf.IntVar(&flags.vacation, "vacation", 14, "vacation days per year")
	pf.Float64Var(&flags.extra, "extra", 0, "extracurricular hours per week")
	pf.IntVar(&flags.year, "year", time.Now().Year(), "calendar year")

	root.AddCommand(
		&cobra.Command{
			Use:     "weekly",
			Aliases: []string{"week", "w"},
			Short:   "Show the weekly breakdown",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				in, err := flags.resolve(cmd)
				if err != nil {
					return err
				}
				printWeekly(cmd.OutOrStdout(), in, budget.ComputeWeeklyLedger(in))
				return nil
			},
		},
		&cobra.Command{
			Use:     "year",
			Aliases: []string{"yearly", "y"},
			Short:   "Show the yearly totals",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				in, err := flags.resolve(cmd)
				if err != nil {
					return err
				}
				printYear(cmd.OutOrStdout(), budget.ComputeYearLedger(in, flags.year))
				return nil
			},
		},
		&cobra.Command{
			Use:     "months",
			Aliases: []string{"m"},
			Short:   "Show the year month by month",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				in, err := flags.resolve(cmd)
				if err != nil {
					return err
				}
				printMonths(cmd.OutOrStdout(), budget.SummarizeMonths(budget.ExpandToYear(in, flags.year)))
				return nil
			},
		},
	)

	return root
}

// resolve layers preset, config file and explicitly set flags.
func (f *inputFlags) resolve(cmd *cobra.Command) (budget.TimeInputs, error) {
	if f.year < 1 || f.year > 9999 {
		return budget.TimeInputs{}, fmt.Errorf("invalid year %d (use 1-9999)", f.year)
	}

	j := factory.InputsJSON{
		SleepHoursPerDay:    f.sleep,
		WorkHoursPerDay:     f.work,
		Workdays:            splitList(f.workdays),
		HolidaysPerYear:     f.holidays,
		VacationDaysPerYear: f.vacation,
		ExtraHoursPerWeek:   f.extra,
	}

	if f.preset != "" {
		preset, ok := factory.FindPreset(f.preset)
		if !ok {
			return budget.TimeInputs{}, fmt.Errorf("unknown preset %q", f.preset)
		}
		j = preset.Profile.InputsJSON
	}

	if f.config != "" {
		data, err := os.ReadFile(f.config)
		if err != nil {
			return budget.TimeInputs{}, fmt.Errorf("read config: %w", err)
		}
		var p factory.ProfileJSON
		p.InputsJSON = j
		if err := yaml.Unmarshal(data, &p); err != nil {
			return budget.TimeInputs{}, fmt.Errorf("parse config %s: %w", f.config, err)
		}
		j = p.InputsJSON
	}

	flags := cmd.Flags()
	if flags.Changed("sleep") {
		j.SleepHoursPerDay = f.sleep
	}
	if flags.Changed("work") {
		j.WorkHoursPerDay = f.work
	}
	if flags.Changed("workdays") {
		j.Workdays = splitList(f.workdays)
	}
	if flags.Changed("holidays") {
		j.HolidaysPerYear = f.holidays
	}
	if flags.Changed("vacation") {
		j.VacationDaysPerYear = f.vacation
	}
	if flags.Changed("extra") {
		j.ExtraHoursPerWeek = f.extra
	}

	return factory.NewProfileFactory().BuildInputs(j)
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// =============================================================================
// OUTPUT
// =============================================================================

func printWeekly(w io.Writer, in budget.TimeInputs, week budget.WeeklyLedger) {
	fmt.Fprintf(w, "Sleep:  %s\n", budget.FormatDuration(week.SleepHours))
	fmt.Fprintf(w, "Work:   %s\n", budget.FormatDuration(week.WorkHours))
	fmt.Fprintf(w, "Extra:  %s\n", budget.FormatDuration(week.ExtraHours))
	fmt.Fprintf(w, "Free:   %s\n", budget.FormatDuration(week.FreeHours))
	fmt.Fprintf(w, "Busy:   %s of the week\n", budget.FormatPercent(week.BusyPercent()))
	printAdvice(w, budget.Advise(in, week))
}

func printYear(w io.Writer, y budget.YearLedger) {
	fmt.Fprintf(w, "%d (%d days)\n", y.Year, y.DayCount())
	fmt.Fprintf(w, "Sleep:        %s (%s vs. average)\n",
		budget.FormatDuration(y.TotalSleepHours), budget.FormatDuration(y.SleepDeltaVsAverage))
	fmt.Fprintf(w, "Work:         %s (%s vs. average)\n",
		budget.FormatDuration(y.TotalWorkHours), budget.FormatDuration(y.WorkDeltaVsAverage))
	fmt.Fprintf(w, "Extra:        %s\n", budget.FormatDuration(y.TotalExtraHours))
	fmt.Fprintf(w, "Free:         %s (%s)\n", budget.FormatDuration(y.TotalFreeHours), budget.FormatPercent(y.FreeTimePercent))
	fmt.Fprintf(w, "Working days: %d\n", y.WorkingDaysCount)
	fmt.Fprintf(w, "Free days:    %d\n", y.FreeDaysCount)
	printAdvice(w, budget.AdviseYear(y))
}

func printMonths(w io.Writer, months []budget.MonthSummary) {
	for _, m := range months {
		fmt.Fprintf(w, "%-10s %2d days  work %-26s free %s\n",
			m.Month, m.Days, budget.FormatDuration(m.WorkHours), budget.FormatDuration(m.FreeHours))
	}
}

func printAdvice(w io.Writer, advice []budget.Advisory) {
	for _, a := range advice {
		fmt.Fprintf(w, "[%s] %s\n", a.Severity, a.Message)
	}
}
