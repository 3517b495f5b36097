package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestWeekly_Defaults(t *testing.T) {
	out, err := run(t, "weekly")
	require.NoError(t, err)

	assert.Contains(t, out, "Sleep:  56 hours\n")
	assert.Contains(t, out, "Work:   40 hours\n")
	assert.Contains(t, out, "Free:   72 hours\n")
	assert.Contains(t, out, "Busy:   57.1% of the week")
}

func TestWeekly_FlagsOverridePreset(t *testing.T) {
	// GIVEN: The retired preset (no workdays) with work days set explicitly
	out, err := run(t, "weekly", "--preset", "retired", "--workdays", "Mon,Tue", "--work", "7.5")

	// THEN: 2 x 7.5 hours of work
	require.NoError(t, err)
	assert.Contains(t, out, "Work:   15 hours\n")
}

func TestWeekly_OverCommitted(t *testing.T) {
	out, err := run(t, "weekly", "--preset", "over-committed")
	require.NoError(t, err)

	assert.Contains(t, out, "Free:   -26 hours\n")
	assert.Contains(t, out, "[error] Your weekly hour inputs are nonsensical.")
}

func TestYear_FromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: Me
sleep_hours_per_day: 8
work_hours_per_day: 8
workdays: [Mon, Tue, Wed, Thu, Fri]
holidays_per_year: 10
vacation_days_per_year: 14
`), 0o600))

	out, err := run(t, "year", "--config", path, "--year", "2023")
	require.NoError(t, err)

	assert.Contains(t, out, "2023 (365 days)")
	assert.Contains(t, out, "Sleep:        2920 hours")
	assert.Contains(t, out, "Free:         3952 hours (45.1%)")
	assert.Contains(t, out, "Working days: 236")
	assert.Contains(t, out, "Free days:    129")
}

func TestMonths_LeapYear(t *testing.T) {
	out, err := run(t, "months", "--year", "2024")
	require.NoError(t, err)

	assert.Contains(t, out, "February   29 days")
	assert.Contains(t, out, "December   31 days")
}

func TestRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown weekday", []string{"weekly", "--workdays", "Mon,Someday"}},
		{"negative sleep", []string{"weekly", "--sleep", "-1"}},
		{"unknown preset", []string{"weekly", "--preset", "astronaut"}},
		{"bad year", []string{"year", "--year", "0"}},
		{"missing config", []string{"weekly", "--config", "/nonexistent/profile.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
