package generic

import (
	"encoding/json"
	"fmt"
	"math/bits"
	"strings"
	"time"
)

// =============================================================================
// WEEKDAY SET - Which days of the week someone works
// =============================================================================

// WeekdaySet is a set of weekdays stored as a bitmask (bit n = time.Weekday(n)).
// The zero value is the empty set, which is a valid "no workdays" selection.
type WeekdaySet uint8

const (
	// StandardWorkWeek is Monday through Friday.
	StandardWorkWeek WeekdaySet = 1<<time.Monday | 1<<time.Tuesday | 1<<time.Wednesday | 1<<time.Thursday | 1<<time.Friday

	// EveryDay contains all seven weekdays.
	EveryDay WeekdaySet = 1<<7 - 1
)

// weekdayTokens are the short names used on the wire, indexed by time.Weekday.
var weekdayTokens = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// NewWeekdaySet builds a set from the given days. Duplicates are ignored.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

func (s WeekdaySet) With(d time.Weekday) WeekdaySet { return s | 1<<uint(d) }
func (s WeekdaySet) Contains(d time.Weekday) bool {
	return d >= time.Sunday && d <= time.Saturday && s&(1<<uint(d)) != 0
}
func (s WeekdaySet) Len() int      { return bits.OnesCount8(uint8(s & EveryDay)) }
func (s WeekdaySet) IsEmpty() bool { return s.Len() == 0 }

// Days returns the members in week order, Sunday first.
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, s.Len())
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// Tokens returns the short weekday names of the members, Sunday first.
func (s WeekdaySet) Tokens() []string {
	tokens := make([]string, 0, s.Len())
	for _, d := range s.Days() {
		tokens = append(tokens, weekdayTokens[d])
	}
	return tokens
}

func (s WeekdaySet) String() string { return strings.Join(s.Tokens(), ",") }

// WeekdayToken returns the short name of a weekday ("Mon").
func WeekdayToken(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return d.String()
	}
	return weekdayTokens[d]
}

// ParseWeekday accepts a short ("Mon") or full ("Monday") weekday name,
// case-insensitively.
func ParseWeekday(token string) (time.Weekday, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if t == strings.ToLower(weekdayTokens[d]) || t == strings.ToLower(d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, token)
}

// ParseWeekdaySet parses a list of weekday tokens.
func ParseWeekdaySet(tokens []string) (WeekdaySet, error) {
	var s WeekdaySet
	for _, token := range tokens {
		d, err := ParseWeekday(token)
		if err != nil {
			return 0, err
		}
		s = s.With(d)
	}
	return s, nil
}

// ParseWeekdayList parses a comma separated list such as "Mon,Tue,Fri".
// An empty string is the empty set.
func ParseWeekdayList(list string) (WeekdaySet, error) {
	if strings.TrimSpace(list) == "" {
		return 0, nil
	}
	return ParseWeekdaySet(strings.Split(list, ","))
}

// MarshalJSON encodes the set as a list of short weekday names.
func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Tokens())
}

// UnmarshalJSON decodes a list of weekday names.
func (s *WeekdaySet) UnmarshalJSON(data []byte) error {
	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return err
	}
	parsed, err := ParseWeekdaySet(tokens)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
