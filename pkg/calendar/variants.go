package calendar

import (
	"strings"

	"github.com/matzehuels/ganttcal/pkg/errors"
)

var (
	monthVariantNames = []string{MonthSingleRow: "single", MonthDualRow: "dual"}
	weekVariantNames  = []string{WeekNumbers: "numbers", WeekDays: "days"}
	weekBoundaryNames = []string{BoundaryDayWrap: "daywrap", BoundaryMonthChange: "month"}
)

func (v MonthVariant) String() string { return nameOf(monthVariantNames, int(v)) }
func (v WeekVariant) String() string  { return nameOf(weekVariantNames, int(v)) }
func (b WeekBoundary) String() string { return nameOf(weekBoundaryNames, int(b)) }

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

func indexOf(names []string, s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i
		}
	}
	return -1
}

// ParseMonthVariant parses "single" or "dual". Empty selects the default.
func ParseMonthVariant(s string) (MonthVariant, error) {
	if s == "" {
		return MonthSingleRow, nil
	}
	if i := indexOf(monthVariantNames, s); i >= 0 {
		return MonthVariant(i), nil
	}
	return 0, errors.New(errors.ErrCodeInvalidConfig, "invalid month variant: %q (must be single or dual)", s)
}

// ParseWeekVariant parses "numbers" or "days". Empty selects the default.
func ParseWeekVariant(s string) (WeekVariant, error) {
	if s == "" {
		return WeekNumbers, nil
	}
	if i := indexOf(weekVariantNames, s); i >= 0 {
		return WeekVariant(i), nil
	}
	return 0, errors.New(errors.ErrCodeInvalidConfig, "invalid week variant: %q (must be numbers or days)", s)
}

// ParseWeekBoundary parses "daywrap" or "month". Empty selects the default.
func ParseWeekBoundary(s string) (WeekBoundary, error) {
	if s == "" {
		return BoundaryDayWrap, nil
	}
	if i := indexOf(weekBoundaryNames, s); i >= 0 {
		return WeekBoundary(i), nil
	}
	return 0, errors.New(errors.ErrCodeInvalidConfig, "invalid week boundary: %q (must be daywrap or month)", s)
}
