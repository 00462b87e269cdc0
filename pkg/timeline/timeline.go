package timeline

import (
	"time"

	"github.com/matzehuels/ganttcal/pkg/calendar"
	"github.com/matzehuels/ganttcal/pkg/dates"
	"github.com/matzehuels/ganttcal/pkg/errors"
)

// MaxTicks bounds the number of columns a single range may produce.
const MaxTicks = 5000

// Align returns the start of the period containing t.
func Align(t time.Time, mode calendar.ViewMode) time.Time {
	t = dates.StartOfDay(t)
	switch mode {
	case calendar.ModeYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	case calendar.ModeMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case calendar.ModeWeek:
		return dates.WeekStart(t)
	}
	return t
}

// Step advances t by n periods. Negative n steps backwards.
func Step(t time.Time, mode calendar.ViewMode, n int) time.Time {
	switch mode {
	case calendar.ModeYear:
		return t.AddDate(n, 0, 0)
	case calendar.ModeMonth:
		return t.AddDate(0, n, 0)
	case calendar.ModeWeek:
		return t.AddDate(0, 0, 7*n)
	}
	return t.AddDate(0, 0, n)
}

// Range returns the padded, aligned bounds of [start, end]: one period
// before the aligned start and one period after the aligned end.
func Range(start, end time.Time, mode calendar.ViewMode) (time.Time, time.Time) {
	from := Step(Align(start, mode), mode, -1)
	to := Step(Align(end, mode), mode, 1)
	return from, to
}

// Seed returns the ticks covering [start, end] at the granularity of mode,
// including the padding of [Range].
func Seed(start, end time.Time, mode calendar.ViewMode) ([]time.Time, error) {
	if !mode.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidViewMode, "invalid view mode: %q", mode)
	}
	if end.Before(start) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "end date %s is before start date %s",
			end.Format(errors.DateLayout), start.Format(errors.DateLayout))
	}
	from, to := Range(start, end, mode)
	return Between(from, to, mode)
}

// Between returns aligned ticks from from to to inclusive, without padding.
func Between(from, to time.Time, mode calendar.ViewMode) ([]time.Time, error) {
	from = Align(from, mode)
	var ticks []time.Time
	for i := 0; ; i++ {
		t := Step(from, mode, i)
		if t.After(to) {
			break
		}
		if len(ticks) == MaxTicks {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"range produces more than %d %s columns", MaxTicks, mode)
		}
		ticks = append(ticks, t)
	}
	return ticks, nil
}

// Parse converts date strings (YYYY-MM-DD) into ticks.
func Parse(values []string) ([]time.Time, error) {
	ticks := make([]time.Time, 0, len(values))
	for _, v := range values {
		t, err := errors.ParseDate(v)
		if err != nil {
			return nil, err
		}
		ticks = append(ticks, t)
	}
	return ticks, nil
}

// Validate checks that ticks are strictly increasing.
func Validate(ticks []time.Time) error {
	for i := 1; i < len(ticks); i++ {
		if !ticks[i].After(ticks[i-1]) {
			return errors.New(errors.ErrCodeInvalidTicks,
				"tick %d (%s) does not follow tick %d (%s)",
				i, ticks[i].Format(errors.DateLayout), i-1, ticks[i-1].Format(errors.DateLayout))
		}
	}
	return nil
}
