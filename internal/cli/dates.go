package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttcal/pkg/dates"
	"github.com/matzehuels/ganttcal/pkg/errors"
)

// datesCommand groups the date utility lookups.
func (c *CLI) datesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dates",
		Short: "Look up ISO weeks, month lengths and localized names",
	}

	cmd.AddCommand(c.datesWeekCommand())
	cmd.AddCommand(c.datesDaysCommand())
	cmd.AddCommand(c.datesNamesCommand())

	return cmd
}

// datesWeekCommand creates the "dates week" subcommand.
func (c *CLI) datesWeekCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "week <date>",
		Short:   "Print the ISO-8601 week of a date",
		Example: "  ganttcal dates week 2021-01-01",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := errors.ParseDate(args[0])
			if err != nil {
				return err
			}
			writeWeek(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func writeWeek(w io.Writer, t time.Time) {
	year, _ := t.ISOWeek()
	printKeyValue(w, "date", t.Format(errors.DateLayout))
	printKeyValue(w, "iso week", strconv.Itoa(dates.ISOWeekNumber(t)))
	printKeyValue(w, "week year", strconv.Itoa(year))
	printKeyValue(w, "monday", dates.WeekStart(t).Format(errors.DateLayout))
}

// datesDaysCommand creates the "dates days" subcommand.
func (c *CLI) datesDaysCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "days <YYYY-MM>",
		Short:   "Print the number of days in a month",
		Example: "  ganttcal dates days 2024-02",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseYearMonth(args[0])
			if err != nil {
				return err
			}
			printKeyValue(cmd.OutOrStdout(), "month", fmt.Sprintf("%04d-%02d", year, int(month)))
			printKeyValue(cmd.OutOrStdout(), "days", strconv.Itoa(dates.DaysInMonth(month, year)))
			printKeyValue(cmd.OutOrStdout(), "leap year", strconv.FormatBool(dates.IsLeapYear(year)))
			return nil
		},
	}
}

// parseYearMonth accepts "YYYY-MM" or a full "YYYY-MM-DD" date.
func parseYearMonth(s string) (int, time.Month, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01", s); err == nil {
		return t.Year(), t.Month(), nil
	}
	t, err := errors.ParseDate(s)
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidDate, "invalid month %q (want YYYY-MM)", s)
	}
	return t.Year(), t.Month(), nil
}

// datesNamesCommand creates the "dates names" subcommand.
func (c *CLI) datesNamesCommand() *cobra.Command {
	var locale, formatter, style string

	cmd := &cobra.Command{
		Use:     "names",
		Short:   "Print localized month and weekday names",
		Example: "  ganttcal dates names --locale fr --formatter monday --style long",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := parseWeekdayStyle(style)
			if err != nil {
				return err
			}
			if !dates.ValidFormatters[strings.ToLower(formatter)] {
				return errors.New(errors.ErrCodeInvalidConfig, "invalid formatter: %q (must be native or monday)", formatter)
			}
			writeNames(cmd.OutOrStdout(), dates.NewFormatter(formatter), locale, ws)
			return nil
		},
	}

	cmd.Flags().StringVar(&locale, "locale", dates.DefaultLocale, "locale tag")
	cmd.Flags().StringVar(&formatter, "formatter", dates.FormatterNative, "date name formatter: native, monday")
	cmd.Flags().StringVar(&style, "style", "short", "weekday style: short, long, narrow")

	return cmd
}

func parseWeekdayStyle(s string) (dates.WeekdayStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "short":
		return dates.WeekdayShort, nil
	case "long":
		return dates.WeekdayLong, nil
	case "narrow":
		return dates.WeekdayNarrow, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "invalid weekday style: %q (must be short, long or narrow)", s)
}

// writeNames prints the twelve month names and the weekdays Monday
// through Sunday of a reference year.
func writeNames(w io.Writer, f dates.Formatter, locale string, style dates.WeekdayStyle) {
	months := make([]string, 12)
	for i := range months {
		months[i] = f.MonthName(time.Date(2024, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC), locale)
	}
	days := make([]string, 7)
	for i := range days {
		// 2024-01-01 is a Monday.
		days[i] = f.WeekdayName(time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC), locale, style)
	}
	printKeyValue(w, "locale", dates.EffectiveLocale(f, locale))
	printKeyValue(w, "months", strings.Join(months, " "))
	printKeyValue(w, "weekdays", strings.Join(days, " "))
}
