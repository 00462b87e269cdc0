package calendar_test

import (
	"fmt"
	"time"

	"github.com/matzehuels/ganttcal/pkg/calendar"
)

func ExampleCompute() {
	var ticks []time.Time
	for d := 29; d <= 35; d++ {
		ticks = append(ticks, time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC))
	}

	plan, err := calendar.Compute(ticks, calendar.ModeDay, calendar.Config{ColumnWidth: 60, HeaderHeight: 50})
	if err != nil {
		panic(err)
	}
	for _, g := range plan.Groups {
		fmt.Println(g.Text, g.LineStart, g.Anchor)
	}
	fmt.Println(plan.Units[0].Text, plan.Units[3].Text)
	// Output:
	// Jan, 2024 (180,0) (-750,22.5)
	// Mon, 29 Thu, 1
}

func ExampleNew() {
	e := calendar.New(calendar.WithMonthVariant(calendar.MonthDualRow))
	ticks := []time.Time{
		time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	plan, _ := e.Compute(ticks, calendar.ModeMonth, calendar.Config{ColumnWidth: 80, HeaderHeight: 40})
	for _, g := range plan.Groups {
		fmt.Println(g.Text, g.LineStart.X)
	}
	// Output:
	// 2023 0
	// 2024 80
}
