package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/ganttcal/pkg/calendar"
	"github.com/matzehuels/ganttcal/pkg/observability"
)

// GenerateLayout computes the header plan for ticks without caching.
func GenerateLayout(ctx context.Context, ticks []time.Time, opts Options) (calendar.Plan, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return calendar.Plan{}, err
	}
	mode := opts.ViewMode()
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, string(mode), len(ticks))
	start := time.Now()

	engine, err := opts.Engine()
	if err != nil {
		hooks.OnLayoutComplete(ctx, string(mode), 0, 0, time.Since(start), err)
		return calendar.Plan{}, err
	}
	plan, err := engine.Compute(ticks, mode, opts.Config())
	hooks.OnLayoutComplete(ctx, string(mode), len(plan.Groups), len(plan.Units), time.Since(start), err)
	if err != nil {
		return calendar.Plan{}, err
	}

	opts.Logger.Debug("computed header plan",
		"mode", mode,
		"ticks", len(ticks),
		"groups", len(plan.Groups),
		"units", len(plan.Units))
	return plan, nil
}
