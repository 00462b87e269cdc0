package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ganttcal/pkg/cache"
	"github.com/matzehuels/ganttcal/pkg/observability"
	"github.com/matzehuels/ganttcal/pkg/render"
	"github.com/matzehuels/ganttcal/pkg/render/sink"
)

func testRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var logs strings.Builder
	return NewRunner(c, nil, log.New(&logs))
}

func TestRunnerExecute(t *testing.T) {
	ctx := context.Background()
	r := testRunner(t)
	defer r.Close()

	opts := Options{
		Start:   "2024-01-29",
		End:     "2024-02-04",
		Mode:    "day",
		Formats: []string{FormatSVG, FormatJSON},
	}
	res, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if res.Stats.TickCount != 9 || res.Plan.TickCount != 9 {
		t.Errorf("tick count = %d", res.Stats.TickCount)
	}
	if res.Stats.GroupCount != 1 || res.Plan.Groups[0].Text != "Jan, 2024" {
		t.Errorf("groups = %+v", res.Plan.Groups)
	}
	if !strings.HasPrefix(string(res.Artifacts[FormatSVG]), "<svg") {
		t.Error("SVG artifact missing")
	}
	plan, err := sink.ReadJSON(res.Artifacts[FormatJSON])
	if err != nil || plan.TickCount != 9 {
		t.Errorf("JSON artifact: %v, %+v", err, plan)
	}
	if res.CacheInfo.LayoutHit || res.CacheInfo.RenderHit {
		t.Error("first run reported cache hits")
	}
	if res.PlanHash == "" {
		t.Error("PlanHash empty")
	}

	again, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !again.CacheInfo.LayoutHit || !again.CacheInfo.RenderHit {
		t.Errorf("second run cache info = %+v", again.CacheInfo)
	}
	if again.PlanHash != res.PlanHash {
		t.Error("cached plan differs from computed plan")
	}

	opts.Refresh = true
	fresh, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.CacheInfo.LayoutHit || fresh.CacheInfo.RenderHit {
		t.Error("Refresh still read the cache")
	}
}

func TestRunnerCacheKeyIncludesDirection(t *testing.T) {
	ctx := context.Background()
	r := testRunner(t)
	ticks, _ := (&Options{Ticks: []string{"2024-01-30", "2024-01-31", "2024-02-01"}}).ResolveTicks()

	ltr, hit, err := r.ComputeLayoutWithCacheInfo(ctx, ticks, Options{Mode: "day"})
	if err != nil || hit {
		t.Fatalf("ltr: hit=%v err=%v", hit, err)
	}
	rtl, hit, err := r.ComputeLayoutWithCacheInfo(ctx, ticks, Options{Mode: "day", Direction: "rtl"})
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("RTL layout served from the LTR cache entry")
	}
	if ltr.Groups[0].LineStart.X == rtl.Groups[0].LineStart.X {
		t.Error("RTL separator not mirrored")
	}
}

func TestRunnerInvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if _, err := r.Execute(context.Background(), Options{}); err == nil {
		t.Error("expected error for empty options")
	}
}

func TestRenderUnsupportedWithoutRsvg(t *testing.T) {
	if render.Available() {
		t.Skip("rsvg-convert installed")
	}
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), Options{Start: "2024-01-01", End: "2024-01-02", Formats: []string{FormatPDF}})
	if err == nil {
		t.Error("expected PDF export to fail without rsvg-convert")
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks

	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) record(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnSeed(context.Context, string, int)        { h.record("seed") }
func (h *recordingHooks) OnLayoutStart(context.Context, string, int) { h.record("layout") }
func (h *recordingHooks) OnRenderStart(context.Context, []string)    { h.record("render") }
func (h *recordingHooks) OnCacheHit(context.Context, string)         { h.record("hit") }
func (h *recordingHooks) OnCacheMiss(context.Context, string)        { h.record("miss") }
func (h *recordingHooks) OnCacheSet(context.Context, string, int)    { h.record("set") }
func (h *recordingHooks) OnLayoutComplete(context.Context, string, int, int, time.Duration, error) {
}

func TestRunnerHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	r := testRunner(t)
	opts := Options{Start: "2024-01-01", End: "2024-01-03"}
	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatal(err)
	}
	got := strings.Join(hooks.events, ",")
	want := "seed,miss,layout,set,miss,render,set"
	if got != want {
		t.Errorf("events = %s, want %s", got, want)
	}
}

func TestExampleConfigs(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no example configs")
	}

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			opts, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig() error: %v", err)
			}
			result, err := testRunner(t).Execute(context.Background(), opts)
			if err != nil {
				t.Fatalf("Execute() error: %v", err)
			}
			if result.Stats.TickCount == 0 || len(result.Artifacts[FormatSVG]) == 0 {
				t.Errorf("example produced %d ticks and %d SVG bytes", result.Stats.TickCount, len(result.Artifacts[FormatSVG]))
			}
		})
	}
}
