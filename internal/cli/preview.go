package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttcal/pkg/calendar"
	"github.com/matzehuels/ganttcal/pkg/errors"
	"github.com/matzehuels/ganttcal/pkg/pipeline"
	"github.com/matzehuels/ganttcal/pkg/render/header"
	"github.com/matzehuels/ganttcal/pkg/render/sink"
	"github.com/matzehuels/ganttcal/pkg/timeline"
)

// Preview styles
var (
	previewFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
	previewKeyStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	previewDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// runesPerTick is the terminal width given to one column in each mode.
var runesPerTick = map[calendar.ViewMode]int{
	calendar.ModeYear:  8,
	calendar.ModeMonth: 12,
	calendar.ModeWeek:  6,
	calendar.ModeDay:   9,
}

const defaultPreviewWidth = 100

// =============================================================================
// PreviewModel - Interactive header preview
// =============================================================================

// PreviewModel is the bubbletea model for the terminal header preview.
// The header is drawn through a [header.Adapter], so redraws with an
// unchanged memo key are skipped unless the model invalidates it.
type PreviewModel struct {
	Opts   pipeline.Options
	Start  time.Time
	Width  int
	Canvas *sink.TextCanvas
	Plan   calendar.Plan
	Err    error

	ctx     context.Context
	adapter header.Adapter
}

// NewPreviewModel creates a preview starting at the period containing start.
func NewPreviewModel(ctx context.Context, opts pipeline.Options, start time.Time) PreviewModel {
	opts.SetLayoutDefaults()
	m := PreviewModel{
		Opts:  opts,
		Start: timeline.Align(start, opts.ViewMode()),
		Width: defaultPreviewWidth,
		ctx:   ctx,
	}
	m.refresh()
	return m
}

// Draws returns how many times the header has actually been drawn.
func (m PreviewModel) Draws() int { return m.adapter.Draws() }

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "y":
			m.setMode(calendar.ModeYear)
		case "m":
			m.setMode(calendar.ModeMonth)
		case "w":
			m.setMode(calendar.ModeWeek)
		case "d":
			m.setMode(calendar.ModeDay)
		case "left", "h":
			m.scroll(-1)
		case "right", "l":
			m.scroll(1)
		case "r":
			if m.Opts.Direction == string(calendar.RTL) {
				m.Opts.Direction = string(calendar.LTR)
			} else {
				m.Opts.Direction = string(calendar.RTL)
			}
			// Direction is not part of the memo key.
			m.adapter.Invalidate()
		default:
			return m, nil
		}
		m.refresh()
	case tea.WindowSizeMsg:
		m.Width = max(msg.Width-4, 20)
		m.refresh()
	}
	return m, nil
}

func (m *PreviewModel) setMode(mode calendar.ViewMode) {
	m.Opts.Mode = string(mode)
	m.Start = timeline.Align(m.Start, mode)
}

func (m *PreviewModel) scroll(n int) {
	m.Start = timeline.Step(m.Start, m.Opts.ViewMode(), n)
	// Scrolling keeps the memo key, so force the redraw.
	m.adapter.Invalidate()
}

// ticks returns as many ticks as fit the current width.
func (m PreviewModel) ticks() []time.Time {
	mode := m.Opts.ViewMode()
	n := max(m.Width/runesPerTick[mode], 1)
	out := make([]time.Time, n)
	for i := range out {
		out[i] = timeline.Step(m.Start, mode, i)
	}
	return out
}

// refresh recomputes the plan and redraws it when the adapter allows.
func (m *PreviewModel) refresh() {
	ticks := m.ticks()
	plan, err := pipeline.GenerateLayout(m.ctx, ticks, m.Opts)
	if err != nil {
		m.Err = err
		return
	}
	m.Err = nil
	m.Plan = plan

	cols := len(ticks) * runesPerTick[plan.Mode]
	next := sink.NewTextCanvas(cols, plan.Width, plan.HeaderHeight)
	if m.adapter.Render(next, plan) {
		m.Canvas = next
	}
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Calendar Header Preview"))
	b.WriteString("\n")
	b.WriteString(previewHelp())
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(StyleWarning.Render(errors.UserMessage(m.Err)))
		b.WriteString("\n")
		return b.String()
	}
	if m.Canvas != nil {
		b.WriteString(previewFrameStyle.Render(m.Canvas.String()))
		b.WriteString("\n")
	}

	ticks := m.ticks()
	status := fmt.Sprintf("  %s · %s → %s · %s · %d draws",
		m.Plan.Mode,
		ticks[0].Format(errors.DateLayout),
		ticks[len(ticks)-1].Format(errors.DateLayout),
		m.Plan.Direction,
		m.adapter.Draws())
	b.WriteString(previewDimStyle.Render(status))
	return b.String()
}

func previewHelp() string {
	keys := [][2]string{
		{"y/m/w/d", "mode"},
		{"←/→", "scroll"},
		{"r", "rtl"},
		{"q", "quit"},
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = previewKeyStyle.Render(k[0]) + " " + previewDimStyle.Render(k[1])
	}
	return strings.Join(parts, "  ")
}

// =============================================================================
// Command
// =============================================================================

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var flags headerFlags

	cmd := &cobra.Command{
		Use:   "preview [config]",
		Short: "Preview a calendar header in the terminal",
		Long: `Preview a calendar header in the terminal.

Keys: y/m/w/d switch the view mode, ←/→ scroll one period, r toggles
right-to-left layout, q quits. The preview starts at --start, or today.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd, args)
			if err != nil {
				return err
			}
			start := time.Now().UTC()
			if opts.Start != "" {
				if start, err = errors.ParseDate(opts.Start); err != nil {
					return err
				}
			}
			if err := opts.ValidateForLayout(); err != nil {
				return err
			}

			model := NewPreviewModel(cmd.Context(), opts, start)
			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			if err != nil && cmd.Context().Err() != nil {
				return cmd.Context().Err()
			}
			return err
		},
	}

	flags.registerLayout(cmd)
	return cmd
}
