package sink

import (
	"encoding/json"

	"github.com/matzehuels/ganttcal/pkg/calendar"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style  string
	locale string
	start  string
	end    string
}

// WithJSONStyle records the style name in the JSON output.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONLocale records the requested locale tag.
func WithJSONLocale(l string) JSONOption { return func(r *jsonRenderer) { r.locale = l } }

// WithJSONRange records the date range the ticks were seeded from.
func WithJSONRange(start, end string) JSONOption {
	return func(r *jsonRenderer) { r.start, r.end = start, end }
}

type jsonOutput struct {
	Style  string `json:"style,omitempty"`
	Locale string `json:"locale,omitempty"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
	calendar.Plan
}

// RenderJSON exports the plan, plus any recorded options, as indented JSON.
func RenderJSON(p calendar.Plan, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	out := jsonOutput{
		Style:  r.style,
		Locale: r.locale,
		Start:  r.start,
		End:    r.end,
		Plan:   p,
	}
	return json.MarshalIndent(out, "", "  ")
}

// ReadJSON decodes a plan written by [RenderJSON].
func ReadJSON(data []byte) (calendar.Plan, error) {
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return calendar.Plan{}, err
	}
	if out.Groups == nil {
		out.Groups = []calendar.GroupLabel{}
	}
	if out.Units == nil {
		out.Units = []calendar.UnitLabel{}
	}
	return out.Plan, nil
}
