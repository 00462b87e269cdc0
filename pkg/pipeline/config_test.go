package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/ganttcal/pkg/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "gantt.toml", `
start = "2024-01-29"
end = "2024-03-01"
mode = "week"
column_width = 80
locale = "fr"
formats = ["svg", "json"]

[colors]
background = "#fafafa"
`},
		{"yaml", "gantt.yaml", `
start: "2024-01-29"
end: "2024-03-01"
mode: week
column_width: 80
locale: fr
formats: [svg, json]
colors:
  background: "#fafafa"
`},
		{"json", "gantt.json", `{
  "start": "2024-01-29",
  "end": "2024-03-01",
  "mode": "week",
  "column_width": 80,
  "locale": "fr",
  "formats": ["svg", "json"],
  "colors": {"background": "#fafafa"}
}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := LoadConfig(writeConfig(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("LoadConfig error: %v", err)
			}
			if opts.Start != "2024-01-29" || opts.Mode != "week" || opts.ColumnWidth != 80 || opts.Locale != "fr" {
				t.Errorf("opts = %+v", opts)
			}
			if len(opts.Formats) != 2 || opts.Colors.Background != "#fafafa" {
				t.Errorf("formats/colors = %v %+v", opts.Formats, opts.Colors)
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				t.Errorf("loaded config invalid: %v", err)
			}
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing", filepath.Join(t.TempDir(), "nope.toml"), errors.ErrCodeFileNotFound},
		{"unknown toml key", writeConfig(t, "a.toml", "colum_width = 3\n"), errors.ErrCodeInvalidConfig},
		{"unknown yaml key", writeConfig(t, "a.yaml", "colum_width: 3\n"), errors.ErrCodeInvalidConfig},
		{"unknown json key", writeConfig(t, "a.json", `{"colum_width": 3}`), errors.ErrCodeInvalidConfig},
		{"bad toml", writeConfig(t, "b.toml", "start = \n"), errors.ErrCodeInvalidConfig},
		{"unsupported extension", writeConfig(t, "a.ini", "x=1"), errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestParseConfigEmptyYAML(t *testing.T) {
	opts, err := ParseConfig(nil, ".yml")
	if err != nil {
		t.Fatalf("empty YAML: %v", err)
	}
	if opts.Mode != "" {
		t.Errorf("opts = %+v", opts)
	}
}
