package pipeline

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/ganttcal/pkg/errors"
)

// LoadConfig reads Options from a TOML, YAML or JSON file, chosen by
// extension. Unknown keys are rejected so that typos surface early.
func LoadConfig(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Options{}, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
	}
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	return ParseConfig(data, filepath.Ext(path))
}

// ParseConfig decodes config data in the format named by ext
// (".toml", ".yaml", ".yml" or ".json").
func ParseConfig(data []byte, ext string) (Options, error) {
	var opts Options
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), &opts)
		if err != nil {
			return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode TOML config")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Options{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&opts); err != nil && err != io.EOF {
			return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode YAML config")
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&opts); err != nil {
			return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode JSON config")
		}
	default:
		return Options{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported config format %q (use .toml, .yaml or .json)", ext)
	}
	return opts, nil
}
