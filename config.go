package vtterm

import (
	"os"

	"github.com/dgvt/vtterm/vtparse"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the spec §6 "Configuration" parser
// options, loadable from YAML. Grounded on
// majorcontext-moat/internal/providers/configprovider/loader.go, the
// pack's one concrete example of a typed `yaml.Unmarshal` config loader.
type FileConfig struct {
	AllowWidthChange  *bool `yaml:"allow_width_change"`
	OSCTimeLimitMs    *int  `yaml:"osc_time_limit_ms"`
	MaxStringSequence *int  `yaml:"max_string_sequence"`
	Warn              *bool `yaml:"warn"`
}

// LoadConfig reads a YAML document at path into a vtparse.Options,
// starting from vtparse.DefaultOptions() and overriding only the fields
// present in the file.
func LoadConfig(path string) (vtparse.Options, error) {
	opts := vtparse.DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return opts, err
	}

	if fc.AllowWidthChange != nil {
		opts.AllowWidthChange = *fc.AllowWidthChange
	}
	if fc.OSCTimeLimitMs != nil {
		opts.OSCTimeLimitMs = *fc.OSCTimeLimitMs
	}
	if fc.MaxStringSequence != nil {
		opts.MaxStringSequence = *fc.MaxStringSequence
	}
	if fc.Warn != nil {
		opts.Warn = *fc.Warn
	}

	return opts, nil
}
