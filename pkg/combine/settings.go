package combine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// SettingsFileName is looked up in the root directory when no settings file
// is given explicitly.
const SettingsFileName = ".repoextract.yaml"

// Settings mirrors the command-line options in a YAML file. Zero values mean
// "not set".
type Settings struct {
	Mode    string   `yaml:"mode"`
	Ignore  []string `yaml:"ignore"`
	Include []string `yaml:"include"`
	Output  string   `yaml:"output"`
	Workers int      `yaml:"workers"`
	OnError string   `yaml:"onError"`
	Tree    string   `yaml:"tree"`
}

// LoadSettings reads a settings file. A missing file is not an error; found
// reports whether one was read.
func LoadSettings(path string) (settings Settings, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Settings{}, false, nil
		}
		return Settings{}, false, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, false, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return settings, true, nil
}

// Apply copies the values set in s onto args. Lists are appended, so items
// given later (on the command line) still take effect.
func (s Settings) Apply(args *Arguments) error {
	if s.Mode != "" {
		mode, err := ParseMode(s.Mode)
		if err != nil {
			return err
		}
		args.Mode = mode
	}
	if s.OnError != "" {
		if err := args.OnError.Set(s.OnError); err != nil {
			return err
		}
	}
	if s.Output != "" {
		args.Output = s.Output
	}
	if s.Tree != "" {
		args.Tree = s.Tree
	}
	if s.Workers > 0 {
		args.MaxWorkers = s.Workers
	}
	args.IgnoreItems = append(args.IgnoreItems, s.Ignore...)
	args.IncludeItems = append(args.IncludeItems, s.Include...)
	return nil
}
