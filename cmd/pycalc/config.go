package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	pythonic "github.com/Creamy-pie-96/pythonic"
)

const configName = ".pycalc.yaml"

// config is the optional .pycalc.yaml file. Flags given on the command
// line win over it.
type config struct {
	// Policy is the overflow policy: throw, promote or wrap.
	Policy string `yaml:"policy,omitempty"`

	// Exact turns off smallest-fit promotion.
	Exact bool `yaml:"exact,omitempty"`

	// Group prints integer results with digit separators.
	Group bool `yaml:"group,omitempty"`

	// History is the REPL history file, relative to the home directory
	// unless absolute.
	History string `yaml:"history,omitempty"`

	// Prelude statements run before the first input, e.g. "var g = 9.81".
	Prelude []string `yaml:"prelude,omitempty"`
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return parseConfig(data, path)
}

// parseConfig parses .pycalc.yaml content. The path is only used in error
// messages.
func parseConfig(data []byte, path string) (*config, error) {
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Policy != "" {
		if _, err := pythonic.ParsePolicy(cfg.Policy); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if cfg.History == "" {
		cfg.History = ".pycalc_history"
	}
	return &cfg, nil
}

// findConfig walks up from dir looking for .pycalc.yaml. It returns an
// empty path when there is none.
func findConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (cfg *config) historyPath() string {
	if filepath.IsAbs(cfg.History) {
		return cfg.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, cfg.History)
}
