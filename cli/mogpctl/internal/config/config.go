package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultRunner is the external test tool invoked when no config overrides it.
const DefaultRunner = "pytest"

type Config struct {
	TestRunner string   `yaml:"test_runner"`
	TestArgs   []string `yaml:"test_args"`
}

// Read loads the optional mogpctl config. The path comes from MOGPCTL_CONFIG
// when set, otherwise <user config dir>/mogpctl/config.yaml. A missing file is
// not an error; the zero Config stands for the defaults.
func Read() (Config, string, error) {
	var cfg Config
	path := strings.TrimSpace(os.Getenv("MOGPCTL_CONFIG"))
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "mogpctl", "config.yaml")
		} else if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".config", "mogpctl", "config.yaml")
		}
	}
	if strings.TrimSpace(path) == "" {
		return cfg, "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, path, nil
		}
		return cfg, path, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, path, err
	}
	return cfg, path, nil
}

// Command resolves the test-runner invocation: the configured binary and
// arguments, or the argument-free default.
func (c Config) Command() (string, []string) {
	name := strings.TrimSpace(c.TestRunner)
	if name == "" {
		name = DefaultRunner
	}
	return name, c.TestArgs
}
