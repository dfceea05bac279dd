package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultBaseDir = "g:/xpool"

var defaultFiles = []string{
	"src/assets/onboarding1.png",
	"src/assets/Onboarding2.png",
	"src/assets/Onboarding3.png",
}

type Config struct {
	BaseDir string   `yaml:"base_dir"`
	Files   []string `yaml:"files"`
}

func defaultConfig() Config {
	return Config{
		BaseDir: defaultBaseDir,
		Files:   append([]string(nil), defaultFiles...),
	}
}

// loadConfig layers the yaml file at path (if any), the base flag and the
// positional paths on top of the compiled-in defaults.
func loadConfig(path string, base string, args []string) (Config, error) {
	cfg := defaultConfig()

	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}

		var fromFile Config
		if err = yaml.Unmarshal(data, &fromFile); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if len(fromFile.BaseDir) > 0 {
			cfg.BaseDir = fromFile.BaseDir
		}
		if len(fromFile.Files) > 0 {
			cfg.Files = fromFile.Files
		}
	}

	if len(base) > 0 {
		cfg.BaseDir = base
	}
	if len(args) > 0 {
		cfg.Files = args
	}

	return cfg, nil
}
