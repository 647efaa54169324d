//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration options.
type Config struct {
	TabWidth int    `yaml:"tab_width,omitempty"` // display expansion of tabs
	Root     string `yaml:"root,omitempty"`      // chooser root directory
	Log      string `yaml:"log,omitempty"`       // append-mode log file
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		TabWidth: 8,
		Log:      "~/.memolog",
	}
}

// configPath returns the path to the config file.
func configPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "memo", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "memo", "config.yaml")
}

// Load loads config from file, falling back to defaults.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 8
	}
	return cfg
}

// LogPath returns the configured log file path with "~" expanded.
func (c *Config) LogPath() string {
	return expandHome(c.Log)
}

// RootPath returns the configured chooser root with "~" expanded.
func (c *Config) RootPath() string {
	return expandHome(c.Root)
}

func expandHome(path string) string {
	if path == "~" || len(path) >= 2 && path[0:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
