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
	"testing"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "memo"), 0755); err != nil {
		t.Fatalf("mkdir: %+v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "memo", "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %+v", err)
	}
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := Load()
	if cfg.TabWidth != 8 {
		t.Errorf("unexpected tab width: %d", cfg.TabWidth)
	}
	if cfg.Log != "~/.memolog" {
		t.Errorf("unexpected log path: %q", cfg.Log)
	}
}

func TestLoadFromFile(t *testing.T) {
	writeConfig(t, "tab_width: 4\nroot: /tmp/notes\nlog: /tmp/memo.log\n")
	cfg := Load()
	if cfg.TabWidth != 4 {
		t.Errorf("unexpected tab width: %d", cfg.TabWidth)
	}
	if cfg.Root != "/tmp/notes" {
		t.Errorf("unexpected root: %q", cfg.Root)
	}
	if cfg.LogPath() != "/tmp/memo.log" {
		t.Errorf("unexpected log path: %q", cfg.LogPath())
	}
}

func TestLoadMalformedFallsBack(t *testing.T) {
	writeConfig(t, "tab_width: [not a number\n")
	cfg := Load()
	if cfg.TabWidth != 8 {
		t.Errorf("unexpected tab width: %d", cfg.TabWidth)
	}
}

func TestLogPathExpandsHome(t *testing.T) {
	cfg := DefaultConfig()
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %+v", err)
	}
	if cfg.LogPath() != filepath.Join(home, ".memolog") {
		t.Errorf("unexpected log path: %q", cfg.LogPath())
	}
}
