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
package commander

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hiraku/memo/types"
)

func TestLispSetAndClear(t *testing.T) {
	s, c := setup()
	c.ParseEval(`(set-document-text "from lisp")`)
	if s.Text() != "from lisp" {
		t.Errorf("unexpected text: %q", s.Text())
	}
	c.ParseEval(`(clear-all)`)
	if s.Text() != "" {
		t.Errorf("unexpected text after clear: %q", s.Text())
	}
}

func TestLispSaveAndOpen(t *testing.T) {
	s, c := setup()
	path := filepath.Join(t.TempDir(), "a.txt")
	c.ParseEval(`(set-document-text "persisted")`)
	c.ParseEval(`(save-file-as "` + path + `")`)
	if s.Path() != path {
		t.Errorf("unexpected binding: %q", s.Path())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %+v", err)
	}
	if string(b) != "persisted" {
		t.Errorf("unexpected file content: %q", b)
	}
	c.ParseEval(`(new-document)`)
	if s.Bound() {
		t.Errorf("still bound: %q", s.Path())
	}
	c.ParseEval(`(open-file "` + path + `")`)
	if s.Text() != "persisted" {
		t.Errorf("unexpected text: %q", s.Text())
	}
}

func TestLispQuit(t *testing.T) {
	_, c := setup()
	c.ParseEval(`(quit)`)
	if c.IsRunning() {
		t.Error("still running after quit")
	}
}

// a command line starting with "(" evaluates as lisp
func TestLispFromCommandBar(t *testing.T) {
	s, c := setup()
	c.ProcessEvent(keyEvent(types.KeyEsc))
	typeString(c, `(set-document-text "via bar")`)
	c.ProcessEvent(keyEvent(types.KeyEnter))
	if s.Text() != "via bar" {
		t.Errorf("unexpected text: %q", s.Text())
	}
	if c.GetMode() != types.ModeEdit || c.GetCommand() != "" {
		t.Errorf("command bar left state behind: %d %q", c.GetMode(), c.GetCommand())
	}
}

func TestLispBackspaceMultibyte(t *testing.T) {
	_, c := setup()
	c.ProcessEvent(keyEvent(types.KeyCtrlL))
	typeString(c, `display "世`)
	c.ProcessEvent(keyEvent(types.KeyBackspace2))
	if c.GetLispText() != `(display "` {
		t.Errorf("unexpected lisp text: %q", c.GetLispText())
	}
}

func TestLispModeKeys(t *testing.T) {
	s, c := setup()
	c.ProcessEvent(keyEvent(types.KeyCtrlL))
	if c.GetMode() != types.ModeLisp || c.GetLispText() != "(" {
		t.Errorf("unexpected lisp state: %d %q", c.GetMode(), c.GetLispText())
	}
	typeString(c, `set-document-text "typed")`)
	c.ProcessEvent(keyEvent(types.KeyEnter))
	if s.Text() != "typed" {
		t.Errorf("unexpected text: %q", s.Text())
	}
	if c.GetMode() != types.ModeEdit || c.GetLispText() != "" {
		t.Errorf("lisp mode left state behind: %d %q", c.GetMode(), c.GetLispText())
	}
}
