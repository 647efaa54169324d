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
package screen

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTitleBarTextUnbound(t *testing.T) {
	text := titleBarText("", 0, 1, 40)
	if !strings.HasPrefix(text, " memo ") {
		t.Errorf("unexpected title: %q", text)
	}
	if strings.Contains(text, " - ") {
		t.Errorf("unbound title names a file: %q", text)
	}
	if len(text) != 40 {
		t.Errorf("title not padded to width: %d", len(text))
	}
}

func TestTitleBarTextBound(t *testing.T) {
	text := titleBarText("/tmp/notes/a.txt", 3, 10, 40)
	if !strings.HasPrefix(text, " memo - a.txt ") {
		t.Errorf("unexpected title: %q", text)
	}
	if !strings.HasSuffix(text, " 3/10 ") {
		t.Errorf("position indicator missing: %q", text)
	}
}

func TestTitleBarTextTruncated(t *testing.T) {
	text := titleBarText("/tmp/a-very-long-file-name.txt", 0, 1, 10)
	if len(text) > 10 {
		t.Errorf("title wider than screen: %q", text)
	}
}

// padding and truncation count display cells, not bytes, so a multibyte
// file name keeps the position indicator flush with the right edge
func TestTitleBarTextMultibyte(t *testing.T) {
	text := titleBarText("/tmp/メモ.txt", 0, 1, 40)
	if !strings.HasPrefix(text, " memo - メモ.txt ") {
		t.Errorf("unexpected title: %q", text)
	}
	if !strings.HasSuffix(text, " 0/1 ") {
		t.Errorf("position indicator missing: %q", text)
	}
	if w := runewidth.StringWidth(text); w != 40 {
		t.Errorf("title not padded to width: %d", w)
	}
}

func TestTitleBarTextMultibyteTruncated(t *testing.T) {
	text := titleBarText("/tmp/とても長いファイル名.txt", 0, 1, 12)
	if w := runewidth.StringWidth(text); w > 12 {
		t.Errorf("title wider than screen: %q", text)
	}
}
