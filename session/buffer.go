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
package session

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/hiraku/memo/types"
)

// A Buffer holds the text of the document as rows of runes.
type Buffer struct {
	rows []*Row
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = []*Row{NewRow("")}
	return b
}

func (b *Buffer) LoadBytes(bytes []byte) {
	lines := strings.Split(string(bytes), "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
}

func (b *Buffer) Bytes() []byte {
	var s strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			s.WriteRune('\n')
		}
		s.WriteString(string(row.Text))
	}
	return []byte(s.String())
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) InsertCharacter(row, col int, c rune) {
	if row < len(b.rows) {
		b.rows[row].InsertChar(col, c)
	}
}

func (b *Buffer) TextAfter(row, col int) string {
	if row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

// draw text in an area defined by origin and size with a specified offset into the buffer
func (b *Buffer) Render(origin types.Point, size types.Size, offset types.Size, tabWidth int, display types.Display) {
	for i := 0; i < size.Rows; i++ {
		y := origin.Row + i
		r := i + offset.Rows
		if r >= len(b.rows) {
			display.SetCell(origin.Col, y, '~')
			continue
		}
		text := b.rows[r].Text
		if offset.Cols < len(text) {
			text = text[offset.Cols:]
		} else {
			text = nil
		}
		x := 0
		for _, c := range text {
			if x >= size.Cols {
				break
			}
			if c == '\t' {
				for stop := x + tabStep(x, tabWidth); x < stop && x < size.Cols; x++ {
					display.SetCell(origin.Col+x, y, ' ')
				}
				continue
			}
			display.SetCell(origin.Col+x, y, c)
			x += runewidth.RuneWidth(c)
		}
	}
}

// DisplayPoint converts a buffer cursor position into a screen cell,
// accounting for tab stops and wide runes.
func (b *Buffer) DisplayPoint(cursor types.Point, offset types.Size, tabWidth int) types.Point {
	p := types.Point{Row: cursor.Row - offset.Rows}
	if cursor.Row >= len(b.rows) {
		return p
	}
	text := b.rows[cursor.Row].Text
	x := 0
	for i := offset.Cols; i < cursor.Col && i < len(text); i++ {
		if text[i] == '\t' {
			x += tabStep(x, tabWidth)
		} else {
			x += runewidth.RuneWidth(text[i])
		}
	}
	p.Col = x
	return p
}

// distance from display column x to the next tab stop
func tabStep(x, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	return tabWidth - x%tabWidth
}
