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
	"github.com/hiraku/memo/types"
)

// Editing primitives for the text surface. Unlike a modal editor, the
// cursor may rest one past the end of a row: that is the insertion point.

func (s *Session) InsertChar(c rune) {
	if c == '\n' {
		s.insertRow()
		s.Cursor.Row++
		s.Cursor.Col = 0
		return
	}
	for s.Cursor.Row >= s.buffer.GetRowCount() {
		s.appendBlankRow()
	}
	s.buffer.InsertCharacter(s.Cursor.Row, s.Cursor.Col, c)
	s.Cursor.Col++
}

func (s *Session) insertRow() {
	if s.Cursor.Row >= s.buffer.GetRowCount() {
		s.appendBlankRow()
		return
	}
	newRow := s.buffer.rows[s.Cursor.Row].Split(s.Cursor.Col)
	i := s.Cursor.Row + 1
	// add a dummy row at the end of the rows slice
	s.appendBlankRow()
	// move rows to make room for the one we are adding
	copy(s.buffer.rows[i+1:], s.buffer.rows[i:])
	s.buffer.rows[i] = newRow
}

func (s *Session) BackspaceChar() rune {
	if s.Cursor.Col > 0 {
		c := s.buffer.rows[s.Cursor.Row].DeleteChar(s.Cursor.Col - 1)
		s.Cursor.Col--
		return c
	}
	if s.Cursor.Row > 0 {
		// join the current row to the previous one
		prev := s.buffer.rows[s.Cursor.Row-1]
		col := prev.Length()
		prev.Join(s.buffer.rows[s.Cursor.Row])
		s.buffer.rows = append(s.buffer.rows[0:s.Cursor.Row], s.buffer.rows[s.Cursor.Row+1:]...)
		s.Cursor.Row--
		s.Cursor.Col = col
		return '\n'
	}
	return 0
}

func (s *Session) MoveCursor(direction int) {
	switch direction {
	case types.MoveLeft:
		if s.Cursor.Col > 0 {
			s.Cursor.Col--
		}
	case types.MoveRight:
		if s.Cursor.Col < s.buffer.GetRowLength(s.Cursor.Row) {
			s.Cursor.Col++
		}
	case types.MoveUp:
		if s.Cursor.Row > 0 {
			s.Cursor.Row--
		}
	case types.MoveDown:
		if s.Cursor.Row < s.buffer.GetRowCount()-1 {
			s.Cursor.Row++
		}
	}
	// don't go past the insertion point of the current row
	if rowLength := s.buffer.GetRowLength(s.Cursor.Row); s.Cursor.Col > rowLength {
		s.Cursor.Col = rowLength
	}
}

func (s *Session) MoveToBeginningOfLine() {
	s.Cursor.Col = 0
}

func (s *Session) MoveToEndOfLine() {
	s.Cursor.Col = s.buffer.GetRowLength(s.Cursor.Row)
}

func (s *Session) PageUp() {
	// move to the top of the screen
	s.Cursor.Row = s.Offset.Rows
	// move up by a page
	for i := 0; i < s.size.Rows; i++ {
		s.MoveCursor(types.MoveUp)
	}
	s.KeepCursorInRow()
}

func (s *Session) PageDown() {
	// move to the bottom of the screen
	s.Cursor.Row = s.Offset.Rows + s.size.Rows - 1
	// move down by a page
	for i := 0; i < s.size.Rows; i++ {
		s.MoveCursor(types.MoveDown)
	}
	s.KeepCursorInRow()
}

func (s *Session) Scroll() {
	if s.Cursor.Row < s.Offset.Rows {
		s.Offset.Rows = s.Cursor.Row
	}
	if s.Cursor.Row-s.Offset.Rows >= s.size.Rows {
		s.Offset.Rows = s.Cursor.Row - s.size.Rows + 1
	}
	if s.Cursor.Col < s.Offset.Cols {
		s.Offset.Cols = s.Cursor.Col
	}
	if s.Cursor.Col-s.Offset.Cols >= s.size.Cols {
		s.Offset.Cols = s.Cursor.Col - s.size.Cols + 1
	}
}

func (s *Session) KeepCursorInRow() {
	if s.Cursor.Row >= s.buffer.GetRowCount() {
		s.Cursor.Row = s.buffer.GetRowCount() - 1
	}
	if s.Cursor.Row < 0 {
		s.Cursor.Row = 0
	}
	if last := s.buffer.GetRowLength(s.Cursor.Row); s.Cursor.Col > last {
		s.Cursor.Col = last
	}
	if s.Cursor.Col < 0 {
		s.Cursor.Col = 0
	}
}

func (s *Session) appendBlankRow() {
	s.buffer.rows = append(s.buffer.rows, NewRow(""))
}
