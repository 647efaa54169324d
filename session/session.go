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
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/hiraku/memo/types"
)

var (
	// ErrInvalidUTF8 reports a file whose contents are not UTF-8 text.
	ErrInvalidUTF8 = errors.New("not valid UTF-8 text")

	// ErrNotBound reports a Save on a session with no bound path.
	ErrNotBound = errors.New("no file bound to session")
)

// An IOError is the single error kind the session reports: any filesystem
// failure during Open, Save, or SaveAs.
type IOError struct {
	Op   string // "open" or "save"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// A Session is one document being edited: its text buffer and the optional
// file path it was last loaded from or saved to. One session exists per
// running instance, and exactly one command mutates it at a time.
type Session struct {
	Cursor types.Point // cursor position
	Offset types.Size  // display offset
	buffer *Buffer     // text being edited
	size   types.Size  // size of editing area
	path   string      // bound file path; empty until a load or save succeeds
}

func NewSession() *Session {
	s := &Session{}
	s.buffer = NewBuffer()
	return s
}

// Path returns the bound file path, empty for an unsaved new document.
func (s *Session) Path() string {
	return s.path
}

func (s *Session) Bound() bool {
	return s.path != ""
}

func (s *Session) Text() string {
	return string(s.buffer.Bytes())
}

func (s *Session) SetText(text string) {
	s.buffer.LoadBytes([]byte(text))
	s.Cursor = types.Point{}
	s.Offset = types.Size{}
	s.KeepCursorInRow()
}

// New resets the session to an empty, unbound document.
func (s *Session) New() {
	s.buffer.LoadBytes(nil)
	s.path = ""
	s.Cursor = types.Point{}
	s.Offset = types.Size{}
}

// Open replaces the document with the contents of the file at path and
// binds the session to it. On failure the document and binding are left
// exactly as they were.
func (s *Session) Open(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	if !utf8.Valid(b) {
		return &IOError{Op: "open", Path: path, Err: ErrInvalidUTF8}
	}
	s.buffer.LoadBytes(b)
	s.path = path
	s.Cursor = types.Point{}
	s.Offset = types.Size{}
	return nil
}

// Save writes the document to its bound path. Callers route an unbound
// session through the save-as flow instead.
func (s *Session) Save() error {
	if s.path == "" {
		return &IOError{Op: "save", Err: ErrNotBound}
	}
	return s.writeFile(s.path)
}

// SaveAs writes the document to path and, only if the write succeeds,
// binds the session to it.
func (s *Session) SaveAs(path string) error {
	if err := s.writeFile(path); err != nil {
		return err
	}
	s.path = path
	return nil
}

// Clear empties the document. The file binding is unchanged.
func (s *Session) Clear() {
	s.buffer.LoadBytes(nil)
	s.Cursor = types.Point{}
	s.Offset = types.Size{}
}

func (s *Session) writeFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	defer f.Close()
	if _, err := f.Write(s.buffer.Bytes()); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	return nil
}

func (s *Session) GetBuffer() types.Buffer {
	return s.buffer
}

func (s *Session) GetCursor() types.Point {
	return s.Cursor
}

func (s *Session) SetCursor(cursor types.Point) {
	s.Cursor = cursor
}

func (s *Session) SetSize(size types.Size) {
	s.size = size
}

func (s *Session) GetOffset() types.Size {
	return s.Offset
}
