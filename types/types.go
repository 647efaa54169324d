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
package types

// Commander modes
const (
	ModeEdit    = 0
	ModeCommand = 1
	ModeLisp    = 2
	ModeQuit    = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Event types, numbered to match the terminal backend.
const (
	EventKey    = 0
	EventResize = 1
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Key int

// Keys handled by the commander.
const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace2
	KeyCtrlA
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlQ
	KeyCtrlS
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

// A Session holds the document being edited: its text, its optional bound
// file path, and the cursor state of the editing surface.
type Session interface {
	GetCursor() Point
	SetCursor(cursor Point)
	SetSize(size Size)
	GetOffset() Size
	GetBuffer() Buffer

	// file binding
	Path() string
	Bound() bool
	Text() string
	SetText(text string)

	// menu operations
	New()
	Open(path string) error
	Save() error
	SaveAs(path string) error
	Clear()

	// editing surface
	InsertChar(c rune)
	BackspaceChar() rune
	MoveCursor(direction int)
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	PageUp()
	PageDown()
	Scroll()
}

type Buffer interface {
	Render(origin Point, size Size, offset Size, tabWidth int, display Display)
	DisplayPoint(cursor Point, offset Size, tabWidth int) Point
	GetRowCount() int
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetCommand() string
	GetLispText() string
	GetMessage() string
}

type Display interface {
	SetCell(x int, y int, c rune)
}

// A PathChooser obtains a file path from the user. The second return value
// is false when the user cancelled, which callers treat as a no-op.
type PathChooser interface {
	ChooseOpenPath() (string, bool, error)
}
