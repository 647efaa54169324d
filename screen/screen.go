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
	"fmt"
	"log"
	"path/filepath"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/hiraku/memo/types"
)

const appName = "memo"

// The Screen draws the state of a Session on the terminal.
type Screen struct {
	size     types.Size
	tabWidth int
}

func NewScreen(tabWidth int) *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{tabWidth: tabWidth}
}

func (s *Screen) Close() {
	termbox.Close()
}

// Suspend releases the terminal so another program can use it.
func (s *Screen) Suspend() {
	termbox.Close()
}

// Resume reclaims the terminal after a Suspend.
func (s *Screen) Resume() {
	if err := termbox.Init(); err != nil {
		log.Output(1, err.Error())
		return
	}
	termbox.SetOutputMode(termbox.Output256)
}

func (s *Screen) Render(e types.Session, c types.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	var screenSize types.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	editSize := screenSize
	editSize.Rows -= 2
	e.SetSize(editSize)

	e.Scroll()
	s.RenderTitleBar(e)
	s.RenderMessageBar(c)
	bufferOrigin := types.Point{Row: 0, Col: 0}
	bufferSize := types.Size{Rows: s.size.Rows - 2, Cols: s.size.Cols}
	e.GetBuffer().Render(bufferOrigin, bufferSize, e.GetOffset(), s.tabWidth, s)
	cursor := e.GetBuffer().DisplayPoint(e.GetCursor(), e.GetOffset(), s.tabWidth)
	termbox.SetCursor(cursor.Col, cursor.Row)
	termbox.Flush()
}

func (s *Screen) SetCell(x int, y int, c rune) {
	termbox.SetCell(x, y, c, termbox.ColorWhite, termbox.ColorBlack)
}

// RenderTitleBar draws the application title, the bound file name, and the
// cursor position on the next-to-last row.
func (s *Screen) RenderTitleBar(e types.Session) {
	text := titleBarText(e.Path(), e.GetCursor().Row, e.GetBuffer().GetRowCount(), s.size.Cols)
	x := 0
	for _, ch := range text {
		termbox.SetCell(x, s.size.Rows-2, ch, termbox.ColorBlack, termbox.ColorWhite)
		x += runewidth.RuneWidth(ch)
	}
}

// titleBarText derives the title line: the application name, " - " and the
// file's base name when the session is bound, padded to the full width with
// a right-aligned row indicator. Widths are display cells, not bytes, so
// multibyte file names pad and truncate cleanly.
func titleBarText(path string, row, rows, width int) string {
	text := " " + appName
	if path != "" {
		text += " - " + filepath.Base(path)
	}
	text += " "
	finalText := fmt.Sprintf(" %d/%d ", row, rows)
	for runewidth.StringWidth(text) < width-runewidth.StringWidth(finalText) {
		text += " "
	}
	text += finalText
	return runewidth.Truncate(text, width, "")
}

func (s *Screen) RenderMessageBar(c types.Commander) {
	var line string
	switch c.GetMode() {
	case types.ModeCommand:
		line = ":" + c.GetCommand()
	case types.ModeLisp:
		line = c.GetLispText()
	default:
		line = c.GetMessage()
	}
	line = runewidth.Truncate(line, s.size.Cols, "")
	x := 0
	for _, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
		x += runewidth.RuneWidth(ch)
	}
}

func (s *Screen) GetNextEvent() *types.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return &types.Event{
		Type: int(event.Type),
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func key(k termbox.Key) types.Key {
	switch k {
	case termbox.KeyArrowDown:
		return types.KeyArrowDown
	case termbox.KeyArrowLeft:
		return types.KeyArrowLeft
	case termbox.KeyArrowRight:
		return types.KeyArrowRight
	case termbox.KeyArrowUp:
		return types.KeyArrowUp
	case termbox.KeyBackspace2:
		return types.KeyBackspace2
	case termbox.KeyCtrlA:
		return types.KeyCtrlA
	case termbox.KeyCtrlK:
		return types.KeyCtrlK
	case termbox.KeyCtrlL:
		return types.KeyCtrlL
	case termbox.KeyCtrlN:
		return types.KeyCtrlN
	case termbox.KeyCtrlO:
		return types.KeyCtrlO
	case termbox.KeyCtrlQ:
		return types.KeyCtrlQ
	case termbox.KeyCtrlS:
		return types.KeyCtrlS
	case termbox.KeyEnd:
		return types.KeyEnd
	case termbox.KeyEnter:
		return types.KeyEnter
	case termbox.KeyEsc:
		return types.KeyEsc
	case termbox.KeyHome:
		return types.KeyHome
	case termbox.KeyPgdn:
		return types.KeyPgdn
	case termbox.KeyPgup:
		return types.KeyPgup
	case termbox.KeySpace:
		return types.KeySpace
	case termbox.KeyTab:
		return types.KeyTab
	default:
		return types.KeyUnsupported
	}
}
