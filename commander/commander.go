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
	"log"
	"strings"
	"unicode/utf8"

	"github.com/hiraku/memo/types"
)

// Fixed user-facing messages for filesystem failures.
const (
	MessageOpenFailed = "could not open file"
	MessageSaveFailed = "could not save file"
)

// The Commander converts user input into commands for the Session.
// Commands run one at a time: each is dispatched synchronously from the
// event loop before the next event is read.
type Commander struct {
	session  types.Session
	chooser  types.PathChooser
	mode     int                     // commander mode
	command  string                  // command as it is being typed on the command bar
	lispText string                  // lisp expression as it is being typed
	message  string                  // status message
	commands map[string]func(string) // command bar dispatch table
}

func NewCommander(s types.Session) *Commander {
	c := &Commander{session: s, mode: types.ModeEdit}
	c.commands = map[string]func(string){
		"new":    c.doNew,
		"open":   c.doOpen,
		"save":   c.doSave,
		"saveas": c.doSaveAs,
		"clear":  c.doClear,
		"q":      c.doQuit,
		"quit":   c.doQuit,
	}
	return c
}

// SetChooser wires in the file-selection collaborator used when an open
// command arrives without a path.
func (c *Commander) SetChooser(chooser types.PathChooser) {
	c.chooser = chooser
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != types.ModeQuit
}

func (c *Commander) ProcessEvent(event *types.Event) error {
	switch event.Type {
	case types.EventKey:
		return c.ProcessKey(event)
	case types.EventResize:
		return nil
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *types.Event) error {
	switch c.mode {
	case types.ModeEdit:
		return c.ProcessKeyEditMode(event)
	case types.ModeCommand:
		return c.ProcessKeyCommandMode(event)
	case types.ModeLisp:
		return c.ProcessKeyLispMode(event)
	}
	return nil
}

func (c *Commander) ProcessKeyEditMode(event *types.Event) error {
	s := c.session

	key := event.Key
	ch := event.Ch

	if key != 0 {
		switch key {
		//
		// menu shortcuts
		//
		case types.KeyCtrlN:
			c.doNew("")
		case types.KeyCtrlO:
			c.doOpen("")
		case types.KeyCtrlS:
			c.doSave("")
		case types.KeyCtrlA:
			c.promptSaveAs()
		case types.KeyCtrlK:
			c.doClear("")
		case types.KeyCtrlQ:
			c.doQuit("")
		//
		// commands and lisp go to the message bar
		//
		case types.KeyEsc:
			c.mode = types.ModeCommand
			c.command = ""
		case types.KeyCtrlL:
			c.mode = types.ModeLisp
			c.lispText = "("
		//
		// cursor movement
		//
		case types.KeyArrowUp:
			s.MoveCursor(types.MoveUp)
		case types.KeyArrowDown:
			s.MoveCursor(types.MoveDown)
		case types.KeyArrowLeft:
			s.MoveCursor(types.MoveLeft)
		case types.KeyArrowRight:
			s.MoveCursor(types.MoveRight)
		case types.KeyHome:
			s.MoveToBeginningOfLine()
		case types.KeyEnd:
			s.MoveToEndOfLine()
		case types.KeyPgup:
			s.PageUp()
		case types.KeyPgdn:
			s.PageDown()
		//
		// typing
		//
		case types.KeyEnter:
			s.InsertChar('\n')
		case types.KeySpace:
			s.InsertChar(' ')
		case types.KeyTab:
			s.InsertChar('\t')
		case types.KeyBackspace2:
			s.BackspaceChar()
		}
	}
	if ch != 0 {
		s.InsertChar(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyCommandMode(event *types.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case types.KeyEsc:
			c.command = ""
			c.mode = types.ModeEdit
		case types.KeyEnter:
			c.PerformCommand()
		case types.KeyBackspace2:
			c.command = trimLastRune(c.command)
		case types.KeySpace:
			c.command += " "
		}
	}
	if ch != 0 {
		c.command = c.command + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *types.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case types.KeyEsc:
			c.lispText = ""
			c.mode = types.ModeEdit
		case types.KeyEnter:
			c.message = c.ParseEval(c.lispText)
			c.lispText = ""
			if c.mode == types.ModeLisp {
				c.mode = types.ModeEdit
			}
		case types.KeyBackspace2:
			c.lispText = trimLastRune(c.lispText)
		case types.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

// PerformCommand dispatches the typed command through the command table.
// A line starting with "(" is a lisp expression. Unknown commands are
// dropped silently.
func (c *Commander) PerformCommand() {
	line := strings.TrimSpace(c.command)
	c.command = ""
	c.mode = types.ModeEdit

	if line == "" {
		return
	}
	if strings.HasPrefix(line, "(") {
		c.message = c.ParseEval(line)
		return
	}
	name := line
	arg := ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		name = line[0:i]
		arg = strings.TrimSpace(line[i+1:])
	}
	if handler, ok := c.commands[name]; ok {
		handler(arg)
	} else {
		c.message = ""
	}
}

func (c *Commander) doNew(string) {
	c.session.New()
	c.message = ""
}

// doOpen loads a file into the session. With no argument the path comes
// from the chooser; cancellation leaves everything untouched.
func (c *Commander) doOpen(arg string) {
	path := arg
	if path == "" {
		if c.chooser == nil {
			return
		}
		p, ok, err := c.chooser.ChooseOpenPath()
		if err != nil {
			log.Printf("choose open path: %+v", err)
			c.message = MessageOpenFailed
			return
		}
		if !ok {
			return
		}
		path = p
	}
	if err := c.session.Open(path); err != nil {
		log.Printf("%+v", err)
		c.message = MessageOpenFailed
		return
	}
	c.message = ""
}

// doSave writes to the bound path. An unbound session has nowhere to
// write, so the command becomes a save-as.
func (c *Commander) doSave(string) {
	if !c.session.Bound() {
		c.promptSaveAs()
		return
	}
	if err := c.session.Save(); err != nil {
		log.Printf("%+v", err)
		c.message = MessageSaveFailed
		return
	}
	c.message = ""
}

func (c *Commander) doSaveAs(arg string) {
	if arg == "" {
		c.promptSaveAs()
		return
	}
	if err := c.session.SaveAs(arg); err != nil {
		log.Printf("%+v", err)
		c.message = MessageSaveFailed
		return
	}
	c.message = ""
}

func (c *Commander) doClear(string) {
	c.session.Clear()
	c.message = ""
}

func (c *Commander) doQuit(string) {
	c.mode = types.ModeQuit
}

// promptSaveAs reopens the command bar with the save-as command started,
// leaving the user to type the destination path.
func (c *Commander) promptSaveAs() {
	c.mode = types.ModeCommand
	c.command = "saveas "
}

// trimLastRune removes the final rune, not the final byte, so backspacing
// multibyte input leaves the line valid UTF-8.
func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[0 : len(s)-size]
}

func (c *Commander) GetCommand() string {
	return c.command
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetMessage() string {
	return c.message
}
