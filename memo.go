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
package main

import (
	"log"
	"os"

	"github.com/hiraku/memo/commander"
	"github.com/hiraku/memo/config"
	"github.com/hiraku/memo/dialog"
	"github.com/hiraku/memo/screen"
	"github.com/hiraku/memo/session"
)

func main() {

	var filename string
	var script string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // run a script instead of opening the screen
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return
			}
		default:
			// If a file was specified on the command line, edit it.
			filename = argi
		}
	}

	cfg := config.Load()

	// The session holds the document and its file binding.
	e := session.NewSession()

	// The commander converts user inputs into commands for the session.
	c := commander.NewCommander(e)

	if filename != "" {
		if _, err := os.Stat(filename); err != nil {
			// create a file that doesn't exist
			file, err := os.Create(filename)
			if err != nil {
				log.Printf("%+v", err)
			} else {
				file.Close()
			}
		}
		if err := e.Open(filename); err != nil {
			log.Output(1, err.Error())
		}
	}

	if script != "" {
		// Run a script and exit.
		c.ParseEvalFile(script)
		return
	}

	// Create a screen to manage display.
	s := screen.NewScreen(cfg.TabWidth)
	if s == nil {
		return
	}
	defer s.Close()

	// The chooser picks paths for open commands; it borrows the terminal
	// from the screen while it runs.
	c.SetChooser(dialog.NewPicker(cfg.RootPath(), s))

	// Open a log file. The screen owns the terminal, so this is where
	// errors go.
	f, err := os.OpenFile(cfg.LogPath(), os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Output(1, err.Error())
		}
	}
}
