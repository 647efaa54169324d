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
	"errors"
	"log"

	"github.com/steelseries/golisp"

	"github.com/hiraku/memo/types"
)

// The lisp primitives operate on the commander that most recently
// evaluated an expression. Evaluation is strictly sequential, so a single
// package-level reference is sufficient.
var current *Commander

func init() {
	golisp.MakePrimitiveFunction("new-document", "0", newDocumentImpl)
	golisp.MakePrimitiveFunction("open-file", "1", openFileImpl)
	golisp.MakePrimitiveFunction("save-file", "0", saveFileImpl)
	golisp.MakePrimitiveFunction("save-file-as", "1", saveFileAsImpl)
	golisp.MakePrimitiveFunction("clear-all", "0", clearAllImpl)
	golisp.MakePrimitiveFunction("document-text", "0", documentTextImpl)
	golisp.MakePrimitiveFunction("set-document-text", "1", setDocumentTextImpl)
	golisp.MakePrimitiveFunction("document-path", "0", documentPathImpl)
	golisp.MakePrimitiveFunction("quit", "0", quitImpl)
}

func stringArg(args *golisp.Data, name string) (string, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return "", errors.New(name + " requires a string argument")
	}
	return golisp.StringValue(val), nil
}

func newDocumentImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	current.session.New()
	return golisp.StringWithValue(""), nil
}

func openFileImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	path, err := stringArg(args, "open-file")
	if err != nil {
		return nil, err
	}
	if err := current.session.Open(path); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(path), nil
}

func saveFileImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if err := current.session.Save(); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(current.session.Path()), nil
}

func saveFileAsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	path, err := stringArg(args, "save-file-as")
	if err != nil {
		return nil, err
	}
	if err := current.session.SaveAs(path); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(path), nil
}

func clearAllImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	current.session.Clear()
	return golisp.StringWithValue(""), nil
}

func documentTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(current.session.Text()), nil
}

func setDocumentTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	text, err := stringArg(args, "set-document-text")
	if err != nil {
		return nil, err
	}
	current.session.SetText(text)
	return golisp.StringWithValue(text), nil
}

func documentPathImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(current.session.Path()), nil
}

func quitImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	current.mode = types.ModeQuit
	return golisp.StringWithValue(""), nil
}

// ParseEval evaluates a lisp expression and returns a printable result
// for the message bar.
func (c *Commander) ParseEval(command string) string {
	current = c
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	return golisp.String(value)
}

// ParseEvalFile runs a lisp script, used for batch invocations.
func (c *Commander) ParseEvalFile(path string) string {
	current = c
	value, err := golisp.ProcessFile(path)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	return golisp.String(value)
}
