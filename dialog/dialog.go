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

// Package dialog implements the file-selection collaborator as an
// interactive fuzzy finder over the files beneath a root directory.
package dialog

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	fzf "github.com/koki-develop/go-fzf"
)

// A Terminal can release and reclaim the screen while the finder runs.
type Terminal interface {
	Suspend()
	Resume()
}

// A Picker chooses file paths with a fuzzy finder.
type Picker struct {
	root string
	term Terminal
}

func NewPicker(root string, term Terminal) *Picker {
	if root == "" {
		root = "."
	}
	return &Picker{root: root, term: term}
}

// ChooseOpenPath presents the files beneath the picker's root and returns
// the chosen path. The second return value is false when the user
// cancelled or there was nothing to choose.
func (p *Picker) ChooseOpenPath() (string, bool, error) {
	paths, err := listFiles(p.root)
	if err != nil {
		return "", false, err
	}
	if len(paths) == 0 {
		return "", false, nil
	}

	if p.term != nil {
		p.term.Suspend()
		defer p.term.Resume()
	}

	f, err := fzf.New(
		fzf.WithPrompt("open > "),
		fzf.WithLimit(1),
	)
	if err != nil {
		return "", false, err
	}
	idxs, err := f.Find(paths, func(i int) string { return paths[i] })
	if err != nil {
		if errors.Is(err, fzf.ErrAbort) {
			return "", false, nil // user cancelled
		}
		return "", false, err
	}
	if len(idxs) == 0 {
		return "", false, nil
	}
	return filepath.Join(p.root, paths[idxs[0]]), true, nil
}

// listFiles collects the regular files beneath root, relative to it,
// skipping dot files and dot directories.
func listFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
