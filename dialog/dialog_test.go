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
package dialog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestListFiles(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.txt", ".hidden", filepath.Join("sub", "b.txt"), filepath.Join(".git", "c")} {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %+v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("write fixture: %+v", err)
		}
	}
	paths, err := listFiles(root)
	if err != nil {
		t.Fatalf("listFiles failed: %+v", err)
	}
	want := []string{"a.txt", filepath.Join("sub", "b.txt")}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("unexpected paths: %v", paths)
	}
}

func TestListFilesEmptyRoot(t *testing.T) {
	paths, err := listFiles(t.TempDir())
	if err != nil {
		t.Fatalf("listFiles failed: %+v", err)
	}
	if len(paths) != 0 {
		t.Errorf("unexpected paths: %v", paths)
	}
}
