package levels

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Default is the level loaded when none is requested.
const Default = "meadow.yaml"

// Load reads a level file. A copy under ./levels wins over the embedded one.
func Load(name string) ([]byte, error) {
	clean := Clean(name)
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return fs.ReadFile(LevelsFS, clean)
}

// Clean normalises a level name: directory prefixes are dropped and the
// .yaml extension added when missing.
func Clean(name string) string {
	s := path.Base(filepath.ToSlash(name))
	if !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		s += ".yaml"
	}
	return s
}

// Names lists the embedded levels.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}
