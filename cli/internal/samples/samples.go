// ABOUTME: Built-in and user-provided sample screen files
// ABOUTME: Embeds a few reference walls and discovers more in LEDWALL_SAMPLES_PATH

package samples

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/markalston/led-wall-calculator/cli/internal/screenfile"
)

// EnvVar names a directory of additional sample screen files
const EnvVar = "LEDWALL_SAMPLES_PATH"

//go:embed screens
var builtin embed.FS

// Sample is a named screen file
type Sample struct {
	Name    string // file name without extension, e.g. "concert-stage"
	Path    string // filesystem path; empty for built-in samples
	Builtin bool
}

// Discover finds screen files in dir; a missing dir yields no samples
func Discover(dir string) ([]Sample, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []Sample{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var found []Sample
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, err := screenfile.FormatFor(entry.Name()); err != nil {
			continue
		}
		found = append(found, Sample{
			Name: baseName(entry.Name()),
			Path: filepath.Join(dir, entry.Name()),
		})
	}

	return found, nil
}

// Builtin lists the embedded samples
func Builtin() []Sample {
	entries, _ := fs.ReadDir(builtin, "screens")
	out := make([]Sample, 0, len(entries))
	for _, entry := range entries {
		out = append(out, Sample{Name: baseName(entry.Name()), Path: entry.Name(), Builtin: true})
	}
	return out
}

// List returns built-in samples followed by those in LEDWALL_SAMPLES_PATH.
// A user sample with a built-in name replaces it.
func List() ([]Sample, error) {
	byName := map[string]Sample{}
	for _, s := range Builtin() {
		byName[s.Name] = s
	}
	if dir := os.Getenv(EnvVar); dir != "" {
		user, err := Discover(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", EnvVar, err)
		}
		for _, s := range user {
			byName[s.Name] = s
		}
	}

	out := make([]Sample, 0, len(byName))
	for _, s := range byName {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Load reads a sample by name
func Load(name string) (screenfile.File, error) {
	all, err := List()
	if err != nil {
		return screenfile.File{}, err
	}
	for _, s := range all {
		if s.Name == name {
			return s.Open()
		}
	}
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name)
	}
	return screenfile.File{}, fmt.Errorf("unknown sample %q (known: %s)", name, strings.Join(names, ", "))
}

// Open decodes the sample's screen file
func (s Sample) Open() (screenfile.File, error) {
	if !s.Builtin {
		return screenfile.Load(s.Path)
	}
	format, err := screenfile.FormatFor(s.Path)
	if err != nil {
		return screenfile.File{}, err
	}
	data, err := builtin.ReadFile(path.Join("screens", s.Path))
	if err != nil {
		return screenfile.File{}, err
	}
	return screenfile.Decode(data, format)
}

func baseName(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file))
}
