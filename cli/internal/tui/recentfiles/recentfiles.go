// ABOUTME: Remembers recently opened screen files for the studio picker
// ABOUTME: Stores entries as TOML in the XDG config directory

package recentfiles

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// MaxRecentFiles is the maximum number of entries kept
const MaxRecentFiles = 8

// Entry is one remembered screen file
type Entry struct {
	Path     string    `toml:"path"`
	Name     string    `toml:"name,omitempty"`
	OpenedAt time.Time `toml:"opened_at"`
}

// Label returns the screen name, or the file name when the screen is unnamed
func (e Entry) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return filepath.Base(e.Path)
}

type recentData struct {
	Screens []Entry `toml:"screens"`
}

// RecentFiles manages the list of recently opened screen files
type RecentFiles struct {
	configDir string
	entries   []Entry
	now       func() time.Time
}

// New creates a manager storing its list under configDir
func New(configDir string) *RecentFiles {
	return &RecentFiles{configDir: configDir, now: time.Now}
}

// DefaultConfigDir returns the config directory following XDG conventions
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ledwall")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ledwall")
}

func (rf *RecentFiles) configFile() string {
	return filepath.Join(rf.configDir, "recent.toml")
}

// Load reads the list from disk, dropping files that no longer exist.
// An unreadable list starts fresh.
func (rf *RecentFiles) Load() ([]Entry, error) {
	data, err := os.ReadFile(rf.configFile())
	if os.IsNotExist(err) {
		rf.entries = []Entry{}
		return rf.entries, nil
	}
	if err != nil {
		return nil, err
	}

	var recent recentData
	if _, err := toml.Decode(string(data), &recent); err != nil {
		rf.entries = []Entry{}
		return rf.entries, nil
	}

	rf.entries = make([]Entry, 0, len(recent.Screens))
	for _, e := range recent.Screens {
		if _, err := os.Stat(e.Path); err == nil {
			rf.entries = append(rf.entries, e)
		}
	}
	return rf.entries, nil
}

// Save writes entries to disk, most recent first
func (rf *RecentFiles) Save(entries []Entry) error {
	if err := os.MkdirAll(rf.configDir, 0755); err != nil {
		return err
	}
	if len(entries) > MaxRecentFiles {
		entries = entries[:MaxRecentFiles]
	}
	rf.entries = entries

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(recentData{Screens: entries}); err != nil {
		return err
	}
	return os.WriteFile(rf.configFile(), buf.Bytes(), 0644)
}

// Add records path as just opened, moving it to the front if already present
func (rf *RecentFiles) Add(path, name string) error {
	if rf.entries == nil {
		if _, err := rf.Load(); err != nil {
			rf.entries = []Entry{}
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	updated := make([]Entry, 0, len(rf.entries)+1)
	updated = append(updated, Entry{Path: path, Name: name, OpenedAt: rf.now().UTC().Truncate(time.Second)})
	for _, e := range rf.entries {
		if e.Path != path {
			updated = append(updated, e)
		}
	}
	return rf.Save(updated)
}

// List returns the current entries, loading them on first use
func (rf *RecentFiles) List() []Entry {
	if rf.entries == nil {
		rf.Load()
	}
	return rf.entries
}
