package powers

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

//go:embed characters/*.yaml
var CharactersFS embed.FS

// Load reads a character spec, preferring the on-disk copy so edits show up
// without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanCharacterPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return CharactersFS.ReadFile(clean)
}

// CharacterFiles lists the embedded character specs in name order.
func CharacterFiles() ([]string, error) {
	entries, err := CharactersFS.ReadDir("characters")
	if err != nil {
		return nil, fmt.Errorf("powers: list characters: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, "characters/"+e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(cleanCharacterPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanCharacterPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "powers/"); ok {
		s = after
	}
	if !strings.HasPrefix(s, "characters/") {
		s = "characters/" + s
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "powers/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}
	return fmt.Sprintf("scripts/%s", s)
}

func diskPath(clean string) string {
	return filepath.Join("powers", filepath.FromSlash(clean))
}
