package level

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/levels.json
var defaultPack []byte

// Default returns the embedded level pack with random coins placed.
func Default() (*Pack, error) {
	p, err := Decode(defaultPack, ".json")
	if err != nil {
		return nil, fmt.Errorf("embedded levels: %w", err)
	}
	return p, nil
}

// Decode parses a pack or a single level in JSON or YAML (chosen by ext),
// validates it and places generated coins.
func Decode(b []byte, ext string) (*Pack, error) {
	var p Pack
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := decodeYAML(b, &p); err != nil {
			return nil, err
		}
	default:
		if err := decodeJSON(b, &p); err != nil {
			return nil, err
		}
	}
	if err := p.Prepare(); err != nil {
		return nil, err
	}
	return &p, nil
}

func decodeJSON(b []byte, p *Pack) error {
	trimmed := bytes.TrimSpace(b)
	if err := json.Unmarshal(trimmed, p); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if len(p.Levels) > 0 {
		return nil
	}
	var one Level
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return fmt.Errorf("decode json level: %w", err)
	}
	if one.ID != 0 {
		p.Levels = []Level{one}
	}
	return nil
}

func decodeYAML(b []byte, p *Pack) error {
	if err := yaml.Unmarshal(b, p); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	if len(p.Levels) > 0 {
		return nil
	}
	var one Level
	if err := yaml.Unmarshal(b, &one); err != nil {
		return fmt.Errorf("decode yaml level: %w", err)
	}
	if one.ID != 0 {
		p.Levels = []Level{one}
	}
	return nil
}

// LoadDir walks dir for .json/.yaml/.yml files and merges them into one
// pack. Unreadable files are skipped with a log line.
func LoadDir(dir string) (*Pack, error) {
	var all Pack
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			log.Println("levels: skip", path, err)
			return nil
		}
		p, err := Decode(b, ext)
		if err != nil {
			log.Println("levels: skip", path, err)
			return nil
		}
		all.Levels = append(all.Levels, p.Levels...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	if err := all.Validate(); err != nil {
		return nil, fmt.Errorf("levels in %s: %w", dir, err)
	}
	all.sortByID()
	return &all, nil
}

// Load prefers dir when set and falls back to the embedded pack.
func Load(dir string) (*Pack, error) {
	if strings.TrimSpace(dir) != "" {
		p, err := LoadDir(dir)
		if err == nil {
			return p, nil
		}
		log.Println("levels:", err, "- using built-in levels")
	}
	return Default()
}

// Save writes a pack as JSON or YAML depending on the path extension.
// Generated coins are not written back.
func Save(path string, p *Pack) error {
	out := Pack{Levels: make([]Level, len(p.Levels))}
	for i, l := range p.Levels {
		l.Coins = append([]Point(nil), l.Coins...)
		l.StripGenerated()
		out.Levels[i] = l
	}
	var (
		b   []byte
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err = yaml.Marshal(out)
	default:
		b, err = json.MarshalIndent(out, "", "  ")
	}
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
