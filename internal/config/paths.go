package config

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const appDirName = "MazeRun"

var unsafeChars = regexp.MustCompile(`[^a-z0-9._-]`)

func sanitize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeChars.ReplaceAllString(s, "")
	if s == "" {
		s = "default"
	}
	return s
}

// profileID picks a per-binary profile:
// 1) the explicit profile (MAZERUN_PROFILE)
// 2) <exeBase>-<hash8 of full exe path>
func profileID(explicit string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return sanitize(p)
	}
	exe, _ := os.Executable()
	base := strings.TrimSuffix(filepath.Base(exe), filepath.Ext(exe))
	sum := sha1.Sum([]byte(exe))
	return sanitize(base) + "-" + hex.EncodeToString(sum[:])[:8]
}

// ProfileDir = OS config dir / MazeRun / profile
//
//	Windows: %APPDATA%\MazeRun\<profile>\
//	macOS:   ~/Library/Application Support/MazeRun/<profile>/
//	Linux:   ~/.config/MazeRun/<profile>/
func (c Config) ProfileDir() string {
	root := c.DataDir
	if root == "" {
		root, _ = os.UserConfigDir()
		if root == "" {
			home, _ := os.UserHomeDir()
			root = filepath.Join(home, ".config")
		}
		root = filepath.Join(root, appDirName)
	}
	dir := filepath.Join(root, profileID(c.Profile))
	_ = os.MkdirAll(dir, 0o755)
	return dir
}

func (c Config) Path(name string) string {
	return filepath.Join(c.ProfileDir(), name)
}
