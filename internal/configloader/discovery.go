package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths holds the discovered configuration file paths. A missing
// location is an empty string, never an error.
type ConfigPaths struct {
	// System is the system-wide config (e.g. /etc/srcfix/config.yaml).
	System string

	// User is the user-level config (e.g. ~/.config/srcfix/config.yaml).
	User string

	// Project is the project-level config (e.g. ./.srcfix.yml).
	Project string

	// Explicit is a config path provided via --config.
	Explicit string
}

// projectConfigNames are the project config file names, in preference order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigNames = []string{
	".srcfix.yml",
	".srcfix.yaml",
	"srcfix.yml",
	"srcfix.yaml",
}

// DiscoverPaths locates configuration files in the standard locations:
// the system config dir, the XDG user config dir, and the project tree
// upward from workDir.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstConfigIn(systemConfigDir()),
		User:    firstConfigIn(userConfigDir()),
		Project: project,
	}, nil
}

func systemConfigDir() string {
	if runtime.GOOS == "windows" {
		programData := os.Getenv("ProgramData")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return filepath.Join(programData, "srcfix")
	}
	return "/etc/srcfix"
}

func userConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "srcfix")
}

// firstConfigIn returns the first config.{yaml,yml} that exists in dir.
func firstConfigIn(dir string) string {
	if dir == "" {
		return ""
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		if path := filepath.Join(dir, name); fileExists(path) {
			return path
		}
	}
	return ""
}

// FindProjectConfig walks upward from startDir looking for a project config
// file. The search stops at a VCS root, the home directory, or the
// filesystem root; finding nothing is not an error.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	// Best effort; without a home dir only the other boundaries apply.
	homeDir, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}

		for _, name := range projectConfigNames {
			if path := filepath.Join(dir, name); fileExists(path) {
				return path, nil
			}
		}

		// A VCS root bounds the project; do not search past it.
		if isVCSRoot(dir) || (homeDir != "" && dir == homeDir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// isVCSRoot reports whether dir contains a version control marker directory.
func isVCSRoot(dir string) bool {
	for _, marker := range []string{".git", ".hg", ".svn"} {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
