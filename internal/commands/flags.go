package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/amelara/folio/internal/core/config"
)

type Flags struct {
	LogLevel     string
	LogFile      string
	ConfigPath   string
	ContentPath  string
	ProfilerPort int

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// ResolveContentPath returns the content file to load: the --content flag wins over
// the config file; empty means the built-in sample.
func (f *Flags) ResolveContentPath() string {
	if f.ContentPath != "" {
		return f.ContentPath
	}
	if f.Config != nil {
		return f.Config.Content
	}
	return ""
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "folio", "config.yaml")
}

// DefaultContentPath returns where `folio init` writes the content file.
func DefaultContentPath() string {
	return filepath.Join(filepath.Dir(DefaultConfigPath()), "portfolio.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/folio/folio.log
// On Linux: $XDG_STATE_HOME/folio/folio.log (defaults to ~/.local/state/folio/folio.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "folio", "folio.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "folio", "folio.log")
	}

	return filepath.Join(home, ".local", "state", "folio", "folio.log")
}
