package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	harnessName = "swebench"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory for persistent harness state.
//
//	Linux:   ~/.local/state/swebench
//	macOS:   ~/Library/Application Support/swebench
func State() string {
	return filepath.Join(xdg.StateHome, harnessName)
}

// Default directory for per-instance evaluation logs.
//
//	Linux:   ~/.local/state/swebench/logs
//	macOS:   ~/Library/Application Support/swebench/logs
func LogDir() string {
	return filepath.Join(State(), "logs")
}

// Default directory for generated prediction files.
//
//	Linux:   ~/.local/share/swebench
//	macOS:   ~/Library/Application Support/swebench
func DataDir() string {
	return filepath.Join(xdg.DataHome, harnessName)
}
