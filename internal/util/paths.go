package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir is where app keeps its database and log: $XDG_DATA_HOME/app,
// falling back to ~/.local/share/app.
func DataDir(app string) string {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"), app)
}

// ConfigDir is where app looks for config.yaml: $XDG_CONFIG_HOME/app,
// falling back to ~/.config/app.
func ConfigDir(app string) string {
	return xdgDir("XDG_CONFIG_HOME", ".config", app)
}

// ReportsDir is the default destination for exported reports, a "reports"
// directory beside the data. The config file can point it elsewhere.
func ReportsDir(dataDir string) string {
	return filepath.Join(dataDir, "reports")
}

// xdgDir resolves app under the directory named by env, or under
// homeRel inside the home directory. Without a home directory it falls
// back to the working directory.
func xdgDir(env, homeRel, app string) string {
	if base := strings.TrimSpace(os.Getenv(env)); base != "" && filepath.IsAbs(base) {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, homeRel, app)
}
