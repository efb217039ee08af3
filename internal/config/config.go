package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/focusring/internal/util"
	"gopkg.in/yaml.v3"
)

// App holds runtime options read from config.yaml.
// The countdown interval is not configurable: each tick removes one second.
type App struct {
	DBFile     string
	ReportsDir string
}

type yamlApp struct {
	DBFile     string `yaml:"db_file"`
	ReportsDir string `yaml:"reports_dir"`
}

// DefaultApp returns the options used when no config file is present.
func DefaultApp(dataDir string) App {
	return App{
		DBFile:     filepath.Join(dataDir, DBFileName),
		ReportsDir: util.ReportsDir(dataDir),
	}
}

// Load reads the YAML config at path. A missing file yields the defaults.
// Empty values keep their default.
func Load(path, dataDir string) (App, error) {
	cfg := DefaultApp(dataDir)
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlApp
	if err := yaml.Unmarshal(raw, &fileData); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}
	applyYaml(&cfg, fileData, dataDir)
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg App) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	serialized, err := yaml.Marshal(yamlApp{
		DBFile:     cfg.DBFile,
		ReportsDir: cfg.ReportsDir,
	})
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func applyYaml(cfg *App, fileData yamlApp, dataDir string) {
	if fileData.DBFile != "" {
		cfg.DBFile = resolve(dataDir, fileData.DBFile)
	}
	if fileData.ReportsDir != "" {
		cfg.ReportsDir = resolve(dataDir, fileData.ReportsDir)
	}
}

// resolve keeps absolute paths and anchors relative ones under dataDir.
func resolve(dataDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dataDir, p)
}
