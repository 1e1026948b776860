package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "strum"

type Config struct {
	Listen   string `koanf:"listen"`    // HTTP listen address, e.g. ":5001"
	MediaDir string `koanf:"media_dir"` // directory for uploaded audio files

	Storage  StorageConfig  `koanf:"storage"`
	Playback PlaybackConfig `koanf:"playback"`
}

// StorageConfig selects the catalog backend.
type StorageConfig struct {
	Backend string `koanf:"backend"` // "sqlite" (default) or "memory"
	DBPath  string `koanf:"db_path"` // sqlite file, defaults to the xdg data dir
}

// PlaybackConfig holds playback session settings.
type PlaybackConfig struct {
	LocalOutput bool    `koanf:"local_output"` // play selected songs on the server's speakers
	Volume      float64 `koanf:"volume"`       // initial volume (0.0-1.0, default 1.0)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Listen: ":5001",
		Storage: StorageConfig{
			Backend: "sqlite",
		},
		Playback: PlaybackConfig{
			Volume: 1.0,
		},
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	switch cfg.Storage.Backend {
	case "sqlite", "memory":
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	if cfg.Playback.Volume < 0 || cfg.Playback.Volume > 1 {
		cfg.Playback.Volume = 1.0
	}

	cfg.MediaDir = expandPath(cfg.MediaDir)
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if cfg.MediaDir == "" {
		dir, err := xdg.DataFile(filepath.Join(appName, "media"))
		if err != nil {
			return nil, err
		}
		cfg.MediaDir = dir
	}
	if cfg.Storage.Backend == "sqlite" && cfg.Storage.DBPath == "" {
		path, err := xdg.DataFile(filepath.Join(appName, appName+".db"))
		if err != nil {
			return nil, err
		}
		cfg.Storage.DBPath = path
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/strum/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
