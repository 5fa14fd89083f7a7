package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// ArchiveRoot is the directory holding the unpacked Messenger export,
	// typically the "messages" folder of a Facebook data download.
	ArchiveRoot string `toml:"archive_root"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ArchiveRoot: filepath.Join(home, "facebook-export", "messages"),
	}

	cfgPath := filepath.Join(home, ".config", "msgstats", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.ArchiveRoot = expandHome(cfg.ArchiveRoot, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
