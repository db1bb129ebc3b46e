package main

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"

	"dispatchgen/log"
)

type Config struct {
	Table  TableConfig  `toml:"table"`
	Output OutputConfig `toml:"output"`
}

type TableConfig struct {
	// Path of the opcode table read when none is given on the command line.
	Path string `toml:"path"`
}

type OutputConfig struct {
	// Path the generated code is written to when no --out flag is given.
	// Empty means stdout.
	Path string `toml:"path"`
}

// The opcode table historically sits next to the generator.
const defaultTablePath = "opcode"

var ConfigDir string = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("dispatchgen")
	if err := configdir.MakePath(dir); err != nil {
		log.ModCfg.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})()

const cfgFilename = "config.toml"

// LoadConfigOrDefault loads the configuration from the dispatchgen config
// directory, or provide a default one.
func LoadConfigOrDefault() Config {
	cfg := Config{
		Table: TableConfig{Path: defaultTablePath},
	}
	path := filepath.Join(ConfigDir, cfgFilename)
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !os.IsNotExist(err) {
			log.ModCfg.Warnf("ignoring unreadable config %s: %v", path, err)
		}
		return Config{
			Table: TableConfig{Path: defaultTablePath},
		}
	}
	log.ModCfg.Debugf("loaded config from %s", path)
	return cfg
}

// SaveConfig into dispatchgen config directory.
func SaveConfig(cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(ConfigDir, cfgFilename), buf, 0644)
}
