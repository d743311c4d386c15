package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is loaded from an optional TOML file (CONFIG_FILEPATH) with
// environment variables layered on top. The grid is bounded here, at setup
// time; the engine rejects references outside these dimensions.
type Config struct {
	Listen           string `toml:"listen"`
	DatabaseFilepath string `toml:"database_filepath"`
	GridColumns      int    `toml:"grid_columns"`
	GridRows         int    `toml:"grid_rows"`
}

const DefaultListen = ":8080"

// defaults cover columns a..zz
const DefaultGridColumns = 702
const DefaultGridRows = 1000

func LoadConfig() (Config, error) {
	config := Config{
		Listen:      DefaultListen,
		GridColumns: DefaultGridColumns,
		GridRows:    DefaultGridRows,
	}

	if configPath := os.Getenv("CONFIG_FILEPATH"); configPath != "" {
		if _, err := toml.DecodeFile(configPath, &config); err != nil {
			return config, fmt.Errorf("config file %s: %w", configPath, err)
		}
	}

	if listen := os.Getenv("LISTEN"); listen != "" {
		config.Listen = listen
	}
	if databaseFilepath := os.Getenv("DATABASE_FILEPATH"); databaseFilepath != "" {
		config.DatabaseFilepath = databaseFilepath
	}

	var err error
	if config.GridColumns, err = envInt("GRID_COLUMNS", config.GridColumns); err != nil {
		return config, err
	}
	if config.GridRows, err = envInt("GRID_ROWS", config.GridRows); err != nil {
		return config, err
	}

	if config.GridColumns <= 0 || config.GridRows <= 0 {
		return config, fmt.Errorf("grid dimensions must be positive (columns: %d, rows: %d)", config.GridColumns, config.GridRows)
	}

	return config, nil
}

func (c Config) Grid() Grid {
	return Grid{Columns: c.GridColumns, Rows: c.GridRows}
}

func envInt(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	return value, nil
}
