package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/vaughan0/go-ini"
)

const defaultConfigFile = "advent.ini"

// config holds the settings from the INI file:
//
//	[advent]
//	datadir = data
//	workers = 4
//
//	[inputs]
//	5 = inputs/crates.txt
type config struct {
	dataDir string
	workers int
	inputs  map[string]string
}

func defaultConfig() *config {
	return &config{
		dataDir: "data",
		inputs:  make(map[string]string),
	}
}

// loadConfig reads the INI file at path. If optional is set, a missing file
// yields the defaults.
func loadConfig(path string, optional bool) (*config, error) {
	cfg := defaultConfig()
	file, err := ini.LoadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	if err := cfg.apply(file); err != nil {
		return nil, fmt.Errorf("bad config (%s): %s", path, err)
	}
	return cfg, nil
}

func (c *config) apply(file ini.File) error {
	if dir, ok := file.Get("advent", "datadir"); ok {
		c.dataDir = dir
	}
	if s, ok := file.Get("advent", "workers"); ok {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid workers value %q", s)
		}
		c.workers = n
	}
	for day, path := range file.Section("inputs") {
		if _, ok := solutions[day]; !ok {
			return fmt.Errorf("input configured for unknown solution %q", day)
		}
		c.inputs[day] = path
	}
	return nil
}

func (c *config) inputPath(day string) string {
	if path, ok := c.inputs[day]; ok {
		return path
	}
	return filepath.Join(c.dataDir, "day"+day+".txt")
}
