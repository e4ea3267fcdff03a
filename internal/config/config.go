// Package config loads the receiver's optional YAML configuration file.
//
// The wire format and decode pipeline never consult this package; it only
// supplies defaults for flags the CLI binary exposes (station position,
// archive path, metrics listen address, log level). This mirrors the
// teacher's deviceid.go convention of loading a small YAML document with
// gopkg.in/yaml.v3 at startup, read once and never touched again.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Station describes the receiver's own position, used only by the
// decoded-block renderer to compute range/bearing/UTM for a received
// aircraft position.
type Station struct {
	Name        string  `yaml:"name"`
	Latitude    float64 `yaml:"latitude"`
	Longitude   float64 `yaml:"longitude"`
	ElevationFt float64 `yaml:"elevation_ft"`
}

// Config is the full set of optional settings loadable from a YAML file.
// CLI flags always take precedence over a value loaded here; see
// cmd/uat978dec for the merge order.
type Config struct {
	Station     *Station `yaml:"station"`
	ArchivePath string   `yaml:"archive_path"`
	MetricsAddr string   `yaml:"metrics_addr"`
	LogLevel    string   `yaml:"log_level"`
	LogJSON     bool     `yaml:"log_json"`
	StatsEvery  string   `yaml:"stats_every"`
	TimeFormat  string   `yaml:"time_format"`
	StartTime   string   `yaml:"start_time"`
}

// Load reads and parses a YAML config file. A missing file is not an
// error -- callers run fine with an empty Config and flag defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &cfg, nil
}
