package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/rmera/mol2props/mol2"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "mol2props.json"

type Config struct {
	Input       string `json:"input"`
	ReportJSON  string `json:"report_json"`
	LogFile     string `json:"log_file"`
	LogLevel    string `json:"log_level"`
	FailFast    bool   `json:"fail_fast"`
	KeepCommas  bool   `json:"keep_commas"`
	StartMarker string `json:"start_marker"`
	EndMarker   string `json:"end_marker"`
	Orphans     string `json:"orphans"`
}

// Default returns the configuration used when there is no config file.
func Default() *Config {
	return &Config{LogLevel: "info", StartMarker: mol2.StartMarker, EndMarker: mol2.EndMarker, Orphans: "block"}
}

// LoadConfig loads a JSON config from the given path, on top of the defaults. If path is empty,
// looks for DefaultPath, and returns the defaults if it doesn't exist. A path that was
// given explicitly must exist.
func LoadConfig(path string) (*Config, error) {
	c := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// SegmentOptions returns the segmentation options given by the config.
func (c *Config) SegmentOptions() (mol2.Options, error) {
	opts := mol2.DefaultOptions()
	if c.StartMarker != "" {
		opts.StartMarker = c.StartMarker
	}
	if c.EndMarker != "" {
		opts.EndMarker = c.EndMarker
	}
	opts.KeepCommas = c.KeepCommas
	var err error
	if opts.Orphans, err = mol2.ParseOrphanPolicy(c.Orphans); err != nil {
		return opts, err
	}
	return opts, nil
}

// Level returns the log level of the config. Unknown levels give the info level and ok=false.
func (c *Config) Level() (level log.Level, ok bool) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DebugLevel, true
	case "info", "":
		return log.InfoLevel, true
	case "warn", "warning":
		return log.WarnLevel, true
	case "error":
		return log.ErrorLevel, true
	}
	return log.InfoLevel, false
}
