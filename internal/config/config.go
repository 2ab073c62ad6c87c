// Package config loads process configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ukaji3/xltables/pkg/xltables"
)

const envPrefix = "XLTABLES_"

// Config holds settings shared by every command.
type Config struct {
	ExcelPath    string
	Sheet        string
	KnownTables  []string
	Threshold    int
	SkipRows     int
	Range        string
	UsePrintArea bool
	Formatted    bool
	Password     string
	Addr         string
	LogLevel     string
	SeqURL       string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Threshold: 85,
		SkipRows:  2,
		Addr:      ":8080",
		LogLevel:  "info",
	}
}

// Load reads envFile (ignored when missing) into the process environment,
// without overriding variables already set, then builds a Config from
// XLTABLES_* variables on top of Default.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a variable lookup function.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	get := func(key string) (string, bool) {
		v, ok := lookup(envPrefix + key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("EXCEL_PATH"); ok {
		cfg.ExcelPath = v
	}
	if v, ok := get("SHEET"); ok {
		cfg.Sheet = v
	}
	if v, ok := get("KNOWN_TABLES"); ok {
		cfg.KnownTables = SplitList(v)
	}
	if v, ok := get("RANGE"); ok {
		cfg.Range = v
	}
	if v, ok := get("PASSWORD"); ok {
		cfg.Password = v
	}
	if v, ok := get("ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := get("SEQ_URL"); ok {
		cfg.SeqURL = v
	}

	var err error
	if v, ok := get("THRESHOLD"); ok {
		if cfg.Threshold, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("%sTHRESHOLD: %w", envPrefix, err)
		}
	}
	if v, ok := get("SKIP_ROWS"); ok {
		if cfg.SkipRows, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("%sSKIP_ROWS: %w", envPrefix, err)
		}
	}
	if v, ok := get("PRINT_AREA"); ok {
		if cfg.UsePrintArea, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%sPRINT_AREA: %w", envPrefix, err)
		}
	}
	if v, ok := get("FORMATTED"); ok {
		if cfg.Formatted, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%sFORMATTED: %w", envPrefix, err)
		}
	}

	return cfg, nil
}

// Validate reports settings that make extraction impossible.
func (c Config) Validate() error {
	if c.ExcelPath == "" {
		return errors.New("no spreadsheet configured: pass --file or set " + envPrefix + "EXCEL_PATH")
	}
	if c.Threshold < 1 || c.Threshold > 100 {
		return fmt.Errorf("threshold %d out of range 1-100", c.Threshold)
	}
	if c.SkipRows < 0 {
		return fmt.Errorf("skip rows %d must not be negative", c.SkipRows)
	}
	return nil
}

// Options converts the configuration into extraction options.
func (c Config) Options() xltables.Options {
	skip := c.SkipRows
	return xltables.Options{
		Sheet:           c.Sheet,
		KnownTables:     c.KnownTables,
		Threshold:       c.Threshold,
		SkipRows:        &skip,
		Range:           c.Range,
		UsePrintArea:    c.UsePrintArea,
		FormattedValues: c.Formatted,
		Password:        c.Password,
	}
}

// SplitList splits a comma separated list, dropping blank entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
