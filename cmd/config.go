package cmd

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/etnz/captable"
	"github.com/etnz/captable/agent"
	"github.com/etnz/captable/renderer"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Configure.
const (
	EnvLedgerFile = "CAPTABLE_LEDGER_FILE"
	EnvCurrency   = "CAPTABLE_CURRENCY"
	EnvVerbose    = "CAPTABLE_VERBOSE"
)

const defaultLedgerFile = "purchases.jsonl"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file containing purchases (JSONL format) (default \""+defaultLedgerFile+"\")")
var configFile = flag.String("config", "captable.yaml", "Path to the YAML configuration file")
var verbose = flag.Bool("v", false, "Enable debug logging")

// config is the resolved configuration, set by Configure.
var config = DefaultConfig()

// Config holds the application settings.
//
// They are resolved in this order: command line flag, environment variable,
// configuration file, default.
type Config struct {
	LedgerFile string `yaml:"ledger_file"`
	Currency   string `yaml:"currency"`
	Order      string `yaml:"order"`
	Workers    int    `yaml:"workers"`
	Model      string `yaml:"model"`
	Verbose    bool   `yaml:"verbose"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		LedgerFile: defaultLedgerFile,
		Order:      captable.ByInvestor.String(),
		Workers:    1,
		Model:      agent.DefaultModel,
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("error reading config file %q: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("error parsing config file %q: %w", path, err)
	}
	return cfg, nil
}

// applyEnv overrides cfg with the environment variables that are set.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLedgerFile); v != "" {
		cfg.LedgerFile = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvVerbose, v, err)
		}
		cfg.Verbose = b
	}
	return nil
}

// Validate checks the values that can be checked before running a command.
func (c Config) Validate() error {
	var errs []error
	if c.LedgerFile == "" {
		errs = append(errs, errors.New("ledger file cannot be empty"))
	}
	if _, err := captable.ParseOrder(c.Order); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if c.Currency != "" {
		if err := renderer.ValidateCurrency(c.Currency); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Configure resolves the application configuration from the global flags,
// the environment and the configuration file.
//
// It must be called after the global flags have been parsed.
func Configure() error {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return err
	}
	if err := applyEnv(&cfg); err != nil {
		return err
	}
	if *ledgerFile != "" {
		cfg.LedgerFile = *ledgerFile
	}
	if *verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	config = cfg
	return nil
}
