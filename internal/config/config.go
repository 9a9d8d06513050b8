// Package config loads the table configuration from an HCL file, with
// overrides from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
)

// Config represents the complete configuration
type Config struct {
	Game GameSettings
	Web  WebSettings
	UI   UISettings
}

// GameSettings selects the decks and the random seed for a table
type GameSettings struct {
	DecksFile   string `hcl:"decks_file,optional"`
	CatalogFile string `hcl:"catalog_file,optional"`
	Deck1       string `hcl:"deck1,optional"`
	Deck2       string `hcl:"deck2,optional"`
	Seed        int64  `hcl:"seed,optional"`
}

// WebSettings contains browser frontend settings
type WebSettings struct {
	Addr string `hcl:"addr,optional"`
}

// UISettings contains terminal interface settings
type UISettings struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFile   string `hcl:"log_file,optional"`
	Theme     string `hcl:"theme,optional"`
	EventRows int    `hcl:"event_rows,optional"`
}

// fileConfig mirrors Config with every block optional.
type fileConfig struct {
	Game *GameSettings `hcl:"game,block"`
	Web  *WebSettings  `hcl:"web,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			DecksFile: "decks/decks.yaml",
			Deck1:     "1",
			Deck2:     "2",
		},
		Web: WebSettings{
			Addr: ":8080",
		},
		UI: UISettings{
			LogLevel:  "warn",
			LogFile:   "tcgsim.log",
			Theme:     "default",
			EventRows: 8,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults, and fields left unset in the file keep their default values.
func Load(filename string) (*Config, error) {
	config := Default()
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return config, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if g := fc.Game; g != nil {
		setString(&config.Game.DecksFile, g.DecksFile)
		setString(&config.Game.CatalogFile, g.CatalogFile)
		setString(&config.Game.Deck1, g.Deck1)
		setString(&config.Game.Deck2, g.Deck2)
		if g.Seed != 0 {
			config.Game.Seed = g.Seed
		}
	}
	if w := fc.Web; w != nil {
		setString(&config.Web.Addr, w.Addr)
	}
	if u := fc.UI; u != nil {
		setString(&config.UI.LogLevel, u.LogLevel)
		setString(&config.UI.LogFile, u.LogFile)
		setString(&config.UI.Theme, u.Theme)
		if u.EventRows != 0 {
			config.UI.EventRows = u.EventRows
		}
	}
	return config, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Environment variables that override file settings.
const (
	EnvSeed     = "TCGSIM_SEED"
	EnvDecks    = "TCGSIM_DECKS"
	EnvCatalog  = "TCGSIM_CATALOG"
	EnvLogLevel = "TCGSIM_LOG_LEVEL"
	EnvAddr     = "TCGSIM_ADDR"
)

// LoadDotEnv loads variables from a .env file into the process environment
// without overwriting variables that are already set. A missing file is
// not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnv overrides settings from environment variables read through lookup
// (usually os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Game.Seed = seed
	}
	if v, ok := lookup(EnvDecks); ok {
		setString(&c.Game.DecksFile, v)
	}
	if v, ok := lookup(EnvCatalog); ok {
		setString(&c.Game.CatalogFile, v)
	}
	if v, ok := lookup(EnvLogLevel); ok {
		setString(&c.UI.LogLevel, v)
	}
	if v, ok := lookup(EnvAddr); ok {
		setString(&c.Web.Addr, v)
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.Deck1 == "" || c.Game.Deck2 == "" {
		return fmt.Errorf("both decks must be set")
	}
	if c.Web.Addr == "" {
		return fmt.Errorf("web address is required")
	}
	if c.UI.EventRows <= 0 {
		return fmt.Errorf("event rows must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validThemes := map[string]bool{
		"default": true,
		"dark":    true,
		"light":   true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	return nil
}
