package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/mark3labs/mcp-go/server"
	"github.com/peterkuimelis/tcgsim/internal/config"
	tcgmcp "github.com/peterkuimelis/tcgsim/internal/mcp"
)

var CLI struct {
	Config   string `short:"c" default:"tcgsim.hcl" help:"Path to HCL configuration file"`
	Decks    string `help:"Decks file (overrides config)"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
}

func main() {
	kctx := kong.Parse(&CLI, kong.Name("tcgsim-mcp"), kong.Description("MCP stdio server for a tcgsim table"))

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		kctx.Fatalf("load config: %v", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		kctx.Fatalf("environment: %v", err)
	}
	if CLI.Decks != "" {
		cfg.Game.DecksFile = CLI.Decks
	}
	if CLI.LogLevel != "" {
		cfg.UI.LogLevel = CLI.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		kctx.Fatalf("invalid configuration: %v", err)
	}

	// stdout carries the protocol
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "mcp",
	})
	if lvl, err := charmlog.ParseLevel(cfg.UI.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	s := server.NewMCPServer("tcgsim", "1.0.0")
	tcgmcp.RegisterTools(s, tcgmcp.NewSession(cfg.Game, quartz.NewReal(), logger))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
