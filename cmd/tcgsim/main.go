package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"github.com/peterkuimelis/tcgsim/internal/catalog"
	"github.com/peterkuimelis/tcgsim/internal/config"
	"github.com/peterkuimelis/tcgsim/internal/repl"
	"github.com/peterkuimelis/tcgsim/internal/table"
	"github.com/peterkuimelis/tcgsim/internal/tui"
	"github.com/peterkuimelis/tcgsim/internal/web"
	"golang.org/x/sync/errgroup"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every subcommand.
type Globals struct {
	Config    string `short:"c" default:"tcgsim.hcl" help:"Path to HCL configuration file"`
	EnvFile   string `default:".env" help:"Optional .env file with TCGSIM_* overrides"`
	DecksFile string `help:"Decks file (overrides config)"`
	Deck1     string `help:"Player 1 deck: number, name or .txt list (overrides config)"`
	Deck2     string `help:"Player 2 deck: number, name or .txt list (overrides config)"`
	Seed      int64  `help:"RNG seed (overrides config)"`
	LogLevel  string `short:"l" help:"Log level (overrides config)"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"1" help:"Play in the terminal UI"`
	Repl    ReplCmd          `cmd:"" help:"Play with typed input names"`
	Decks   DecksCmd         `cmd:"" help:"List the decks in the decks file"`
	Web     WebCmd           `cmd:"" help:"Serve the browser frontend"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tcgsim"),
		kong.Description("Hot-seat table for a two-player trading card game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// load reads the config file, the .env file and the environment, then
// applies command line overrides.
func (g *Globals) load() (*config.Config, error) {
	if err := config.LoadDotEnv(g.EnvFile); err != nil {
		return nil, fmt.Errorf("load %s: %w", g.EnvFile, err)
	}
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if g.DecksFile != "" {
		cfg.Game.DecksFile = g.DecksFile
	}
	if g.Deck1 != "" {
		cfg.Game.Deck1 = g.Deck1
	}
	if g.Deck2 != "" {
		cfg.Game.Deck2 = g.Deck2
	}
	if g.Seed != 0 {
		cfg.Game.Seed = g.Seed
	}
	if g.LogLevel != "" {
		cfg.UI.LogLevel = g.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger writes diagnostics to w at the configured level.
func newLogger(w io.Writer, level string) *charmlog.Logger {
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "tcgsim",
	})
	if lvl, err := charmlog.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// fileLogger opens the configured log file. The terminal frontends own the
// screen, so their diagnostics go there.
func fileLogger(cfg *config.Config) (*charmlog.Logger, func(), error) {
	f, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, cfg.UI.LogLevel), func() { _ = f.Close() }, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

type PlayCmd struct {
	NoSetup bool `help:"Start with unshuffled decks and no prizes"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger, closeLog, err := fileLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	t, err := table.Open(cfg.Game, table.Config{Logger: logger, NoSetup: c.NoSetup})
	if err != nil {
		return err
	}
	logger.Info("Starting terminal UI", "table", t.ID(), "deck1", cfg.Game.Deck1, "deck2", cfg.Game.Deck2)
	return tui.Run(t, tui.Options{
		Theme:     cfg.UI.Theme,
		EventRows: cfg.UI.EventRows,
		Logger:    logger,
	})
}

type ReplCmd struct {
	NoSetup bool `help:"Start with unshuffled decks and no prizes"`
}

func (c *ReplCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger, closeLog, err := fileLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	t, err := table.Open(cfg.Game, table.Config{Logger: logger, NoSetup: c.NoSetup})
	if err != nil {
		return err
	}
	ctx, stop := signalContext()
	defer stop()
	return repl.Run(ctx, t, os.Stdin, os.Stdout)
}

type DecksCmd struct{}

func (c *DecksCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	df, err := catalog.ParseDeckFile(cfg.Game.DecksFile)
	if err != nil {
		return err
	}
	for i, d := range df.Decks {
		fmt.Printf("%2d  %-30s %d cards\n", i+1, d.Name, d.Size())
	}
	return nil
}

type WebCmd struct {
	Addr    string `help:"Listen address (overrides config)"`
	Repl    bool   `help:"Also read input names from stdin"`
	NoSetup bool   `help:"Start with unshuffled decks and no prizes"`
}

func (c *WebCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Web.Addr = c.Addr
	}
	logger := newLogger(os.Stderr, cfg.UI.LogLevel)

	t, err := table.Open(cfg.Game, table.Config{Logger: logger, NoSetup: c.NoSetup})
	if err != nil {
		return err
	}
	srv := web.NewServer(t, cfg.Game.DecksFile, logger)

	ctx, stop := signalContext()
	defer stop()
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return srv.Serve(ctx, cfg.Web.Addr)
	})
	if c.Repl {
		grp.Go(func() error {
			// stdin reads do not observe ctx, so the reader is left behind on shutdown
			done := make(chan error, 1)
			go func() { done <- repl.Run(ctx, t, os.Stdin, os.Stdout) }()
			select {
			case err := <-done:
				stop()
				return err
			case <-ctx.Done():
				return nil
			}
		})
	}
	return grp.Wait()
}
