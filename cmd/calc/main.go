package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/DjordjeVuckovic/rpn-calc/internal/history"
	"github.com/DjordjeVuckovic/rpn-calc/internal/history/factory"
	"github.com/DjordjeVuckovic/rpn-calc/internal/rpn"
	"github.com/DjordjeVuckovic/rpn-calc/internal/service"
	"github.com/DjordjeVuckovic/rpn-calc/internal/suite"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/config/env"
)

func main() {
	cfg := parseFlags()

	level, err := cfg.parseLogLevel()
	if err != nil {
		slog.Error("Invalid flags", "error", err)
		os.Exit(2)
	}
	slog.SetLogLoggerLevel(level)

	ctx := context.Background()
	engine := rpn.NewEngine()

	switch {
	case cfg.SuitePath != "":
		runSuite(cfg, engine)
	case cfg.TUI:
		if err := runTUI(engine); err != nil {
			slog.Error("Keypad failed", "error", err)
			os.Exit(1)
		}
	default:
		runCalc(ctx, cfg, engine)
	}
}

func runSuite(cfg cliConfig, engine *rpn.Engine) {
	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(1)
	}

	res := suite.Run(s, engine)
	suite.WriteTable(res, os.Stdout)
	if !res.OK() {
		os.Exit(1)
	}
}

func runCalc(ctx context.Context, cfg cliConfig, engine *rpn.Engine) {
	var store history.Storer
	if cfg.History {
		s, err := openHistory(ctx)
		if err != nil {
			slog.Error("Failed to open history store", "error", err)
			os.Exit(1)
		}
		defer s.Close()
		store = s
	}

	r := &lineRunner{
		ctx:         ctx,
		calc:        service.NewCalculator(engine, store),
		showPostfix: cfg.ShowPostfix,
		out:         os.Stdout,
		errOut:      os.Stderr,
	}

	ok := true
	switch {
	case flag.NArg() > 0:
		for _, expr := range flag.Args() {
			ok = r.run(expr) && ok
		}
	case isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()):
		r.runAll(os.Stdin, "> ")
	default:
		ok = r.runAll(os.Stdin, "")
	}

	if !ok {
		os.Exit(1)
	}
}

func openHistory(ctx context.Context) (history.Store, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/calc/.env"); err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storeCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load history configuration: %w", err)
	}
	return factory.NewStore(ctx, *storeCfg)
}
