package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/champions/internal/adapters/roster"
	"github.com/okian/champions/internal/rostergen"
	"github.com/okian/champions/pkg/logger"
)

const outputFilePermission = 0o600

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := logger.InitWithWriter(stderr); err != nil {
		fmt.Fprintf(stderr, "failed to initialize logging: %v\n", err)
		return 1
	}
	log := logger.Named("roster-gen")

	def := rostergen.DefaultConfig()
	fs := flag.NewFlagSet("roster-gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		entrants    = fs.Int("entrants", def.Entrants, "Number of entrants to generate")
		categories  = fs.Int("categories", def.Categories, "Number of distinct categories")
		minCategory = fs.Uint("min-category", def.MinCategory, "Lowest category value")
		maxRank     = fs.Uint("max-rank", def.MaxRank, "Highest possible rank")
		seed        = fs.Int64("seed", def.Seed, "Random seed; equal seeds give equal rosters")
		title       = fs.String("title", "", "Roster title")
		output      = fs.String("output", "", "Output file (default: stdout)")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	entrantList, err := rostergen.Generate(ctx, rostergen.Config{
		Entrants:    *entrants,
		Categories:  *categories,
		MinCategory: *minCategory,
		MaxRank:     *maxRank,
		Seed:        *seed,
	})
	if err != nil {
		log.Error(ctx, "failed to generate roster", logger.Error(err))
		return 1
	}

	w := stdout
	if *output != "" {
		f, err := os.OpenFile(*output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermission)
		if err != nil {
			log.Error(ctx, "failed to create output file", logger.String("path", *output), logger.Error(err))
			return 1
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := roster.EncodeRoster(w, roster.Roster{Title: *title, Entrants: entrantList}); err != nil {
		log.Error(ctx, "failed to write roster", logger.Error(err))
		return 1
	}
	log.Info(ctx, "roster generated", logger.Int("entrants", len(entrantList)), logger.Int("categories", *categories))
	return 0
}
