package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/demo"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumPlayers = 40
	defaultTopN       = 10
	defaultWorkers    = 4
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9090", "Base URL of the analyzer service")
		numPlayers = flag.Int("players", defaultNumPlayers, "Number of players to generate and submit")
		club       = flag.String("club", "Demo FC", "Club name for the generated squad")
		tactic     = flag.String("tactic", "4-4-2 Classic", "Tactic to analyze")
		role       = flag.String("role", "CD-D", "Role for the leaderboard query")
		topN       = flag.Int("top", defaultTopN, "Number of leaderboard entries to fetch")
		workers    = flag.Int("workers", defaultWorkers, "Number of concurrent submit workers")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() { _ = logger.Sync() }()

	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &demo.Config{
		BaseURL:    *baseURL,
		NumPlayers: *numPlayers,
		Club:       *club,
		Tactic:     *tactic,
		Role:       *role,
		TopN:       *topN,
		Workers:    *workers,
		Timeout:    *timeout,
		Verbose:    *verbose,
	}

	if err := demo.Run(ctx, config); err != nil {
		os.Stderr.WriteString("demo failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
