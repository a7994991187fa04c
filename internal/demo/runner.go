package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/pkg/logger"
)

const (
	processingPollInterval = 200 * time.Millisecond
	processingWaitTimeout  = 30 * time.Second
)

// Run executes the complete demo: seed a squad, wait for the rating
// pipeline, then fetch the leaderboard and the squad analysis.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting squad demo",
		logger.String("baseURL", config.BaseURL),
		logger.Int("players", config.NumPlayers),
		logger.String("tactic", config.Tactic),
		logger.String("role", config.Role),
		logger.Int("workers", config.Workers))

	client := newHTTPClient(config.Timeout)

	if err := checkServiceHealth(ctx, config, client); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	players := generatePlayers(ctx, config, stats)

	if err := submitPlayers(ctx, config, client, players, stats); err != nil {
		return fmt.Errorf("player submission failed: %w", err)
	}

	if err := waitForProcessing(ctx, config, client); err != nil {
		return fmt.Errorf("rating pipeline did not drain: %w", err)
	}

	leaderboard, err := fetchLeaderboard(ctx, config, client, stats)
	if err != nil {
		return fmt.Errorf("leaderboard retrieval failed: %w", err)
	}
	for _, entry := range leaderboard {
		logger.Get().Info(ctx, "leaderboard entry",
			logger.Int("rank", entry.Rank),
			logger.String("name", entry.Name),
			logger.Float64("rating", entry.Rating))
	}

	result, err := fetchSquad(ctx, config, client, stats)
	if err != nil {
		return fmt.Errorf("squad analysis failed: %w", err)
	}
	for slot, pick := range result.StartingXI {
		logger.Get().Info(ctx, "starting XI pick",
			logger.String("slot", slot),
			logger.String("role", pick.Role),
			logger.String("name", pick.Name),
			logger.String("rating", pick.Rating))
	}
	for _, line := range result.PromotionLog {
		logger.Get().Info(ctx, "injury promotion", logger.String("move", line))
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config, client *HTTPClient) error {
	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}
	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// waitForProcessing polls /stats until the rating queue drains.
func waitForProcessing(ctx context.Context, config *Config, client *HTTPClient) error {
	deadline := time.Now().Add(processingWaitTimeout)

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled while waiting: %w", ctx.Err())
		case <-time.After(processingPollInterval):
		}

		resp, err := client.Get(ctx, config.BaseURL+"/stats")
		if err != nil {
			continue
		}
		body, err := readResponseBody(resp)
		if err != nil {
			continue
		}

		var stats struct {
			QueueLength  int `json:"queue_length"`
			JobsInFlight int `json:"jobs_in_flight"`
		}
		if err := json.Unmarshal(body, &stats); err != nil {
			continue
		}
		if stats.QueueLength == 0 && stats.JobsInFlight == 0 {
			logger.Get().Info(ctx, "rating pipeline drained")
			return nil
		}
	}
	return fmt.Errorf("queue still busy after %s", processingWaitTimeout)
}

// displayFinalStats logs the final demo statistics.
func displayFinalStats(ctx context.Context, stats *Stats) {
	logger.Get().Info(ctx, "demo statistics",
		logger.Int("playersGenerated", stats.PlayersGenerated),
		logger.Int("playersSubmitted", stats.PlayersSubmitted),
		logger.Int("playersFailed", stats.PlayersFailed),
		logger.Int("leaderboardEntries", stats.LeaderboardEntries),
		logger.Int("startingXIFilled", stats.StartingXIFilled),
		logger.String("duration", stats.Duration.String()))
}
