package demo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/pkg/logger"
)

// HTTPClient wraps http.Client with a shared timeout.
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body any) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// submitPlayers uploads the squad in per-worker batches.
func submitPlayers(ctx context.Context, config *Config, client *HTTPClient, players []model.Player, stats *Stats) error {
	logger.Get().Info(ctx, "submitting players",
		logger.Int("count", len(players)),
		logger.Int("workers", config.Workers))

	endpoint := config.BaseURL + "/players"

	workers := config.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(players) {
		workers = len(players)
	}
	batchSize := (len(players) + workers - 1) / workers

	var (
		submitted int64
		failed    int64
		wg        sync.WaitGroup
	)

	for start := 0; start < len(players); start += batchSize {
		end := start + batchSize
		if end > len(players) {
			end = len(players)
		}
		batch := players[start:end]

		wg.Add(1)
		go func(batch []model.Player) {
			defer wg.Done()

			resp, err := client.Post(ctx, endpoint, batch)
			if err != nil {
				atomic.AddInt64(&failed, int64(len(batch)))
				return
			}
			body, err := readResponseBody(resp)
			if err != nil || resp.StatusCode != http.StatusAccepted {
				atomic.AddInt64(&failed, int64(len(batch)))
				return
			}

			var ack struct {
				Imported int `json:"imported"`
			}
			if err := json.Unmarshal(body, &ack); err != nil {
				atomic.AddInt64(&failed, int64(len(batch)))
				return
			}
			atomic.AddInt64(&submitted, int64(ack.Imported))
			atomic.AddInt64(&failed, int64(len(batch)-ack.Imported))
		}(batch)
	}
	wg.Wait()

	stats.PlayersSubmitted = int(atomic.LoadInt64(&submitted))
	stats.PlayersFailed = int(atomic.LoadInt64(&failed))

	if stats.PlayersSubmitted == 0 {
		return fmt.Errorf("no players were accepted by the service")
	}
	logger.Get().Info(ctx, "player submission completed",
		logger.Int("submitted", stats.PlayersSubmitted),
		logger.Int("failed", stats.PlayersFailed))
	return nil
}

// fetchLeaderboard retrieves the role leaderboard.
func fetchLeaderboard(ctx context.Context, config *Config, client *HTTPClient, stats *Stats) ([]leaderboardEntry, error) {
	endpoint := fmt.Sprintf("%s/leaderboard?role=%s&limit=%d", config.BaseURL, url.QueryEscape(config.Role), config.TopN)

	resp, err := client.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("leaderboard request failed with status %d", resp.StatusCode)
	}

	var entries []leaderboardEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard: %w", err)
	}
	stats.LeaderboardEntries = len(entries)
	return entries, nil
}

// fetchSquad runs the squad analysis for the configured tactic.
func fetchSquad(ctx context.Context, config *Config, client *HTTPClient, stats *Stats) (*squadResult, error) {
	endpoint := fmt.Sprintf("%s/squad?tactic=%s&club=%s", config.BaseURL, url.QueryEscape(config.Tactic), url.QueryEscape(config.Club))

	resp, err := client.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("squad request failed with status %d", resp.StatusCode)
	}

	var result squadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode squad: %w", err)
	}

	// Count the post-injury eleven when the API supplies one.
	team := result.AdjustedXI
	if team == nil {
		team = result.StartingXI
	}
	for _, pick := range team {
		if pick.Name != "-" {
			stats.StartingXIFilled++
		}
	}
	return &result, nil
}

// leaderboardEntry mirrors the API's leaderboard read shape.
type leaderboardEntry struct {
	Rank     int     `json:"rank"`
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Club     string  `json:"club"`
	Rating   float64 `json:"rating"`
}

// squadResult mirrors the API's squad analysis read shape.
type squadResult struct {
	Tactic       string               `json:"tactic"`
	StartingXI   map[string]squadPick `json:"starting_xi"`
	BTeam        map[string]squadPick `json:"b_team"`
	AdjustedXI   map[string]squadPick `json:"adjusted_xi"`
	PromotionLog []string             `json:"promotion_log"`
	Depth        map[string]squadPick `json:"depth"`
}

type squadPick struct {
	Slot   string `json:"slot"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	Rating string `json:"rating"`
}
