// Package demo seeds a running analyzer with a synthetic squad and walks
// through the analysis endpoints, mirroring how a real save would be used.
package demo

import "time"

// Config holds configuration for the demo run.
type Config struct {
	BaseURL    string        // Base URL of the service
	NumPlayers int           // Number of players to generate
	Club       string        // Club name assigned to every generated player
	Tactic     string        // Tactic to analyze after seeding
	Role       string        // Role for the leaderboard query
	TopN       int           // Number of leaderboard entries to fetch
	Workers    int           // Number of concurrent submit workers
	Timeout    time.Duration // HTTP request timeout
	Verbose    bool          // Enable verbose logging
}

// Stats holds demo run statistics.
type Stats struct {
	PlayersGenerated   int
	PlayersSubmitted   int
	PlayersFailed      int
	LeaderboardEntries int
	StartingXIFilled   int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
