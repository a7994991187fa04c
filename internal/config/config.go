// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - One immutable Config value is built at startup and passed down explicitly;
//   no component reads configuration ambiently.
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration for the squad analyzer.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory rating job queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of rating workers.
	WorkerCount int `koanf:"worker_count"`

	// DatabasePath points at the sqlite file for persistent storage.
	// Empty means in-memory storage only.
	DatabasePath string `koanf:"database_path"`

	// DefinitionsPath overrides the embedded role/tactic definitions file.
	DefinitionsPath string `koanf:"definitions_path"`

	// MaxLeaderboardLimit caps GET /roles/{role}/leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// Weights maps outfield importance tiers to category weights.
	Weights map[string]float64 `koanf:"weights"`

	// GKWeights maps goalkeeper importance tiers to category weights.
	GKWeights map[string]float64 `koanf:"gk_weights"`

	// KeyMultiplier and PreferableMultiplier boost attributes listed as
	// key/preferable for the rated role.
	KeyMultiplier        float64 `koanf:"key_multiplier"`
	PreferableMultiplier float64 `koanf:"preferable_multiplier"`

	// APTWeights maps agreed-playing-time statuses to selection multipliers.
	// Statuses not listed fall back to DefaultAPTWeight.
	APTWeights       map[string]float64 `koanf:"apt_weights"`
	DefaultAPTWeight float64            `koanf:"default_apt_weight"`

	// NaturalPositionBonus multiplies the selection score when a slot matches
	// one of the player's declared natural positions. 1.0 disables the bonus.
	NaturalPositionBonus float64 `koanf:"natural_position_bonus"`

	// OutfielderYouthAge and GoalkeeperYouthAge are the inclusive age cutoffs
	// for the development/loan logic.
	OutfielderYouthAge int `koanf:"outfielder_youth_age"`
	GoalkeeperYouthAge int `koanf:"goalkeeper_youth_age"`

	// MaxRolesPerDepthPlayer caps how many distinct roles one player may cover
	// in the depth chart.
	MaxRolesPerDepthPlayer int `koanf:"max_roles_per_depth_player"`

	// SecondTeamClub names the club whose players staff the second XI when a
	// squad request does not name one. Empty means the second XI is drawn
	// from the analyzed club's leftovers.
	SecondTeamClub string `koanf:"second_team_club"`
}

// New creates a Config populated with defaults. The tier weights and
// multipliers mirror the analyzer's long-standing defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9090",
		QueueSize:           10_000,
		WorkerCount:         4,
		MaxLeaderboardLimit: 100,
		Weights: map[string]float64{
			"Extremely Important": 8.0,
			"Important":           4.0,
			"Good":                2.0,
			"Decent":              1.0,
			"Almost Irrelevant":   0.2,
		},
		GKWeights: map[string]float64{
			"Top Importance":    10.0,
			"High Importance":   8.0,
			"Medium Importance": 6.0,
			"Key":               4.0,
			"Preferable":        2.0,
			"Other":             0.5,
		},
		KeyMultiplier:          1.5,
		PreferableMultiplier:   1.2,
		APTWeights:             map[string]float64{},
		DefaultAPTWeight:       1.0,
		NaturalPositionBonus:   1.05,
		OutfielderYouthAge:     21,
		GoalkeeperYouthAge:     24,
		MaxRolesPerDepthPlayer: 2,
	}
}

// APTWeight returns the selection multiplier for an agreed-playing-time
// status, falling back to the default weight for unknown or empty statuses.
func (c *Config) APTWeight(status string) float64 {
	if w, ok := c.APTWeights[status]; ok {
		return w
	}
	return c.DefaultAPTWeight
}

// YouthAge returns the inclusive youth age cutoff for the given kind of player.
func (c *Config) YouthAge(goalkeeper bool) int {
	if goalkeeper {
		return c.GoalkeeperYouthAge
	}
	return c.OutfielderYouthAge
}
