package rating

// Option customizes an Engine.
type Option func(*Engine)

// WithOutfieldWeights replaces the outfield category weight set.
func WithOutfieldWeights(weights map[string]float64) Option {
	return func(e *Engine) {
		if len(weights) > 0 {
			e.weights = weights
		}
	}
}

// WithGoalkeeperWeights replaces the goalkeeper category weight set.
func WithGoalkeeperWeights(weights map[string]float64) Option {
	return func(e *Engine) {
		if len(weights) > 0 {
			e.gkWeights = weights
		}
	}
}

// WithKeyMultiplier sets the multiplier for a role's key attributes.
func WithKeyMultiplier(m float64) Option {
	return func(e *Engine) {
		if m > 0 {
			e.keyMult = m
		}
	}
}

// WithPreferableMultiplier sets the multiplier for a role's preferable
// attributes.
func WithPreferableMultiplier(m float64) Option {
	return func(e *Engine) {
		if m > 0 {
			e.prefMult = m
		}
	}
}
