package squad

// Option customizes an Optimizer.
type Option func(*Optimizer)

// WithAPTWeightFunc sets the agreed-playing-time multiplier lookup used in
// selection scores.
func WithAPTWeightFunc(f func(status string) float64) Option {
	return func(o *Optimizer) {
		if f != nil {
			o.aptWeight = f
		}
	}
}

// WithNaturalPositionBonus sets the multiplier applied when a slot's role
// matches one of the candidate's natural positions.
func WithNaturalPositionBonus(bonus float64) Option {
	return func(o *Optimizer) {
		if bonus >= 1.0 {
			o.naturalBonus = bonus
		}
	}
}

// WithDepthCap caps how many distinct roles one player may cover in the
// depth chart.
func WithDepthCap(n int) Option {
	return func(o *Optimizer) {
		if n > 0 {
			o.depthCap = n
		}
	}
}

// WithYouthAgeFunc sets the inclusive youth age cutoff lookup for the
// development split.
func WithYouthAgeFunc(f func(goalkeeper bool) int) Option {
	return func(o *Optimizer) {
		if f != nil {
			o.youthAge = f
		}
	}
}
