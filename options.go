package cubenet

import "github.com/SeamusWaldron/cubenet/internal/walk"

// Option configures a walk.
type Option = walk.Option

// WithTrace records the walker's position after every instruction.
// The steps are available in Result.Trace.
func WithTrace(enabled bool) Option {
	return walk.WithTrace(enabled)
}
