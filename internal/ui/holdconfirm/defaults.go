package holdconfirm

import (
	"time"

	"beatline/internal/core/model"
)

// Default hold timings. The activation delay is deliberately long
// enough that a stray click cannot confirm a destructive action.
const (
	DefaultActivationDelay = 400 * time.Millisecond
	DefaultReleasePause    = 200 * time.Millisecond
	DefaultReverseDuration = 300 * time.Millisecond
)

// DefaultConfig returns the stock hold configuration.
func DefaultConfig() model.HoldConfig {
	return model.HoldConfig{
		ActivationDelay: DefaultActivationDelay,
		ReleasePause:    DefaultReleasePause,
		ReverseDuration: DefaultReverseDuration,
	}
}
