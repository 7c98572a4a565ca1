package holdconfirm

import (
	"sync"
	"time"

	"beatline/internal/core/model"
)

// State represents the current controller phase.
type State string

const (
	// StateIdle: no hold in flight, progress at zero.
	StateIdle State = "idle"
	// StateHolding: input held, progress rising toward one.
	StateHolding State = "holding"
	// StatePaused: input released, progress frozen for the release pause.
	StatePaused State = "paused"
	// StateReversing: progress falling back toward zero.
	StateReversing State = "reversing"
	// StateConfirmed: progress reached one and the action fired.
	StateConfirmed State = "confirmed"
)

// Controller turns a sustained input into a confirmed action. Progress
// rises toward 1 over the activation delay while held, freezes for the
// release pause when let go early, then reverses toward 0. Beginning a
// new hold mid-reversal resumes from the current progress.
//
// All interpolation is driven externally through Advance.
type Controller struct {
	mu             sync.Mutex
	config         model.HoldConfig
	state          State
	progress       float64
	pauseRemaining time.Duration
	onConfirm      func()
	onProgress     func(float64)
}

// New creates a controller. Non-positive durations fall back to defaults.
func New(config model.HoldConfig) *Controller {
	return &Controller{
		config: sanitize(config),
		state:  StateIdle,
	}
}

// SetOnConfirm sets the callback fired when a hold completes.
func (controller *Controller) SetOnConfirm(handler func()) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.onConfirm = handler
}

// SetOnProgress sets the callback fired whenever progress moves.
func (controller *Controller) SetOnProgress(handler func(float64)) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.onProgress = handler
}

// UpdateConfig replaces the runtime configuration. An in-flight hold
// keeps its progress and continues at the new rates.
func (controller *Controller) UpdateConfig(config model.HoldConfig) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.config = sanitize(config)
}

// Begin starts or resumes a hold. A confirmed controller ignores Begin
// until Reset unless repeated firing is allowed.
func (controller *Controller) Begin() {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	switch controller.state {
	case StateConfirmed:
		if !controller.config.AllowMultipleFires {
			return
		}
		controller.progress = 0
		controller.state = StateHolding
	case StateHolding:
	default:
		controller.state = StateHolding
	}
}

// Release ends the hold. Before completion the progress freezes for the
// release pause and then reverses; after completion it re-arms only
// when repeated firing is allowed.
func (controller *Controller) Release() {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	switch controller.state {
	case StateHolding:
		controller.state = StatePaused
		controller.pauseRemaining = controller.config.ReleasePause
	case StateConfirmed:
		if controller.config.AllowMultipleFires {
			controller.state = StatePaused
			controller.pauseRemaining = controller.config.ReleasePause
		}
	}
}

// Reset returns the controller to idle with zero progress.
func (controller *Controller) Reset() {
	controller.mu.Lock()
	controller.state = StateIdle
	controller.progress = 0
	controller.pauseRemaining = 0
	handler := controller.onProgress
	controller.mu.Unlock()

	if handler != nil {
		handler(0)
	}
}

// Progress returns the current progress in [0,1].
func (controller *Controller) Progress() float64 {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.progress
}

// State returns the current phase.
func (controller *Controller) State() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.state
}

// Advance moves the controller forward by one frame delta.
func (controller *Controller) Advance(delta time.Duration) {
	if delta <= 0 {
		return
	}

	controller.mu.Lock()
	before := controller.progress
	confirmed := false

	switch controller.state {
	case StateHolding:
		controller.progress += float64(delta) / float64(controller.config.ActivationDelay)
		if controller.progress >= 1 {
			controller.progress = 1
			controller.state = StateConfirmed
			confirmed = true
		}
	case StatePaused:
		controller.pauseRemaining -= delta
		if controller.pauseRemaining <= 0 {
			leftover := -controller.pauseRemaining
			controller.pauseRemaining = 0
			controller.state = StateReversing
			controller.reverseLocked(leftover)
		}
	case StateReversing:
		controller.reverseLocked(delta)
	}

	progress := controller.progress
	onProgress := controller.onProgress
	onConfirm := controller.onConfirm
	controller.mu.Unlock()

	if onProgress != nil && progress != before {
		onProgress(progress)
	}
	if confirmed && onConfirm != nil {
		onConfirm()
	}
}

func (controller *Controller) reverseLocked(delta time.Duration) {
	controller.progress -= float64(delta) / float64(controller.config.ReverseDuration)
	if controller.progress <= 0 {
		controller.progress = 0
		controller.state = StateIdle
	}
}

func sanitize(config model.HoldConfig) model.HoldConfig {
	if config.ActivationDelay <= 0 {
		config.ActivationDelay = DefaultActivationDelay
	}
	if config.ReleasePause < 0 {
		config.ReleasePause = DefaultReleasePause
	}
	if config.ReverseDuration <= 0 {
		config.ReverseDuration = DefaultReverseDuration
	}
	return config
}
