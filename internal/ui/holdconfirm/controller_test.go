package holdconfirm_test

import (
	"testing"
	"time"

	"beatline/internal/core/model"
	"beatline/internal/ui/holdconfirm"

	"gotest.tools/v3/assert"
	"pgregory.net/rapid"
)

func testConfig() model.HoldConfig {
	return model.HoldConfig{
		ActivationDelay: 400 * time.Millisecond,
		ReleasePause:    200 * time.Millisecond,
		ReverseDuration: 300 * time.Millisecond,
	}
}

func advanceBy(controller *holdconfirm.Controller, total, step time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		controller.Advance(step)
	}
}

func TestHoldCompletesAndFiresOnce(t *testing.T) {
	t.Parallel()
	controller := holdconfirm.New(testConfig())

	var confirms int
	controller.SetOnConfirm(func() { confirms++ })

	controller.Begin()
	advanceBy(controller, 500*time.Millisecond, 16*time.Millisecond)

	assert.Equal(t, controller.State(), holdconfirm.StateConfirmed)
	assert.Equal(t, controller.Progress(), 1.0)
	assert.Equal(t, confirms, 1)

	// Further frames and begins must not re-fire.
	advanceBy(controller, 500*time.Millisecond, 16*time.Millisecond)
	controller.Begin()
	advanceBy(controller, 500*time.Millisecond, 16*time.Millisecond)
	assert.Equal(t, confirms, 1)
}

func TestReleaseBeforeCompletionReverses(t *testing.T) {
	t.Parallel()
	controller := holdconfirm.New(testConfig())

	var confirms int
	controller.SetOnConfirm(func() { confirms++ })

	controller.Begin()
	controller.Advance(200 * time.Millisecond)
	held := controller.Progress()
	assert.Assert(t, held > 0.4 && held < 0.6)

	controller.Release()
	assert.Equal(t, controller.State(), holdconfirm.StatePaused)

	// Progress freezes for the release pause.
	controller.Advance(100 * time.Millisecond)
	assert.Equal(t, controller.Progress(), held)

	// Then reverses down to zero.
	advanceBy(controller, time.Second, 16*time.Millisecond)
	assert.Equal(t, controller.Progress(), 0.0)
	assert.Equal(t, controller.State(), holdconfirm.StateIdle)
	assert.Equal(t, confirms, 0)
}

func TestBeginDuringReversalResumes(t *testing.T) {
	t.Parallel()
	controller := holdconfirm.New(testConfig())

	controller.Begin()
	controller.Advance(300 * time.Millisecond)
	controller.Release()

	// Through the pause and partway down.
	controller.Advance(200 * time.Millisecond)
	controller.Advance(100 * time.Millisecond)
	assert.Equal(t, controller.State(), holdconfirm.StateReversing)
	midway := controller.Progress()
	assert.Assert(t, midway > 0 && midway < 0.75)

	controller.Begin()
	assert.Equal(t, controller.State(), holdconfirm.StateHolding)
	assert.Equal(t, controller.Progress(), midway)

	var confirms int
	controller.SetOnConfirm(func() { confirms++ })
	advanceBy(controller, 500*time.Millisecond, 16*time.Millisecond)
	assert.Equal(t, confirms, 1)
}

func TestConfirmedIgnoresReleaseWithoutMultipleFires(t *testing.T) {
	t.Parallel()
	controller := holdconfirm.New(testConfig())

	controller.Begin()
	controller.Advance(400 * time.Millisecond)
	assert.Equal(t, controller.State(), holdconfirm.StateConfirmed)

	controller.Release()
	advanceBy(controller, time.Second, 16*time.Millisecond)
	assert.Equal(t, controller.State(), holdconfirm.StateConfirmed)
	assert.Equal(t, controller.Progress(), 1.0)

	controller.Reset()
	assert.Equal(t, controller.State(), holdconfirm.StateIdle)
	assert.Equal(t, controller.Progress(), 0.0)
}

func TestMultipleFiresReArmOnRelease(t *testing.T) {
	t.Parallel()
	config := testConfig()
	config.AllowMultipleFires = true
	controller := holdconfirm.New(config)

	var confirms int
	controller.SetOnConfirm(func() { confirms++ })

	controller.Begin()
	controller.Advance(400 * time.Millisecond)
	assert.Equal(t, confirms, 1)

	controller.Release()
	advanceBy(controller, time.Second, 16*time.Millisecond)
	assert.Equal(t, controller.State(), holdconfirm.StateIdle)

	controller.Begin()
	controller.Advance(400 * time.Millisecond)
	assert.Equal(t, confirms, 2)
}

func TestUpdateConfigKeepsInFlightHold(t *testing.T) {
	t.Parallel()
	controller := holdconfirm.New(testConfig())

	controller.Begin()
	controller.Advance(200 * time.Millisecond)
	held := controller.Progress()

	faster := testConfig()
	faster.ActivationDelay = 100 * time.Millisecond
	controller.UpdateConfig(faster)

	assert.Equal(t, controller.Progress(), held)
	controller.Advance(100 * time.Millisecond)
	assert.Equal(t, controller.State(), holdconfirm.StateConfirmed)
}

func TestZeroDeltaAndDefaults(t *testing.T) {
	t.Parallel()
	controller := holdconfirm.New(model.HoldConfig{})

	controller.Begin()
	controller.Advance(0)
	controller.Advance(-time.Second)
	assert.Equal(t, controller.Progress(), 0.0)

	advanceBy(controller, holdconfirm.DefaultActivationDelay+50*time.Millisecond, 16*time.Millisecond)
	assert.Equal(t, controller.State(), holdconfirm.StateConfirmed)
}

func TestOnProgressReportsMovement(t *testing.T) {
	t.Parallel()
	controller := holdconfirm.New(testConfig())

	var reported []float64
	controller.SetOnProgress(func(progress float64) {
		reported = append(reported, progress)
	})

	controller.Begin()
	controller.Advance(100 * time.Millisecond)
	controller.Advance(100 * time.Millisecond)
	assert.Equal(t, len(reported), 2)
	assert.Assert(t, reported[1] > reported[0])
}

func TestProgressBounds_Property(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		controller := holdconfirm.New(testConfig())

		var confirms int
		controller.SetOnConfirm(func() { confirms++ })

		steps := rapid.IntRange(1, 80).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				controller.Begin()
			case 1:
				controller.Release()
			case 2:
				delta := rapid.IntRange(1, 500).Draw(t, "delta")
				controller.Advance(time.Duration(delta) * time.Millisecond)
			}

			progress := controller.Progress()
			if progress < 0 || progress > 1 {
				t.Fatalf("progress %f out of [0,1]", progress)
			}
		}

		if confirms > 1 {
			t.Fatalf("confirm fired %d times without AllowMultipleFires", confirms)
		}
	})
}
