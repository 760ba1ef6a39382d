package lumen

import (
	"time"
)

// Time is the frame clock. With a non-zero Step every frame advances by exactly Step,
// which keeps headless runs and tests deterministic.
type Time struct {
	Time  time.Time
	Dt    time.Duration
	Step  time.Duration
	Frame uint64
}

type TimeModule struct {
	Step time.Duration
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{
		Time: time.Now(),
		Step: mod.Step,
	})
	app.UseSystem(System(timeSystem).InStage(Prelude))
}

func timeSystem(t *Time) {
	now := time.Now()
	if t.Step > 0 {
		now = t.Time.Add(t.Step)
	}

	t.Dt = now.Sub(t.Time)
	t.Time = now
	t.Frame++
}
