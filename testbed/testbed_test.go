package testbed

import (
	"testing"
	"time"

	"github.com/spaghettifunk/kiln/engine/app"
	"github.com/spaghettifunk/kiln/engine/core"
	"github.com/spaghettifunk/kiln/engine/ecs"
	"github.com/spaghettifunk/kiln/engine/input"
)

type stepSource struct {
	now  time.Time
	step time.Duration
}

func (s *stepSource) Now() time.Time {
	s.now = s.now.Add(s.step)
	return s.now
}

func TestSpinnersAdvanceWithTime(t *testing.T) {
	var spinners []*Spinner
	runner := func(a *app.App) error {
		src := &stepSource{now: time.Unix(0, 0), step: 500 * time.Millisecond}
		a.SetClock(core.NewClockWithSource(src.Now))
		if err := a.Startup(); err != nil {
			return err
		}
		for range 3 {
			if err := a.Frame(); err != nil {
				return err
			}
		}
		ecs.Each(a.World(), func(_ ecs.Entity, s *Spinner) {
			spinners = append(spinners, s)
		})
		return nil
	}

	err := app.NewBuilder().
		AddPlugin(input.InputPlugin{}).
		AddPlugin(TestbedPlugin{Speeds: []float32{90, 300}}).
		SetRunner(runner).
		Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(spinners) != 2 {
		t.Fatalf("got %d spinners, want 2", len(spinners))
	}

	// Every clock read advances half a second, so three frames cover 1.5s.
	want := []float32{135, 90}
	for i, s := range spinners {
		if diff := s.Angle - want[i]; diff > 1e-3 || diff < -1e-3 {
			t.Errorf("spinner %d angle = %v, want %v", i, s.Angle, want[i])
		}
	}
}
