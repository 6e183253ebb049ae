package core

import "time"

type Clock struct {
	startTime time.Time
	elapsed   time.Duration
	now       func() time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// NewClockWithSource builds a clock that reads time from now. Used by tests
// to drive frames deterministically.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Updates the provided clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if !c.startTime.IsZero() {
		c.elapsed = c.now().Sub(c.startTime)
	}
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = c.now()
	c.elapsed = 0
}

// Stops the provided clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.startTime = time.Time{}
}

func (c *Clock) Running() bool {
	return !c.startTime.IsZero()
}

// Elapsed returns the seconds since Start as of the last Update.
func (c *Clock) Elapsed() float64 {
	return c.elapsed.Seconds()
}

// Time is the per-frame time resource. Current is the elapsed time since the
// clock started and Delta the time since the previous frame, both in seconds.
// It is written once per frame before PreUpdate; systems only read it.
type Time struct {
	Current float64
	Delta   float64
}

// Advance moves the time resource to the clock's current reading.
func (t *Time) Advance(c *Clock) {
	c.Update()
	elapsed := c.Elapsed()
	t.Delta = elapsed - t.Current
	if t.Delta < 0 {
		t.Delta = 0
	}
	t.Current = elapsed
}

func (t *Time) DeltaSeconds() float32 {
	return float32(t.Delta)
}
