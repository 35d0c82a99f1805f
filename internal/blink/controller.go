package blink

// Controller computes LED blink timing from a millisecond counter.
//
// The counter is treated as a ring of size 2^32: elapsed time is computed
// with modular arithmetic, so timing stays correct across counter rollover
// (a uint32 millisecond counter wraps after ~49.7 days).
type Controller struct {
	onDuration  uint32
	offDuration uint32
	lastToggle  uint32
	on          bool
	counts      ToggleCounts
}

// NewController creates a Controller with the given on/off durations in
// milliseconds. The LED starts off with the toggle clock at zero.
func NewController(onMS, offMS uint32) *Controller {
	return &Controller{
		onDuration:  onMS,
		offDuration: offMS,
	}
}

// Update advances the controller to the given counter value and returns
// whether the LED should be on.
//
// now may appear to regress once the counter wraps; unsigned subtraction is
// modular, so now-lastToggle is the true elapsed time either side of the
// wrap. With a zero duration elapsed >= target always holds and every call
// toggles.
func (c *Controller) Update(now uint32) bool {
	elapsed := now - c.lastToggle

	target := c.offDuration
	if c.on {
		target = c.onDuration
	}

	if elapsed >= target {
		c.on = !c.on
		c.lastToggle = now
		if c.on {
			c.counts.On++
		} else {
			c.counts.Off++
		}
	}

	return c.on
}

// Reset returns the controller to its initial state: LED off, toggle clock
// and transition counts at zero.
func (c *Controller) Reset() {
	c.on = false
	c.lastToggle = 0
	c.counts = ToggleCounts{}
}

// IsOn reports whether the LED is currently on.
func (c *Controller) IsOn() bool {
	return c.on
}

// OnDuration returns the configured on duration in milliseconds.
func (c *Controller) OnDuration() uint32 {
	return c.onDuration
}

// OffDuration returns the configured off duration in milliseconds.
func (c *Controller) OffDuration() uint32 {
	return c.offDuration
}

// LastToggleTime returns the counter value recorded at the most recent
// state transition (0 before the first toggle).
func (c *Controller) LastToggleTime() uint32 {
	return c.lastToggle
}

// Counts returns the transition counts since startup or Reset.
func (c *Controller) Counts() ToggleCounts {
	return c.counts
}
