package blink

// Setter is the output sink a Driver writes LED state to. Hardware,
// console, and fake implementations live in internal/led.
type Setter interface {
	Set(on bool) error
}

// Driver couples a Controller with an injected output sink. The sink is
// written on every Update call, not only on transitions, so the physical
// output always reflects the controller state.
type Driver struct {
	ctl *Controller
	out Setter
}

// NewDriver creates a Driver from an output sink and on/off durations in
// milliseconds.
func NewDriver(out Setter, onMS, offMS uint32) *Driver {
	return &Driver{
		ctl: NewController(onMS, offMS),
		out: out,
	}
}

// Update advances the controller to now and writes the resulting state to
// the sink. Returns the LED state and any sink error.
func (d *Driver) Update(now uint32) (bool, error) {
	on := d.ctl.Update(now)
	return on, d.out.Set(on)
}

// Reset resets the controller and drives the sink low.
func (d *Driver) Reset() error {
	d.ctl.Reset()
	return d.out.Set(false)
}

// Controller returns the underlying controller for state inspection.
func (d *Driver) Controller() *Controller {
	return d.ctl
}
