// SPDX-License-Identifier: Unlicense OR MIT

package dial

import (
	"time"

	"gioui.org/f32"
)

// Config is the immutable configuration of a dial.
type Config struct {
	// Max is the value of a full turn.
	Max float32
	// Step is the granularity of values. Values are truncated to a
	// multiple of Step.
	Step float32
	// Mode selects the label format.
	Mode Mode
}

// DefaultConfig returns the configuration used when no attributes are
// given.
func DefaultConfig() Config {
	return Config{Max: 100, Step: 1, Mode: Numeric}
}

// State is the mutable state of a dial.
type State struct {
	// Value is the current value in domain units.
	Value float32
	// Sweep is the current swept angle in degrees.
	Sweep float32
	// Last is the last committed angle. Taps animate from it.
	Last float32
	// Filled and Empty are set while a drag is taken as having crossed
	// the seam, forcing the dial to its maximum or minimum.
	Filled, Empty bool
	// DownX is the horizontal position of the last press.
	DownX float32
}

// Dial tracks the value of a circular picker through drags, taps and
// animations.
type Dial struct {
	cfg   Config
	state State
	tween Tween
}

// New returns a dial with value zero.
func New(cfg Config) *Dial {
	return &Dial{cfg: cfg}
}

// Config returns the configuration of d.
func (d *Dial) Config() Config {
	return d.cfg
}

// State returns a snapshot of the state of d.
func (d *Dial) State() State {
	return d.state
}

// Value returns the current value.
func (d *Dial) Value() float32 {
	return d.state.Value
}

// Sweep returns the current swept angle in degrees.
func (d *Dial) Sweep() float32 {
	return d.state.Sweep
}

// Label returns the text displayed in the center of the dial.
func (d *Dial) Label() string {
	return d.cfg.Mode.Label(d.state.Value, d.cfg.Max)
}

// Animating reports whether a tap animation is in flight.
func (d *Dial) Animating() bool {
	return d.tween.Running()
}

// SetValue sets the value without animation. The value is quantized to
// the step and clamped to the range of the dial.
func (d *Dial) SetValue(v float32) {
	if d.tween.Running() {
		d.tween.End()
	}
	if v < 0 {
		v = 0
	} else if d.cfg.Max > 0 && v > d.cfg.Max {
		v = d.cfg.Max
	}
	v = Quantize(v, d.cfg.Step)
	d.state.Value = v
	d.state.Sweep = SweepFor(v, d.cfg.Max)
	d.state.Last = d.state.Sweep
}

// AnimateTo animates the dial from the last committed angle to the
// angle of v, starting at now.
func (d *Dial) AnimateTo(v float32, now time.Time) {
	d.animate(SweepFor(v, d.cfg.Max), now)
}

// Press starts a gesture at pos.
func (d *Dial) Press(pos f32.Point) {
	d.state.DownX = pos.X
	d.state.Filled, d.state.Empty = false, false
}

// Move handles a pointer move to pos during a gesture around center.
// Moves within slop of the press, or during an animation, are ignored.
// Move reports whether the dial was updated.
func (d *Dial) Move(pos, center f32.Point, slop float32) bool {
	if abs(d.state.DownX-pos.X) <= slop || d.tween.Running() {
		return false
	}
	d.drag(AngleFromPoint(pos, center))
	return true
}

// Release ends a gesture at pos. A release within slop of the press is
// a tap and animates the dial to the tapped angle, starting at now.
// Release reports whether it started an animation.
func (d *Dial) Release(pos, center f32.Point, slop float32, now time.Time) bool {
	if abs(d.state.DownX-pos.X) >= slop {
		return false
	}
	d.animate(AngleFromPoint(pos, center), now)
	d.state.Filled, d.state.Empty = false, false
	return true
}

// Cancel aborts a gesture. A cancel never counts as a tap, whatever
// the distance from the press.
func (d *Dial) Cancel() {
	d.state.Filled, d.state.Empty = false, false
}

// Tick advances the animation to now. It reports whether the animation
// is still running.
func (d *Dial) Tick(now time.Time) bool {
	if !d.tween.Running() {
		return false
	}
	d.setSweep(d.tween.At(now))
	if !d.tween.Running() {
		d.state.Last = d.state.Sweep
	}
	return d.tween.Running()
}

// animate starts a tween to angle. An animation in flight is completed
// first.
func (d *Dial) animate(angle float32, now time.Time) {
	if d.tween.Running() {
		d.setSweep(d.tween.End())
		d.state.Last = d.state.Sweep
	}
	d.tween.Run(d.state.Last, angle, now, TapDuration)
	d.setSweep(d.tween.At(now))
}

func (d *Dial) setSweep(sweep float32) {
	d.state.Sweep = sweep
	d.state.Value = Quantize(ValueFor(sweep, d.cfg.Max), d.cfg.Step)
}

// drag moves the dial to angle, detecting crossings of the seam.
func (d *Dial) drag(angle float32) {
	s := &d.state
	s.Sweep = angle

	switch delta := s.Sweep - s.Last; {
	case delta < -jumpThreshold && !s.Filled && !s.Empty:
		s.Filled = true
	case delta > jumpThreshold && !s.Empty && !s.Filled:
		s.Empty = true
	}

	switch {
	case s.Filled && s.Sweep < Turn && s.Sweep > filledClear:
		s.Filled = false
	case s.Empty && s.Sweep < emptyClear && s.Sweep > 0:
		s.Empty = false
	}

	switch {
	case s.Filled:
		s.Sweep = AlmostTurn
	case s.Empty:
		s.Sweep = 0
	default:
		s.Last = s.Sweep
	}

	s.Value = Quantize(ValueFor(s.Sweep+remainder, d.cfg.Max), d.cfg.Step)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
