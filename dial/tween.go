// SPDX-License-Identifier: Unlicense OR MIT

package dial

import "time"

// TapDuration is the length of the animation started by a tap.
const TapDuration = 200 * time.Millisecond

// Tween animates an angle between two values with a decelerating
// curve. The zero value is an idle tween.
type Tween struct {
	From, To float32
	Start    time.Time
	Duration time.Duration

	running bool
}

// Run starts the tween from from to to at time now.
func (t *Tween) Run(from, to float32, now time.Time, d time.Duration) {
	*t = Tween{From: from, To: to, Start: now, Duration: d, running: true}
}

// Running reports whether the tween has not yet reached its end.
func (t *Tween) Running() bool {
	return t.running
}

// At returns the animated angle at time now. Once the duration has
// elapsed the tween stops and At returns To exactly.
func (t *Tween) At(now time.Time) float32 {
	if !t.running {
		return t.To
	}
	elapsed := now.Sub(t.Start)
	if elapsed < 0 {
		elapsed = 0
	}
	if t.Duration <= 0 || elapsed >= t.Duration {
		t.running = false
		return t.To
	}
	p := Decelerate(float32(elapsed) / float32(t.Duration))
	return t.From + (t.To-t.From)*p
}

// End stops the tween and returns its final angle.
func (t *Tween) End() float32 {
	t.running = false
	return t.To
}

// Decelerate eases x in [0, 1] with a curve that starts fast and slows
// down towards the end.
func Decelerate(x float32) float32 {
	return 1 - (1-x)*(1-x)
}
