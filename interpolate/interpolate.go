// Package interpolate moves a value smoothly from one point to another over
// time.
//
// An Interpolator is a polled state machine. The owner starts a transition with
// SetValue, feeds elapsed time into Step using whatever unit it likes
// (milliseconds, frames, ticks) as long as it matches the duration passed to
// SetValue, and reads GetValue whenever it needs the current value. Nothing is
// scheduled and no clock is read here.
//
// Any type can be interpolated as long as it implements Value, with a signed
// counterpart implementing Delta to carry the difference between two values.
// Types whose components are already signed may use themselves as their delta.
//
// An Interpolator is not safe for concurrent use.
package interpolate

import "github.com/robmorgan/fade/utils"

// Value is the arithmetic an interpolated type must provide. S is the signed
// type produced by subtracting two values.
type Value[T, S any] interface {
	Add(o T) T
	Sub(o T) S
	Scale(f float64) T
}

// Delta is the signed counterpart of a Value.
type Delta[T, S any] interface {
	Scale(f float64) S

	// Offset adds a value to the delta.
	Offset(base T) S

	// Unsigned converts the delta back to a value.
	Unsigned() T
}

// Interpolator tracks a single transition between two values.
type Interpolator[T Value[T, S], S Delta[T, S]] struct {
	begin T
	end   T

	curve Curve

	// progress is the linear fraction of the transition completed, in [0,1].
	// It is derived from elapsed so that steps adding up to the duration land
	// exactly on 1.
	progress float64
	elapsed  uint32
	duration uint32

	// done latches the end of a transition once it has been reported by JustFinished.
	done bool
}

// New creates an Interpolator settled at initial.
func New[T Value[T, S], S Delta[T, S]](initial T, curve Curve) *Interpolator[T, S] {
	return &Interpolator[T, S]{
		begin:    initial,
		end:      initial,
		curve:    curve,
		progress: 1,
		elapsed:  1,
		duration: 1,
		done:     true,
	}
}

// NewDefault creates an Interpolator settled at the zero value of T.
func NewDefault[T Value[T, S], S Delta[T, S]](curve Curve) *Interpolator[T, S] {
	var zero T
	return New[T, S](zero, curve)
}

// SetCurve changes the easing curve.
//
// Changing the curve in the middle of a transition reuses the progress made so
// far under the new curve, so the value may jump.
func (i *Interpolator[T, S]) SetCurve(c Curve) {
	i.curve = c
}

func (i *Interpolator[T, S]) GetCurve() Curve {
	return i.curve
}

// GetValue returns the current value. It is computed on every call from the
// current progress.
func (i *Interpolator[T, S]) GetValue() T {
	if i.progress == 1 {
		return i.end
	} else if i.progress == 0 {
		return i.begin
	}

	weight := i.curve.Weight(i.progress)
	return i.end.Sub(i.begin).Scale(weight).Offset(i.begin).Unsigned()
}

// SetValue starts a transition from the current value to v lasting t time
// units. A transition already in flight is redirected from wherever it is.
// If t is 0 the value changes immediately.
func (i *Interpolator[T, S]) SetValue(v T, t uint32) {
	i.begin = i.GetValue()
	i.end = v
	i.duration = t

	if t == 0 {
		i.begin = v
		i.elapsed = 0
		i.progress = 1
		return
	}

	i.elapsed = 0
	i.progress = 0
	i.done = false
}

// Step moves the transition forward by t time units, in the same unit as the
// duration given to SetValue. Stepping past the end settles on the target.
func (i *Interpolator[T, S]) Step(t uint32) {
	if t > i.duration || i.progress >= 1 || i.duration == 0 || t >= i.duration-i.elapsed {
		i.elapsed = i.duration
		i.progress = 1
		return
	}

	i.elapsed += t
	i.progress = utils.Clamp(float64(i.elapsed)/float64(i.duration), 0, 1)
}

// IsDone reports whether the value has reached its target.
func (i *Interpolator[T, S]) IsDone() bool {
	return i.progress >= 1
}

// JustFinished reports true once per transition, on the first call after it
// completes.
func (i *Interpolator[T, S]) JustFinished() bool {
	if i.IsDone() && !i.done {
		i.done = true
		return true
	}
	return false
}

// GetProgress returns the fraction of the transition completed (0.0 to 1.0).
// It is always linear regardless of the curve.
func (i *Interpolator[T, S]) GetProgress() float64 {
	return i.progress
}

// GetTimeLeft returns the time units remaining in the transition, 0 once done.
func (i *Interpolator[T, S]) GetTimeLeft() uint32 {
	return i.duration - i.elapsed
}
