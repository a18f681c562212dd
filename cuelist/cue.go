package cuelist

import (
	"github.com/robmorgan/fade/color"
	"github.com/robmorgan/fade/interpolate"
)

// I've borrowed heavily from: http://www.stagelightingprimer.com/index.html?slfs-control.html&2

// Cue fades the output to a single color.
type Cue struct {
	// The name or label associated with the cue
	Name string

	// Target is the color the cue fades to.
	Target color.Color

	// A cue's "time" is a measure of how long it takes the cue to complete, once it has been executed. In
	// milliseconds; 0 snaps straight to the target.
	FadeTime uint32

	// How long to hold the target once the fade completes before following on to the next cue, in milliseconds.
	WaitTime uint32

	// Curve shapes the fade.
	Curve interpolate.Curve
}
