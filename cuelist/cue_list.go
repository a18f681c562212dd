package cuelist

import (
	"github.com/robmorgan/fade/color"
	"github.com/robmorgan/fade/interpolate"
	"github.com/robmorgan/fade/logger"
	"github.com/sirupsen/logrus"
)

// CueList stores a list of cues and plays them back one after another through
// a single fader. Each cue fades from wherever the previous one left off.
type CueList struct {
	Name string

	Cues []*Cue

	// Loop restarts from the first cue after the last one instead of stopping.
	Loop bool

	fader *interpolate.ColorInterpolator

	// index of the active cue, -1 before the first Go
	current int
	active  *Cue

	waitLeft uint32
}

// State is a snapshot of the playback position.
type State struct {
	CueIndex int
	CueName  string
	Color    color.Color

	// Progress is the linear progress of the active fade.
	Progress float64
	FadeLeft uint32
	WaitLeft uint32
	Done     bool
}

func NewCueList(cueListName string, initial color.Color) *CueList {
	logger := logger.GetProjectLogger()
	logger.Debugf("Cue list created with name: %s", cueListName)

	return &CueList{
		Name:    cueListName,
		Cues:    make([]*Cue, 0),
		fader:   interpolate.NewColor(initial, interpolate.Linear),
		current: -1,
	}
}

func (cl *CueList) AddCue(cue *Cue) {
	cl.Cues = append(cl.Cues, cue)
}

// Go starts the next cue, redirecting any fade still in progress. It returns
// false when there is nothing left to play.
func (cl *CueList) Go() bool {
	next := cl.current + 1
	if next >= len(cl.Cues) {
		if !cl.Loop || len(cl.Cues) == 0 {
			cl.active = nil
			cl.current = len(cl.Cues)
			return false
		}
		next = 0
	}

	cue := cl.Cues[next]
	cl.current = next
	cl.active = cue
	cl.waitLeft = cue.WaitTime

	cl.fader.SetCurve(cue.Curve)
	cl.fader.SetValue(cue.Target, cue.FadeTime)

	logger := logger.GetProjectLogger()
	logger.WithFields(logrus.Fields{
		"cue_list": cl.Name,
		"cue_name": cue.Name,
		"fade_ms":  cue.FadeTime,
		"curve":    cue.Curve.String(),
		"color":    cue.Target.Hex(),
	}).Info("Go")

	return true
}

// Render is called each time a new frame is requested. elapsed is the time
// since the previous frame in milliseconds.
func (cl *CueList) Render(elapsed uint32) color.Color {
	if cl.active == nil {
		return cl.fader.GetValue()
	}

	if !cl.fader.IsDone() {
		cl.fader.Step(elapsed)
		elapsed = 0
	}

	if cl.fader.JustFinished() {
		logger := logger.GetProjectLogger()
		logger.WithFields(logrus.Fields{"cue_list": cl.Name, "cue_name": cl.active.Name}).Debug("fade complete")
	}

	if cl.fader.IsDone() {
		if cl.waitLeft > elapsed {
			cl.waitLeft -= elapsed
		} else {
			cl.waitLeft = 0
			cl.Go()
		}
	}

	return cl.fader.GetValue()
}

// GetValue returns the current output color.
func (cl *CueList) GetValue() color.Color {
	return cl.fader.GetValue()
}

// ActiveCue returns the cue being played, or nil.
func (cl *CueList) ActiveCue() *Cue {
	return cl.active
}

// Done reports whether the last cue has faded and held.
func (cl *CueList) Done() bool {
	return cl.current >= 0 && cl.active == nil
}

func (cl *CueList) GetState() State {
	s := State{
		CueIndex: cl.current,
		Color:    cl.fader.GetValue(),
		Progress: cl.fader.GetProgress(),
		FadeLeft: cl.fader.GetTimeLeft(),
		WaitLeft: cl.waitLeft,
		Done:     cl.Done(),
	}
	if cl.active != nil {
		s.CueName = cl.active.Name
	}
	return s
}
