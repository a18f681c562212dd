package cuelist

import (
	"context"
	"time"

	"github.com/robmorgan/fade/color"
	"github.com/robmorgan/fade/logger"
	"github.com/robmorgan/fade/rhythm"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

// Sink receives every rendered frame.
type Sink func(c color.Color)

// Player renders a cue list at a fixed frame rate.
type Player struct {
	clock clock.Clock
	tick  time.Duration
}

func NewPlayer(cl clock.Clock, tick time.Duration) *Player {
	return &Player{
		clock: cl,
		tick:  tick,
	}
}

// Play starts the cue list and hands each frame to sink until the list is done
// or ctx is cancelled. Frames are stepped by the real time elapsed between
// them, so a slow sink does not slow the fades down.
func (p *Player) Play(ctx context.Context, cl *CueList, sink Sink) error {
	logger := logger.GetProjectLogger()
	logger.WithFields(logrus.Fields{"cue_list": cl.Name, "tick": p.tick}).Info("Play")

	sw := rhythm.NewStopwatch(p.clock)
	if !cl.Go() {
		return nil
	}
	sink(cl.GetValue())

	t := p.clock.NewTimer(p.tick)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Printf("Play shutdown, name=%v", cl.Name)
			return ctx.Err()
		case <-t.C():
			sink(cl.Render(sw.Lap()))
			if cl.Done() {
				logger.WithFields(logrus.Fields{"cue_list": cl.Name}).Info("cue list finished")
				return nil
			}
			t.Reset(p.tick)
		}
	}
}
