package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/fade/color"
	"github.com/robmorgan/fade/cuelist"
	"github.com/robmorgan/fade/interpolate"
	"github.com/robmorgan/fade/logger"
	"github.com/robmorgan/fade/rhythm"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// GlobalFPS is the default number of frames rendered per second.
	GlobalFPS = 40

	// DefaultTempo is used to convert fade_beats into time.
	DefaultTempo = 120.0
)

// ShowConfig represents a show: a starting color and the cues that fade away from it.
type ShowConfig struct {
	// Project logger
	Logger *logrus.Logger `yaml:"-"`

	Name string `yaml:"name"`

	// Initial is the hex color the show starts from.
	Initial string `yaml:"initial"`

	FPS   int     `yaml:"fps"`
	Tempo float64 `yaml:"tempo"`
	Loop  bool    `yaml:"loop"`

	Cues []CueConfig `yaml:"cues"`
}

// CueConfig describes a single cue in a show file.
type CueConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`

	// Fade and Wait are Go durations, e.g. "1.5s". FadeBeats takes priority
	// over Fade when set.
	Fade      string  `yaml:"fade"`
	FadeBeats float64 `yaml:"fade_beats"`
	Wait      string  `yaml:"wait"`

	Curve interpolate.Curve `yaml:"curve"`
}

// Create a new ShowConfig object with reasonable defaults for real usage
func NewShowConfig() ShowConfig {
	return ShowConfig{
		Logger:  logger.GetProjectLogger(),
		Name:    "sunrise",
		Initial: "#000000",
		FPS:     GlobalFPS,
		Tempo:   DefaultTempo,
		Cues: []CueConfig{
			{Name: "dawn", Color: "#400010", Fade: "2s", Curve: interpolate.Smooth},
			{Name: "amber", Color: "#ff6a00", FadeBeats: 4, Wait: "500ms", Curve: interpolate.Smooth},
			{Name: "daylight", Color: "#fff4e5", Fade: "3s", Curve: interpolate.InOutSine},
		},
	}
}

// Load reads a YAML show file. Fields missing from the file keep their defaults.
func Load(path string) (ShowConfig, error) {
	cfg := NewShowConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.WithStackTrace(err)
	}

	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error loading show %s: %w", path, err)
	}

	cfg.Logger.WithFields(logrus.Fields{"show": cfg.Name, "cues": len(cfg.Cues)}).Debug("loaded show")
	return cfg, nil
}

// Parse decodes YAML over cfg and validates the result.
func Parse(data []byte, cfg *ShowConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.WithStackTrace(err)
	}
	return cfg.Validate()
}

// Validate checks every field can be turned into a cue list.
func (c ShowConfig) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if _, err := color.FromHex(c.Initial); err != nil {
		return fmt.Errorf("initial: %w", err)
	}
	if len(c.Cues) == 0 {
		return fmt.Errorf("show %q has no cues", c.Name)
	}

	for i, cue := range c.Cues {
		if _, err := c.buildCue(cue); err != nil {
			return fmt.Errorf("cue %d (%s): %w", i+1, cue.Name, err)
		}
	}

	return nil
}

// FrameInterval returns the time between rendered frames.
func (c ShowConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// BuildCueList turns the show into a playable cue list.
func (c ShowConfig) BuildCueList() (*cuelist.CueList, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	initial, _ := color.FromHex(c.Initial)
	cl := cuelist.NewCueList(c.Name, initial)
	cl.Loop = c.Loop

	for _, cc := range c.Cues {
		cue, err := c.buildCue(cc)
		if err != nil {
			return nil, err
		}
		cl.AddCue(cue)
	}

	return cl, nil
}

func (c ShowConfig) buildCue(cc CueConfig) (*cuelist.Cue, error) {
	target, err := color.FromHex(cc.Color)
	if err != nil {
		return nil, err
	}

	fade, err := parseMillis(cc.Fade)
	if err != nil {
		return nil, fmt.Errorf("fade: %w", err)
	}
	if cc.FadeBeats < 0 {
		return nil, fmt.Errorf("fade_beats must not be negative, got %v", cc.FadeBeats)
	}
	if cc.FadeBeats > 0 {
		if c.Tempo <= 0 {
			return nil, fmt.Errorf("fade_beats needs a positive tempo, got %v", c.Tempo)
		}
		fade = rhythm.BeatsToMilliseconds(cc.FadeBeats, c.Tempo)
	}

	wait, err := parseMillis(cc.Wait)
	if err != nil {
		return nil, fmt.Errorf("wait: %w", err)
	}

	return &cuelist.Cue{
		Name:     cc.Name,
		Target:   target,
		FadeTime: fade,
		WaitTime: wait,
		Curve:    cc.Curve,
	}, nil
}

// parseMillis converts a duration string into whole milliseconds. An empty
// string is zero.
func parseMillis(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration %s is negative", s)
	}

	ms := d / time.Millisecond
	if ms > math.MaxUint32 {
		return 0, fmt.Errorf("duration %s is too long", s)
	}
	return uint32(ms), nil
}
