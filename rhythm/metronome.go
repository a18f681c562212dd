package rhythm

import (
	"math"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// Metronome keeps a beat so fade times can be expressed in beats.
// Originally based on https://github.com/Deep-Symmetry/electro/blob/main/src/main/java/org/deepsymmetry/electro/Metronome.java#L449
type Metronome struct {
	mu        sync.Mutex
	clock     clock.PassiveClock
	startTime time.Time
	tempo     float64
}

// NewMetronome creates a new Metronome at the given tempo, starting now.
func NewMetronome(c clock.PassiveClock, bpm float64) *Metronome {
	return &Metronome{
		clock:     c,
		startTime: c.Now(),
		tempo:     bpm,
	}
}

func (m *Metronome) GetTempo() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.tempo
}

// SetTempo sets a new tempo for the Metronome. The start time will be adjusted so that the current beat and phase are
// unaffected by the tempo change.
func (m *Metronome) SetTempo(bpm float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	instant := m.clock.Now()
	interval := beatsToMilliseconds(1, m.tempo)
	beat := markerNumber(instant, m.startTime, interval)
	phase := markerPhase(instant, m.startTime, interval)
	newInterval := beatsToMilliseconds(1, bpm)
	offset := time.Duration(math.Round(newInterval*(phase+float64(beat)-1)) * float64(time.Millisecond))
	m.startTime = instant.Add(-offset)
	m.tempo = bpm
}

// GetBeatInterval returns the number of milliseconds a beat lasts.
func (m *Metronome) GetBeatInterval() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return beatsToMilliseconds(1, m.tempo)
}

// GetBeat returns the current beat number, starting at 1.
func (m *Metronome) GetBeat() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return markerNumber(m.clock.Now(), m.startTime, beatsToMilliseconds(1, m.tempo))
}

// GetBeatPhase returns how far through the current beat we are, in [0,1).
func (m *Metronome) GetBeatPhase() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return markerPhase(m.clock.Now(), m.startTime, beatsToMilliseconds(1, m.tempo))
}

// Milliseconds converts a number of beats at the current tempo into the
// millisecond durations used for fades.
func (m *Metronome) Milliseconds(beats float64) uint32 {
	return BeatsToMilliseconds(beats, m.GetTempo())
}

// BeatsToMilliseconds converts beats at tempo bpm into whole milliseconds.
func BeatsToMilliseconds(beats, bpm float64) uint32 {
	if bpm <= 0 || beats <= 0 {
		return 0
	}
	ms := math.Round(60000.0 / bpm * beats)
	if ms > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(ms)
}

// beatsToMilliseconds calculates milliseconds for given beats and tempo
func beatsToMilliseconds(beats int, tempo float64) float64 {
	return (60000.0 / tempo) * float64(beats)
}

// markerNumber calculates the marker number
func markerNumber(instant, start time.Time, interval float64) int {
	return int(math.Floor(instant.Sub(start).Seconds()*1000/interval)) + 1
}

// markerPhase calculates the phase of a marker
func markerPhase(instant, start time.Time, interval float64) float64 {
	ratio := instant.Sub(start).Seconds() * 1000 / interval
	return ratio - math.Floor(ratio)
}
