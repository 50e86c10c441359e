// Package audio plays optional feedback sounds; without an audio device every call is a no-op
package audio

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDurationMs = 100

	keyTickDurationMs = 12
	keyTickAmplitude  = 0.25

	commitLowHz          = 660.0
	commitHighHz         = 990.0
	commitNoteDurationMs = 70
	commitAmplitude      = 0.3

	rejectBuzzFrequencyHz = 120.0
	rejectBuzzDurationMs  = 150
	rejectBuzzAmplitude   = 0.2
)

// SoundManager plays short feedback sounds for UI input
// Every method is safe to call before Initialize or after Cleanup; it then does nothing
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	level       float64
	enabled     bool
	initialized bool
}

// NewSoundManager creates a sound manager at full volume
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:   mixer,
		volume:  &effects.Volume{Streamer: mixer, Base: 2},
		level:   1,
		enabled: true,
	}
}

// Initialize opens the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return err
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	log.Printf("audio: speaker ready at %d Hz", sampleRate)
	return nil
}

// Cleanup drops queued sounds and stops playback
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// SetVolume sets the linear output level, clamped to [0, 1]; 0 silences output
func (sm *SoundManager) SetVolume(level float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.level = min(max(level, 0), 1)
	sm.applyVolume()
}

// Volume returns the linear output level
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.level
}

// SetEnabled mutes or unmutes without touching the level
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.enabled = enabled
	sm.applyVolume()
}

// Enabled reports whether sounds are audible
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// applyVolume maps the linear level onto the log-scale volume effect; caller holds mu
func (sm *SoundManager) applyVolume() {
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.volume.Silent = !sm.enabled || sm.level == 0
	if sm.level > 0 {
		sm.volume.Volume = math.Log2(sm.level)
	}
}

// PlayKey plays a short click for an accepted keystroke
func (sm *SoundManager) PlayKey() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*keyTickDurationMs), NewTickGenerator(sampleRate)))
}

// PlayCommit plays a rising two-note bell when a widget commits its output
func (sm *SoundManager) PlayCommit() {
	low, err := generators.SineTone(sampleRate, commitLowHz)
	if err != nil {
		return
	}
	high, err := generators.SineTone(sampleRate, commitHighHz)
	if err != nil {
		return
	}
	n := sampleRate.N(time.Millisecond * commitNoteDurationMs)
	sm.play(&effects.Gain{
		Streamer: beep.Seq(beep.Take(n, low), beep.Take(n, high)),
		Gain:     commitAmplitude - 1,
	})
}

// PlayReject plays a low buzz for an ignored input
func (sm *SoundManager) PlayReject() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*rejectBuzzDurationMs), NewBuzzGenerator(sampleRate, rejectBuzzFrequencyHz)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * rejectBuzzAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// TickGenerator generates a decaying noise burst
type TickGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewTickGenerator creates a tick generator with a fixed seed so every tick sounds alike
func NewTickGenerator(sr beep.SampleRate) *TickGenerator {
	return &TickGenerator{sr: sr, seed: 0x2545f491}
}

func (g *TickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 400)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		sample := keyTickAmplitude * envelope * noise
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *TickGenerator) Err() error {
	return nil
}
