// Package sound plays short synthesized cues when particles collide.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const (
	mergeBaseFreq = 660.0
	mergeLength   = 120 * time.Millisecond
	bounceFreq    = 1320.0
	bounceLength  = 25 * time.Millisecond
	maxBounceGain = 1.0
)

// Options configures a Player.
type Options struct {
	Enabled    bool
	SampleRate int
	// Volume is in powers of two relative to full scale, e.g. -1 is half.
	Volume float64
}

// Player turns collision counts into tones on the default speaker. A
// disabled or failed player stays usable and plays nothing.
type Player struct {
	rate   beep.SampleRate
	volume float64
	ready  bool
	play   func(beep.Streamer)
}

// New initialises the speaker when opts.Enabled. On failure the returned
// player is silent and the error explains why.
func New(opts Options) (*Player, error) {
	p := &Player{rate: beep.SampleRate(opts.SampleRate), volume: opts.Volume}
	if !opts.Enabled {
		return p, nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/20)); err != nil {
		return p, errors.Wrap(err, "sound: init speaker")
	}
	p.ready = true
	p.play = func(s beep.Streamer) { speaker.Play(s) }
	return p, nil
}

// Collisions plays one cue for a tick's contacts: a pitch falling with the
// largest merged mass, or a click for bounces only.
func (p *Player) Collisions(merges, bounces int, largestMerged float64) {
	if !p.ready || (merges == 0 && bounces == 0) {
		return
	}

	var s beep.Streamer
	if merges > 0 {
		freq := mergeBaseFreq / math.Cbrt(math.Max(1, largestMerged))
		s = Tone(p.rate, freq, mergeLength)
		klog.V(3).Infof("merge cue: %d merges, largest %.2f, %.0f Hz", merges, largestMerged, freq)
	} else {
		s = Tone(p.rate, bounceFreq, bounceLength)
	}

	gain := math.Min(maxBounceGain, 0.25*float64(bounces))
	p.play(&effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   p.volume + gain,
	})
}

// Stop silences anything still playing.
func (p *Player) Stop() {
	if !p.ready {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

// Tone is a decaying sine of the given frequency lasting d.
func Tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := rate.N(d)
	pos := 0
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(rate)
			env := math.Exp(-5 * float64(pos) / float64(total))
			v := math.Sin(2*math.Pi*freq*t) * env
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	}))
}
