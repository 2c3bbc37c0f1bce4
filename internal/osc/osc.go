// Package osc implements the waveform generators that produce normalized
// test signals: a fixed-frequency sine oscillator and a linear chirp.
//
// Both generators are built on a wrapped phase accumulator. The phase is
// reduced modulo 2*pi after every sample so it stays bounded regardless of
// how many samples are produced; accumulating an unbounded phase would lose
// float64 precision on long buffers.
package osc

import (
	"math"

	"github.com/tphakala/simd/f64"
)

const (
	twoPi = 2 * math.Pi

	// msPerSecond converts millisecond durations to seconds.
	msPerSecond = 1000.0

	// unityGain leaves sample amplitudes untouched.
	unityGain = 1.0
)

// Generator produces a fully materialized sequence of normalized samples.
// A generator is single use: Samples drains the accumulator state.
type Generator interface {
	// Samples returns the complete waveform with values in [-1, 1].
	Samples() []float64

	// SampleCount returns the number of samples Samples will produce.
	SampleCount() int
}

// Oscillator is a fixed-frequency sine generator. The accumulator advances
// by a constant increment of 2*pi*frequency/sampleRate per sample.
type Oscillator struct {
	frequency  float64
	sampleRate float64
	durationMS float64

	phase     float64
	increment float64
}

// NewOscillator creates a sine oscillator for the given frequency in Hz,
// sample rate in Hz and duration in milliseconds. The sample rate must be
// positive; callers validate it before construction.
func NewOscillator(frequency, sampleRate, durationMS float64) *Oscillator {
	return &Oscillator{
		frequency:  frequency,
		sampleRate: sampleRate,
		durationMS: durationMS,
		increment:  twoPi * frequency / sampleRate,
	}
}

// SampleCount returns the buffer length in samples, rounding the exact
// duration*rate product to the nearest whole sample.
func (o *Oscillator) SampleCount() int {
	return int(math.Round(o.durationMS * o.sampleRate / msPerSecond))
}

// next emits the sample at the current phase, then advances and wraps the
// accumulator. Emitting before advancing makes the first sample sin(0).
func (o *Oscillator) next() float64 {
	s := math.Sin(o.phase)
	o.phase = math.Mod(o.phase+o.increment, twoPi)
	return s
}

// Samples materializes the full waveform.
func (o *Oscillator) Samples() []float64 {
	out := make([]float64, o.SampleCount())
	for i := range out {
		out[i] = o.next()
	}
	return out
}

// Chirp is a linear frequency sweep generator. Unlike Oscillator the phase
// increment is recomputed for every sample from the instantaneous frequency
//
//	f(t) = startFreq + (endFreq-startFreq) * (t / durationSecs)
//
// so the emitted frequency moves linearly from startFreq to endFreq across
// the buffer. When startFreq equals endFreq the increment sequence collapses
// to the Oscillator's constant increment and the two produce identical
// output.
type Chirp struct {
	startFreq    float64
	endFreq      float64
	sampleRate   float64
	durationSecs float64

	phase float64
	index int
}

// NewChirp creates a linear chirp sweeping from startFreq to endFreq Hz over
// durationSecs seconds at the given sample rate.
func NewChirp(startFreq, endFreq, sampleRate, durationSecs float64) *Chirp {
	return &Chirp{
		startFreq:    startFreq,
		endFreq:      endFreq,
		sampleRate:   sampleRate,
		durationSecs: durationSecs,
	}
}

// SampleCount returns the buffer length in samples, rounding the exact
// duration*rate product to the nearest whole sample.
func (c *Chirp) SampleCount() int {
	return int(math.Round(c.durationSecs * c.sampleRate))
}

// next emits the sample at the current phase, then advances the accumulator
// by the increment for the instantaneous frequency at the current sample
// time. A zero duration produces no samples, so the t/durationSecs ramp is
// only evaluated when durationSecs is positive.
func (c *Chirp) next() float64 {
	s := math.Sin(c.phase)

	f := c.startFreq
	if c.durationSecs > 0 {
		t := float64(c.index) / c.sampleRate
		f += (c.endFreq - c.startFreq) * (t / c.durationSecs)
	}
	c.phase = math.Mod(c.phase+twoPi*f/c.sampleRate, twoPi)
	c.index++

	return s
}

// Samples materializes the full sweep.
func (c *Chirp) Samples() []float64 {
	out := make([]float64, c.SampleCount())
	for i := range out {
		out[i] = c.next()
	}
	return out
}

// ApplyGain scales every sample by gain in place. Unity gain and empty
// inputs are left untouched.
func ApplyGain(samples []float64, gain float64) {
	if gain == unityGain || len(samples) == 0 {
		return
	}
	f64.Scale(samples, samples, gain)
}
