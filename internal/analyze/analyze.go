// Package analyze computes descriptive statistics for generated signal
// buffers: period arithmetic from the configuration, and measured peak,
// RMS, DC offset and dominant frequency from the decoded samples.
package analyze

import (
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// minSpectrumSamples is the smallest buffer the dominant-frequency
	// estimate is computed for; shorter buffers have too few FFT bins to
	// resolve anything meaningful.
	minSpectrumSamples = 32

	// minFFTSize keeps bin spacing reasonable for short buffers.
	minFFTSize = 64
)

// Period returns the tone period in samples, sampleRate/frequency. A zero
// frequency has no period; the result is 0.
func Period(sampleRate, frequency float64) float64 {
	if frequency == 0 {
		return 0
	}
	return sampleRate / frequency
}

// FullCycles returns how many complete waveform cycles fit into
// totalSamples at the given period.
func FullCycles(totalSamples int, period float64) float64 {
	if period == 0 {
		return 0
	}
	return float64(totalSamples) / period
}

// Stats holds measured signal statistics over a decoded sample buffer.
type Stats struct {
	// Peak is the largest absolute sample value.
	Peak float64

	// RMS is the root mean square level. A full-scale sine measures
	// 1/sqrt(2).
	RMS float64

	// DCOffset is the mean sample value.
	DCOffset float64

	// DominantFreq is the strongest spectral component in Hz. Only valid
	// when HasSpectrum is true.
	DominantFreq float64

	// HasSpectrum reports whether the buffer held enough samples for a
	// dominant-frequency estimate.
	HasSpectrum bool
}

// Measure computes Stats over normalized samples at the given sample rate.
// An empty buffer yields zero stats.
func Measure(samples []float64, sampleRate float64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	n := float64(len(samples))

	var stats Stats
	for _, s := range samples {
		if a := math.Abs(s); a > stats.Peak {
			stats.Peak = a
		}
	}

	stats.DCOffset = f64.Sum(samples) / n
	stats.RMS = math.Sqrt(f64.DotProductUnsafe(samples, samples) / n)

	if len(samples) >= minSpectrumSamples {
		stats.DominantFreq = dominantFrequency(samples, sampleRate)
		stats.HasSpectrum = true
	}

	return stats
}

// dominantFrequency estimates the strongest spectral component with a
// Hann-windowed real FFT. The input is zero-padded to a power of two.
func dominantFrequency(samples []float64, sampleRate float64) float64 {
	fftSize := minFFTSize
	for fftSize < len(samples) {
		fftSize *= 2
	}

	windowed := make([]float64, fftSize)
	for i, s := range samples {
		window := 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/float64(len(samples)-1)))
		windowed[i] = s * window
	}

	fft := fourier.NewFFT(fftSize)
	coeffs := fft.Coefficients(nil, windowed)

	// Skip the DC bin; a pure tone's offset never dominates its peak.
	peakBin := 1
	peakMag := 0.0
	for bin := 1; bin < len(coeffs); bin++ {
		if mag := cmplxAbs(coeffs[bin]); mag > peakMag {
			peakMag = mag
			peakBin = bin
		}
	}

	return float64(peakBin) * sampleRate / float64(fftSize)
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
