package siggen

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-audio-siggen/internal/osc"
	"github.com/tphakala/go-audio-siggen/internal/pcm"
	"github.com/tphakala/go-audio-siggen/internal/wavio"
)

// SampleWidth enumerates the supported PCM sample widths. The zero value is
// Width16, the most common test-vector depth.
type SampleWidth int

const (
	// Width16 is 16-bit PCM (2 bytes per sample).
	Width16 SampleWidth = iota

	// Width24 is 24-bit PCM (3 bytes per sample).
	Width24

	// Width32 is 32-bit PCM (4 bytes per sample).
	Width32
)

// Bytes returns the serialized size of one sample in bytes.
func (w SampleWidth) Bytes() int {
	switch w {
	case Width24:
		return bytesPerSample24
	case Width32:
		return bytesPerSample32
	default:
		return bytesPerSample16
	}
}

// Bits returns the sample width in bits.
func (w SampleWidth) Bits() int {
	return w.Bytes() * bitsPerByte
}

// MaxValue returns the symmetric positive quantization bound for the width,
// 2^(bits-1) - 1. Quantizing full-scale amplitude at this bound keeps the
// encoding symmetric around zero:
//
//	16-bit ->      32767
//	24-bit ->    8388607
//	32-bit -> 2147483647
func (w SampleWidth) MaxValue() float64 {
	switch w {
	case Width24:
		return maxInt24
	case Width32:
		return maxInt32
	default:
		return maxInt16
	}
}

// String returns the bit count as a string ("16", "24" or "32").
func (w SampleWidth) String() string {
	switch w {
	case Width24:
		return "24"
	case Width32:
		return "32"
	default:
		return "16"
	}
}

// ParseSampleWidth converts a bit-depth string to a SampleWidth.
func ParseSampleWidth(s string) (SampleWidth, error) {
	switch s {
	case "16":
		return Width16, nil
	case "24":
		return Width24, nil
	case "32":
		return Width32, nil
	default:
		return Width16, fmt.Errorf("%w: bit depth must be 16, 24 or 32, got %q", ErrInvalidConfig, s)
	}
}

// Config describes one signal to synthesize. A Config is immutable once
// validated; Generate never modifies it.
type Config struct {
	// Frequency is the tone frequency in Hz. For a chirp it is the start
	// frequency of the sweep.
	Frequency float64

	// EndFrequency is the chirp end frequency in Hz. When it equals
	// Frequency the generated signal is a steady tone.
	EndFrequency float64

	// SampleRate is the output sample rate in Hz. Must be positive; rates
	// outside the recommended set are permitted but unusual.
	SampleRate int

	// Channels is the channel count, 1 (mono) or 2 (stereo). All channels
	// carry identical content.
	Channels int

	// Width selects the PCM bit depth.
	Width SampleWidth

	// DurationMS is the signal duration in milliseconds. Zero is valid and
	// produces an empty buffer.
	DurationMS float64

	// Amplitude scales the waveform before quantization, 0 to 1. At 1.0
	// the sine peak quantizes exactly to Width.MaxValue().
	Amplitude float64
}

// DefaultConfig returns a Config with the generator defaults: a full-scale
// 440 Hz stereo tone, 1 ms at 16 kHz, 16-bit.
func DefaultConfig() *Config {
	return &Config{
		Frequency:    DefaultFrequency,
		EndFrequency: DefaultFrequency,
		SampleRate:   DefaultSampleRate,
		Channels:     DefaultChannels,
		Width:        Width16,
		DurationMS:   DefaultDurationMS,
		Amplitude:    DefaultAmplitude,
	}
}

// IsChirp reports whether the config describes a frequency sweep rather
// than a steady tone.
func (c *Config) IsChirp() bool {
	return c.EndFrequency != c.Frequency
}

// Common errors returned by the generator.
var (
	// ErrInvalidConfig indicates invalid signal configuration parameters.
	ErrInvalidConfig = errors.New("invalid signal configuration")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, c.SampleRate)
	}

	if c.Channels < minChannels || c.Channels > maxChannels {
		return fmt.Errorf("%w: channel count must be %d or %d, got %d",
			ErrInvalidConfig, minChannels, maxChannels, c.Channels)
	}

	switch c.Width {
	case Width16, Width24, Width32:
	default:
		return fmt.Errorf("%w: unknown sample width %d", ErrInvalidConfig, c.Width)
	}

	if c.DurationMS < 0 {
		return fmt.Errorf("%w: duration must be non-negative, got %g ms", ErrInvalidConfig, c.DurationMS)
	}

	if c.Amplitude < minAmplitude || c.Amplitude > maxAmplitude {
		return fmt.Errorf("%w: amplitude must be in [%g, %g], got %g",
			ErrInvalidConfig, minAmplitude, maxAmplitude, c.Amplitude)
	}

	return nil
}

// Buffer holds an encoded PCM byte buffer together with its sample counts.
// A Buffer is created once by Generate and never mutated afterwards;
// TotalBytes always equals TotalSamples * channels * bytes-per-sample.
type Buffer struct {
	// Data is the interleaved little-endian PCM payload.
	Data []byte

	// TotalSamples is the number of sample frames in Data.
	TotalSamples int

	// TotalBytes is len(Data).
	TotalBytes int
}

// Generate synthesizes the signal described by config and encodes it as
// interleaved PCM. The full buffer is materialized in memory; there is no
// streaming. A zero duration yields an empty buffer, not an error.
func Generate(config *Config) (*Buffer, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	var gen osc.Generator
	if config.IsChirp() {
		gen = osc.NewChirp(config.Frequency, config.EndFrequency,
			float64(config.SampleRate), config.DurationMS/msPerSecond)
	} else {
		gen = osc.NewOscillator(config.Frequency, float64(config.SampleRate), config.DurationMS)
	}

	samples := gen.Samples()
	osc.ApplyGain(samples, config.Amplitude)

	data := pcm.Encode(samples, config.Channels, config.Width.Bytes(), config.Width.MaxValue())

	return &Buffer{
		Data:         data,
		TotalSamples: len(samples),
		TotalBytes:   len(data),
	}, nil
}

// ToWAV wraps a generated buffer in a minimal canonical WAV container and
// returns the complete file image.
func ToWAV(config *Config, buf *Buffer) []byte {
	return wavio.Wrap(buf.Data, config.SampleRate, config.Channels, config.Width.Bytes())
}

// Samples decodes the channel-0 waveform back to normalized float64 values.
// It is the inverse of the encoding step up to quantization error.
func (b *Buffer) Samples(config *Config) []float64 {
	return pcm.Decode(b.Data, config.Channels, config.Width.Bytes(), config.Width.MaxValue())
}
