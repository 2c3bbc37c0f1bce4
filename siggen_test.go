package siggen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-siggen/internal/testutil"
)

func TestSampleWidth(t *testing.T) {
	tests := []struct {
		width    SampleWidth
		bytes    int
		bits     int
		max      float64
		rendered string
	}{
		{Width16, 2, 16, 32767, "16"},
		{Width24, 3, 24, 8388607, "24"},
		{Width32, 4, 32, 2147483647, "32"},
	}

	for _, tt := range tests {
		t.Run(tt.rendered+" bit", func(t *testing.T) {
			assert.Equal(t, tt.bytes, tt.width.Bytes())
			assert.Equal(t, tt.bits, tt.width.Bits())
			assert.Equal(t, tt.max, tt.width.MaxValue())
			assert.Equal(t, tt.rendered, tt.width.String())
		})
	}
}

func TestParseSampleWidth(t *testing.T) {
	for s, want := range map[string]SampleWidth{"16": Width16, "24": Width24, "32": Width32} {
		got, err := ParseSampleWidth(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, s := range []string{"8", "48", "sixteen", ""} {
		_, err := ParseSampleWidth(s)
		assert.ErrorIs(t, err, ErrInvalidConfig, s)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"mono", func(c *Config) { c.Channels = 1 }, false},
		{"zero duration", func(c *Config) { c.DurationMS = 0 }, false},
		{"unusual rate is still valid", func(c *Config) { c.SampleRate = 22050 }, false},
		{"zero amplitude", func(c *Config) { c.Amplitude = 0 }, false},
		{"zero rate", func(c *Config) { c.SampleRate = 0 }, true},
		{"negative rate", func(c *Config) { c.SampleRate = -16000 }, true},
		{"zero channels", func(c *Config) { c.Channels = 0 }, true},
		{"too many channels", func(c *Config) { c.Channels = 3 }, true},
		{"unknown width", func(c *Config) { c.Width = SampleWidth(7) }, true},
		{"negative duration", func(c *Config) { c.DurationMS = -1 }, true},
		{"amplitude above full scale", func(c *Config) { c.Amplitude = 1.5 }, true},
		{"negative amplitude", func(c *Config) { c.Amplitude = -0.1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerate_NilConfig(t *testing.T) {
	_, err := Generate(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGenerate_BufferSizeInvariant(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate int
		channels   int
		width      SampleWidth
		durationMS float64
		wantFrames int
	}{
		{"reference vector", 16000, 1, Width16, 1, 16},
		{"stereo CD rate", 44100, 2, Width16, 1, 44},
		{"24-bit studio rate", 48000, 2, Width24, 2.5, 120},
		{"32-bit mono", 48000, 1, Width32, 10, 480},
		{"zero duration", 16000, 2, Width16, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SampleRate = tt.sampleRate
			cfg.Channels = tt.channels
			cfg.Width = tt.width
			cfg.DurationMS = tt.durationMS

			buf, err := Generate(cfg)
			require.NoError(t, err)

			assert.Equal(t, tt.wantFrames, buf.TotalSamples)
			assert.Equal(t, tt.wantFrames*tt.channels*tt.width.Bytes(), buf.TotalBytes)
			assert.Len(t, buf.Data, buf.TotalBytes)
		})
	}
}

func TestGenerate_ReferenceVector(t *testing.T) {
	// 1 kHz at 16 kHz mono 16-bit over 1 ms: 16 samples, 32 bytes, and
	// the first sample is sin(0) = 0 encoded as 0x00 0x00.
	cfg := &Config{
		Frequency:    1000,
		EndFrequency: 1000,
		SampleRate:   16000,
		Channels:     1,
		Width:        Width16,
		DurationMS:   1,
		Amplitude:    1,
	}

	buf, err := Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, 16, buf.TotalSamples)
	assert.Equal(t, 32, buf.TotalBytes)
	assert.Equal(t, []byte{0x00, 0x00}, buf.Data[:2])
}

func TestGenerate_ZeroFrequencyIsSilence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Frequency = 0
	cfg.EndFrequency = 0
	cfg.DurationMS = 10

	buf, err := Generate(cfg)
	require.NoError(t, err)
	require.NotZero(t, buf.TotalSamples)

	for i, b := range buf.Data {
		require.Zerof(t, b, "byte %d", i)
	}
	for i, s := range buf.Samples(cfg) {
		require.Zerof(t, s, "sample %d", i)
	}
}

func TestGenerate_HalfAmplitudePeak(t *testing.T) {
	// A quarter-period tone peaks exactly at sample rate/4f. At amplitude
	// 0.5 the 16-bit peak quantizes to round(0.5*32767) = 16384.
	cfg := &Config{
		Frequency:    1000,
		EndFrequency: 1000,
		SampleRate:   16000,
		Channels:     1,
		Width:        Width16,
		DurationMS:   1,
		Amplitude:    0.5,
	}

	buf, err := Generate(cfg)
	require.NoError(t, err)

	samples := buf.Samples(cfg)
	require.Len(t, samples, 16)

	// Sample 4 sits at phase pi/2, the positive peak.
	peak := int32(samples[4]*cfg.Width.MaxValue() + 0.5)
	assert.Equal(t, int32(16384), peak)
}

func TestGenerate_ChirpSelectsSweepPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Frequency = 1000
	cfg.EndFrequency = 2000
	cfg.SampleRate = 48000
	cfg.Channels = 1
	cfg.DurationMS = 100

	buf, err := Generate(cfg)
	require.NoError(t, err)

	// A 1->2 kHz linear sweep over 0.1 s completes about 150 cycles; a
	// steady tone at either endpoint would land near 100 or 200.
	crossings := testutil.CountZeroCrossings(buf.Samples(cfg))
	assert.InDelta(t, 300, crossings, 4)
}

func TestGenerate_DegenerateChirpEqualsTone(t *testing.T) {
	tone := DefaultConfig()
	tone.Frequency = 100
	tone.EndFrequency = 100
	tone.SampleRate = 16000
	tone.DurationMS = 250

	buf1, err := Generate(tone)
	require.NoError(t, err)
	buf2, err := Chirp(100, 100, 16000, 250)
	require.NoError(t, err)

	testutil.AssertBytesEqual(t, buf1.Data, buf2.Data,
		"equal start and end frequencies must produce the steady-tone bytes")
}

func TestToWAV(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 44100
	cfg.DurationMS = 10

	buf, err := Generate(cfg)
	require.NoError(t, err)

	file := ToWAV(cfg, buf)
	require.Len(t, file, 44+buf.TotalBytes)
	assert.Equal(t, "RIFF", string(file[:4]))
	testutil.AssertBytesEqual(t, buf.Data, file[44:])
}

func TestIsRecommendedRate(t *testing.T) {
	for _, rate := range []int{RateSpeech, RateCD, RateStudio} {
		assert.True(t, IsRecommendedRate(rate), rate)
	}
	for _, rate := range []int{8000, 22050, 96000, 0} {
		assert.False(t, IsRecommendedRate(rate), rate)
	}
}

func TestTone(t *testing.T) {
	buf, err := Tone(440, RateSpeech, 1)
	require.NoError(t, err)

	// Stereo 16-bit defaults: 16 frames * 2 channels * 2 bytes.
	assert.Equal(t, 16, buf.TotalSamples)
	assert.Equal(t, 64, buf.TotalBytes)
}

func TestToneWAV(t *testing.T) {
	file, err := ToneWAV(1000, RateStudio, 1)
	require.NoError(t, err)

	assert.Equal(t, "RIFF", string(file[:4]))
	assert.Equal(t, "WAVE", string(file[8:12]))
	assert.Len(t, file, 44+48*2*2)
}

func TestChirpWAV(t *testing.T) {
	file, err := ChirpWAV(100, 8000, RateCD, 5)
	require.NoError(t, err)

	assert.Equal(t, "data", string(file[36:40]))
}

func TestGenerate_InvalidConfigRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Channels = 5

	_, err := Generate(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
