package siggen

// Tone generates a full-scale stereo 16-bit sine tone at the given
// frequency, sample rate and duration in milliseconds.
func Tone(frequency float64, sampleRate int, durationMS float64) (*Buffer, error) {
	cfg := DefaultConfig()
	cfg.Frequency = frequency
	cfg.EndFrequency = frequency
	cfg.SampleRate = sampleRate
	cfg.DurationMS = durationMS
	return Generate(cfg)
}

// Chirp generates a full-scale stereo 16-bit linear frequency sweep from
// startFreq to endFreq over durationMS milliseconds.
func Chirp(startFreq, endFreq float64, sampleRate int, durationMS float64) (*Buffer, error) {
	cfg := DefaultConfig()
	cfg.Frequency = startFreq
	cfg.EndFrequency = endFreq
	cfg.SampleRate = sampleRate
	cfg.DurationMS = durationMS
	return Generate(cfg)
}

// ToneWAV generates a tone and returns it as a complete in-memory WAV file.
func ToneWAV(frequency float64, sampleRate int, durationMS float64) ([]byte, error) {
	cfg := DefaultConfig()
	cfg.Frequency = frequency
	cfg.EndFrequency = frequency
	cfg.SampleRate = sampleRate
	cfg.DurationMS = durationMS

	buf, err := Generate(cfg)
	if err != nil {
		return nil, err
	}
	return ToWAV(cfg, buf), nil
}

// ChirpWAV generates a chirp and returns it as a complete in-memory WAV
// file.
func ChirpWAV(startFreq, endFreq float64, sampleRate int, durationMS float64) ([]byte, error) {
	cfg := DefaultConfig()
	cfg.Frequency = startFreq
	cfg.EndFrequency = endFreq
	cfg.SampleRate = sampleRate
	cfg.DurationMS = durationMS

	buf, err := Generate(cfg)
	if err != nil {
		return nil, err
	}
	return ToWAV(cfg, buf), nil
}
