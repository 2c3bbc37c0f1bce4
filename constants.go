package siggen

// Configuration defaults
const (
	// DefaultFrequency is the default tone frequency (concert pitch A4).
	DefaultFrequency = 440.0

	// DefaultSampleRate is the default output sample rate in Hz.
	DefaultSampleRate = RateSpeech

	// DefaultChannels is the default channel count (stereo).
	DefaultChannels = 2

	// DefaultDurationMS is the default signal duration in milliseconds.
	DefaultDurationMS = 1.0

	// DefaultAmplitude is the default output level (full scale).
	DefaultAmplitude = 1.0
)

// Channel limits
const (
	minChannels = 1
	maxChannels = 2
)

// Amplitude limits
const (
	minAmplitude = 0.0
	maxAmplitude = 1.0
)

// Sample serialization sizes
const (
	bytesPerSample16 = 2
	bytesPerSample24 = 3
	bytesPerSample32 = 4
	bitsPerByte      = 8
)

// Symmetric positive quantization bounds, 2^(bits-1) - 1
const (
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// Unit conversion
const (
	msPerSecond = 1000.0
)

// Recommended sample rates. Out-of-set rates are permitted; callers may
// surface an advisory warning.
const (
	// RateSpeech is the common speech and telephony sample rate.
	RateSpeech = 16000

	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateStudio is the professional audio and video production rate.
	RateStudio = 48000
)

// recommendedRates is the read-only set of rates a warning-free config
// uses.
var recommendedRates = map[int]struct{}{
	RateSpeech: {},
	RateCD:     {},
	RateStudio: {},
}

// IsRecommendedRate reports whether rate is in the recommended sample rate
// set {16000, 44100, 48000}.
func IsRecommendedRate(rate int) bool {
	_, ok := recommendedRates[rate]
	return ok
}
