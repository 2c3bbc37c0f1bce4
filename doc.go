// Package siggen synthesizes deterministic digital audio test signals in
// pure Go.
//
// The generator produces steady sine tones and linear frequency chirps,
// quantizes them to 16-, 24- or 32-bit little-endian PCM with optional
// stereo interleaving, and can wrap the result in a minimal canonical WAV
// container. It is aimed at audio firmware and driver developers who need
// parameterizable, reproducible test vectors without external tooling.
//
// # Features
//
//   - Phase-accumulator sine oscillator with per-sample phase wrapping,
//     so long buffers never drift from float64 precision loss
//   - Linear chirp generation via instantaneous-frequency integration
//   - Quantization to 16/24/32-bit signed PCM with symmetric full-scale
//     bounds (32767, 8388607, 2147483647)
//   - Mono and stereo interleaved output with identical channel content
//   - Minimal 44-byte canonical WAV container construction
//   - Amplitude control with SIMD-accelerated scaling
//
// # Quick Start
//
// For a one-shot tone buffer:
//
//	buf, err := siggen.Tone(1000, siggen.RateStudio, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d samples, %d bytes\n", buf.TotalSamples, buf.TotalBytes)
//
// For full control, build a [Config] and call [Generate]:
//
//	cfg := siggen.DefaultConfig()
//	cfg.Frequency = 1000
//	cfg.EndFrequency = 2000 // linear sweep 1 kHz -> 2 kHz
//	cfg.SampleRate = siggen.RateCD
//	cfg.DurationMS = 250
//
//	buf, err := siggen.Generate(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	wavFile := siggen.ToWAV(cfg, buf)
//
// # Determinism
//
// The whole pipeline is synchronous and single-threaded: generation,
// quantization and container construction run in strict sequence and the
// complete buffer is materialized in memory before any output. The same
// Config always produces the same bytes.
//
// # Limits
//
// The generator emits linear PCM only; there is no streaming I/O, no
// compressed codec support and no resampling. Values produced by the
// oscillators always lie in [-1, 1]; the quantizer trusts that range and
// performs no saturation.
package siggen
