// Package render turns encoded sample buffers into the developer-facing
// text formats: hex dumps, C and Rust array literals, and the
// configuration/analysis summary. All functions are mechanical string
// formatting over already-computed bytes.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/tphakala/go-audio-siggen/internal/analyze"
)

// bytesPerLine is the dump width shared by all array-style outputs.
const bytesPerLine = 16

// Summary collects everything the info output and the array literal
// headers describe: the generating configuration, the resulting buffer
// counts and the measured signal statistics.
type Summary struct {
	Frequency    float64
	EndFrequency float64
	SampleRate   int
	Channels     int
	Bits         string
	DurationMS   float64
	Amplitude    float64

	TotalSamples int
	TotalBytes   int

	Stats analyze.Stats
}

// IsChirp reports whether the summary describes a frequency sweep.
func (s *Summary) IsChirp() bool {
	return s.EndFrequency != s.Frequency
}

// title returns the generator name used in the info header.
func (s *Summary) title() string {
	if s.IsChirp() {
		return "Chirp"
	}
	return "Sine Wave"
}

// channelNoun returns the conventional name for the channel count.
func channelNoun(channels int) string {
	if channels == 1 {
		return "mono"
	}
	return "stereo"
}

// Info writes the human-readable configuration and analysis summary.
func Info(w io.Writer, s *Summary) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s Generator - Configuration\n", s.title())
	b.WriteString("=====================================\n")
	fmt.Fprintf(&b, "Frequency:      %g Hz\n", s.Frequency)
	if s.IsChirp() {
		fmt.Fprintf(&b, "End Frequency:  %g Hz\n", s.EndFrequency)
	}
	fmt.Fprintf(&b, "Sample Rate:    %d Hz\n", s.SampleRate)
	fmt.Fprintf(&b, "Channels:       %d (%s)\n", s.Channels, channelNoun(s.Channels))
	fmt.Fprintf(&b, "Bit Depth:      %s-bit\n", s.Bits)
	fmt.Fprintf(&b, "Duration:       %g ms\n", s.DurationMS)
	if s.Amplitude != 1.0 {
		fmt.Fprintf(&b, "Amplitude:      %g\n", s.Amplitude)
	}

	b.WriteString("\nBuffer Analysis:\n")
	fmt.Fprintf(&b, "  Samples:      %d\n", s.TotalSamples)
	fmt.Fprintf(&b, "  Total bytes:  %d\n", s.TotalBytes)

	period := analyze.Period(float64(s.SampleRate), s.Frequency)
	b.WriteString("\nFrequency Analysis:\n")
	fmt.Fprintf(&b, "  Period:       %.2f samples\n", period)
	fmt.Fprintf(&b, "  Full cycles:  %.2f\n", analyze.FullCycles(s.TotalSamples, period))

	if s.TotalSamples > 0 {
		b.WriteString("\nSignal Analysis:\n")
		fmt.Fprintf(&b, "  Peak:         %.4f\n", s.Stats.Peak)
		fmt.Fprintf(&b, "  RMS:          %.4f\n", s.Stats.RMS)
		fmt.Fprintf(&b, "  DC offset:    %.6f\n", s.Stats.DCOffset)
		if s.Stats.HasSpectrum {
			fmt.Fprintf(&b, "  Dominant:     %.1f Hz\n", s.Stats.DominantFreq)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Hex writes the buffer as bracketed hexadecimal values, 16 bytes per
// line. Continuation lines are indented one space so the columns line up
// under the opening bracket.
func Hex(w io.Writer, data []byte) error {
	var b strings.Builder

	b.WriteByte('[')
	for i := 0; i < len(data); i += bytesPerLine {
		if i > 0 {
			b.WriteString("\n ")
		}
		end := min(i+bytesPerLine, len(data))
		for j := i; j < end; j++ {
			fmt.Fprintf(&b, "0x%02X", data[j])
			if j+1 < len(data) && j+1 < end {
				b.WriteString(", ")
			}
		}
	}
	b.WriteString("]\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// ArrayName derives the deterministic array identifier from the summary:
// {stem}_{rate}hz_{ms}ms_{bits}bit_{ch}ch, with the duration truncated to
// whole milliseconds. The stem is "sine" or "chirp".
func ArrayName(s *Summary) string {
	stem := "sine"
	if s.IsChirp() {
		stem = "chirp"
	}
	return fmt.Sprintf("%s_%dhz_%dms_%sbit_%dch",
		stem, s.SampleRate, int(s.DurationMS), s.Bits, s.Channels)
}

// CArray writes the buffer as a C constant byte array declaration with a
// descriptive comment header.
func CArray(w io.Writer, data []byte, s *Summary) error {
	var b strings.Builder

	writeArrayComment(&b, data, s)
	fmt.Fprintf(&b, "const uint8_t %s[%d] = {\n", strings.ToUpper(ArrayName(s)), len(data))
	writeArrayBody(&b, data)
	b.WriteString("};\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// RustArray writes the buffer as a Rust public constant byte array
// declaration with a descriptive comment header.
func RustArray(w io.Writer, data []byte, s *Summary) error {
	var b strings.Builder

	writeArrayComment(&b, data, s)
	fmt.Fprintf(&b, "pub const %s: [u8; %d] = [\n", strings.ToUpper(ArrayName(s)), len(data))
	writeArrayBody(&b, data)
	b.WriteString("];\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// writeArrayComment emits the shared line-comment header above an array
// literal.
func writeArrayComment(b *strings.Builder, data []byte, s *Summary) {
	plural := ""
	if s.Channels > 1 {
		plural = "s"
	}

	if s.IsChirp() {
		fmt.Fprintf(b, "// Chirp: %g Hz -> %g Hz, %g ms, %s-bit, %d channel%s\n",
			s.Frequency, s.EndFrequency, s.DurationMS, s.Bits, s.Channels, plural)
	} else {
		fmt.Fprintf(b, "// Sine wave: %g Hz, %g ms, %s-bit, %d channel%s\n",
			s.Frequency, s.DurationMS, s.Bits, s.Channels, plural)
	}
	fmt.Fprintf(b, "// Sample rate: %d Hz\n", s.SampleRate)
	fmt.Fprintf(b, "// Total bytes: %d\n", len(data))
}

// writeArrayBody emits the indented byte rows shared by the C and Rust
// literals.
func writeArrayBody(b *strings.Builder, data []byte) {
	for i := 0; i < len(data); i += bytesPerLine {
		b.WriteString("    ")
		end := min(i+bytesPerLine, len(data))
		for j := i; j < end; j++ {
			fmt.Fprintf(b, "0x%02X", data[j])
			if j+1 < len(data) {
				b.WriteString(", ")
			}
		}
		b.WriteByte('\n')
	}
}
