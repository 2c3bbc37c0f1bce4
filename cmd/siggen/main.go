// Command siggen generates deterministic PCM test signals and prints them
// in developer-facing formats.
//
// Usage:
//
//	siggen -f 1000 -r 48000 -b 16 -d 10 -o carray
//	siggen --frequency 440 --rate 44100 --channels 1 --bits 24
//	siggen -f 1000 -e 2000 -d 100 -o wav > sweep.wav
//	siggen -r 16000 -d 1 -o rustarray
//
// The hex, carray and rustarray formats print the configuration summary
// before the data; raw and wav write the bytes verbatim to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	siggen "github.com/tphakala/go-audio-siggen"
	"github.com/tphakala/go-audio-siggen/internal/analyze"
	"github.com/tphakala/go-audio-siggen/internal/render"
	"github.com/tphakala/go-audio-siggen/internal/wavio"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// outputFormat enumerates the supported output renderings.
type outputFormat int

const (
	formatHex outputFormat = iota
	formatCArray
	formatRustArray
	formatRaw
	formatInfo
	formatWAV
)

// parseOutputFormat maps the -o flag value (including short aliases) to a
// format.
func parseOutputFormat(s string) (outputFormat, error) {
	switch strings.ToLower(s) {
	case "hex":
		return formatHex, nil
	case "carray", "c":
		return formatCArray, nil
	case "rustarray", "rust":
		return formatRustArray, nil
	case "raw", "bytes":
		return formatRaw, nil
	case "info":
		return formatInfo, nil
	case "wav":
		return formatWAV, nil
	default:
		return formatHex, fmt.Errorf("invalid output format %q", s)
	}
}

// cliOptions holds the parsed and validated command line.
type cliOptions struct {
	config *siggen.Config
	format outputFormat
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		w := fs.Output()
		fmt.Fprintln(w, "Usage: siggen [OPTIONS]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		fmt.Fprintln(w, "  -f, --frequency FREQ     Sine wave frequency in Hz (default: 440.0)")
		fmt.Fprintln(w, "  -e, --end-frequency FREQ Chirp end frequency in Hz (default: same as -f)")
		fmt.Fprintln(w, "  -r, --rate RATE          Sample rate in Hz (default: 16000)")
		fmt.Fprintln(w, "                           Supported: 16000, 44100, 48000")
		fmt.Fprintln(w, "  -c, --channels CH        Number of channels (1=mono, 2=stereo, default: 2)")
		fmt.Fprintln(w, "  -b, --bits BITS          Bit depth: 16, 24, or 32 (default: 16)")
		fmt.Fprintln(w, "  -d, --duration MS        Duration in milliseconds (default: 1.0)")
		fmt.Fprintln(w, "  -g, --gain LEVEL         Amplitude from 0.0 to 1.0 (default: 1.0)")
		fmt.Fprintln(w, "  -o, --output FORMAT      Output format:")
		fmt.Fprintln(w, "                           hex       - Hexadecimal values (default)")
		fmt.Fprintln(w, "                           carray    - C-style array declaration")
		fmt.Fprintln(w, "                           rustarray - Rust array declaration")
		fmt.Fprintln(w, "                           raw       - Raw binary bytes (stdout)")
		fmt.Fprintln(w, "                           wav       - Minimal WAV file (stdout)")
		fmt.Fprintln(w, "                           info      - Only show buffer info, no data")
		fmt.Fprintln(w, "  -a, --analyze            Analyze only (don't print data)")
		fmt.Fprintln(w, "  -h, --help               Show this help message")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Examples:")
		fmt.Fprintln(w, "  siggen -f 1000 -r 48000 -b 16 -d 10 -o carray")
		fmt.Fprintln(w, "  siggen --frequency 440 --rate 44100 --channels 1 --bits 24")
		fmt.Fprintln(w, "  siggen -f 1000 -e 2000 -d 100 -o wav > sweep.wav")
	}
}

// parseArgs builds a validated config from the command line. Advisory
// warnings go to warnw; fatal problems return an error.
func parseArgs(args []string, warnw io.Writer) (*cliOptions, error) {
	fs := flag.NewFlagSet("siggen", flag.ContinueOnError)
	fs.SetOutput(warnw)
	fs.Usage = usage(fs)

	var (
		frequency    float64
		endFrequency float64
		rate         uint
		channels     int
		bits         string
		durationMS   float64
		gain         float64
		output       string
		analyzeOnly  bool
	)

	fs.Float64Var(&frequency, "f", siggen.DefaultFrequency, "frequency in Hz")
	fs.Float64Var(&frequency, "frequency", siggen.DefaultFrequency, "frequency in Hz")
	fs.Float64Var(&endFrequency, "e", 0, "chirp end frequency in Hz")
	fs.Float64Var(&endFrequency, "end-frequency", 0, "chirp end frequency in Hz")
	fs.UintVar(&rate, "r", siggen.DefaultSampleRate, "sample rate in Hz")
	fs.UintVar(&rate, "rate", siggen.DefaultSampleRate, "sample rate in Hz")
	fs.IntVar(&channels, "c", siggen.DefaultChannels, "channel count")
	fs.IntVar(&channels, "channels", siggen.DefaultChannels, "channel count")
	fs.StringVar(&bits, "b", "16", "bit depth")
	fs.StringVar(&bits, "bits", "16", "bit depth")
	fs.Float64Var(&durationMS, "d", siggen.DefaultDurationMS, "duration in ms")
	fs.Float64Var(&durationMS, "duration", siggen.DefaultDurationMS, "duration in ms")
	fs.Float64Var(&gain, "g", siggen.DefaultAmplitude, "amplitude 0..1")
	fs.Float64Var(&gain, "gain", siggen.DefaultAmplitude, "amplitude 0..1")
	fs.StringVar(&output, "o", "hex", "output format")
	fs.StringVar(&output, "output", "hex", "output format")
	fs.BoolVar(&analyzeOnly, "a", false, "analyze only")
	fs.BoolVar(&analyzeOnly, "analyze", false, "analyze only")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// The sweep only engages when an end frequency was given; otherwise
	// the signal is a steady tone at the start frequency.
	endSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "e" || f.Name == "end-frequency" {
			endSet = true
		}
	})
	if !endSet {
		endFrequency = frequency
	}

	width, err := siggen.ParseSampleWidth(bits)
	if err != nil {
		return nil, fmt.Errorf("invalid bit depth: must be 16, 24, or 32, got %q", bits)
	}

	format, err := parseOutputFormat(output)
	if err != nil {
		return nil, err
	}
	if analyzeOnly {
		format = formatInfo
	}

	cfg := &siggen.Config{
		Frequency:    frequency,
		EndFrequency: endFrequency,
		SampleRate:   int(rate),
		Channels:     channels,
		Width:        width,
		DurationMS:   durationMS,
		Amplitude:    gain,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if !siggen.IsRecommendedRate(cfg.SampleRate) {
		fmt.Fprintf(warnw, "Warning: %d Hz is not in the standard supported rates list\n", cfg.SampleRate)
	}

	return &cliOptions{config: cfg, format: format}, nil
}

// summarize assembles the render summary: config echo, buffer counts and
// measured statistics over the decoded channel-0 samples.
func summarize(cfg *siggen.Config, buf *siggen.Buffer) *render.Summary {
	return &render.Summary{
		Frequency:    cfg.Frequency,
		EndFrequency: cfg.EndFrequency,
		SampleRate:   cfg.SampleRate,
		Channels:     cfg.Channels,
		Bits:         cfg.Width.String(),
		DurationMS:   cfg.DurationMS,
		Amplitude:    cfg.Amplitude,
		TotalSamples: buf.TotalSamples,
		TotalBytes:   buf.TotalBytes,
		Stats:        analyze.Measure(buf.Samples(cfg), float64(cfg.SampleRate)),
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	buf, err := siggen.Generate(opts.config)
	if err != nil {
		return err
	}

	switch opts.format {
	case formatInfo:
		return render.Info(stdout, summarize(opts.config, buf))

	case formatHex:
		if err := render.Info(stdout, summarize(opts.config, buf)); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "\nBuffer data (hexadecimal):")
		return render.Hex(stdout, buf.Data)

	case formatCArray:
		s := summarize(opts.config, buf)
		if err := render.Info(stdout, s); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "\nC array declaration:")
		return render.CArray(stdout, buf.Data, s)

	case formatRustArray:
		s := summarize(opts.config, buf)
		if err := render.Info(stdout, s); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "\nRust array declaration:")
		return render.RustArray(stdout, buf.Data, s)

	case formatRaw:
		_, err := stdout.Write(buf.Data)
		return err

	case formatWAV:
		_, err := stdout.Write(wavio.Wrap(buf.Data,
			opts.config.SampleRate, opts.config.Channels, opts.config.Width.Bytes()))
		return err

	default:
		return fmt.Errorf("invalid output format %d", opts.format)
	}
}
