// Package pcm converts normalized float64 waveforms to and from
// interleaved little-endian integer PCM byte buffers.
package pcm

import (
	"encoding/binary"
	"math"
)

// Supported sample widths in bytes.
const (
	bytesPerSample16 = 2
	bytesPerSample24 = 3
	bytesPerSample32 = 4
)

// Bit shifts for byte-wise 24-bit serialization.
const (
	bitShift8  = 8
	bitShift16 = 16
)

// signExtendShift24 moves a 24-bit value into the top of an int32 and back
// so the sign bit propagates.
const signExtendShift24 = 8

// Quantize scales a normalized sample by maxValue and rounds half away from
// zero. Values outside [-1, 1] are not clamped; the resulting integer wraps
// when serialized at narrower widths.
func Quantize(s, maxValue float64) int32 {
	return int32(math.Round(s * maxValue))
}

// Encode quantizes every sample and serializes it as little-endian PCM,
// replicating the quantized value across all channels of its frame. Frames
// are laid out in sample order, so the result is frame-major interleaved.
//
// bytesPerSample must be 2, 3 or 4; callers validate the width before
// encoding. An unsupported width returns nil.
func Encode(samples []float64, channels, bytesPerSample int, maxValue float64) []byte {
	frameSize := channels * bytesPerSample
	buf := make([]byte, len(samples)*frameSize)

	switch bytesPerSample {
	case bytesPerSample16:
		for i, s := range samples {
			q := uint16(int16(Quantize(s, maxValue)))
			base := i * frameSize
			for ch := 0; ch < channels; ch++ {
				binary.LittleEndian.PutUint16(buf[base+ch*bytesPerSample16:], q)
			}
		}

	case bytesPerSample24:
		for i, s := range samples {
			q := Quantize(s, maxValue)
			base := i * frameSize
			for ch := 0; ch < channels; ch++ {
				off := base + ch*bytesPerSample24
				buf[off] = byte(q)
				buf[off+1] = byte(q >> bitShift8)
				buf[off+2] = byte(q >> bitShift16)
			}
		}

	case bytesPerSample32:
		for i, s := range samples {
			q := uint32(Quantize(s, maxValue))
			base := i * frameSize
			for ch := 0; ch < channels; ch++ {
				binary.LittleEndian.PutUint32(buf[base+ch*bytesPerSample32:], q)
			}
		}

	default:
		return nil
	}

	return buf
}

// Decode reconstructs the normalized channel-0 samples from an interleaved
// PCM buffer. It is the inverse of Encode up to quantization error. Partial
// trailing frames are ignored.
func Decode(data []byte, channels, bytesPerSample int, maxValue float64) []float64 {
	frameSize := channels * bytesPerSample
	if frameSize <= 0 || len(data) < frameSize {
		return []float64{}
	}

	n := len(data) / frameSize
	out := make([]float64, n)

	for i := range out {
		off := i * frameSize

		var q int32
		switch bytesPerSample {
		case bytesPerSample16:
			q = int32(int16(binary.LittleEndian.Uint16(data[off:])))
		case bytesPerSample24:
			u := uint32(data[off]) |
				uint32(data[off+1])<<bitShift8 |
				uint32(data[off+2])<<bitShift16
			q = int32(u<<signExtendShift24) >> signExtendShift24
		case bytesPerSample32:
			q = int32(binary.LittleEndian.Uint32(data[off:]))
		}

		out[i] = float64(q) / maxValue
	}

	return out
}
