// Package wavio builds minimal canonical WAV (RIFF) containers around raw
// PCM payloads.
package wavio

import "encoding/binary"

// Header layout constants. The minimal canonical header is 44 bytes: the
// RIFF chunk descriptor, a 16-byte PCM fmt subchunk and the data subchunk
// header.
const (
	// HeaderSize is the size of the complete header in bytes.
	HeaderSize = 44

	// riffChunkBase is the RIFF chunk size excluding the PCM payload; the
	// size field at offset 4 holds riffChunkBase + len(data).
	riffChunkBase = 36

	// pcmSubchunkSize is the fmt subchunk size for uncompressed PCM.
	pcmSubchunkSize = 16

	// pcmAudioFormat is the fmt tag for linear PCM.
	pcmAudioFormat = 1

	bitsPerByte = 8
)

// Header serializes a 44-byte minimal WAV header describing dataSize bytes
// of interleaved PCM at the given sample rate, channel count and sample
// width in bytes. Every field is written at its fixed offset in little
// endian order.
func Header(dataSize, sampleRate, channels, bytesPerSample int) []byte {
	byteRate := sampleRate * channels * bytesPerSample
	blockAlign := channels * bytesPerSample

	header := make([]byte, HeaderSize)

	// RIFF chunk descriptor
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(riffChunkBase+dataSize))
	copy(header[8:12], "WAVE")

	// fmt subchunk
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], pcmSubchunkSize)
	binary.LittleEndian.PutUint16(header[20:22], pcmAudioFormat)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], uint16(bytesPerSample*bitsPerByte))

	// data subchunk
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	return header
}

// Wrap returns a complete in-memory WAV file: the header followed by the
// unmodified PCM payload. An empty payload yields a bare 44-byte file,
// which decoders accept as a zero-length clip.
func Wrap(data []byte, sampleRate, channels, bytesPerSample int) []byte {
	out := make([]byte, 0, HeaderSize+len(data))
	out = append(out, Header(len(data), sampleRate, channels, bytesPerSample)...)
	out = append(out, data...)
	return out
}
