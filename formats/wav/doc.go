// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package reads and writes WAV files in PCM 16-bit format. Decoding
// is built on github.com/go-audio/wav for robust RIFF parsing; encoding
// is a hand-tuned writer that produces canonical 44-byte-header files.
//
// # Supported Formats
//
// Currently supported:
//   - PCM 16-bit (most common WAV format)
//   - Any channel count
//   - Any sample rate
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0]. Non-seekable readers are buffered in
// memory first, so prefer passing an io.ReadSeeker for large files.
//
// # Writing WAV Files
//
// Encode writes a whole audio.Buffer in one call:
//
//	var out bytes.Buffer
//	err := wav.Encode(&out, buf)
//
// EncodeBytes does the same into a returned byte slice. For callers that
// already hold interleaved int16 PCM there is the lower-level WriteWAV16:
//
//	samples := []int16{100, -100, 200, -200}
//	err := wav.WriteWAV16(file, 8000, 1, samples)
//
// # Quantization
//
// Encode clamps float samples to [-1.0, 1.0] and scales asymmetrically:
// negative values by 32768, non-negative by 32767, truncating toward
// zero. Both rails of the int16 range are reachable and no value ever
// wraps.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//   - ErrUnsupportedWavLayout: unsupported WAV file structure
//   - ErrBadChannelCount: WriteWAV16 given fewer than one channel
//
// Example:
//
//	source, err := decoder.Decode(file)
//	if err == wav.ErrNotWavFile {
//	    fmt.Println("Not a WAV file")
//	}
//
// # Performance
//
// The encoder is optimized for minimal allocations: one header buffer
// plus one staging buffer, with 8KB chunked writes for large files.
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk: interleaved audio samples, frame-major
//
// Header fields are derived from the buffer shape: byteRate is
// sampleRate*channels*2 and blockAlign is channels*2.
package wav
