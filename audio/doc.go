// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample model shared by every processing stage.
//
// This package contains the core building blocks:
//   - Buffer, a whole-clip planar sample container
//   - Source interface for streaming audio input
//   - ReadAll for draining a Source into a Buffer
//   - Resample and Downmix for output conversion
//   - Format registry for decoder registration
//
// # Sample Buffer
//
// A Buffer holds a complete clip with one float32 slice per channel:
//
//	type Buffer struct {
//	    SampleRate int
//	    Data       [][]float32 // Data[channel][frame]
//	}
//
// All channels have the same length (the frame count). Operations that
// produce a Buffer always hand back freshly allocated data; callers never
// receive a buffer that aliases an input.
//
// # Source Interface
//
// The Source interface is the streaming boundary used by decoders:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Sources deliver interleaved samples. ReadAll bridges the two worlds by
// draining a Source and de-interleaving into a Buffer:
//
//	src, _ := decoder.Decode(file)
//	buf, err := audio.ReadAll(src)
//
// # Output Conversion
//
// Resample changes the sample rate of a Buffer using cubic interpolation,
// with basic anti-alias filtering when downsampling:
//
//	out, err := audio.Resample(buf, 16000)
//
// Downmix folds a multi-channel Buffer to mono by averaging:
//
//	mono, err := audio.Downmix(buf)
//
// Both preserve the input and return independent buffers.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// This is useful for applications that need to support multiple formats.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Processing stages may push samples slightly past this range; the final
// 16-bit encoding clamps back to [-1.0, 1.0].
//
// # Error Handling
//
// Buffer operations validate their input and return sentinel errors
// (ErrNoChannels, ErrRaggedChannels, ErrBadSampleRate) that work with
// errors.Is. Streaming reads follow the io convention:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
