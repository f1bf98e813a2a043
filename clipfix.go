// SPDX-License-Identifier: EPL-2.0

package clipfix

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/quietroom/clipfix/audio"
	"github.com/quietroom/clipfix/formats/aiff"
	"github.com/quietroom/clipfix/formats/mp3"
	"github.com/quietroom/clipfix/formats/vorbis"
	"github.com/quietroom/clipfix/formats/wav"
	"github.com/quietroom/clipfix/fx"
)

// Stage identifies where a run currently is in the pipeline.
type Stage int

const (
	StageIdle Stage = iota
	StageDecoding
	StageTransforming
	StageEncoding
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageDecoding:
		return "decoding"
	case StageTransforming:
		return "transforming"
	case StageEncoding:
		return "encoding"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	}

	return "unknown"
}

// ProgressFunc observes coarse pipeline milestones: (Decoding, 10) at decode
// start, (Transforming, 30) after decode, (Encoding, 70) after transform and
// (Done, 100) after encode. On failure it observes (Failed, percent-so-far).
// Advisory only; a nil callback is allowed.
type ProgressFunc func(stage Stage, percent int)

// Result carries the encoded output of a successful run.
type Result struct {
	// WAV is the complete PCM 16-bit container, header included.
	WAV []byte

	SampleRate   int
	Channels     int
	InputFrames  int
	OutputFrames int
	Tool         Tool
}

// registry holds the decoders Process can dispatch to by format key.
var registry = func() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})

	return r
}()

// Formats lists the format keys Process accepts, in sorted order.
func Formats() []string {
	return registry.Formats()
}

// FormatForPath maps a file extension to a format key for Process, or ""
// when the extension is not a recognized audio format.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return "wav"
	case ".mp3":
		return "mp3"
	case ".ogg", ".oga":
		return "ogg"
	case ".aif", ".aiff":
		return "aiff"
	}

	return ""
}

// OutputName derives the output filename for a processed clip:
// "<dir>/<base>_<tool>.wav".
func OutputName(inputPath string, tool Tool) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return filepath.Join(dir, base+"_"+tool.String()+".wav")
}

// Decode reads one clip through the decoder registered for format and
// collects it into a buffer. Failures wrap ErrDecode exactly as Process
// reports them, so a caller can decode up front, inspect the clip, and
// hand it to ProcessBuffer without changing the error taxonomy.
func Decode(r io.Reader, format string) (*audio.Buffer, error) {
	dec, ok := registry.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %w: %q", ErrDecode, ErrUnknownFormat, format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return buf, nil
}

// Process runs the full pipeline on one clip: decode r using the decoder
// registered for format, apply the transform selected by opts.Tool, convert
// if opts asks for it, and encode the result as a 16-bit WAV container.
//
// The call blocks until the run completes or fails; callers that need the
// pipeline off their main thread wrap Process in a goroutine and receive
// milestones through progress. Runs share no state, so concurrent calls are
// independent. There is no cancellation: a run proceeds to Done or Failed.
//
// Exactly one error surfaces per failed run, wrapping ErrDecode or
// ErrProcess depending on the stage. No partial output is returned.
func Process(r io.Reader, format string, opts Options, progress ProgressFunc) (*Result, error) {
	report(progress, StageDecoding, 10)

	buf, err := Decode(r, format)
	if err != nil {
		report(progress, StageFailed, 10)
		return nil, err
	}

	return run(buf, opts, progress)
}

// ProcessBuffer runs the transform and encode stages on a clip decoded
// elsewhere. Decode milestones are skipped; progress starts at
// (Transforming, 30). The buffer is not modified.
func ProcessBuffer(buf *audio.Buffer, opts Options, progress ProgressFunc) (*Result, error) {
	return run(buf, opts, progress)
}

func run(buf *audio.Buffer, opts Options, progress ProgressFunc) (*Result, error) {
	report(progress, StageTransforming, 30)

	// Transforms index across channels, so shape violations must be
	// caught before dispatch.
	if err := buf.Validate(); err != nil {
		report(progress, StageFailed, 30)
		return nil, fmt.Errorf("%w: %w", ErrProcess, err)
	}

	inputFrames := buf.Frames()

	out, err := transform(buf, opts)
	if err != nil {
		report(progress, StageFailed, 30)
		return nil, fmt.Errorf("%w: %w", ErrProcess, err)
	}

	report(progress, StageEncoding, 70)

	out, err = convert(out, opts)
	if err != nil {
		report(progress, StageFailed, 70)
		return nil, fmt.Errorf("%w: %w", ErrProcess, err)
	}

	data, err := wav.EncodeBytes(out)
	if err != nil {
		report(progress, StageFailed, 70)
		return nil, fmt.Errorf("%w: %w", ErrProcess, err)
	}

	report(progress, StageDone, 100)

	return &Result{
		WAV:          data,
		SampleRate:   out.SampleRate,
		Channels:     out.Channels(),
		InputFrames:  inputFrames,
		OutputFrames: out.Frames(),
		Tool:         opts.Tool,
	}, nil
}

// transform dispatches to the fx function selected by opts.Tool. Each
// transform returns a fresh buffer; the input is read-only throughout.
func transform(buf *audio.Buffer, opts Options) (*audio.Buffer, error) {
	switch opts.Tool {
	case ToolSilence:
		return fx.RemoveSilence(buf, opts.Aggression), nil
	case ToolNoise:
		return fx.ReduceNoise(buf, opts.NoiseLevel), nil
	case ToolLoudness:
		return fx.NormalizeLoudness(buf, opts.TargetLufs), nil
	case ToolQuality:
		return fx.Enhance(buf, opts.EnhanceLevel), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTool, int(opts.Tool))
	}
}

// convert applies the opt-in output conversions between transform and
// encode: downmix first, then resample.
func convert(buf *audio.Buffer, opts Options) (*audio.Buffer, error) {
	out := buf

	if opts.Downmix {
		var err error

		out, err = audio.Downmix(out)
		if err != nil {
			return nil, err
		}
	}

	if opts.OutputRate > 0 && opts.OutputRate != out.SampleRate {
		var err error

		out, err = audio.Resample(out, opts.OutputRate)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func report(progress ProgressFunc, stage Stage, percent int) {
	if progress != nil {
		progress(stage, percent)
	}
}
