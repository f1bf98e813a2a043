// SPDX-License-Identifier: EPL-2.0

// Package clipfix provides one-shot touch-up processing for audio clips.
//
// The package decodes a clip, applies exactly one of four transforms, and
// encodes the result as a PCM 16-bit WAV container. It is the core of a
// batch clip-repair workflow: feed it a recording with dead air, hiss, low
// level or a dull mix, pick the matching tool, and write the returned bytes
// next to the original.
//
// # The Four Tools
//
// Each run applies a single transform, selected by Options.Tool:
//
//   - ToolSilence: removes silent regions of at least 150 ms. The detection
//     threshold follows Options.Aggression (0-100; higher trims more).
//   - ToolNoise: gates low-level noise per channel. The gate adapts to the
//     clip's own noise floor; Options.NoiseLevel picks the base strength.
//   - ToolLoudness: measures approximate loudness and applies flat gain
//     toward Options.TargetLufs, with a soft limiter above 0.95.
//   - ToolQuality: adds a gentle presence boost, then compresses peaks
//     above 0.7. Options.EnhanceLevel picks the boost.
//
// # Quick Start
//
//	f, _ := os.Open("episode.mp3")
//	defer f.Close()
//
//	opts := clipfix.DefaultOptions(clipfix.ToolSilence)
//	result, err := clipfix.Process(f, "mp3", opts, nil)
//	if err != nil {
//	    // Handle error
//	}
//
//	os.WriteFile(clipfix.OutputName("episode.mp3", opts.Tool), result.WAV, 0o644)
//
// # Supported Formats
//
// Process accepts a format key naming the input container:
//   - "wav" via formats/wav
//   - "mp3" via formats/mp3
//   - "ogg" via formats/vorbis
//   - "aiff" via formats/aiff
//
// FormatForPath maps a filename to its key. Output is always WAV.
//
// # Pipeline and Progress
//
// A run walks Decoding -> Transforming -> Encoding -> Done, with a Failed
// terminal state reachable from any stage. The optional ProgressFunc
// observes coarse milestones (10, 30, 70, 100 percent); they are advisory
// and carry no cancellation. Process blocks; callers that need asynchrony
// start it in a goroutine and listen to the callback, which is how the
// bundled CLI drives its progress display.
//
// Concurrent runs are independent. Every stage owns its buffer exclusively,
// so nothing is shared and no locking happens anywhere in the pipeline.
//
// # Errors
//
// A failed run surfaces exactly one error, wrapping ErrDecode when the
// input could not be decoded and ErrProcess for transform or encode
// failures. Use errors.Is to classify:
//
//	_, err := clipfix.Process(r, "wav", opts, nil)
//	if errors.Is(err, clipfix.ErrDecode) {
//	    fmt.Println("bad input file")
//	}
//
// # Subpackages
//
// The building blocks are exported for callers that need more control:
//
//   - audio: planar Buffer, Source/Decoder interfaces, ReadAll, Resample,
//     Downmix
//   - fx: the four transforms as pure Buffer -> Buffer functions
//   - formats/wav: WAV decode and the bit-exact PCM 16 encoder
//   - formats/mp3, formats/vorbis, formats/aiff: decode adapters
//   - analysis: clip measurements (peak, RMS, approximate loudness)
//
// Decode collects a clip into an audio.Buffer without processing it, and
// ProcessBuffer runs transform and encode on a buffer decoded by other
// means; together they split the pipeline for callers that want to inspect
// the clip in between.
package clipfix
