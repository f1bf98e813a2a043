// SPDX-License-Identifier: EPL-2.0

// Package fx implements the touch-up transforms applied to decoded audio.
//
// Each transform is a pure function from one audio.Buffer to a new one:
//   - RemoveSilence cuts sustained quiet stretches
//   - ReduceNoise gates low-level hiss below an estimated noise floor
//   - NormalizeLoudness applies a single gain toward a loudness target
//   - Enhance brightens the signal and tames peaks with light compression
//
// Transforms never mutate their input and never fail on structurally
// valid buffers; callers validate shape before dispatching.
//
// # Level
//
// ReduceNoise and Enhance take a Level that scales how far the effect
// reaches:
//
//	out := fx.ReduceNoise(buf, fx.LevelStrong)
//	out = fx.Enhance(out, fx.LevelLight)
//
// The zero value is LevelMedium, so an unset Level picks the default
// strength.
//
// # Shape Guarantees
//
// Every transform preserves the sample rate and channel count of its
// input. Only RemoveSilence may change the frame count; the other three
// return a buffer of the exact input length.
//
// # Repeated Application
//
// RemoveSilence converges: once the quiet stretches are gone a second
// pass finds nothing to cut. ReduceNoise, NormalizeLoudness and Enhance
// are not idempotent; applying them twice compounds the effect.
package fx
