// SPDX-License-Identifier: EPL-2.0

// Package analysis measures clip levels for display and sanity checks.
//
// Measure walks a decoded buffer once and reports peak, RMS, an
// approximate loudness figure and the clip's noise floor, overall and per
// channel. The CLI prints these before and after processing so the effect
// of a tool is visible without opening an editor.
//
//	stats := analysis.Measure(buf)
//	fmt.Printf("peak %.1f dBFS, loudness %.1f\n", stats.PeakDb, stats.Loudness)
//
// The loudness figure uses the same approximation the loudness normalizer
// steers by, not gated ITU-R BS.1770 metering; compare it against other
// Measure results, not against broadcast meters.
package analysis
