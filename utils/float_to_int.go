package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM.
// Negative values scale by 32768 and non-negative by 32767 so that
// both -1.0 and 1.0 land exactly on the int16 range ends. The
// fractional part is truncated, matching a direct multiply-and-store.
func Float32ToInt16(x float32) int16 {
	// Clamp first, scale after
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 32768.0)
	}

	return int16(x * 32767.0)
}
