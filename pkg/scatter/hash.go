package scatter

// HashString is a stable 31-multiplier string hash over the upper-cased
// code points of s, starting from seed. Arithmetic wraps at 32 bits; the
// result is the absolute value of the signed accumulator, so
// math.MinInt32 comes back as 1<<31.
func HashString(s string, seed int32) uint32 {
	h := seed
	for _, r := range upper(s) {
		h = 31*h + r
	}
	if h < 0 {
		return uint32(-int64(h))
	}
	return uint32(h)
}
