package pet

// Resource quantities are stored as integers scaled up from their display
// value so that millions of small per-tick increments never accumulate
// floating-point drift.
const MicroScale = 1000

// ToMicro converts a display value to micro-units.
func ToMicro(display int) int64 {
	return int64(display) * MicroScale
}

// ToDisplay converts a micro-unit value to its user-facing display value.
// Truncates toward zero.
func ToDisplay(micro int64) int {
	return int(micro / MicroScale)
}

// ClampMicro bounds a micro-unit value to [0, max].
func ClampMicro(v, max int64) int64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
