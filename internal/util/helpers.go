package util

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// PercentOf returns pct percent of total, with pct clamped to [0, 100].
func PercentOf(total, pct int) int {
	return total * Clamp(pct, 0, 100) / 100
}
