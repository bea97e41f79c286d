package domain

import "math"

// NormalizeEngagement converts a fraction (<=1) to percent, keeps percents as
// they are and rounds to two decimals.
func NormalizeEngagement(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return 0
	}
	if x <= 1 {
		x *= 100
	}
	return Round2(x)
}

// Round2 rounds half away from zero to two decimals.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
