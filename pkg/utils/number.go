package utils

import "math"

// RoundWithTwoDecimalPlace rounds to cents, matching the DECIMAL(10,2)
// price column.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundWithOneDecimalPlace rounds to the DECIMAL(3,1) rating scale.
func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}
