package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 округляет число до 2 знаков после запятой по правилу half-up.
// Округляется кратчайшее десятичное представление числа, а не его двоичное значение,
// поэтому 1.005 превращается в 1.01.
func Round2(value float64) float64 {
	if !IsFinite(value) {
		return value
	}
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}
