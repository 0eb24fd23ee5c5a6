package calc

import "math"

// maxFactorial is the largest n for which n! is finite in float64.
const maxFactorial = 170

func isNonNegInt(x float64) bool {
	return x >= 0 && x == math.Trunc(x)
}

// Factorial computes n! for non-negative integers. Any other input,
// including negative numbers, yields NaN.
func Factorial(n float64) float64 {
	if !isNonNegInt(n) {
		return math.NaN()
	}
	if n > maxFactorial {
		return math.Inf(1)
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return result
}

// Permutation computes n! / (n-r)!. Out-of-domain operands yield NaN.
func Permutation(n, r float64) float64 {
	if !isNonNegInt(n) || !isNonNegInt(r) || r > n {
		return math.NaN()
	}
	result := 1.0
	for i := 0.0; i < r && !math.IsInf(result, 0); i++ {
		result *= n - i
	}
	return result
}

// Combination computes n! / (r! (n-r)!). Out-of-domain operands yield NaN.
func Combination(n, r float64) float64 {
	if !isNonNegInt(n) || !isNonNegInt(r) || r > n {
		return math.NaN()
	}
	if r > n-r {
		r = n - r
	}
	result := 1.0
	for i := 1.0; i <= r; i++ {
		result = result * (n - r + i) / i
	}
	return math.Round(result)
}
