// Package sequence answers bounded membership queries for the integer
// sequences used by Sequence properties. Bounds cover the guessing domain
// 0..255 exactly; widen them together with domain.MaxGuess.
package sequence

import "svw.info/numguess/internal/domain"

const (
	maxTriangularIndex = 22 // T(22) = 253
	fibonacciTerms     = 15 // 0, 1, 1, 2, ... 377
	maxTwoPowerExp     = 6  // 2^6 = 64
	maxSquareRoot      = 15 // 15^2 = 225
)

// Contains reports whether by is a member of the sequence kind.
func Contains(kind domain.SequenceKind, by uint8) bool {
	switch kind {
	case domain.Triangular:
		return Triangular(by)
	case domain.Fibonacci:
		return Fibonacci(by)
	case domain.TwoPowers:
		return TwoPowers(by)
	case domain.SquareNums:
		return SquareNums(by)
	}
	return false
}

// Triangular reports whether x*x + x == 2*by for some x in [0, 22].
func Triangular(by uint8) bool {
	target := 2 * int(by)
	for x := 0; x <= maxTriangularIndex; x++ {
		if x*x+x == target {
			return true
		}
	}
	return false
}

// Fibonacci reports whether by is one of the first 15 Fibonacci terms.
func Fibonacci(by uint8) bool {
	a, b := 0, 1
	for i := 0; i < fibonacciTerms; i++ {
		if a == int(by) {
			return true
		}
		a, b = b, a+b
	}
	return false
}

// TwoPowers reports whether by == 2^k for k in [0, 6].
func TwoPowers(by uint8) bool {
	for k := 0; k <= maxTwoPowerExp; k++ {
		if 1<<k == int(by) {
			return true
		}
	}
	return false
}

// SquareNums reports whether by == a*a for a in [1, 15].
func SquareNums(by uint8) bool {
	for a := 1; a <= maxSquareRoot; a++ {
		if a*a == int(by) {
			return true
		}
	}
	return false
}
