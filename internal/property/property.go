// Package property evaluates and describes the closed set of
// domain.Property variants, and encodes per-guess results into hints.
package property

import (
	"fmt"

	"svw.info/numguess/internal/domain"
	"svw.info/numguess/internal/sequence"
)

// Fulfilled reports whether by satisfies p. It is total over 0..255.
func Fulfilled(p domain.Property, by uint8) bool {
	switch v := p.(type) {
	case domain.HasBase:
		return countInBase(by, v.Base, v.Char) == int(v.Count)
	case domain.SumDigits:
		return v.Cmp.Holds(digitSum(by), int(v.Sum))
	case domain.NumDigits:
		return v.Cmp.Holds(digitCount(by), int(v.Amount))
	case domain.HasFactor:
		return (int(by)%int(v.Factor) == 0) == v.Contains
	case domain.NumFactor:
		return v.Cmp.Holds(divisorCount(by), int(v.Num))
	case domain.MaxGCDWith:
		return v.Cmp.Holds(gcd(int(by), int(v.With)), int(v.Border))
	case domain.Prime:
		return isPrime(by) == v.IsPrime
	case domain.Sequence:
		return sequence.Contains(v.Seq, by) == v.Included
	}
	panic(fmt.Sprintf("property: unhandled variant %T", p))
}

// Degenerate reports whether p has the same outcome for every guess in the
// domain, i.e. it is a tautology or a contradiction.
func Degenerate(p domain.Property) bool {
	first := Fulfilled(p, 0)
	for by := 1; by <= domain.MaxGuess; by++ {
		if Fulfilled(p, uint8(by)) != first {
			return false
		}
	}
	return true
}
