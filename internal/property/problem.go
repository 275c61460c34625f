package property

import "svw.info/numguess/internal/domain"

// Check sets bit i of the hint iff by satisfies property i.
func Check(pr *domain.Problem, by uint8) domain.Hint {
	var h domain.Hint
	for i := 0; i < pr.Len(); i++ {
		if Fulfilled(pr.At(i), by) {
			h |= 1 << i
		}
	}
	return h
}

// Solutions returns every in-domain value whose hint is the full mask.
func Solutions(pr *domain.Problem) []uint8 {
	full := pr.FullMask()
	var out []uint8
	for by := 0; by <= domain.MaxGuess; by++ {
		if Check(pr, uint8(by)) == full {
			out = append(out, uint8(by))
		}
	}
	return out
}
