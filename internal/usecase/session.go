package usecase

import (
	"svw.info/numguess/internal/domain"
	"svw.info/numguess/internal/property"
)

// Order places a guess relative to the secret.
type Order int

const (
	TooSmall Order = iota - 1
	Exact
	TooBig
)

// Feedback is the outcome of one guess.
type Feedback struct {
	Guess uint8
	Hint  domain.Hint
	Order Order
	Won   bool
}

// Session is one game. It is not safe for concurrent use.
type Session struct {
	ID      string
	Puzzle  *domain.Puzzle
	Guesses int
	Won     bool
}

// Guess scores n against the puzzle.
func (s *Session) Guess(n uint8) Feedback {
	s.Guesses++
	fb := Feedback{Guess: n, Hint: property.Check(s.Puzzle.Problem, n)}
	switch {
	case n < s.Puzzle.Secret:
		fb.Order = TooSmall
	case n > s.Puzzle.Secret:
		fb.Order = TooBig
	default:
		fb.Order = Exact
	}
	if s.Puzzle.Mode == domain.WinHint {
		fb.Won = fb.Hint == s.Puzzle.Problem.FullMask()
	} else {
		fb.Won = fb.Order == Exact
	}
	if fb.Won {
		s.Won = true
	}
	return fb
}

// Describe lists the property descriptions in bit order.
func (s *Session) Describe() []string {
	pr := s.Puzzle.Problem
	out := make([]string, pr.Len())
	for i := range out {
		out[i] = property.Describe(pr.At(i))
	}
	return out
}

// Len is the number of meaningful hint bits.
func (s *Session) Len() int { return s.Puzzle.Problem.Len() }
