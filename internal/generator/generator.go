package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/numguess/internal/domain"
	"svw.info/numguess/internal/ports"
	"svw.info/numguess/internal/property"
)

const (
	secretMin = 1
	secretMax = 100
	// maxAttempts bounds problem regeneration when hint mode needs a solvable problem.
	maxAttempts = 256
)

var errUnsolvable = errors.New("no solvable problem within attempt budget")

// PuzzleGenerator builds puzzles from a seed. It holds no state between calls.
type PuzzleGenerator struct{}

func NewPuzzleGenerator() *PuzzleGenerator { return &PuzzleGenerator{} }

// Generate creates a problem of the given length and picks the secret.
// In hint mode the problem is regenerated until some guess satisfies every
// property, and the secret is one of those guesses.
func (g *PuzzleGenerator) Generate(ctx context.Context, seed int64, length int, mode domain.WinMode) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	f := NewFactory(rng)
	stats := func(attempts int) ports.Stats {
		return ports.Stats{Attempts: attempts, Redraws: f.Redraws, Duration: time.Since(start)}
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, stats(attempt), err
		}
		pr, err := f.Problem(length)
		if err != nil {
			return nil, stats(attempt), err
		}
		sols := property.Solutions(pr)
		p := &domain.Puzzle{Seed: seed, Mode: mode, Problem: pr, Solutions: sols}
		switch mode {
		case domain.WinHint:
			if len(sols) == 0 {
				continue
			}
			p.Secret = sols[rng.Intn(len(sols))]
		default:
			p.Secret = uint8(secretMin + rng.Intn(secretMax-secretMin+1))
		}
		return p, stats(attempt), nil
	}
	return nil, stats(maxAttempts), errUnsolvable
}
