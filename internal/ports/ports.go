package ports

import (
	"context"
	"time"

	"svw.info/numguess/internal/domain"
)

// Stats captures what puzzle generation cost.
type Stats struct {
	Attempts int // problems built
	Redraws  int // properties rejected as invalid or degenerate
	Duration time.Duration
}

// Generator creates a puzzle of the given length from a seed.
type Generator interface {
	Generate(ctx context.Context, seed int64, length int, mode domain.WinMode) (*domain.Puzzle, Stats, error)
}
