package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"svw.info/numguess/internal/domain"
	"svw.info/numguess/internal/ports"
)

type Service struct {
	Generator ports.Generator
	Logger    *slog.Logger
}

func NewService(g ports.Generator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Generator: g, Logger: logger}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// NewSession generates a puzzle and starts a game around it.
func (u *Service) NewSession(ctx context.Context, seed int64, length int, mode domain.WinMode) (*Session, error) {
	if u.Generator == nil {
		return nil, errNotConfigured
	}
	p, st, err := u.Generator.Generate(ctx, seed, length, mode)
	if err != nil {
		return nil, err
	}
	s := &Session{ID: uuid.NewString(), Puzzle: p}
	u.Logger.Debug("session started",
		"session", s.ID,
		"seed", seed,
		"length", length,
		"mode", mode.String(),
		"attempts", st.Attempts,
		"redraws", st.Redraws,
		"solutions", len(p.Solutions),
		"dur", st.Duration,
	)
	return s, nil
}
