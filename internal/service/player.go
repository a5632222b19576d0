package service

import (
	"context"

	"football-data-backend/internal/repository"
)

// Top scorer limits
const (
	DefaultTopScorersLimit = 10
	MaxTopScorersLimit     = 100
)

// PlayerService handles business logic for players
type PlayerService struct {
	repo   repository.PlayerRepositoryInterface
	policy StorePolicy
}

// Ensure PlayerService implements PlayerServiceInterface
var _ PlayerServiceInterface = (*PlayerService)(nil)

// NewPlayerService creates a new player service
func NewPlayerService(repo repository.PlayerRepositoryInterface, policy StorePolicy) *PlayerService {
	return &PlayerService{
		repo:   repo,
		policy: policy,
	}
}

// NormalizeTopScorersLimit maps a requested limit into [1, MaxTopScorersLimit].
// Anything below 1 falls back to the default.
func NormalizeTopScorersLimit(limit int) int {
	if limit < 1 {
		return DefaultTopScorersLimit
	}
	if limit > MaxTopScorersLimit {
		return MaxTopScorersLimit
	}
	return limit
}

// GetTopScorers returns up to limit players ordered by goals
func (s *PlayerService) GetTopScorers(ctx context.Context, limit int) ([]PlayerResponse, error) {
	players, err := s.repo.GetTopScorers(ctx, NormalizeTopScorersLimit(limit))
	if err != nil {
		if err := s.policy.absorb(ctx, "fetch top scorers", err); err != nil {
			return nil, err
		}
		return []PlayerResponse{}, nil
	}

	responses := make([]PlayerResponse, len(players))
	for i := range players {
		responses[i] = toPlayerResponse(&players[i])
	}
	return responses, nil
}
