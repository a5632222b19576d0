package service

import (
	"context"

	"football-data-backend/internal/database/models"
	"football-data-backend/internal/repository"
)

// MatchService handles business logic for matches
type MatchService struct {
	repo   repository.MatchRepositoryInterface
	policy StorePolicy
}

// Ensure MatchService implements MatchServiceInterface
var _ MatchServiceInterface = (*MatchService)(nil)

// NewMatchService creates a new match service
func NewMatchService(repo repository.MatchRepositoryInterface, policy StorePolicy) *MatchService {
	return &MatchService{
		repo:   repo,
		policy: policy,
	}
}

// GetAll returns every match, newest first
func (s *MatchService) GetAll(ctx context.Context) ([]MatchResponse, error) {
	matches, err := s.repo.GetAll(ctx)
	return s.respond(ctx, "fetch matches", matches, err)
}

// GetLive returns matches in progress, newest first
func (s *MatchService) GetLive(ctx context.Context) ([]MatchResponse, error) {
	matches, err := s.repo.GetByStatus(ctx, models.MatchStatusLive, false)
	return s.respond(ctx, "fetch live matches", matches, err)
}

// GetUpcoming returns scheduled matches, soonest first
func (s *MatchService) GetUpcoming(ctx context.Context) ([]MatchResponse, error) {
	matches, err := s.repo.GetByStatus(ctx, models.MatchStatusUpcoming, true)
	return s.respond(ctx, "fetch upcoming matches", matches, err)
}

func (s *MatchService) respond(ctx context.Context, op string, matches []models.MatchWithTeams, err error) ([]MatchResponse, error) {
	if err != nil {
		if err := s.policy.absorb(ctx, op, err); err != nil {
			return nil, err
		}
		return []MatchResponse{}, nil
	}

	responses := make([]MatchResponse, len(matches))
	for i := range matches {
		responses[i] = toMatchResponse(&matches[i])
	}
	return responses, nil
}
