package service

import (
	"context"

	"football-data-backend/internal/repository"
)

// StandingService handles business logic for the league table
type StandingService struct {
	repo   repository.StandingRepositoryInterface
	policy StorePolicy
}

// Ensure StandingService implements StandingServiceInterface
var _ StandingServiceInterface = (*StandingService)(nil)

// NewStandingService creates a new standing service
func NewStandingService(repo repository.StandingRepositoryInterface, policy StorePolicy) *StandingService {
	return &StandingService{
		repo:   repo,
		policy: policy,
	}
}

// GetAll returns the table ordered by position
func (s *StandingService) GetAll(ctx context.Context) ([]StandingResponse, error) {
	standings, err := s.repo.GetAll(ctx)
	if err != nil {
		if err := s.policy.absorb(ctx, "fetch standings", err); err != nil {
			return nil, err
		}
		return []StandingResponse{}, nil
	}

	responses := make([]StandingResponse, len(standings))
	for i := range standings {
		responses[i] = toStandingResponse(&standings[i])
	}
	return responses, nil
}
