package service

import (
	"context"
	"errors"

	apperrors "football-data-backend/internal/errors"
	"football-data-backend/internal/repository"

	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo   repository.TeamRepositoryInterface
	policy StorePolicy
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, policy StorePolicy) *TeamService {
	return &TeamService{
		repo:   repo,
		policy: policy,
	}
}

// GetAll returns every team ordered by name
func (s *TeamService) GetAll(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.repo.GetAll(ctx)
	if err != nil {
		if err := s.policy.absorb(ctx, "fetch teams", err); err != nil {
			return nil, err
		}
		return []TeamResponse{}, nil
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = toTeamResponse(&teams[i])
	}
	return responses, nil
}

// GetBySlug returns the team with the given slug or ErrTeamNotFound
func (s *TeamService) GetBySlug(ctx context.Context, slug string) (*TeamResponse, error) {
	team, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		if err := s.policy.absorb(ctx, "fetch team", err); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrTeamNotFound
	}

	response := toTeamResponse(team)
	return &response, nil
}

// Count returns the number of stored teams. Store failures are always reported.
func (s *TeamService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
