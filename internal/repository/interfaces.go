package repository

import (
	"context"

	"football-data-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Team, error)
	GetBySlug(ctx context.Context, slug string) (*models.Team, error)
	Count(ctx context.Context) (int64, error)
}

// MatchRepositoryInterface defines the interface for match repository operations
type MatchRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.MatchWithTeams, error)
	GetByStatus(ctx context.Context, status models.MatchStatus, ascending bool) ([]models.MatchWithTeams, error)
}

// StandingRepositoryInterface defines the interface for standing repository operations
type StandingRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.StandingWithTeam, error)
}

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	GetTopScorers(ctx context.Context, limit int) ([]models.PlayerWithTeam, error)
}
