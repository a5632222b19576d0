package repository

import (
	"context"

	"football-data-backend/internal/database/models"
	apperrors "football-data-backend/internal/errors"

	"gorm.io/gorm"
)

const matchWithTeamsColumns = `m.*,
	h.name AS home_team_name, h.nickname AS home_team_nickname,
	h.primary_color AS home_team_primary_color, h.secondary_color AS home_team_secondary_color,
	a.name AS away_team_name, a.nickname AS away_team_nickname,
	a.primary_color AS away_team_primary_color, a.secondary_color AS away_team_secondary_color`

// MatchRepository handles database operations for matches
type MatchRepository struct {
	db *gorm.DB
}

// Ensure MatchRepository implements MatchRepositoryInterface
var _ MatchRepositoryInterface = (*MatchRepository)(nil)

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// withTeams builds the base query joining both teams onto each match
func (r *MatchRepository) withTeams(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("matches AS m").
		Select(matchWithTeamsColumns).
		Joins("JOIN teams h ON m.home_team_id = h.id").
		Joins("JOIN teams a ON m.away_team_id = a.id")
}

// GetAll retrieves every match, newest first
func (r *MatchRepository) GetAll(ctx context.Context) ([]models.MatchWithTeams, error) {
	if r.db == nil {
		return nil, apperrors.ErrStoreUnavailable
	}
	var matches []models.MatchWithTeams
	err := r.withTeams(ctx).Order("m.match_date DESC, m.id DESC").Scan(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// GetByStatus retrieves matches with the given status ordered by date
func (r *MatchRepository) GetByStatus(ctx context.Context, status models.MatchStatus, ascending bool) ([]models.MatchWithTeams, error) {
	if r.db == nil {
		return nil, apperrors.ErrStoreUnavailable
	}

	// ties on match_date break by id in the same direction as the date
	order := "m.match_date DESC, m.id DESC"
	if ascending {
		order = "m.match_date ASC, m.id ASC"
	}

	var matches []models.MatchWithTeams
	err := r.withTeams(ctx).
		Where("m.status = ?", status).
		Order(order).
		Scan(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}
