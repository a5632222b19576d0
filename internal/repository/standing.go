package repository

import (
	"context"

	"football-data-backend/internal/database/models"
	apperrors "football-data-backend/internal/errors"

	"gorm.io/gorm"
)

// StandingRepository handles database operations for standings
type StandingRepository struct {
	db *gorm.DB
}

// Ensure StandingRepository implements StandingRepositoryInterface
var _ StandingRepositoryInterface = (*StandingRepository)(nil)

// NewStandingRepository creates a new standing repository
func NewStandingRepository(db *gorm.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

// GetAll retrieves the table ordered by position
func (r *StandingRepository) GetAll(ctx context.Context) ([]models.StandingWithTeam, error) {
	if r.db == nil {
		return nil, apperrors.ErrStoreUnavailable
	}
	var standings []models.StandingWithTeam
	err := r.db.WithContext(ctx).
		Table("standings AS s").
		Select("s.*, t.name AS team_name, t.nickname AS team_nickname, t.primary_color, t.secondary_color, t.logo").
		Joins("JOIN teams t ON s.team_id = t.id").
		Order("s.position ASC").
		Scan(&standings).Error
	if err != nil {
		return nil, err
	}
	return standings, nil
}
