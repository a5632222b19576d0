package repository

import (
	"context"

	"football-data-backend/internal/database/models"
	apperrors "football-data-backend/internal/errors"

	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// Ensure PlayerRepository implements PlayerRepositoryInterface
var _ PlayerRepositoryInterface = (*PlayerRepository)(nil)

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetTopScorers retrieves the limit players with the most goals
func (r *PlayerRepository) GetTopScorers(ctx context.Context, limit int) ([]models.PlayerWithTeam, error) {
	if r.db == nil {
		return nil, apperrors.ErrStoreUnavailable
	}
	var players []models.PlayerWithTeam
	err := r.db.WithContext(ctx).
		Table("players AS p").
		Select("p.*, t.name AS team_name, t.nickname AS team_nickname, t.primary_color, t.secondary_color").
		Joins("JOIN teams t ON p.team_id = t.id").
		Order("p.goals DESC").Order("p.id ASC").
		Limit(limit).
		Scan(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}
