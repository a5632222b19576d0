package repository

import (
	"context"

	"football-data-backend/internal/database/models"
	apperrors "football-data-backend/internal/errors"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// Ensure TeamRepository implements TeamRepositoryInterface
var _ TeamRepositoryInterface = (*TeamRepository)(nil)

// NewTeamRepository creates a new team repository. db may be nil when the
// store was unreachable at startup.
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetAll retrieves all teams ordered by name
func (r *TeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	if r.db == nil {
		return nil, apperrors.ErrStoreUnavailable
	}
	var teams []models.Team
	err := r.db.WithContext(ctx).Order("name ASC").Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// GetBySlug retrieves a team by its unique slug
func (r *TeamRepository) GetBySlug(ctx context.Context, slug string) (*models.Team, error) {
	if r.db == nil {
		return nil, apperrors.ErrStoreUnavailable
	}
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Count returns the number of stored teams
func (r *TeamRepository) Count(ctx context.Context) (int64, error) {
	if r.db == nil {
		return 0, apperrors.ErrStoreUnavailable
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Team{}).Count(&count).Error
	return count, err
}
