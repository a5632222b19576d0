package seed

import (
	"context"
	"fmt"
	"sort"

	"football-data-backend/internal/database/models"
	apperrors "football-data-backend/internal/errors"
	"football-data-backend/internal/logger"
	"football-data-backend/internal/repository"

	"gorm.io/gorm"
)

const batchSize = 100

// Summary reports how many rows each table received
type Summary struct {
	Teams     int `json:"teams"`
	Standings int `json:"standings"`
	Players   int `json:"players"`
	Matches   int `json:"matches"`
}

// Seeder replaces the league tables with generated fixture data
type Seeder struct {
	db     *gorm.DB
	teams  repository.TeamRepositoryInterface
	gen    *Generator
	dryRun bool
}

// Option configures a Seeder
type Option func(*Seeder)

// WithDryRun generates every table without writing to the store
func WithDryRun(dryRun bool) Option {
	return func(s *Seeder) { s.dryRun = dryRun }
}

// NewSeeder creates a seeder writing through db. db may be nil for a dry run.
func NewSeeder(db *gorm.DB, gen *Generator, opts ...Option) *Seeder {
	s := &Seeder{
		db:    db,
		teams: repository.NewTeamRepository(db),
		gen:   gen,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reseeds teams, standings, players and matches in that order. Each table
// is cleared and refilled in its own transaction.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	log := logger.WithContext(ctx)
	if s.db == nil && !s.dryRun {
		return nil, apperrors.ErrStoreUnavailable
	}

	clubs, err := LoadTeams()
	if err != nil {
		return nil, err
	}
	names, err := LoadPlayerNames()
	if err != nil {
		return nil, err
	}

	summary := &Summary{}

	if err := s.replace(ctx, &models.Team{}, &clubs); err != nil {
		return nil, fmt.Errorf("failed to seed teams: %w", err)
	}
	summary.Teams = len(clubs)
	log.WithField("count", summary.Teams).Info("Inserted teams")

	teams, err := s.storedTeams(ctx, clubs)
	if err != nil {
		return nil, fmt.Errorf("failed to read back teams: %w", err)
	}

	standings := s.gen.Standings(teams)
	if err := s.replace(ctx, &models.Standing{}, &standings); err != nil {
		return nil, fmt.Errorf("failed to seed standings: %w", err)
	}
	summary.Standings = len(standings)
	log.WithField("count", summary.Standings).Info("Inserted standings")

	players := s.gen.Players(teams, names)
	if err := s.replace(ctx, &models.Player{}, &players); err != nil {
		return nil, fmt.Errorf("failed to seed players: %w", err)
	}
	summary.Players = len(players)
	log.WithField("count", summary.Players).Info("Inserted players")

	matches := s.gen.Matches(teams)
	if err := s.replace(ctx, &models.Match{}, &matches); err != nil {
		return nil, fmt.Errorf("failed to seed matches: %w", err)
	}
	summary.Matches = len(matches)
	log.WithField("count", summary.Matches).Info("Inserted matches")

	return summary, nil
}

// replace deletes every row of model's table and inserts rows, committing once
func (s *Seeder) replace(ctx context.Context, model interface{}, rows interface{}) error {
	if s.dryRun {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(rows, batchSize).Error
	})
}

// storedTeams returns the teams ordered by name with their store ids. A dry
// run numbers the embedded clubs in name order instead.
func (s *Seeder) storedTeams(ctx context.Context, clubs []models.Team) ([]models.Team, error) {
	if !s.dryRun {
		return s.teams.GetAll(ctx)
	}
	teams := make([]models.Team, len(clubs))
	copy(teams, clubs)
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	for i := range teams {
		teams[i].ID = uint(i + 1)
	}
	return teams, nil
}
