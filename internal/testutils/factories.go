package testutils

import (
	"fmt"
	"time"

	"football-data-backend/internal/database/models"
)

// StringPtr returns a pointer to s
func StringPtr(s string) *string { return &s }

// IntPtr returns a pointer to i
func IntPtr(i int) *int { return &i }

// TeamFactory provides methods to create test Team data
type TeamFactory struct {
	seq int
}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with unique name and slug
func (f *TeamFactory) Create() *models.Team {
	f.seq++
	return &models.Team{
		Name:           fmt.Sprintf("Test Club %02d", f.seq),
		Nickname:       fmt.Sprintf("Los Test %02d", f.seq),
		Slug:           fmt.Sprintf("test-club-%02d", f.seq),
		PrimaryColor:   "#FFD700",
		SecondaryColor: "#000080",
		Stadium:        StringPtr("Estadio de Prueba"),
		City:           StringPtr("Ciudad de Prueba"),
	}
}

// WithName creates a test Team with a custom name and slug
func (f *TeamFactory) WithName(name, slug string) *models.Team {
	team := f.Create()
	team.Name = name
	team.Slug = slug
	return team
}

// MatchFactory provides methods to create test Match data
type MatchFactory struct{}

// NewMatchFactory creates a new MatchFactory
func NewMatchFactory() *MatchFactory {
	return &MatchFactory{}
}

// Finished creates a finished match between the given teams
func (f *MatchFactory) Finished(homeID, awayID uint, date time.Time, homeScore, awayScore int) *models.Match {
	return &models.Match{
		HomeTeamID:  homeID,
		AwayTeamID:  awayID,
		HomeScore:   IntPtr(homeScore),
		AwayScore:   IntPtr(awayScore),
		Status:      models.MatchStatusFinished,
		MatchDate:   date,
		Venue:       StringPtr("Estadio"),
		Competition: models.DefaultCompetition,
	}
}

// Live creates a live match at the given minute
func (f *MatchFactory) Live(homeID, awayID uint, date time.Time, minute int) *models.Match {
	m := f.Finished(homeID, awayID, date, 1, 0)
	m.Status = models.MatchStatusLive
	m.Minute = IntPtr(minute)
	return m
}

// Upcoming creates an upcoming match without scores
func (f *MatchFactory) Upcoming(homeID, awayID uint, date time.Time) *models.Match {
	return &models.Match{
		HomeTeamID:  homeID,
		AwayTeamID:  awayID,
		Status:      models.MatchStatusUpcoming,
		MatchDate:   date,
		Venue:       StringPtr("Estadio"),
		Competition: models.DefaultCompetition,
	}
}

// StandingFactory provides methods to create test Standing data
type StandingFactory struct{}

// NewStandingFactory creates a new StandingFactory
func NewStandingFactory() *StandingFactory {
	return &StandingFactory{}
}

// Create creates a standing row for the team at the given position
func (f *StandingFactory) Create(teamID uint, position int) *models.Standing {
	s := &models.Standing{
		TeamID:        teamID,
		Position:      position,
		MatchesPlayed: 17,
		Wins:          10,
		Draws:         4,
		Losses:        3,
		GoalsFor:      30 - position,
		GoalsAgainst:  15 + position,
		Points:        34,
		Season:        models.DefaultSeason,
	}
	s.RecomputeGoalDifference()
	return s
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct {
	seq int
}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// WithGoals creates a forward on the given team with the given goal count
func (f *PlayerFactory) WithGoals(teamID uint, goals int) *models.Player {
	f.seq++
	return &models.Player{
		Name:        fmt.Sprintf("Jugador %02d", f.seq),
		TeamID:      teamID,
		Position:    StringPtr(models.PositionForward),
		Goals:       goals,
		Assists:     3,
		Appearances: 15,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team     *TeamFactory
	Match    *MatchFactory
	Standing *StandingFactory
	Player   *PlayerFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:     NewTeamFactory(),
		Match:    NewMatchFactory(),
		Standing: NewStandingFactory(),
		Player:   NewPlayerFactory(),
	}
}
