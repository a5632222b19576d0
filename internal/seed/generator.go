package seed

import (
	"math/rand"
	"time"

	"football-data-backend/internal/database/models"
)

const (
	// MatchCount is the number of fixtures generated per run
	MatchCount = 50

	matchesPlayed   = 17
	matchWindowDays = 30
	liveChance      = 0.1
	defaultVenue    = "Estadio"
)

var positions = []string{
	models.PositionForward,
	models.PositionMidfielder,
	models.PositionDefender,
	models.PositionGoalkeeper,
}

// Generator derives standings, players and matches from a stored team list.
// Standings and players are deterministic; matches draw from the random source.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator creates a generator seeded with seed, anchored at now
func NewGenerator(seed int64, now time.Time) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Standings builds one row per team. teams must already be ordered by name;
// index i takes position i+1.
func (g *Generator) Standings(teams []models.Team) []models.Standing {
	standings := make([]models.Standing, 0, len(teams))
	for i, team := range teams {
		s := models.Standing{
			TeamID:        team.ID,
			Position:      i + 1,
			MatchesPlayed: matchesPlayed,
			Wins:          max(matchesPlayed-i-3, 2),
			Draws:         min(i+2, 8),
			Losses:        max(i-2, 0),
			GoalsFor:      max(30-i, 10),
			GoalsAgainst:  min(15+i, 40),
			Points:        max(51-i*3, 15),
			Season:        models.DefaultSeason,
		}
		s.RecomputeGoalDifference()
		standings = append(standings, s)
	}
	return standings
}

// Players assigns the k-th name to team k mod len(teams)
func (g *Generator) Players(teams []models.Team, names []string) []models.Player {
	if len(teams) == 0 {
		return nil
	}
	players := make([]models.Player, 0, len(names))
	for k, name := range names {
		position := positions[k%len(positions)]
		players = append(players, models.Player{
			Name:        name,
			TeamID:      teams[k%len(teams)].ID,
			Position:    &position,
			Goals:       max(0, 20-k%25),
			Assists:     max(0, 15-k%20),
			Appearances: min(17, 15+k%3),
		})
	}
	return players
}

// Matches draws MatchCount fixtures between distinct teams. Status follows the
// match date relative to now: past games are finished, games close to now may
// be live, later ones are upcoming without a score.
func (g *Generator) Matches(teams []models.Team) []models.Match {
	if len(teams) < 2 {
		return nil
	}
	matches := make([]models.Match, 0, MatchCount)
	for i := 0; i < MatchCount; i++ {
		hi := g.rng.Intn(len(teams))
		ai := g.rng.Intn(len(teams) - 1)
		if ai >= hi {
			ai++
		}
		home, away := teams[hi], teams[ai]

		offset := g.rng.Intn(2*matchWindowDays+1) - matchWindowDays
		date := g.now.AddDate(0, 0, offset)

		venue := defaultVenue
		if home.Stadium != nil && *home.Stadium != "" {
			venue = *home.Stadium
		}

		m := models.Match{
			HomeTeamID:  home.ID,
			AwayTeamID:  away.ID,
			MatchDate:   date,
			Venue:       &venue,
			Competition: models.DefaultCompetition,
		}
		g.applyStatus(&m)
		matches = append(matches, m)
	}
	return matches
}

func (g *Generator) applyStatus(m *models.Match) {
	switch {
	case m.MatchDate.Before(g.now.Add(-24 * time.Hour)):
		m.Status = models.MatchStatusFinished
		m.HomeScore, m.AwayScore = g.score(4), g.score(4)
	case m.MatchDate.Before(g.now.Add(2 * time.Hour)):
		if g.rng.Float64() < liveChance {
			minute := g.rng.Intn(90) + 1
			m.Status = models.MatchStatusLive
			m.HomeScore, m.AwayScore = g.score(3), g.score(3)
			m.Minute = &minute
			return
		}
		m.Status = models.MatchStatusFinished
		m.HomeScore, m.AwayScore = g.score(4), g.score(4)
	default:
		m.Status = models.MatchStatusUpcoming
	}
}

// score returns a goal count in [0, upTo]
func (g *Generator) score(upTo int) *int {
	v := g.rng.Intn(upTo + 1)
	return &v
}
