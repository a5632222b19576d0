//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"football-data-backend/internal/database"
	"football-data-backend/internal/database/models"
	"football-data-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeagueRepositoryTestSuite exercises the read queries against Postgres
type LeagueRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	ctx           context.Context

	teams     *TeamRepository
	matches   *MatchRepository
	standings *StandingRepository
	players   *PlayerRepository
}

func (suite *LeagueRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB

	suite.ctx = context.Background()
	suite.teams = NewTeamRepository(db)
	suite.matches = NewMatchRepository(db)
	suite.standings = NewStandingRepository(db)
	suite.players = NewPlayerRepository(db)
}

func (suite *LeagueRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *LeagueRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.factories = testutils.NewFactorySet()
}

func (suite *LeagueRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *LeagueRepositoryTestSuite) createTeams(names ...string) []models.Team {
	teams := make([]models.Team, 0, len(names))
	for i, name := range names {
		team := suite.factories.Team.WithName(name, "slug-"+string(rune('a'+i)))
		suite.Require().NoError(suite.baseTestSuite.DB.Create(team).Error)
		teams = append(teams, *team)
	}
	return teams
}

func (suite *LeagueRepositoryTestSuite) TestBootstrapIsIdempotent() {
	suite.NoError(database.Bootstrap(suite.baseTestSuite.DB))
	suite.NoError(database.Bootstrap(suite.baseTestSuite.DB))

	m := suite.baseTestSuite.DB.Migrator()
	for _, table := range []string{"teams", "matches", "standings", "players"} {
		suite.True(m.HasTable(table), table)
	}
}

func (suite *LeagueRepositoryTestSuite) TestTeams_GetAllOrderedByName() {
	suite.createTeams("Toluca", "Atlas", "Pachuca")

	teams, err := suite.teams.GetAll(suite.ctx)
	suite.NoError(err)
	suite.Require().Len(teams, 3)
	suite.Equal("Atlas", teams[0].Name)
	suite.Equal("Pachuca", teams[1].Name)
	suite.Equal("Toluca", teams[2].Name)

	count, err := suite.teams.Count(suite.ctx)
	suite.NoError(err)
	suite.Equal(int64(3), count)
}

func (suite *LeagueRepositoryTestSuite) TestTeams_GetBySlug() {
	created := suite.createTeams("Atlas")

	team, err := suite.teams.GetBySlug(suite.ctx, created[0].Slug)
	suite.NoError(err)
	suite.Equal(created[0].ID, team.ID)
	suite.Equal("Estadio de Prueba", *team.Stadium)
	suite.Nil(team.Logo)

	_, err = suite.teams.GetBySlug(suite.ctx, "unknown")
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *LeagueRepositoryTestSuite) TestTeams_SlugIsUnique() {
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.factories.Team.WithName("Atlas", "dup")).Error)
	err := suite.baseTestSuite.DB.Create(suite.factories.Team.WithName("Atlas FC", "dup")).Error
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

func (suite *LeagueRepositoryTestSuite) TestMatches_EnrichedAndFiltered() {
	teams := suite.createTeams("Atlas", "Pachuca")
	home, away := teams[0], teams[1]
	now := time.Now().UTC().Truncate(time.Second)

	db := suite.baseTestSuite.DB
	suite.Require().NoError(db.Create(suite.factories.Match.Finished(home.ID, away.ID, now.Add(-72*time.Hour), 2, 1)).Error)
	suite.Require().NoError(db.Create(suite.factories.Match.Live(away.ID, home.ID, now.Add(-30*time.Minute), 55)).Error)
	suite.Require().NoError(db.Create(suite.factories.Match.Live(home.ID, away.ID, now.Add(-10*time.Minute), 12)).Error)
	suite.Require().NoError(db.Create(suite.factories.Match.Upcoming(home.ID, away.ID, now.Add(96*time.Hour))).Error)
	suite.Require().NoError(db.Create(suite.factories.Match.Upcoming(away.ID, home.ID, now.Add(48*time.Hour))).Error)

	all, err := suite.matches.GetAll(suite.ctx)
	suite.NoError(err)
	suite.Require().Len(all, 5)
	for i := 1; i < len(all); i++ {
		suite.False(all[i].MatchDate.After(all[i-1].MatchDate), "all matches must be date descending")
	}
	suite.Equal("Atlas", all[0].HomeTeamName)
	suite.Equal("Pachuca", all[0].AwayTeamName)
	suite.Equal("#FFD700", all[0].HomeTeamPrimaryColor)
	suite.Equal("#000080", all[0].AwayTeamSecondaryColor)

	live, err := suite.matches.GetByStatus(suite.ctx, models.MatchStatusLive, false)
	suite.NoError(err)
	suite.Require().Len(live, 2)
	suite.Equal(12, *live[0].Minute)
	suite.Equal(55, *live[1].Minute)
	suite.Equal("Pachuca", live[1].HomeTeamName)

	upcoming, err := suite.matches.GetByStatus(suite.ctx, models.MatchStatusUpcoming, true)
	suite.NoError(err)
	suite.Require().Len(upcoming, 2)
	suite.True(upcoming[0].MatchDate.Before(upcoming[1].MatchDate))
	suite.Nil(upcoming[0].HomeScore)
	suite.Equal(models.DefaultCompetition, upcoming[0].Competition)
}

func (suite *LeagueRepositoryTestSuite) TestMatches_SameKickoffKeepsOrder() {
	teams := suite.createTeams("Atlas", "Pachuca", "Toluca")
	kickoff := time.Now().UTC().Truncate(time.Second).Add(-20 * time.Minute)

	db := suite.baseTestSuite.DB
	first := suite.factories.Match.Live(teams[0].ID, teams[1].ID, kickoff, 20)
	second := suite.factories.Match.Live(teams[1].ID, teams[2].ID, kickoff, 21)
	finished := suite.factories.Match.Finished(teams[2].ID, teams[0].ID, kickoff, 3, 3)
	third := suite.factories.Match.Live(teams[2].ID, teams[0].ID, kickoff, 22)
	for _, m := range []*models.Match{first, second, finished, third} {
		suite.Require().NoError(db.Create(m).Error)
	}

	all, err := suite.matches.GetAll(suite.ctx)
	suite.Require().NoError(err)
	live, err := suite.matches.GetByStatus(suite.ctx, models.MatchStatusLive, false)
	suite.Require().NoError(err)

	var liveInAll []uint
	for _, m := range all {
		if m.Status == models.MatchStatusLive {
			liveInAll = append(liveInAll, m.ID)
		}
	}
	liveIDs := make([]uint, 0, len(live))
	for _, m := range live {
		liveIDs = append(liveIDs, m.ID)
	}

	suite.Equal([]uint{third.ID, second.ID, first.ID}, liveIDs)
	suite.Equal(liveInAll, liveIDs)
}

func (suite *LeagueRepositoryTestSuite) TestStandings_OrderedByPosition() {
	teams := suite.createTeams("Atlas", "Pachuca", "Toluca")
	db := suite.baseTestSuite.DB
	suite.Require().NoError(db.Create(suite.factories.Standing.Create(teams[2].ID, 1)).Error)
	suite.Require().NoError(db.Create(suite.factories.Standing.Create(teams[0].ID, 3)).Error)
	suite.Require().NoError(db.Create(suite.factories.Standing.Create(teams[1].ID, 2)).Error)

	standings, err := suite.standings.GetAll(suite.ctx)
	suite.NoError(err)
	suite.Require().Len(standings, 3)
	suite.Equal("Toluca", standings[0].TeamName)
	suite.Equal("Pachuca", standings[1].TeamName)
	suite.Equal("Atlas", standings[2].TeamName)
	for _, s := range standings {
		suite.Equal(s.GoalsFor-s.GoalsAgainst, s.GoalDifference)
		suite.Equal(models.DefaultSeason, s.Season)
	}
}

func (suite *LeagueRepositoryTestSuite) TestPlayers_TopScorers() {
	teams := suite.createTeams("Atlas")
	db := suite.baseTestSuite.DB
	for _, goals := range []int{4, 19, 7, 12, 0} {
		suite.Require().NoError(db.Create(suite.factories.Player.WithGoals(teams[0].ID, goals)).Error)
	}

	top, err := suite.players.GetTopScorers(suite.ctx, 3)
	suite.NoError(err)
	suite.Require().Len(top, 3)
	suite.Equal([]int{19, 12, 7}, []int{top[0].Goals, top[1].Goals, top[2].Goals})
	suite.Equal("Atlas", top[0].TeamName)
	suite.Equal("#FFD700", top[0].PrimaryColor)

	all, err := suite.players.GetTopScorers(suite.ctx, 10)
	suite.NoError(err)
	suite.Len(all, 5)
}

func TestLeagueRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeagueRepositoryTestSuite))
}
