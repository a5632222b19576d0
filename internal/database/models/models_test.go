package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchStatus_IsValid(t *testing.T) {
	for _, s := range []MatchStatus{MatchStatusUpcoming, MatchStatusLive, MatchStatusFinished} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, MatchStatus("postponed").IsValid())
	assert.False(t, MatchStatus("").IsValid())
}

func TestStanding_RecomputeGoalDifference(t *testing.T) {
	s := Standing{GoalsFor: 12, GoalsAgainst: 30, GoalDifference: 99}
	s.RecomputeGoalDifference()
	assert.Equal(t, -18, s.GoalDifference)
}

func TestMatch_HasScore(t *testing.T) {
	two := 2
	assert.False(t, (&Match{}).HasScore())
	assert.False(t, (&Match{HomeScore: &two}).HasScore())
	assert.True(t, (&Match{HomeScore: &two, AwayScore: &two}).HasScore())
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "teams", Team{}.TableName())
	assert.Equal(t, "matches", Match{}.TableName())
	assert.Equal(t, "standings", Standing{}.TableName())
	assert.Equal(t, "players", Player{}.TableName())
	assert.Len(t, All(), 4)
}
