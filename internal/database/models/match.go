package models

import "time"

// DefaultCompetition is stored when a match has no competition label
const DefaultCompetition = "Liga MX"

// Match represents a fixture between two teams
type Match struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	HomeTeamID  uint        `json:"home_team_id" gorm:"not null"`
	AwayTeamID  uint        `json:"away_team_id" gorm:"not null"`
	HomeScore   *int        `json:"home_score"`
	AwayScore   *int        `json:"away_score"`
	Status      MatchStatus `json:"status" gorm:"type:text;not null"`
	MatchDate   time.Time   `json:"match_date" gorm:"type:timestamp;not null"`
	Venue       *string     `json:"venue" gorm:"type:text"`
	Minute      *int        `json:"minute"`
	Competition string      `json:"competition" gorm:"type:text;default:'Liga MX'"`
}

// TableName returns the table name for Match
func (Match) TableName() string {
	return "matches"
}

// HasScore reports whether both score fields are recorded
func (m *Match) HasScore() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// MatchWithTeams is a match row joined with both teams' display fields
type MatchWithTeams struct {
	Match
	HomeTeamName           string
	HomeTeamNickname       string
	HomeTeamPrimaryColor   string
	HomeTeamSecondaryColor string
	AwayTeamName           string
	AwayTeamNickname       string
	AwayTeamPrimaryColor   string
	AwayTeamSecondaryColor string
}
