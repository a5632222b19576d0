package models

// DefaultSeason is the season label used when none is given
const DefaultSeason = "2024-25"

// Standing is a team's aggregated record for a season.
// GoalDifference must always equal GoalsFor - GoalsAgainst.
type Standing struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	TeamID         uint   `json:"team_id" gorm:"not null"`
	Position       int    `json:"position" gorm:"not null"`
	MatchesPlayed  int    `json:"matches_played" gorm:"not null;default:0"`
	Wins           int    `json:"wins" gorm:"not null;default:0"`
	Draws          int    `json:"draws" gorm:"not null;default:0"`
	Losses         int    `json:"losses" gorm:"not null;default:0"`
	GoalsFor       int    `json:"goals_for" gorm:"not null;default:0"`
	GoalsAgainst   int    `json:"goals_against" gorm:"not null;default:0"`
	GoalDifference int    `json:"goal_difference" gorm:"not null;default:0"`
	Points         int    `json:"points" gorm:"not null;default:0"`
	Season         string `json:"season" gorm:"type:text;not null;default:'2024-25'"`
}

// TableName returns the table name for Standing
func (Standing) TableName() string {
	return "standings"
}

// RecomputeGoalDifference derives GoalDifference from the goal totals
func (s *Standing) RecomputeGoalDifference() {
	s.GoalDifference = s.GoalsFor - s.GoalsAgainst
}

// StandingWithTeam is a standing row joined with its team's display fields
type StandingWithTeam struct {
	Standing
	TeamName       string
	TeamNickname   string
	PrimaryColor   string
	SecondaryColor string
	Logo           *string
}
