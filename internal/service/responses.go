package service

import (
	"time"

	"football-data-backend/internal/database/models"
)

// TeamResponse represents a team as served by the API
type TeamResponse struct {
	ID             uint    `json:"id" example:"1"`
	Name           string  `json:"name" example:"Club América"`
	Nickname       string  `json:"nickname" example:"Las Águilas"`
	Slug           string  `json:"slug" example:"america"`
	PrimaryColor   string  `json:"primary_color" example:"#FFD700"`
	SecondaryColor string  `json:"secondary_color" example:"#000080"`
	Logo           *string `json:"logo"`
	Stadium        *string `json:"stadium" example:"Estadio Azteca"`
	City           *string `json:"city" example:"Ciudad de México"`
}

// MatchResponse represents a match enriched with both teams' display fields
type MatchResponse struct {
	ID                     uint               `json:"id"`
	HomeTeamID             uint               `json:"home_team_id"`
	AwayTeamID             uint               `json:"away_team_id"`
	HomeScore              *int               `json:"home_score"`
	AwayScore              *int               `json:"away_score"`
	Status                 models.MatchStatus `json:"status" example:"finished"`
	MatchDate              time.Time          `json:"match_date"`
	Venue                  *string            `json:"venue"`
	Minute                 *int               `json:"minute"`
	Competition            string             `json:"competition" example:"Liga MX"`
	HomeTeamName           string             `json:"home_team_name"`
	HomeTeamNickname       string             `json:"home_team_nickname"`
	HomeTeamPrimaryColor   string             `json:"home_team_primary_color"`
	HomeTeamSecondaryColor string             `json:"home_team_secondary_color"`
	AwayTeamName           string             `json:"away_team_name"`
	AwayTeamNickname       string             `json:"away_team_nickname"`
	AwayTeamPrimaryColor   string             `json:"away_team_primary_color"`
	AwayTeamSecondaryColor string             `json:"away_team_secondary_color"`
}

// StandingResponse represents a table row enriched with team display fields
type StandingResponse struct {
	ID             uint    `json:"id"`
	TeamID         uint    `json:"team_id"`
	Position       int     `json:"position"`
	MatchesPlayed  int     `json:"matches_played"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	GoalsFor       int     `json:"goals_for"`
	GoalsAgainst   int     `json:"goals_against"`
	GoalDifference int     `json:"goal_difference"`
	Points         int     `json:"points"`
	Season         string  `json:"season" example:"2024-25"`
	TeamName       string  `json:"team_name"`
	TeamNickname   string  `json:"team_nickname"`
	PrimaryColor   string  `json:"primary_color"`
	SecondaryColor string  `json:"secondary_color"`
	Logo           *string `json:"logo"`
}

// PlayerResponse represents a scorer enriched with team display fields
type PlayerResponse struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	TeamID         uint    `json:"team_id"`
	Position       *string `json:"position" example:"Delantero"`
	Goals          int     `json:"goals"`
	Assists        int     `json:"assists"`
	Appearances    int     `json:"appearances"`
	TeamName       string  `json:"team_name"`
	TeamNickname   string  `json:"team_nickname"`
	PrimaryColor   string  `json:"primary_color"`
	SecondaryColor string  `json:"secondary_color"`
}

func toTeamResponse(t *models.Team) TeamResponse {
	return TeamResponse{
		ID:             t.ID,
		Name:           t.Name,
		Nickname:       t.Nickname,
		Slug:           t.Slug,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		Logo:           t.Logo,
		Stadium:        t.Stadium,
		City:           t.City,
	}
}

func toMatchResponse(m *models.MatchWithTeams) MatchResponse {
	return MatchResponse{
		ID:                     m.ID,
		HomeTeamID:             m.HomeTeamID,
		AwayTeamID:             m.AwayTeamID,
		HomeScore:              m.HomeScore,
		AwayScore:              m.AwayScore,
		Status:                 m.Status,
		MatchDate:              m.MatchDate,
		Venue:                  m.Venue,
		Minute:                 m.Minute,
		Competition:            m.Competition,
		HomeTeamName:           m.HomeTeamName,
		HomeTeamNickname:       m.HomeTeamNickname,
		HomeTeamPrimaryColor:   m.HomeTeamPrimaryColor,
		HomeTeamSecondaryColor: m.HomeTeamSecondaryColor,
		AwayTeamName:           m.AwayTeamName,
		AwayTeamNickname:       m.AwayTeamNickname,
		AwayTeamPrimaryColor:   m.AwayTeamPrimaryColor,
		AwayTeamSecondaryColor: m.AwayTeamSecondaryColor,
	}
}

func toStandingResponse(s *models.StandingWithTeam) StandingResponse {
	return StandingResponse{
		ID:             s.ID,
		TeamID:         s.TeamID,
		Position:       s.Position,
		MatchesPlayed:  s.MatchesPlayed,
		Wins:           s.Wins,
		Draws:          s.Draws,
		Losses:         s.Losses,
		GoalsFor:       s.GoalsFor,
		GoalsAgainst:   s.GoalsAgainst,
		GoalDifference: s.GoalDifference,
		Points:         s.Points,
		Season:         s.Season,
		TeamName:       s.TeamName,
		TeamNickname:   s.TeamNickname,
		PrimaryColor:   s.PrimaryColor,
		SecondaryColor: s.SecondaryColor,
		Logo:           s.Logo,
	}
}

func toPlayerResponse(p *models.PlayerWithTeam) PlayerResponse {
	return PlayerResponse{
		ID:             p.ID,
		Name:           p.Name,
		TeamID:         p.TeamID,
		Position:       p.Position,
		Goals:          p.Goals,
		Assists:        p.Assists,
		Appearances:    p.Appearances,
		TeamName:       p.TeamName,
		TeamNickname:   p.TeamNickname,
		PrimaryColor:   p.PrimaryColor,
		SecondaryColor: p.SecondaryColor,
	}
}
