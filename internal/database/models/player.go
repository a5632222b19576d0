package models

// Player represents a squad member and their season counters
type Player struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"type:text;not null"`
	TeamID      uint    `json:"team_id" gorm:"not null"`
	Position    *string `json:"position" gorm:"type:text"`
	Goals       int     `json:"goals" gorm:"not null;default:0"`
	Assists     int     `json:"assists" gorm:"not null;default:0"`
	Appearances int     `json:"appearances" gorm:"not null;default:0"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}

// PlayerWithTeam is a player row joined with its team's display fields
type PlayerWithTeam struct {
	Player
	TeamName       string
	TeamNickname   string
	PrimaryColor   string
	SecondaryColor string
}
