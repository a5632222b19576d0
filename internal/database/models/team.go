package models

// Team represents a club in the league. Slug is the external lookup key.
type Team struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	Name           string  `json:"name" gorm:"type:text;not null" yaml:"name"`
	Nickname       string  `json:"nickname" gorm:"type:text;not null" yaml:"nickname"`
	Slug           string  `json:"slug" gorm:"type:text;not null;uniqueIndex" yaml:"slug"`
	PrimaryColor   string  `json:"primary_color" gorm:"type:text;not null" yaml:"primary_color"`
	SecondaryColor string  `json:"secondary_color" gorm:"type:text;not null" yaml:"secondary_color"`
	Logo           *string `json:"logo" gorm:"type:text" yaml:"logo"`
	Stadium        *string `json:"stadium" gorm:"type:text" yaml:"stadium"`
	City           *string `json:"city" gorm:"type:text" yaml:"city"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
