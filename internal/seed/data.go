package seed

import (
	"embed"
	"fmt"

	"football-data-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

type teamsFile struct {
	Teams []models.Team `yaml:"teams"`
}

type playersFile struct {
	Players []string `yaml:"players"`
}

// LoadTeams returns the fixed club list shipped with the binary
func LoadTeams() ([]models.Team, error) {
	var f teamsFile
	if err := readYAML("data/teams.yaml", &f); err != nil {
		return nil, err
	}
	if len(f.Teams) == 0 {
		return nil, fmt.Errorf("no teams in data/teams.yaml")
	}
	return f.Teams, nil
}

// LoadPlayerNames returns the player name pool shipped with the binary
func LoadPlayerNames() ([]string, error) {
	var f playersFile
	if err := readYAML("data/players.yaml", &f); err != nil {
		return nil, err
	}
	return f.Players, nil
}

func readYAML(path string, out interface{}) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
