package models

// MatchStatus defines the lifecycle states of a match
type MatchStatus string

const (
	MatchStatusUpcoming MatchStatus = "upcoming"
	MatchStatusLive     MatchStatus = "live"
	MatchStatusFinished MatchStatus = "finished"
)

// IsValid checks if the MatchStatus is valid
func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusUpcoming, MatchStatusLive, MatchStatusFinished:
		return true
	}
	return false
}

// PlayerPosition labels used by the fixture data
const (
	PositionForward    = "Delantero"
	PositionMidfielder = "Mediocampista"
	PositionDefender   = "Defensa"
	PositionGoalkeeper = "Portero"
)
