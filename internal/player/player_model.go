package player

import (
	"gorm.io/gorm"
)

// Position is one of the four squad positions a player can be rated at.
type Position string

const (
	PositionGK Position = "GK"
	PositionDF Position = "DF"
	PositionMD Position = "MD"
	PositionAT Position = "AT"
)

// Positions lists every valid position in a stable order.
var Positions = []Position{PositionGK, PositionDF, PositionMD, PositionAT}

// Valid reports whether p is one of the four known positions.
func (p Position) Valid() bool {
	switch p {
	case PositionGK, PositionDF, PositionMD, PositionAT:
		return true
	}
	return false
}

// Ratings maps each position to an integer skill rating in [0,100].
type Ratings map[Position]int

// Player is a member of a federation's 23-player squad. Players are created
// together with their team and never partially replaced.
type Player struct {
	gorm.Model
	TeamID          uint     `json:"teamId" gorm:"index;not null"`
	Name            string   `json:"name" gorm:"not null"`
	NaturalPosition Position `json:"naturalPosition" gorm:"type:varchar(2);not null"`
	Ratings         Ratings  `json:"ratings" gorm:"serializer:json"`
	Overall         float64  `json:"overall"`
	IsCaptain       bool     `json:"isCaptain" gorm:"default:false"`
	SquadIndex      int      `json:"squadIndex" gorm:"not null"`
}
