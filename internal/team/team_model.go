package team

import (
	"github.com/anl2026/anl-api/internal/player"
	"gorm.io/gorm"
)

// Team represents a national federation and its fixed 23-player squad.
// The squad is created together with the team and never partially replaced.
type Team struct {
	gorm.Model
	Country       string          `json:"country" gorm:"uniqueIndex;not null"`
	ManagerName   string          `json:"managerName" gorm:"not null"`
	ContactEmail  string          `json:"contactEmail" gorm:"not null"`
	OwnerID       uint            `json:"ownerId" gorm:"index;not null"`
	AverageRating float64         `json:"averageRating"`
	Players       []player.Player `json:"players,omitempty" gorm:"foreignKey:TeamID"`
}

// --- DTOs ---

// SquadPlayerInput is one player entry in a registration payload.
type SquadPlayerInput struct {
	Name            string `json:"name"`
	NaturalPosition string `json:"naturalPosition"`
	IsCaptain       bool   `json:"isCaptain"`
}

// CreateTeamRequest registers a federation. When AutoFill is set or the
// players list is empty, a full squad is generated automatically.
type CreateTeamRequest struct {
	Country      string             `json:"country" binding:"required,min=2,max=100"`
	ManagerName  string             `json:"managerName" binding:"required,min=2,max=100"`
	ContactEmail string             `json:"contactEmail" binding:"required,email"`
	AutoFill     bool               `json:"autoFill"`
	Players      []SquadPlayerInput `json:"players"`
}
