package tournament

import (
	"errors"
	"time"

	"github.com/anl2026/anl-api/internal/engine"
	"gorm.io/gorm"
)

// Round names the stage a match belongs to.
type Round string

const (
	RoundQuarterFinal Round = "Quarter-Final"
	RoundSemiFinal    Round = "Semi-Final"
	RoundFinal        Round = "Final"
)

// MatchStatus is the per-match state machine:
// waiting (slots open) -> pending (both teams assigned) -> completed.
type MatchStatus string

const (
	StatusWaiting   MatchStatus = "waiting"
	StatusPending   MatchStatus = "pending"
	StatusCompleted MatchStatus = "completed"
)

// Commentary types recorded on a completed match.
const (
	CommentaryQuickSim = "quick-sim"
	CommentaryAIPlay   = "ai-play"
)

var (
	ErrInsufficientTeams     = errors.New("need at least 8 teams to start the tournament")
	ErrDuplicateTeam         = errors.New("each seeded team must have a unique identifier")
	ErrAlreadySeeded         = errors.New("tournament already has active matches; reset before starting again")
	ErrMatchNotFound         = errors.New("match not found")
	ErrMatchAlreadyCompleted = errors.New("match has already been completed")
	ErrMatchNotReady         = errors.New("match does not have both teams assigned yet")
)

// Match is one node of the knockout bracket. Team slots stay nil until a
// preceding match's winner advances into them; the Final has no advancement
// target.
type Match struct {
	gorm.Model
	Round  Round       `json:"round" gorm:"index;not null"`
	Slot   int         `json:"slot" gorm:"not null"`
	Team1ID *uint      `json:"team1Id" gorm:"index"`
	Team2ID *uint      `json:"team2Id" gorm:"index"`
	Status MatchStatus `json:"status" gorm:"index;not null;default:'waiting'"`

	Score       *engine.Score      `json:"score,omitempty" gorm:"serializer:json"`
	Goalscorers []engine.Goal      `json:"goalscorers,omitempty" gorm:"serializer:json"`
	WinnerID    *uint              `json:"winnerId,omitempty" gorm:"index"`
	Resolution  engine.Resolution  `json:"resolution,omitempty"`
	Penalties   *engine.Shootout   `json:"penalties,omitempty" gorm:"serializer:json"`
	Stats       *engine.MatchStats `json:"stats,omitempty" gorm:"serializer:json"`

	Commentary     string `json:"commentary,omitempty" gorm:"type:text"`
	CommentaryType string `json:"commentaryType,omitempty"`

	AdvancesToMatchID *uint `json:"advancesToMatchId,omitempty" gorm:"index"`
	AdvancesToSlot    *int  `json:"advancesToSlot,omitempty"`

	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// MatchArchive is a snapshot of a match taken during a tournament reset.
type MatchArchive struct {
	gorm.Model
	OriginalMatchID uint              `json:"originalMatchId" gorm:"index;not null"`
	Round           Round             `json:"round"`
	Slot            int               `json:"slot"`
	Team1ID         *uint             `json:"team1Id"`
	Team2ID         *uint             `json:"team2Id"`
	Status          MatchStatus       `json:"status"`
	Score           *engine.Score     `json:"score,omitempty" gorm:"serializer:json"`
	WinnerID        *uint             `json:"winnerId,omitempty"`
	Resolution      engine.Resolution `json:"resolution,omitempty"`
	ArchivedAt      time.Time         `json:"archivedAt"`
}

// Ready reports whether the match can be simulated.
func (m *Match) Ready() bool {
	return m.Status == StatusPending && m.Team1ID != nil && m.Team2ID != nil
}
