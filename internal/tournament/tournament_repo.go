package tournament

import (
	"errors"
	"time"

	"github.com/anl2026/anl-api/internal/engine"
	"gorm.io/gorm"
)

// TournamentRepository defines methods to interact with bracket data.
type TournamentRepository interface {
	CreateMatch(match *Match) error
	GetMatchByID(id uint) (*Match, error)
	GetMatches() ([]Match, error)
	CountMatches() (int64, error)

	// CompleteMatch records a simulation result exactly once. It only
	// succeeds while the match is pending; a second attempt returns
	// ErrMatchAlreadyCompleted.
	CompleteMatch(matchID uint, result *engine.Result, commentary, commentaryType string) error

	// AssignSlot writes a winner into one slot of the target match and
	// flips it to pending once both slots are filled. Re-applying the same
	// winner is a no-op; each caller only ever touches its own slot.
	AssignSlot(matchID uint, slot int, teamID uint) error

	// ArchiveAndReset snapshots every match into the archive and deletes
	// the live bracket. Team records are untouched.
	ArchiveAndReset() error

	WithTransaction(txFunc func(TournamentRepository) error) error
}

// GormTournamentRepository implements TournamentRepository using GORM.
type GormTournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new GormTournamentRepository.
func NewTournamentRepository(db *gorm.DB) *GormTournamentRepository {
	return &GormTournamentRepository{db: db}
}

// WithTransaction implements transaction support.
func (r *GormTournamentRepository) WithTransaction(txFunc func(TournamentRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&GormTournamentRepository{db: tx})
	})
}

func (r *GormTournamentRepository) CreateMatch(match *Match) error {
	return r.db.Create(match).Error
}

func (r *GormTournamentRepository) GetMatchByID(id uint) (*Match, error) {
	var match Match
	if err := r.db.First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

// GetMatches returns the whole bracket in creation order.
func (r *GormTournamentRepository) GetMatches() ([]Match, error) {
	var matches []Match
	if err := r.db.Order("id asc").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *GormTournamentRepository) CountMatches() (int64, error) {
	var total int64
	err := r.db.Model(&Match{}).Count(&total).Error
	return total, err
}

// CompleteMatch is a conditional write: the status filter makes the pending
// -> completed transition a one-time compare-and-swap, so two racing
// simulation requests cannot both commit a result.
func (r *GormTournamentRepository) CompleteMatch(matchID uint, result *engine.Result, commentary, commentaryType string) error {
	now := time.Now()
	winnerID := result.WinnerID
	score := result.Score

	update := r.db.Model(&Match{}).
		Where("id = ? AND status = ?", matchID, StatusPending).
		Select("Status", "Score", "Goalscorers", "WinnerID", "Resolution", "Penalties", "Stats", "Commentary", "CommentaryType", "CompletedAt").
		Updates(&Match{
			Status:         StatusCompleted,
			Score:          &score,
			Goalscorers:    result.Goalscorers,
			WinnerID:       &winnerID,
			Resolution:     result.Resolution,
			Penalties:      result.Penalties,
			Stats:          &result.Stats,
			Commentary:     commentary,
			CommentaryType: commentaryType,
			CompletedAt:    &now,
		})
	if update.Error != nil {
		return update.Error
	}
	if update.RowsAffected > 0 {
		return nil
	}

	// Nothing matched: distinguish missing, already-completed, and
	// not-yet-ready matches for the caller.
	match, err := r.GetMatchByID(matchID)
	if err != nil {
		return err
	}
	if match.Status == StatusCompleted {
		return ErrMatchAlreadyCompleted
	}
	return ErrMatchNotReady
}

// AssignSlot only touches its own slot column, so the two quarter-finals
// feeding one semi-final can advance concurrently without clobbering each
// other. The guard clause makes re-applying the same winner a no-op.
func (r *GormTournamentRepository) AssignSlot(matchID uint, slot int, teamID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var update *gorm.DB
		if slot == 2 {
			update = tx.Model(&Match{}).
				Where("id = ? AND (team2_id IS NULL OR team2_id = ?)", matchID, teamID).
				Update("team2_id", teamID)
		} else {
			update = tx.Model(&Match{}).
				Where("id = ? AND (team1_id IS NULL OR team1_id = ?)", matchID, teamID).
				Update("team1_id", teamID)
		}
		if update.Error != nil {
			return update.Error
		}

		return tx.Model(&Match{}).
			Where("id = ? AND team1_id IS NOT NULL AND team2_id IS NOT NULL AND status = ?", matchID, StatusWaiting).
			Update("status", StatusPending).Error
	})
}

func (r *GormTournamentRepository) ArchiveAndReset() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var matches []Match
		if err := tx.Find(&matches).Error; err != nil {
			return err
		}
		if len(matches) == 0 {
			return nil
		}

		archivedAt := time.Now()
		for _, match := range matches {
			archive := MatchArchive{
				OriginalMatchID: match.ID,
				Round:           match.Round,
				Slot:            match.Slot,
				Team1ID:         match.Team1ID,
				Team2ID:         match.Team2ID,
				Status:          match.Status,
				Score:           match.Score,
				WinnerID:        match.WinnerID,
				Resolution:      match.Resolution,
				ArchivedAt:      archivedAt,
			}
			if err := tx.Create(&archive).Error; err != nil {
				return err
			}
		}

		return tx.Where("1 = 1").Delete(&Match{}).Error
	})
}
