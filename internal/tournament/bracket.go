package tournament

import (
	"github.com/anl2026/anl-api/internal/team"
)

// BracketService builds the knockout bracket and moves winners through it.
type BracketService struct {
	repo TournamentRepository
}

// NewBracketService creates a new BracketService.
func NewBracketService(repo TournamentRepository) *BracketService {
	return &BracketService{repo: repo}
}

// StartBracket seeds the quarter-finals from the registered teams and creates
// the full 7-match tree in one transaction. Later rounds are created first so
// each earlier match can point at the fixture its winner advances into.
func (s *BracketService) StartBracket(teams []team.Team) ([]Match, error) {
	pairings, err := SeedQuarterFinals(teams)
	if err != nil {
		return nil, err
	}

	var created []Match
	err = s.repo.WithTransaction(func(tx TournamentRepository) error {
		total, err := tx.CountMatches()
		if err != nil {
			return err
		}
		if total > 0 {
			return ErrAlreadySeeded
		}

		final := Match{Round: RoundFinal, Slot: 1, Status: StatusWaiting}
		if err := tx.CreateMatch(&final); err != nil {
			return err
		}

		semis := make([]Match, 2)
		for i := range semis {
			slot := i + 1
			semis[i] = Match{
				Round:             RoundSemiFinal,
				Slot:              slot,
				Status:            StatusWaiting,
				AdvancesToMatchID: &final.ID,
				AdvancesToSlot:    &slot,
			}
			if err := tx.CreateMatch(&semis[i]); err != nil {
				return err
			}
		}

		quarters := make([]Match, len(pairings))
		for i, pairing := range pairings {
			team1ID := pairing.Team1.ID
			team2ID := pairing.Team2.ID
			targetSlot := (i % 2) + 1
			quarters[i] = Match{
				Round:             RoundQuarterFinal,
				Slot:              i + 1,
				Team1ID:           &team1ID,
				Team2ID:           &team2ID,
				Status:            StatusPending,
				AdvancesToMatchID: &semis[i/2].ID,
				AdvancesToSlot:    &targetSlot,
			}
			if err := tx.CreateMatch(&quarters[i]); err != nil {
				return err
			}
		}

		created = append(created, final)
		created = append(created, semis...)
		created = append(created, quarters...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// AdvanceWinner pushes a completed match's winner into the next fixture.
// The Final has no target, so advancing it is a no-op.
func (s *BracketService) AdvanceWinner(match *Match) error {
	if match.AdvancesToMatchID == nil || match.WinnerID == nil {
		return nil
	}
	slot := 1
	if match.AdvancesToSlot != nil {
		slot = *match.AdvancesToSlot
	}
	return s.repo.AssignSlot(*match.AdvancesToMatchID, slot, *match.WinnerID)
}

// Reset archives the current bracket and clears it so a new tournament can
// be started.
func (s *BracketService) Reset() error {
	return s.repo.ArchiveAndReset()
}
