package tournament

import (
	"sort"

	"github.com/anl2026/anl-api/internal/team"
)

// TournamentSize is the fixed number of federations in the knockout bracket.
const TournamentSize = 8

// seedPairings is the standard 8-team bracket seeding: 1v8, 2v7, 3v6, 4v5.
// Indexes refer to the ranked list. Top seeds land in opposite halves.
var seedPairings = [4][2]int{
	{0, 7},
	{1, 6},
	{2, 5},
	{3, 4},
}

// Pairing is one quarter-final fixture produced by seeding.
type Pairing struct {
	Team1 team.Team
	Team2 team.Team
}

// ValidateSeedingInput checks the team list can be seeded: at least 8 teams,
// each with a unique identifier.
func ValidateSeedingInput(teams []team.Team) error {
	if len(teams) < TournamentSize {
		return ErrInsufficientTeams
	}
	seen := make(map[uint]struct{}, len(teams))
	for _, t := range teams {
		if t.ID == 0 {
			return ErrDuplicateTeam
		}
		if _, dup := seen[t.ID]; dup {
			return ErrDuplicateTeam
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

// Rank sorts teams descending by rating. Ties keep their input order, so
// ranking is deterministic.
func Rank(teams []team.Team) []team.Team {
	ranked := make([]team.Team, len(teams))
	copy(ranked, teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageRating > ranked[j].AverageRating
	})
	return ranked
}

// Pair applies the fixed seeding pattern to a ranked list of 8 teams.
func Pair(ranked []team.Team) []Pairing {
	pairings := make([]Pairing, 0, len(seedPairings))
	for _, seeds := range seedPairings {
		pairings = append(pairings, Pairing{
			Team1: ranked[seeds[0]],
			Team2: ranked[seeds[1]],
		})
	}
	return pairings
}

// SeedQuarterFinals validates, ranks, and pairs the given teams.
func SeedQuarterFinals(teams []team.Team) ([]Pairing, error) {
	if err := ValidateSeedingInput(teams); err != nil {
		return nil, err
	}
	ranked := Rank(teams)[:TournamentSize]
	return Pair(ranked), nil
}
