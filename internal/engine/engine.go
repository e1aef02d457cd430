// Package engine simulates knockout matches, including extra time and
// penalty shoot-outs. It is pure: given the same random source it always
// produces the same result, and it performs no I/O.
package engine

import (
	"math"
	"math/rand"
	"time"

	"github.com/anl2026/anl-api/internal/player"
)

const (
	regularTimeMinutes = 90
	extraTimeMinutes   = 30

	// goalProbabilityModifier is the baseline per-minute, per-team goal
	// probability before strength weighting.
	goalProbabilityModifier = 0.055

	penaltyConversionRate = 0.75
	penaltyRounds         = 5
)

// TeamContext carries everything the engine needs to know about one side.
type TeamContext struct {
	ID            uint
	Name          string
	Players       []player.Player
	AverageRating float64
	ContactEmail  string
}

// Resolution records how a match's winner was decided.
type Resolution string

const (
	ResolutionRegular   Resolution = "regular"
	ResolutionExtraTime Resolution = "extra-time"
	ResolutionPenalties Resolution = "penalties"
)

// Score holds each side's goal count.
type Score struct {
	Team1 int `json:"team1"`
	Team2 int `json:"team2"`
}

// Goal is a single scoring event. Minutes 1-90 fall in regulation,
// 91-120 in extra time.
type Goal struct {
	Minute     int    `json:"minute"`
	ScorerName string `json:"scorerName"`
	PlayerID   uint   `json:"playerId,omitempty"`
	TeamID     uint   `json:"teamId"`
	TeamName   string `json:"teamName"`
}

// ShootoutRound is one pair of kicks in a penalty shoot-out.
type ShootoutRound struct {
	Round       int  `json:"round"`
	Team1Goal   bool `json:"team1Goal"`
	Team2Goal   bool `json:"team2Goal"`
	SuddenDeath bool `json:"suddenDeath,omitempty"`
}

// Shootout records a completed penalty shoot-out: best-of-5 alternating
// kicks plus sudden-death pairs until a side leads.
type Shootout struct {
	Team1    int             `json:"team1"`
	Team2    int             `json:"team2"`
	Sequence []ShootoutRound `json:"sequence"`
}

// TeamStats holds one side's cosmetic match statistics.
type TeamStats struct {
	Possession  int `json:"possession"`
	Shots       int `json:"shots"`
	Fouls       int `json:"fouls"`
	YellowCards int `json:"yellowCards"`
	RedCards    int `json:"redCards"`
}

// MatchStats holds both sides' statistics.
type MatchStats struct {
	Team1 TeamStats `json:"team1"`
	Team2 TeamStats `json:"team2"`
}

// Result is the complete outcome of a simulated match. WinnerID is always
// decisive: ties never escape the engine.
type Result struct {
	Score         Score      `json:"score"`
	Goalscorers   []Goal     `json:"goalscorers"`
	Resolution    Resolution `json:"resolution"`
	Penalties     *Shootout  `json:"penalties,omitempty"`
	WinnerID      uint       `json:"winnerId"`
	Stats         MatchStats `json:"stats"`
	Team1Strength float64    `json:"team1Strength"`
	Team2Strength float64    `json:"team2Strength"`
}

// Engine simulates matches using an injected random source, so results are
// reproducible under test with a fixed seed.
type Engine struct {
	rng *rand.Rand
}

// New returns an Engine backed by rng. A nil rng gets a time-seeded source.
func New(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

func roundToTwo(value float64) float64 {
	return math.Round(value*100) / 100
}

func (e *Engine) randomInt(min, max int) int {
	return e.rng.Intn(max-min+1) + min
}

// teamStrength is the mean of the squad's overall ratings; an empty squad
// falls back to the team's stored average rating (or 50).
func teamStrength(team TeamContext) float64 {
	if len(team.Players) == 0 {
		if team.AverageRating > 0 {
			return team.AverageRating
		}
		return 50
	}
	total := 0.0
	for _, p := range team.Players {
		if p.Overall > 0 {
			total += p.Overall
		} else {
			total += player.Overall(p.Ratings)
		}
	}
	return roundToTwo(total / float64(len(team.Players)))
}

func (e *Engine) pickScorer(team TeamContext) *player.Player {
	if len(team.Players) == 0 {
		return nil
	}
	return &team.Players[e.rng.Intn(len(team.Players))]
}

func (e *Engine) simulatePeriod(startMinute, duration int, team1, team2 TeamContext, team1Chance, team2Chance float64, result *Result) {
	for minute := 0; minute < duration; minute++ {
		absoluteMinute := startMinute + minute
		if e.rng.Float64() < team1Chance {
			result.Score.Team1++
			if scorer := e.pickScorer(team1); scorer != nil {
				result.Goalscorers = append(result.Goalscorers, Goal{
					Minute:     absoluteMinute,
					ScorerName: scorer.Name,
					PlayerID:   scorer.ID,
					TeamID:     team1.ID,
					TeamName:   team1.Name,
				})
			}
		}
		if e.rng.Float64() < team2Chance {
			result.Score.Team2++
			if scorer := e.pickScorer(team2); scorer != nil {
				result.Goalscorers = append(result.Goalscorers, Goal{
					Minute:     absoluteMinute,
					ScorerName: scorer.Name,
					PlayerID:   scorer.ID,
					TeamID:     team2.ID,
					TeamName:   team2.Name,
				})
			}
		}
	}
}

func (e *Engine) runShootout(team1, team2 TeamContext) (uint, *Shootout) {
	shootout := &Shootout{}

	for round := 1; round <= penaltyRounds; round++ {
		team1Goal := e.rng.Float64() < penaltyConversionRate
		team2Goal := e.rng.Float64() < penaltyConversionRate
		if team1Goal {
			shootout.Team1++
		}
		if team2Goal {
			shootout.Team2++
		}
		shootout.Sequence = append(shootout.Sequence, ShootoutRound{
			Round:     round,
			Team1Goal: team1Goal,
			Team2Goal: team2Goal,
		})
	}

	// Sudden death continues until one side leads after a pair of kicks.
	suddenDeathRound := 1
	for shootout.Team1 == shootout.Team2 {
		team1Goal := e.rng.Float64() < penaltyConversionRate
		team2Goal := e.rng.Float64() < penaltyConversionRate
		if team1Goal {
			shootout.Team1++
		}
		if team2Goal {
			shootout.Team2++
		}
		shootout.Sequence = append(shootout.Sequence, ShootoutRound{
			Round:       penaltyRounds + suddenDeathRound,
			Team1Goal:   team1Goal,
			Team2Goal:   team2Goal,
			SuddenDeath: true,
		})
		suddenDeathRound++
	}

	if shootout.Team1 > shootout.Team2 {
		return team1.ID, shootout
	}
	return team2.ID, shootout
}

func (e *Engine) buildStats(result *Result) MatchStats {
	possessionTeam1 := e.randomInt(40, 60)

	shotsTeam1 := e.randomInt(5, 15)
	if result.Score.Team1 > shotsTeam1 {
		shotsTeam1 = result.Score.Team1
	}
	shotsTeam2 := e.randomInt(3, 12)
	if result.Score.Team2 > shotsTeam2 {
		shotsTeam2 = result.Score.Team2
	}

	foulsTeam1 := e.randomInt(5, 20)
	foulsTeam2 := e.randomInt(5, 20)

	yellowTeam1 := e.randomInt(0, 3)
	if yellowTeam1 > foulsTeam1 {
		yellowTeam1 = foulsTeam1
	}
	yellowTeam2 := e.randomInt(0, 3)
	if yellowTeam2 > foulsTeam2 {
		yellowTeam2 = foulsTeam2
	}

	redTeam1 := 0
	if yellowTeam1 > 1 && e.randomInt(0, 4) == 0 {
		redTeam1 = 1
	}
	redTeam2 := 0
	if yellowTeam2 > 1 && e.randomInt(0, 4) == 0 {
		redTeam2 = 1
	}

	return MatchStats{
		Team1: TeamStats{
			Possession:  possessionTeam1,
			Shots:       shotsTeam1,
			Fouls:       foulsTeam1,
			YellowCards: yellowTeam1,
			RedCards:    redTeam1,
		},
		Team2: TeamStats{
			Possession:  100 - possessionTeam1,
			Shots:       shotsTeam2,
			Fouls:       foulsTeam2,
			YellowCards: yellowTeam2,
			RedCards:    redTeam2,
		},
	}
}

// Simulate plays out a full match between two teams: 90 minutes of
// regulation, extra time if level, and a penalty shoot-out if still level.
func (e *Engine) Simulate(team1, team2 TeamContext) Result {
	team1Strength := teamStrength(team1)
	team2Strength := teamStrength(team2)

	combinedStrength := team1Strength + team2Strength
	if combinedStrength == 0 {
		combinedStrength = 1
	}

	baseChance := combinedStrength / 170
	if baseChance < 0.65 {
		baseChance = 0.65
	}
	if baseChance > 1.15 {
		baseChance = 1.15
	}

	team1Chance := (team1Strength / combinedStrength) * goalProbabilityModifier * baseChance
	team2Chance := (team2Strength / combinedStrength) * goalProbabilityModifier * baseChance

	result := Result{
		Resolution:    ResolutionRegular,
		Team1Strength: team1Strength,
		Team2Strength: team2Strength,
	}

	e.simulatePeriod(1, regularTimeMinutes, team1, team2, team1Chance, team2Chance, &result)

	if result.Score.Team1 == result.Score.Team2 {
		result.Resolution = ResolutionExtraTime
		// Fatigue reduces both sides' chances in extra time.
		e.simulatePeriod(regularTimeMinutes+1, extraTimeMinutes, team1, team2, team1Chance/1.5, team2Chance/1.5, &result)
	}

	switch {
	case result.Score.Team1 > result.Score.Team2:
		result.WinnerID = team1.ID
	case result.Score.Team2 > result.Score.Team1:
		result.WinnerID = team2.ID
	default:
		// Still level after extra time: the shoot-out always runs to a
		// decision, so a tied WinnerID can never escape this function.
		result.Resolution = ResolutionPenalties
		result.WinnerID, result.Penalties = e.runShootout(team1, team2)
	}

	result.Stats = e.buildStats(&result)
	return result
}
