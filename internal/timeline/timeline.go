// Package timeline turns a simulated match result into an ordered list of
// human-readable key moments. It is a pure function of its inputs and serves
// both as the deterministic commentary fallback and as factual anchors for
// the external commentary generator.
package timeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anl2026/anl-api/internal/engine"
)

// KeyMoment is a single line of the match narrative.
type KeyMoment struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

func scoreUntil(goals []engine.Goal, team1ID, team2ID uint, maxMinute int) engine.Score {
	var score engine.Score
	for _, goal := range goals {
		if goal.Minute > maxMinute {
			continue
		}
		switch goal.TeamID {
		case team1ID:
			score.Team1++
		case team2ID:
			score.Team2++
		}
	}
	return score
}

// BuildKeyMoments composes the match narrative: kickoff, goals in
// chronological order with the running score, half-time and full-time
// snapshots, extra-time and shoot-out lines where applicable, and a final
// outcome line.
func BuildKeyMoments(result engine.Result, team1, team2 engine.TeamContext) []KeyMoment {
	goals := make([]engine.Goal, len(result.Goalscorers))
	copy(goals, result.Goalscorers)
	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].Minute < goals[j].Minute
	})

	moments := []KeyMoment{
		{Label: "1'", Description: fmt.Sprintf("%s face %s under the lights.", team1.Name, team2.Name)},
	}

	halfTimeScore := scoreUntil(goals, team1.ID, team2.ID, 45)
	regulationScore := scoreUntil(goals, team1.ID, team2.ID, 90)

	var running engine.Score
	halfTimeLogged := false
	fullTimeLogged := false

	halfTimeLine := KeyMoment{
		Label:       "HT",
		Description: fmt.Sprintf("Half-time: %s %d-%d %s.", team1.Name, halfTimeScore.Team1, halfTimeScore.Team2, team2.Name),
	}
	fullTimeLine := KeyMoment{
		Label:       "FT",
		Description: fmt.Sprintf("End of 90: %s %d-%d %s.", team1.Name, regulationScore.Team1, regulationScore.Team2, team2.Name),
	}

	for _, goal := range goals {
		if !halfTimeLogged && goal.Minute > 45 {
			moments = append(moments, halfTimeLine)
			halfTimeLogged = true
		}
		if !fullTimeLogged && goal.Minute > 90 {
			moments = append(moments, fullTimeLine)
			fullTimeLogged = true
		}

		teamName := "Unknown side"
		switch goal.TeamID {
		case team1.ID:
			running.Team1++
			teamName = team1.Name
		case team2.ID:
			running.Team2++
			teamName = team2.Name
		}

		scorer := goal.ScorerName
		if scorer == "" {
			scorer = "Unnamed scorer"
		}
		moments = append(moments, KeyMoment{
			Label:       fmt.Sprintf("%d'", goal.Minute),
			Description: fmt.Sprintf("%s puts %s %d-%d.", scorer, teamName, running.Team1, running.Team2),
		})
	}

	if !halfTimeLogged {
		moments = append(moments, halfTimeLine)
	}
	if !fullTimeLogged {
		moments = append(moments, fullTimeLine)
	}

	finalScore := result.Score

	if result.Resolution == engine.ResolutionExtraTime || result.Resolution == engine.ResolutionPenalties {
		moments = append(moments, KeyMoment{
			Label:       "AET",
			Description: fmt.Sprintf("After extra time: %s %d-%d %s.", team1.Name, finalScore.Team1, finalScore.Team2, team2.Name),
		})
	}

	if result.Resolution == engine.ResolutionPenalties {
		shootoutLine := fmt.Sprintf("%s edge it on penalties.", winnerName(result, team1, team2))
		if result.Penalties != nil {
			shootoutLine = fmt.Sprintf("%s %d-%d %s", team1.Name, result.Penalties.Team1, result.Penalties.Team2, team2.Name)
		}
		moments = append(moments, KeyMoment{
			Label:       "Pens",
			Description: fmt.Sprintf("Decided on penalties: %s", shootoutLine),
		})
	}

	winner := winnerName(result, team1, team2)
	loser := team2.Name
	if winner == team2.Name {
		loser = team1.Name
	}
	outcomeLabel := "Full-time"
	if result.Resolution == engine.ResolutionPenalties {
		outcomeLabel = "Result"
	}
	moments = append(moments, KeyMoment{
		Label:       outcomeLabel,
		Description: fmt.Sprintf("%s eliminate %s %d-%d.", winner, loser, finalScore.Team1, finalScore.Team2),
	})

	return moments
}

func winnerName(result engine.Result, team1, team2 engine.TeamContext) string {
	if result.WinnerID == team2.ID {
		return team2.Name
	}
	return team1.Name
}

// FormatLines renders moments as "label description" strings.
func FormatLines(moments []KeyMoment) []string {
	lines := make([]string, 0, len(moments))
	for _, moment := range moments {
		lines = append(lines, fmt.Sprintf("%s %s", moment.Label, moment.Description))
	}
	return lines
}

// LocalCommentary is the deterministic fallback commentary: the formatted
// key moments joined by newlines.
func LocalCommentary(result engine.Result, team1, team2 engine.TeamContext) string {
	return strings.Join(FormatLines(BuildKeyMoments(result, team1, team2)), "\n")
}
