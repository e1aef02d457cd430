package timeline

import (
	"strings"
	"testing"

	"github.com/anl2026/anl-api/internal/engine"
)

var (
	team1 = engine.TeamContext{ID: 1, Name: "Nigeria"}
	team2 = engine.TeamContext{ID: 2, Name: "Senegal"}
)

func labels(moments []KeyMoment) []string {
	out := make([]string, 0, len(moments))
	for _, m := range moments {
		out = append(out, m.Label)
	}
	return out
}

func TestBuildKeyMomentsRegular(t *testing.T) {
	result := engine.Result{
		Score:      engine.Score{Team1: 2, Team2: 1},
		Resolution: engine.ResolutionRegular,
		WinnerID:   1,
		Goalscorers: []engine.Goal{
			{Minute: 12, ScorerName: "Ade Okoro", TeamID: 1},
			{Minute: 58, ScorerName: "Sadio Diallo", TeamID: 2},
			{Minute: 77, ScorerName: "Kofi Mensah", TeamID: 1},
		},
	}

	moments := BuildKeyMoments(result, team1, team2)
	got := labels(moments)
	want := []string{"1'", "12'", "HT", "58'", "77'", "FT", "Full-time"}
	if len(got) != len(want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("labels = %v, want %v", got, want)
		}
	}

	if !strings.Contains(moments[2].Description, "1-0") {
		t.Fatalf("half-time snapshot should read 1-0, got %q", moments[2].Description)
	}
	if !strings.Contains(moments[4].Description, "2-1") {
		t.Fatalf("running score after third goal should be 2-1, got %q", moments[4].Description)
	}
	if !strings.Contains(moments[len(moments)-1].Description, "Nigeria eliminate Senegal 2-1") {
		t.Fatalf("outcome line wrong: %q", moments[len(moments)-1].Description)
	}
}

func TestBuildKeyMomentsGoalless(t *testing.T) {
	result := engine.Result{
		Score:      engine.Score{},
		Resolution: engine.ResolutionPenalties,
		WinnerID:   2,
		Penalties:  &engine.Shootout{Team1: 3, Team2: 4},
	}

	moments := BuildKeyMoments(result, team1, team2)
	got := labels(moments)
	want := []string{"1'", "HT", "FT", "AET", "Pens", "Result"}
	if len(got) != len(want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("labels = %v, want %v", got, want)
		}
	}

	pens := moments[4].Description
	if !strings.Contains(pens, "Nigeria 3-4 Senegal") {
		t.Fatalf("shoot-out line wrong: %q", pens)
	}
	if !strings.Contains(moments[5].Description, "Senegal eliminate Nigeria") {
		t.Fatalf("outcome line wrong: %q", moments[5].Description)
	}
}

func TestBuildKeyMomentsExtraTimeGoal(t *testing.T) {
	result := engine.Result{
		Score:      engine.Score{Team1: 1, Team2: 2},
		Resolution: engine.ResolutionExtraTime,
		WinnerID:   2,
		Goalscorers: []engine.Goal{
			{Minute: 40, ScorerName: "A", TeamID: 1},
			{Minute: 88, ScorerName: "B", TeamID: 2},
			{Minute: 104, ScorerName: "C", TeamID: 2},
		},
	}

	moments := BuildKeyMoments(result, team1, team2)
	got := labels(moments)
	want := []string{"1'", "40'", "HT", "88'", "FT", "104'", "AET", "Full-time"}
	if len(got) != len(want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("labels = %v, want %v", got, want)
		}
	}
}

func TestLocalCommentaryJoinsLines(t *testing.T) {
	result := engine.Result{
		Score:      engine.Score{Team1: 1, Team2: 0},
		Resolution: engine.ResolutionRegular,
		WinnerID:   1,
		Goalscorers: []engine.Goal{
			{Minute: 30, ScorerName: "Ade Okoro", TeamID: 1},
		},
	}

	commentary := LocalCommentary(result, team1, team2)
	lines := strings.Split(commentary, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 commentary lines, got %d: %q", len(lines), commentary)
	}
	if !strings.HasPrefix(lines[1], "30'") {
		t.Fatalf("goal line should start with minute label, got %q", lines[1])
	}
}
