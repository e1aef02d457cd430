package news

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/anl2026/anl-api/internal/engine"
)

func sampleStory() MatchStory {
	return MatchStory{
		MatchID: 3,
		Round:   "Semi-Final",
		Team1:   engine.TeamContext{ID: 1, Name: "Nigeria"},
		Team2:   engine.TeamContext{ID: 2, Name: "Senegal"},
		Result: engine.Result{
			Score:      engine.Score{Team1: 2, Team2: 1},
			Resolution: engine.ResolutionRegular,
			WinnerID:   1,
			Goalscorers: []engine.Goal{
				{Minute: 12, ScorerName: "Kwame Mensah", TeamID: 1, TeamName: "Nigeria"},
				{Minute: 55, ScorerName: "Kwame Mensah", TeamID: 1, TeamName: "Nigeria"},
				{Minute: 78, ScorerName: "Idris Diallo", TeamID: 2, TeamName: "Senegal"},
			},
			Stats: engine.MatchStats{
				Team1: engine.TeamStats{Possession: 55, Shots: 11, YellowCards: 2},
				Team2: engine.TeamStats{Possession: 45, Shots: 8, YellowCards: 1},
			},
		},
		Commentary: "A tense semi-final settled late.",
	}
}

func TestComposeProducesThreeStoriesPerLanguage(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(1)))
	articles := gen.Compose(sampleStory())

	if len(articles) != 6 {
		t.Fatalf("expected 6 articles, got %d", len(articles))
	}

	tags := map[string]int{}
	languages := map[string]int{}
	for _, article := range articles {
		tags[article.Tag]++
		languages[article.Language]++
		if article.MatchID != 3 {
			t.Errorf("article matchId = %d, want 3", article.MatchID)
		}
		if article.Title == "" || article.Summary == "" || article.Body == "" {
			t.Errorf("article %q has empty copy", article.Tag)
		}
	}
	if tags[TagMatch] != 2 || tags[TagPlayer] != 2 || tags[TagFederation] != 2 {
		t.Errorf("tag distribution = %v", tags)
	}
	if languages[LanguageEnglish] != 3 || languages[LanguageFrench] != 3 {
		t.Errorf("language distribution = %v", languages)
	}
}

func TestComposePrefixesFrenchCopy(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(2)))
	for _, article := range gen.Compose(sampleStory()) {
		isFrench := strings.HasPrefix(article.Title, "FR: ")
		if (article.Language == LanguageFrench) != isFrench {
			t.Errorf("language %s with title %q", article.Language, article.Title)
		}
	}
}

func TestComposeSpotlightsTopScorer(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(3)))
	for _, article := range gen.Compose(sampleStory()) {
		if article.Tag == TagPlayer && article.Language == LanguageEnglish {
			if !strings.Contains(article.Title, "Kwame Mensah") {
				t.Errorf("player spotlight title = %q, want first scorer", article.Title)
			}
		}
	}
}

func TestComposeGoallessMatchFallsBackToWinner(t *testing.T) {
	story := sampleStory()
	story.Result.Goalscorers = nil
	story.Result.Score = engine.Score{}
	story.Result.Resolution = engine.ResolutionPenalties
	story.Result.Penalties = &engine.Shootout{Team1: 4, Team2: 3}
	story.Result.WinnerID = 2

	gen := NewGenerator(rand.New(rand.NewSource(4)))
	for _, article := range gen.Compose(story) {
		if article.Tag == TagPlayer && article.Language == LanguageEnglish {
			if !strings.Contains(article.Title, "Senegal") {
				t.Errorf("spotlight without scorers = %q, want winner name", article.Title)
			}
		}
	}
}
