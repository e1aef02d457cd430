// Package news writes the tournament's auto-generated newsroom: every
// completed match produces a recap, a player spotlight, and a by-the-numbers
// piece, each in English and French.
package news

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/anl2026/anl-api/internal/engine"
)

var supportedLanguages = []string{LanguageEnglish, LanguageFrench}

// storyContext gathers the facts the template pools draw from.
type storyContext struct {
	team1Name       string
	team2Name       string
	scoreline       string
	roundLabel      string
	winnerName      string
	loserName       string
	playerName      string
	playerTeamName  string
	playerGoalCount int
	winCount        int
	shootoutSummary string
	stats           engine.MatchStats
}

var matchHeadlines = []func(ctx storyContext) string{
	func(ctx storyContext) string {
		return fmt.Sprintf("%s edge %s %s", ctx.winnerName, ctx.loserName, ctx.scoreline)
	},
	func(ctx storyContext) string {
		return fmt.Sprintf("%s stunned by resilient %s %s", ctx.loserName, ctx.winnerName, ctx.scoreline)
	},
	func(ctx storyContext) string {
		return fmt.Sprintf("%s vs %s: %s thriller lights up ANL", ctx.team1Name, ctx.team2Name, ctx.scoreline)
	},
	func(ctx storyContext) string {
		return fmt.Sprintf("%s march past %s in %s", ctx.team1Name, ctx.team2Name, ctx.roundLabel)
	},
	func(ctx storyContext) string {
		return fmt.Sprintf("%s fightback falls short as %s celebrate %s win", ctx.team2Name, ctx.team1Name, ctx.roundLabel)
	},
	func(ctx storyContext) string {
		return fmt.Sprintf("%s %s joy after %s victory", ctx.winnerName, ctx.roundLabel, ctx.scoreline)
	},
}

var playerQuotes = []func(ctx storyContext) string{
	func(ctx storyContext) string {
		return fmt.Sprintf("%s reflects: \"We trusted the plan and %s delivered when it mattered.\"", ctx.playerName, ctx.playerTeamName)
	},
	func(ctx storyContext) string {
		return fmt.Sprintf("%s on the win: \"Every supporter of %s gave us belief, tonight we repaid them.\"", ctx.playerName, ctx.playerTeamName)
	},
	func(ctx storyContext) string {
		return fmt.Sprintf("%s beams: \"The dressing room is pure joy, %s fought for every blade of grass.\"", ctx.playerName, ctx.playerTeamName)
	},
	func(ctx storyContext) string {
		return fmt.Sprintf("%s smiles: \"%s fans pushed us over the line tonight.\"", ctx.playerName, ctx.playerTeamName)
	},
	func(ctx storyContext) string {
		return fmt.Sprintf("%s admits: \"It felt like destiny for %s in %s.\"", ctx.playerName, ctx.playerTeamName, ctx.roundLabel)
	},
	func(ctx storyContext) string {
		return fmt.Sprintf("%s tells reporters: \"%s showed what this crest stands for.\"", ctx.playerName, ctx.playerTeamName)
	},
}

var funFacts = []func(ctx storyContext) string{
	func(ctx storyContext) string {
		return fmt.Sprintf("Possession battle: %s held %d%% while %s answered with %d%%.",
			ctx.team1Name, ctx.stats.Team1.Possession, ctx.team2Name, ctx.stats.Team2.Possession)
	},
	func(ctx storyContext) string {
		return fmt.Sprintf("%s produced %d shots to %s's %d. Efficiency proved decisive.",
			ctx.team1Name, ctx.stats.Team1.Shots, ctx.team2Name, ctx.stats.Team2.Shots)
	},
	func(ctx storyContext) string {
		return fmt.Sprintf("Discipline watch: Officials brandished %d yellows and %d reds.",
			ctx.stats.Team1.YellowCards+ctx.stats.Team2.YellowCards, ctx.stats.Team1.RedCards+ctx.stats.Team2.RedCards)
	},
	func(ctx storyContext) string {
		return fmt.Sprintf("%s have now won %d %s this tournament.", ctx.winnerName, ctx.winCount, pluralise("match", "matches", ctx.winCount))
	},
	func(ctx storyContext) string {
		return fmt.Sprintf("%s now has %d %s in knockout play.", ctx.playerName, ctx.playerGoalCount, pluralise("goal", "goals", ctx.playerGoalCount))
	},
	func(ctx storyContext) string {
		return fmt.Sprintf("Fans from %s erupted as the shoot-out tipped %s.", ctx.winnerName, ctx.shootoutSummary)
	},
}

func pluralise(singular, plural string, count int) string {
	if count == 1 {
		return singular
	}
	return plural
}

// MatchStory is the input for article generation.
type MatchStory struct {
	MatchID    uint
	Round      string
	Team1      engine.TeamContext
	Team2      engine.TeamContext
	Result     engine.Result
	Commentary string
}

// Generator composes articles from a match story using an injected random
// source for template selection.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator builds a Generator. A nil rng gets a time-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

func buildContext(story MatchStory) storyContext {
	result := story.Result
	ctx := storyContext{
		team1Name:  story.Team1.Name,
		team2Name:  story.Team2.Name,
		scoreline:  fmt.Sprintf("%d-%d", result.Score.Team1, result.Score.Team2),
		roundLabel: story.Round,
		winCount:   1,
		stats:      result.Stats,
	}
	if ctx.roundLabel == "" {
		ctx.roundLabel = "Knockout Round"
	}

	ctx.winnerName = story.Team1.Name
	ctx.loserName = story.Team2.Name
	if result.WinnerID == story.Team2.ID {
		ctx.winnerName = story.Team2.Name
		ctx.loserName = story.Team1.Name
	}

	ctx.playerName = ctx.winnerName
	ctx.playerTeamName = ctx.winnerName
	if len(result.Goalscorers) > 0 {
		first := result.Goalscorers[0]
		ctx.playerName = first.ScorerName
		ctx.playerTeamName = story.Team1.Name
		if first.TeamID == story.Team2.ID {
			ctx.playerTeamName = story.Team2.Name
		}
		for _, goal := range result.Goalscorers {
			if goal.ScorerName == first.ScorerName {
				ctx.playerGoalCount++
			}
		}
	}

	ctx.shootoutSummary = "their way"
	if result.Penalties != nil {
		ctx.shootoutSummary = fmt.Sprintf("%s %d - %d %s",
			story.Team1.Name, result.Penalties.Team1, result.Penalties.Team2, story.Team2.Name)
	}

	return ctx
}

func translate(base, language string) string {
	if language == LanguageFrench {
		return "FR: " + base
	}
	return base
}

// Compose builds the article set for a completed match: three stories, each
// duplicated per supported language.
func (g *Generator) Compose(story MatchStory) []Article {
	ctx := buildContext(story)

	headline := matchHeadlines[g.rng.Intn(len(matchHeadlines))](ctx)
	quote := playerQuotes[g.rng.Intn(len(playerQuotes))](ctx)
	fact := funFacts[g.rng.Intn(len(funFacts))](ctx)

	recapBody := story.Commentary
	if recapBody == "" {
		recapBody = "The matchup kept fans on the edge of their seats from start to finish."
	}

	base := []Article{
		{
			Tag:     TagMatch,
			Title:   headline,
			Summary: fmt.Sprintf("%s and %s delivered a pulsating encounter ending %s.", ctx.team1Name, ctx.team2Name, ctx.scoreline),
			Body:    fmt.Sprintf("%s. %s", headline, recapBody),
		},
		{
			Tag:     TagPlayer,
			Title:   fmt.Sprintf("%s steals the spotlight", ctx.playerName),
			Summary: quote,
			Body:    fmt.Sprintf("%s %s has now become a fan favourite for %s.", quote, ctx.playerName, ctx.playerTeamName),
		},
		{
			Tag:     TagFederation,
			Title:   fmt.Sprintf("%s vs %s: By the numbers", ctx.team1Name, ctx.team2Name),
			Summary: fact,
			Body:    fmt.Sprintf("%s Supporters are already debating what this means for the next round.", fact),
		},
	}

	articles := make([]Article, 0, len(base)*len(supportedLanguages))
	for _, article := range base {
		for _, language := range supportedLanguages {
			localised := article
			localised.Language = language
			localised.Title = translate(article.Title, language)
			localised.Summary = translate(article.Summary, language)
			localised.Body = translate(article.Body, language)
			localised.MatchID = story.MatchID
			localised.MatchRound = story.Round
			localised.Team1ID = story.Team1.ID
			localised.Team2ID = story.Team2.ID
			localised.Team1Name = story.Team1.Name
			localised.Team2Name = story.Team2.Name
			articles = append(articles, localised)
		}
	}
	return articles
}
