// Package commentary turns a simulated match into broadcast-style text.
// When an OpenAI key is configured it asks the model for an energetic
// timeline anchored on the real key moments; otherwise it falls back to the
// locally composed commentary.
package commentary

import (
	"context"
	"fmt"
	"strings"

	"github.com/anl2026/anl-api/internal/engine"
	"github.com/anl2026/anl-api/internal/timeline"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = "You are an African football commentator crafting concise match timelines. " +
	"Write energetic bullet points in chronological order, focusing on goals, turning points, " +
	"extra time, penalties, and the final result."

// Generator produces match commentary. A nil client means no API key was
// configured and Generate always returns the local fallback.
type Generator struct {
	client *openai.Client
	model  string
}

// NewGenerator builds a Generator. An empty apiKey disables the AI path.
func NewGenerator(apiKey string) *Generator {
	if apiKey == "" {
		return &Generator{}
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Generator{client: &client, model: openai.ChatModelGPT3_5Turbo}
}

func keyPlayerLine(team engine.TeamContext) string {
	limit := len(team.Players)
	if limit > 6 {
		limit = 6
	}
	if limit == 0 {
		return "Not provided"
	}
	entries := make([]string, 0, limit)
	for _, p := range team.Players[:limit] {
		entries = append(entries, fmt.Sprintf("%s (%s)", p.Name, p.NaturalPosition))
	}
	return strings.Join(entries, ", ")
}

func buildUserPrompt(result engine.Result, team1, team2 engine.TeamContext, moments []timeline.KeyMoment) string {
	scoreline := fmt.Sprintf("%s %d-%d %s", team1.Name, result.Score.Team1, result.Score.Team2, team2.Name)
	penaltiesLine := "No shoot-out"
	if result.Resolution == engine.ResolutionPenalties && result.Penalties != nil {
		penaltiesLine = fmt.Sprintf("%s %d-%d %s", team1.Name, result.Penalties.Team1, result.Penalties.Team2, team2.Name)
	}

	lines := timeline.FormatLines(moments)
	anchors := make([]string, 0, len(lines))
	for _, line := range lines {
		anchors = append(anchors, "- "+line)
	}

	var b strings.Builder
	b.WriteString("African Nations League 2026 match commentary.\n")
	fmt.Fprintf(&b, "Fixture: %s vs %s.\n", team1.Name, team2.Name)
	fmt.Fprintf(&b, "Final score: %s.\n", scoreline)
	fmt.Fprintf(&b, "Resolution: %s.\n", result.Resolution)
	fmt.Fprintf(&b, "Penalty shoot-out: %s.\n", penaltiesLine)
	fmt.Fprintf(&b, "Key players %s: %s.\n", team1.Name, keyPlayerLine(team1))
	fmt.Fprintf(&b, "Key players %s: %s.\n", team2.Name, keyPlayerLine(team2))
	b.WriteString("Use these raw key moments as factual anchors and do not invent new scorers:\n")
	b.WriteString(strings.Join(anchors, "\n"))
	b.WriteString("\nProduce 6-9 bullet points. Each must start with the minute label (e.g. \"12'\", \"HT\", \"Pens\"). " +
		"The final line must clearly confirm who wins and how.")
	return b.String()
}

// Generate returns AI commentary when the client is configured, falling back
// to the local timeline narration on any error. The fallback is also the
// quick-sim path, so callers with mode "quick" use timeline.LocalCommentary
// directly.
func (g *Generator) Generate(ctx context.Context, result engine.Result, team1, team2 engine.TeamContext, moments []timeline.KeyMoment) string {
	fallback := timeline.LocalCommentary(result, team1, team2)
	if g.client == nil {
		return fallback
	}

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildUserPrompt(result, team1, team2, moments)),
		},
		MaxTokens:   openai.Int(320),
		Temperature: openai.Float(0.7),
	})
	if err != nil || len(completion.Choices) == 0 {
		return fallback
	}
	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return fallback
	}
	return content
}
