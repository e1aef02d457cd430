package tournament

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/anl2026/anl-api/config"
	"github.com/anl2026/anl-api/internal/commentary"
	"github.com/anl2026/anl-api/internal/engine"
	"github.com/anl2026/anl-api/internal/news"
	"github.com/anl2026/anl-api/internal/notify"
	"github.com/anl2026/anl-api/internal/player"
	"github.com/anl2026/anl-api/internal/team"
	"github.com/anl2026/anl-api/internal/timeline"
	"github.com/anl2026/anl-api/pkg/responses"
	"github.com/gin-gonic/gin"
)

// Simulation modes accepted by the simulate endpoint.
const (
	ModeQuick = "quick"
	ModePlay  = "play"
)

// SimulateRequest selects how a match is resolved. Anything other than
// "play" falls back to a quick simulation.
type SimulateRequest struct {
	Mode string `json:"mode" binding:"omitempty,oneof=quick play"`
}

type TournamentController struct {
	repo        TournamentRepository
	teamRepo    team.TeamRepository
	newsRepo    news.NewsRepository
	bracket     *BracketService
	commentator *commentary.Generator
	mailer      *notify.Mailer
	newsGen     *news.Generator
	config      *config.Config
	rng         *rand.Rand
}

func NewTournamentController(
	repo TournamentRepository,
	teamRepo team.TeamRepository,
	newsRepo news.NewsRepository,
	commentator *commentary.Generator,
	mailer *notify.Mailer,
	cfg *config.Config,
	rng *rand.Rand,
) *TournamentController {
	return &TournamentController{
		repo:        repo,
		teamRepo:    teamRepo,
		newsRepo:    newsRepo,
		bracket:     NewBracketService(repo),
		commentator: commentator,
		mailer:      mailer,
		newsGen:     news.NewGenerator(rng),
		config:      cfg,
		rng:         rng,
	}
}

// StartTournament godoc
// @Summary      Seed and start the tournament
// @Description  Ranks the registered federations, seeds the quarter-finals, and creates the knockout bracket.
// @Tags         Tournament
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} responses.SuccessResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      409 {object} responses.ErrorResponse
// @Router       /admin/tournament/start [post]
func (tc *TournamentController) StartTournament(c *gin.Context) {
	teams, err := tc.teamRepo.GetTeams(0)
	if err != nil {
		responses.InternalServerError(c, "Could not fetch teams")
		return
	}

	matches, err := tc.bracket.StartBracket(teams)
	if err != nil {
		switch {
		case errors.Is(err, ErrInsufficientTeams), errors.Is(err, ErrDuplicateTeam):
			responses.BadRequest(c, err.Error())
		case errors.Is(err, ErrAlreadySeeded):
			responses.Conflict(c, err.Error())
		default:
			responses.InternalServerError(c, "Could not start tournament")
		}
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Tournament started", matches)
}

// ResetTournament godoc
// @Summary      Reset the tournament
// @Description  Archives the current bracket and clears all matches. Teams are kept.
// @Tags         Tournament
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} responses.SuccessResponse
// @Router       /admin/tournament/reset [post]
func (tc *TournamentController) ResetTournament(c *gin.Context) {
	if err := tc.bracket.Reset(); err != nil {
		responses.InternalServerError(c, "Could not reset tournament")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Tournament reset", nil)
}

// GetMatches godoc
// @Summary      List bracket matches
// @Description  Returns every match of the current bracket in creation order.
// @Tags         Tournament
// @Produce      json
// @Success      200 {object} responses.SuccessResponse
// @Router       /matches [get]
func (tc *TournamentController) GetMatches(c *gin.Context) {
	matches, err := tc.repo.GetMatches()
	if err != nil {
		responses.InternalServerError(c, "Could not fetch matches")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Matches fetched successfully", matches)
}

// GetMatchByID godoc
// @Summary      Get one match
// @Tags         Tournament
// @Produce      json
// @Param        match_id path int true "Match ID"
// @Success      200 {object} responses.SuccessResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /matches/{match_id} [get]
func (tc *TournamentController) GetMatchByID(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	match, err := tc.repo.GetMatchByID(uint(matchID))
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		responses.InternalServerError(c, "Could not fetch match")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Match fetched successfully", match)
}

// teamContext loads one side of a match, rebuilding the squad when a team
// somehow has no players left. The engine rating is the squad's average at
// natural position, which tracks how strong the team is where it counts.
func (tc *TournamentController) teamContext(teamID uint) (engine.TeamContext, error) {
	loaded, err := tc.teamRepo.GetTeamWithPlayers(teamID)
	if err != nil {
		return engine.TeamContext{}, err
	}
	if loaded == nil {
		return engine.TeamContext{}, fmt.Errorf("team %d not found", teamID)
	}

	if len(loaded.Players) == 0 {
		squad := player.GenerateSquad(tc.rng)
		if err := tc.teamRepo.ReplaceSquad(loaded.ID, squad, player.SquadAverage(squad)); err != nil {
			return engine.TeamContext{}, err
		}
		loaded.Players = squad
	}

	return engine.TeamContext{
		ID:            loaded.ID,
		Name:          loaded.Country,
		Players:       loaded.Players,
		AverageRating: player.NaturalRating(loaded.Players),
		ContactEmail:  loaded.ContactEmail,
	}, nil
}

func formatGoalLine(goal engine.Goal) string {
	label := goal.ScorerName
	if goal.TeamName != "" {
		label = fmt.Sprintf("%s (%s)", goal.ScorerName, goal.TeamName)
	}
	return fmt.Sprintf("%d' %s", goal.Minute, label)
}

// notifyFederations emails both contacts their result. Failures are logged
// and never bubble up into the simulation response.
func (tc *TournamentController) notifyFederations(match *Match, result engine.Result, team1, team2 engine.TeamContext, timelineLines []string) {
	recipients := make(map[string]string, 2)
	if team1.ContactEmail != "" {
		recipients[team1.ContactEmail] = team1.Name
	}
	if team2.ContactEmail != "" {
		recipients[team2.ContactEmail] = team2.Name
	}
	if len(recipients) == 0 {
		return
	}

	winnerName, loserName := team1.Name, team2.Name
	if result.WinnerID == team2.ID {
		winnerName, loserName = team2.Name, team1.Name
	}

	resolutionLine := fmt.Sprintf("%s prevail over %s.", winnerName, loserName)
	switch result.Resolution {
	case engine.ResolutionPenalties:
		if result.Penalties != nil {
			resolutionLine = fmt.Sprintf("%s win on penalties %d-%d.", winnerName, result.Penalties.Team1, result.Penalties.Team2)
		}
	case engine.ResolutionExtraTime:
		resolutionLine = fmt.Sprintf("%s win after extra time.", winnerName)
	}

	goalsLine := "No goals from open play."
	if len(result.Goalscorers) > 0 {
		lines := make([]string, 0, len(result.Goalscorers))
		for _, goal := range result.Goalscorers {
			lines = append(lines, formatGoalLine(goal))
		}
		goalsLine = "Goals: " + strings.Join(lines, ", ")
	}
	summary := resolutionLine + " " + goalsLine

	var newsLink string
	if base := strings.TrimRight(tc.config.App.SiteURL, "/"); base != "" {
		newsLink = fmt.Sprintf("%s/news?match=%d", base, match.ID)
	}

	for email, federationName := range recipients {
		closing := "We will regroup and go again."
		if federationName == winnerName {
			closing = "Congratulations on the win!"
		}
		delivery := tc.mailer.SendMatchResult(notify.ResultEmail{
			RecipientEmail: email,
			Team1Name:      team1.Name,
			Team2Name:      team2.Name,
			Team1Score:     result.Score.Team1,
			Team2Score:     result.Score.Team2,
			Summary:        summary + " " + closing,
			Timeline:       timelineLines,
			NewsLink:       newsLink,
		})
		if !delivery.Delivered {
			log.Printf("federation email to %s not delivered: %s", email, delivery.Reason)
		}
	}
}

// SimulateMatch godoc
// @Summary      Simulate a pending match
// @Description  Resolves a match, records the result, advances the winner, and publishes the newsroom coverage.
// @Tags         Tournament
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        match_id path int true "Match ID"
// @Param        request body SimulateRequest false "Simulation mode"
// @Success      200 {object} responses.SuccessResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Failure      409 {object} responses.ErrorResponse
// @Router       /admin/matches/{match_id}/simulate [post]
func (tc *TournamentController) SimulateMatch(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}
	mode := ModeQuick
	if req.Mode == ModePlay {
		mode = ModePlay
	}

	match, err := tc.repo.GetMatchByID(uint(matchID))
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		responses.InternalServerError(c, "Could not fetch match")
		return
	}
	if match.Status == StatusCompleted {
		responses.Conflict(c, ErrMatchAlreadyCompleted.Error())
		return
	}
	if !match.Ready() {
		responses.BadRequest(c, ErrMatchNotReady.Error())
		return
	}

	team1, err := tc.teamContext(*match.Team1ID)
	if err != nil {
		responses.InternalServerError(c, "Could not load home team")
		return
	}
	team2, err := tc.teamContext(*match.Team2ID)
	if err != nil {
		responses.InternalServerError(c, "Could not load away team")
		return
	}

	result := engine.New(tc.rng).Simulate(team1, team2)
	moments := timeline.BuildKeyMoments(result, team1, team2)
	timelineLines := timeline.FormatLines(moments)

	matchCommentary := timeline.LocalCommentary(result, team1, team2)
	commentaryType := CommentaryQuickSim
	if mode == ModePlay {
		matchCommentary = tc.commentator.Generate(c.Request.Context(), result, team1, team2, moments)
		commentaryType = CommentaryAIPlay
	}

	if err := tc.repo.CompleteMatch(match.ID, &result, matchCommentary, commentaryType); err != nil {
		switch {
		case errors.Is(err, ErrMatchAlreadyCompleted):
			responses.Conflict(c, err.Error())
		case errors.Is(err, ErrMatchNotReady):
			responses.BadRequest(c, err.Error())
		case errors.Is(err, ErrMatchNotFound):
			responses.NotFound(c, "Match")
		default:
			responses.InternalServerError(c, "Could not record match result")
		}
		return
	}

	match.WinnerID = &result.WinnerID
	if err := tc.bracket.AdvanceWinner(match); err != nil {
		log.Printf("winner advancement failed for match %d: %v", match.ID, err)
	}

	tc.notifyFederations(match, result, team1, team2, timelineLines)
	tc.publishNews(match, result, team1, team2, matchCommentary)

	responses.SendSuccess(c, http.StatusOK, "Match resolved", gin.H{
		"mode":       mode,
		"score":      result.Score,
		"winnerId":   result.WinnerID,
		"resolution": result.Resolution,
		"stats":      result.Stats,
	})
}

func (tc *TournamentController) publishNews(match *Match, result engine.Result, team1, team2 engine.TeamContext, matchCommentary string) {
	articles := tc.newsGen.Compose(news.MatchStory{
		MatchID:    match.ID,
		Round:      string(match.Round),
		Team1:      team1,
		Team2:      team2,
		Result:     result,
		Commentary: matchCommentary,
	})
	if err := tc.newsRepo.CreateArticles(articles); err != nil {
		log.Printf("news generation failed for match %d: %v", match.ID, err)
	}
}
