package team

import (
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/anl2026/anl-api/internal/middleware"
	"github.com/anl2026/anl-api/internal/player"
	"github.com/anl2026/anl-api/pkg/responses"
	"github.com/anl2026/anl-api/pkg/validator"
	"github.com/gin-gonic/gin"
)

// TeamController handles federation registration and lookup.
type TeamController struct {
	repo TeamRepository
	rng  *rand.Rand
}

// NewTeamController creates a new team controller. The random source feeds
// squad auto-generation and is injected for reproducible tests.
func NewTeamController(repo TeamRepository, rng *rand.Rand) *TeamController {
	return &TeamController{repo: repo, rng: rng}
}

// sanitizeSquad drops malformed entries and trims names, mirroring what the
// registration form may submit.
func sanitizeSquad(inputs []SquadPlayerInput) []SquadPlayerInput {
	out := make([]SquadPlayerInput, 0, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" || in.NaturalPosition == "" {
			continue
		}
		out = append(out, SquadPlayerInput{
			Name:            name,
			NaturalPosition: in.NaturalPosition,
			IsCaptain:       in.IsCaptain,
		})
	}
	return out
}

// normalizeCaptains guarantees exactly one captain: none elected promotes
// the first player, several elected keeps only the first.
func normalizeCaptains(inputs []SquadPlayerInput) []SquadPlayerInput {
	captainCount := 0
	for _, in := range inputs {
		if in.IsCaptain {
			captainCount++
		}
	}

	if captainCount == 1 {
		return inputs
	}

	if captainCount == 0 {
		if len(inputs) > 0 {
			inputs[0].IsCaptain = true
		}
		return inputs
	}

	assigned := false
	for i := range inputs {
		if inputs[i].IsCaptain && !assigned {
			assigned = true
			continue
		}
		inputs[i].IsCaptain = false
	}
	return inputs
}

// buildSquad validates and enriches the incoming players with generated
// ratings, or generates a full squad when auto-filling.
func (tc *TeamController) buildSquad(req *CreateTeamRequest) ([]player.Player, error) {
	incoming := sanitizeSquad(req.Players)

	if req.AutoFill || len(incoming) == 0 {
		return player.GenerateSquad(tc.rng), nil
	}

	if len(incoming) != player.SquadSize {
		return nil, fmt.Errorf("a squad must include exactly %d players", player.SquadSize)
	}

	for _, in := range incoming {
		if !player.Position(in.NaturalPosition).Valid() {
			return nil, fmt.Errorf("invalid position %q for player %s", in.NaturalPosition, in.Name)
		}
	}

	incoming = normalizeCaptains(incoming)

	squad := make([]player.Player, 0, len(incoming))
	for index, in := range incoming {
		position := player.Position(in.NaturalPosition)
		ratings := player.GenerateRatings(position, tc.rng)
		squad = append(squad, player.Player{
			Name:            in.Name,
			NaturalPosition: position,
			Ratings:         ratings,
			Overall:         player.Overall(ratings),
			IsCaptain:       in.IsCaptain,
			SquadIndex:      index,
		})
	}
	return squad, nil
}

// CreateTeam godoc
// @Summary      Register a federation
// @Description  Registers a federation with its 23-player squad. Squads may be auto-generated.
// @Tags         Teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        team body CreateTeamRequest true "Federation details"
// @Success      201 {object} responses.SuccessResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      409 {object} responses.ErrorResponse
// @Router       /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}

	alreadyRegistered, err := tc.repo.HasTeamForOwner(userID)
	if err != nil {
		responses.InternalServerError(c, "Could not check existing registration")
		return
	}
	if alreadyRegistered {
		responses.Conflict(c, "You have already registered a team")
		return
	}

	squad, err := tc.buildSquad(&req)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	team := &Team{
		Country:       strings.TrimSpace(req.Country),
		ManagerName:   strings.TrimSpace(req.ManagerName),
		ContactEmail:  strings.TrimSpace(req.ContactEmail),
		OwnerID:       userID,
		AverageRating: player.SquadAverage(squad),
		Players:       squad,
	}

	if err := tc.repo.CreateTeamWithSquad(team); err != nil {
		responses.InternalServerError(c, "Could not create team: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Federation registered", team)
}

// GetAllTeams godoc
// @Summary      List federations
// @Tags         Teams
// @Produce      json
// @Success      200 {object} responses.SuccessResponse
// @Router       /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	teams, err := tc.repo.GetTeams(0)
	if err != nil {
		responses.InternalServerError(c, "Could not list teams")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", teams)
}

// GetTeamByID godoc
// @Summary      Get a federation with its squad
// @Tags         Teams
// @Produce      json
// @Param        team_id path int true "Team ID"
// @Success      200 {object} responses.SuccessResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 64)
	if err != nil {
		responses.BadRequest(c, "Invalid team id")
		return
	}

	team, err := tc.repo.GetTeamWithPlayers(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Could not load team")
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", team)
}

// DeleteTeam godoc
// @Summary      Delete a federation (admin)
// @Tags         Teams
// @Produce      json
// @Security     BearerAuth
// @Param        team_id path int true "Team ID"
// @Success      200 {object} responses.SuccessResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /admin/teams/{team_id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 64)
	if err != nil {
		responses.BadRequest(c, "Invalid team id")
		return
	}

	team, err := tc.repo.GetTeamByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Could not load team")
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}

	if err := tc.repo.DeleteTeam(uint(id)); err != nil {
		responses.InternalServerError(c, "Could not delete team")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Federation deleted", nil)
}
