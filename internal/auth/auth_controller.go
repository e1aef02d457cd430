package auth

import (
	"errors"
	"net/http"

	"github.com/anl2026/anl-api/config"
	"github.com/anl2026/anl-api/internal/middleware"
	"github.com/anl2026/anl-api/internal/user"
	"github.com/anl2026/anl-api/pkg/responses"
	"github.com/anl2026/anl-api/pkg/token"
	"github.com/anl2026/anl-api/pkg/validator"
	"github.com/anl2026/anl-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{repo: repo, config: cfg}
}

func profileOf(account *user.User) UserProfile {
	return UserProfile{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
		Role:     account.Role,
	}
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates a federation account with username, email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user body RegisterRequest true "Registration details"
// @Success      201 {object} responses.SuccessResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      409 {object} responses.ErrorResponse
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}

	if _, err := ac.repo.GetUserByEmail(req.Email); !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.Conflict(c, "User with this email already exists")
		return
	}
	if _, err := ac.repo.GetUserByUsername(req.Username); !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.Conflict(c, "User with this username already exists")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Could not hash password")
		return
	}

	account := &user.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     user.RoleFederation,
	}
	if err := ac.repo.CreateUser(account); err != nil {
		responses.InternalServerError(c, "Could not create user")
		return
	}

	accessToken, err := token.GenerateJWT(account.ID, account.Role, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "Could not issue token")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "User registered successfully", AuthResponse{
		AccessToken: accessToken,
		User:        profileOf(account),
	})
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges email and password for an access token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials body LoginRequest true "Login credentials"
// @Success      200 {object} responses.SuccessResponse
// @Failure      401 {object} responses.ErrorResponse
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	account, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		responses.Unauthorized(c, "Invalid email or password")
		return
	}

	if !utils.CheckPassword(account.Password, req.Password) {
		responses.Unauthorized(c, "Invalid email or password")
		return
	}

	accessToken, err := token.GenerateJWT(account.ID, account.Role, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "Could not issue token")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Logged in", AuthResponse{
		AccessToken: accessToken,
		User:        profileOf(account),
	})
}

// GetProfile godoc
// @Summary      Current account
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} responses.SuccessResponse
// @Failure      401 {object} responses.ErrorResponse
// @Router       /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	account, err := ac.repo.GetUserByID(userID)
	if err != nil {
		responses.NotFound(c, "User")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", profileOf(account))
}
