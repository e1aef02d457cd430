package team

import (
	"math/rand"
	"time"

	"github.com/anl2026/anl-api/config"
	mw "github.com/anl2026/anl-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamRoutes sets up all federation-related routes.
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	teamRepo := NewTeamRepository(db)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	teamController := NewTeamController(teamRepo, rng)

	// Public team routes
	router.GET("/teams", teamController.GetAllTeams)
	router.GET("/teams/:team_id", teamController.GetTeamByID)

	// Authenticated user routes
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.POST("/teams", teamController.CreateTeam)
	}

	// Admin routes
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	adminRoutes.Use(mw.AdminMiddleware())
	{
		adminRoutes.DELETE("/teams/:team_id", teamController.DeleteTeam)
	}
}
