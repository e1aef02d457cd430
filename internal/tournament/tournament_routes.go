package tournament

import (
	"math/rand"
	"time"

	"github.com/anl2026/anl-api/config"
	"github.com/anl2026/anl-api/internal/commentary"
	mw "github.com/anl2026/anl-api/internal/middleware"
	"github.com/anl2026/anl-api/internal/news"
	"github.com/anl2026/anl-api/internal/notify"
	"github.com/anl2026/anl-api/internal/team"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TournamentRoutes sets up all bracket and match routes.
func TournamentRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	tournamentRepo := NewTournamentRepository(db)
	teamRepo := team.NewTeamRepository(db)
	newsRepo := news.NewNewsRepository(db)
	commentator := commentary.NewGenerator(appConfig.AI.OpenAIAPIKey)
	mailer := notify.NewMailer(appConfig.Mail.ResendAPIKey, appConfig.Mail.FromAddress)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	tournamentController := NewTournamentController(tournamentRepo, teamRepo, newsRepo, commentator, mailer, appConfig, rng)

	// Public bracket routes
	router.GET("/matches", tournamentController.GetMatches)
	router.GET("/matches/:match_id", tournamentController.GetMatchByID)

	// Admin routes
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	adminRoutes.Use(mw.AdminMiddleware())
	{
		adminRoutes.POST("/tournament/start", tournamentController.StartTournament)
		adminRoutes.POST("/tournament/reset", tournamentController.ResetTournament)
		adminRoutes.POST("/matches/:match_id/simulate", tournamentController.SimulateMatch)
	}
}
