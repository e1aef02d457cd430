package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/anl2026/anl-api/config"
	"github.com/anl2026/anl-api/internal/auth"
	"github.com/anl2026/anl-api/internal/country"
	"github.com/anl2026/anl-api/internal/news"
	"github.com/anl2026/anl-api/internal/team"
	"github.com/anl2026/anl-api/internal/tournament"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	db := config.DB
	appConfig := config.GetConfig()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "African Nations League 2026 API",
			"docs":    "/swagger/index.html",
			"matches": "/api/matches",
		})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	team.TeamRoutes(api, db, appConfig)
	tournament.TournamentRoutes(api, db, appConfig)
	news.NewsRoutes(api, db)
	country.CountryRoutes(api, country.NewClient(nil))

	return r
}
