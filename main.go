package main

import (
	"log"

	"github.com/anl2026/anl-api/config"
	_ "github.com/anl2026/anl-api/docs"
	"github.com/anl2026/anl-api/internal/news"
	"github.com/anl2026/anl-api/internal/player"
	"github.com/anl2026/anl-api/internal/team"
	"github.com/anl2026/anl-api/internal/tournament"
	"github.com/anl2026/anl-api/internal/user"
	"github.com/anl2026/anl-api/routes"
)

// @title African Nations League 2026 API
// @version 1.0
// @description REST API for the ANL 2026 knockout championship: federations, squads, bracket, and newsroom.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{},
		&team.Team{}, &player.Player{},
		&tournament.Match{}, &tournament.MatchArchive{},
		&news.Article{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes()

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
