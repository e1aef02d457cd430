package news

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewsRoutes sets up the public newsroom routes.
func NewsRoutes(router *gin.RouterGroup, db *gorm.DB) {
	newsRepo := NewNewsRepository(db)
	newsController := NewNewsController(newsRepo)

	router.GET("/news", newsController.GetNews)
}
