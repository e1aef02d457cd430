package news

import (
	"net/http"
	"strconv"

	"github.com/anl2026/anl-api/pkg/responses"
	"github.com/gin-gonic/gin"
)

type NewsController struct {
	repo NewsRepository
}

func NewNewsController(repo NewsRepository) *NewsController {
	return &NewsController{repo: repo}
}

// GetNews godoc
// @Summary      List newsroom articles
// @Description  Returns generated articles, newest first. Filterable by language and match.
// @Tags         News
// @Produce      json
// @Param        language query string false "Article language (en or fr)"
// @Param        match query int false "Filter by match ID"
// @Param        limit query int false "Maximum number of articles"
// @Success      200 {object} responses.SuccessResponse
// @Failure      400 {object} responses.ErrorResponse
// @Router       /news [get]
func (nc *NewsController) GetNews(c *gin.Context) {
	language := c.Query("language")
	if language != "" && language != LanguageEnglish && language != LanguageFrench {
		responses.BadRequest(c, "Unsupported language")
		return
	}

	var matchID uint
	if raw := c.Query("match"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			responses.BadRequest(c, "Invalid match ID")
			return
		}
		matchID = uint(parsed)
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			responses.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	articles, err := nc.repo.GetArticles(language, matchID, limit)
	if err != nil {
		responses.InternalServerError(c, "Could not fetch articles")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Articles fetched successfully", articles)
}
