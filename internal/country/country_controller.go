package country

import (
	"net/http"

	"github.com/anl2026/anl-api/pkg/responses"
	"github.com/gin-gonic/gin"
)

type CountryController struct {
	client *Client
}

func NewCountryController(client *Client) *CountryController {
	return &CountryController{client: client}
}

// GetFlag godoc
// @Summary      Resolve a country flag
// @Description  Looks up a country by name or ISO alpha-2 code and returns its flag asset.
// @Tags         Countries
// @Produce      json
// @Param        query path string true "Country name or alpha-2 code"
// @Success      200 {object} responses.SuccessResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /countries/{query}/flag [get]
func (cc *CountryController) GetFlag(c *gin.Context) {
	flag, err := cc.client.Lookup(c.Request.Context(), c.Param("query"))
	if err != nil {
		responses.NotFound(c, "Country")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Flag resolved successfully", flag)
}

// CountryRoutes sets up the public country routes.
func CountryRoutes(router *gin.RouterGroup, client *Client) {
	countryController := NewCountryController(client)

	router.GET("/countries/:query/flag", countryController.GetFlag)
}
