package health

import (
	"net/http"

	"github.com/labstack/echo/v5"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status  string `json:"status"            example:"healthy"`
	Version string `json:"version,omitempty" example:"1.0.0"`
}

// NewHandler returns the liveness endpoint reporting version.
//
//	@Summary		Health check
//	@Description	Reports service liveness
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	Response
//	@Router			/health [get]
func NewHandler(version string) echo.HandlerFunc {
	body := Response{Status: "healthy", Version: version}
	return func(c *echo.Context) error {
		return c.JSON(http.StatusOK, body)
	}
}
