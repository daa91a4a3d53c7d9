// Package version reports which build of the budget tracker is serving requests.
package version

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Data Build `json:"data"`
}

// Build identifies the running backend. Version is injected with -ldflags
// and stays 0.0.0 for local builds.
type Build struct {
	Version string `json:"version" example:"1.1.0"`
}

// RegisterRoutes serves the given build version on the group.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	r.GET("", Get(version))
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns a handler responding with version.
//
// @Summary		API version
// @Description	Returns the version of the budget tracker backend serving the request
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(version string) gin.HandlerFunc {
	build := Response{Data: Build{Version: version}}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, build)
	}
}
