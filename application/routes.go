package application

import (
	"github.com/gin-gonic/gin"

	"github.com/omnibuildplatform/omni-cql/application/controller"
)

func AddRoutes(r *gin.Engine) {
	// status
	RouterGroup().GET("/health", controller.AppHealth)

	// not found routes
	r.NoRoute(func(c *gin.Context) {
		c.Data(404, "text/plain", []byte("not found"))
	})
}
