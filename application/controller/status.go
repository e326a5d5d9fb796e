package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/omnibuildplatform/omni-cql/app"
)

type ApplicationStatus struct {
	Status string
	Info   app.ApplicationInfo
}

// AppHealth reports process liveness; store reachability is reported by the
// gateway's own health endpoint.
func AppHealth(c *gin.Context) {
	data := ApplicationStatus{
		Status: "up",
		Info:   *app.Info,
	}
	c.JSON(200, data)
}
