package application

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gookit/color"

	"github.com/omnibuildplatform/omni-cql/app"
	"github.com/omnibuildplatform/omni-cql/application/middleware"
)

const (
	BASE_PATH = "/v1"
)

var server *gin.Engine

var routerGroup *gin.RouterGroup

func Server() *gin.Engine {
	return server
}

func RouterGroup() *gin.RouterGroup {
	return routerGroup
}

func InitServer() {
	server = gin.New()
	server.Use(middleware.RequestLog())
	if app.EnvName == app.EnvDev {
		server.Use(gin.Recovery())
	}
	routerGroup = server.Group(BASE_PATH)
	AddRoutes(server)
}

func Run() {
	err := server.Run(fmt.Sprintf("0.0.0.0:%d", app.HttpPort))
	if err != nil {
		color.Error.Println(err)
	}
}
