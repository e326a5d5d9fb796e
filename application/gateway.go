package application

import (
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/omnibuildplatform/omni-cql/application/controller"
	"github.com/omnibuildplatform/omni-cql/common"
	appconfig "github.com/omnibuildplatform/omni-cql/common/config"
	"github.com/omnibuildplatform/omni-cql/common/cql"
	"github.com/omnibuildplatform/omni-cql/common/store"
)

// Gateway wires the execution template into the HTTP surface. The template
// sits behind an atomic.Value so a configuration reload can swap it while
// requests keep flowing.
type Gateway struct {
	config  appconfig.Config
	factory common.TemplateFactory
	current atomic.Value
	group   *gin.RouterGroup
	logger  *zap.Logger
}

func NewGateway(config appconfig.Config, group *gin.RouterGroup, logger *zap.Logger) (*Gateway, error) {
	return &Gateway{
		config:  config,
		factory: store.NewTemplateFactory(logger),
		group:   group,
		logger:  logger,
	}, nil
}

func (g *Gateway) Initialize() error {
	template, err := g.factory.CreateTemplate(g.config.PersistentStore, g.logger)
	if err != nil {
		return err
	}
	g.current.Store(template)

	queries := controller.NewQueryController(g.Template, g.logger)
	g.group.POST("/queries", queries.Query)
	g.group.POST("/queries/one", queries.QueryOne)
	g.group.POST("/statements", queries.Execute)
	g.group.GET("/store/health", queries.StoreHealth)
	return nil
}

// Template returns the active execution template.
func (g *Gateway) Template() *cql.Template {
	return g.current.Load().(*cql.Template)
}

// Reload rebuilds the template from the current configuration and closes the
// previous session. In-flight requests finish on the old template.
func (g *Gateway) Reload() {
	template, err := g.factory.CreateTemplate(g.config.PersistentStore, g.logger)
	if err != nil {
		g.logger.Error("failed to rebuild execution template on reload", zap.Error(err))
		return
	}
	old := g.Template()
	g.current.Store(template)
	old.Close()
	g.logger.Info("execution template reloaded")
}

func (g *Gateway) Close() {
	if template, ok := g.current.Load().(*cql.Template); ok {
		template.Close()
	}
}
