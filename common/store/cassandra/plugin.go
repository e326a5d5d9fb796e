package cassandra

import (
	"go.uber.org/zap"

	appconfig "github.com/omnibuildplatform/omni-cql/common/config"
	"github.com/omnibuildplatform/omni-cql/common/cql"
	"github.com/omnibuildplatform/omni-cql/common/store"
)

const (
	PluginName = "cassandra"
)

type plugin struct{}

var _ store.Plugin = (*plugin)(nil)

func init() {
	store.RegisterPlugin(PluginName, &plugin{})
}

func (p *plugin) CreateSession(cfg appconfig.PersistentStore, logger *zap.Logger) (cql.Session, cql.ErrorTranslator, error) {
	session, err := NewSession(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return session, NewErrorTranslator(), nil
}
