package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/omnibuildplatform/omni-cql/common"
	appconfig "github.com/omnibuildplatform/omni-cql/common/config"
	"github.com/omnibuildplatform/omni-cql/common/cql"
)

type templateFactory struct {
	logger *zap.Logger
}

func NewTemplateFactory(logger *zap.Logger) common.TemplateFactory {
	return &templateFactory{
		logger: logger,
	}
}

func (f *templateFactory) CreateTemplate(config appconfig.PersistentStore, logger *zap.Logger) (*cql.Template, error) {
	plugin, ok := supportedPlugins[config.PluginName]
	if !ok {
		return nil, fmt.Errorf("unsupported store plugin %s", config.PluginName)
	}
	session, translator, err := plugin.CreateSession(config, logger)
	if err != nil {
		return nil, err
	}
	opts, err := queryOptions(config.QueryDefaults)
	if err != nil {
		session.Close()
		return nil, err
	}
	return cql.NewTemplate(session, translator, opts, logger), nil
}

// queryOptions parses the configured template-wide defaults. Empty fields
// stay unset so the driver defaults remain in effect.
func queryOptions(defaults appconfig.QueryDefaults) (cql.QueryOptions, error) {
	opts := cql.QueryOptions{
		PageSize:         defaults.PageSize,
		ExecutionProfile: defaults.ExecutionProfile,
	}
	if defaults.Consistency != "" {
		level, err := cql.ParseConsistency(defaults.Consistency)
		if err != nil {
			return opts, err
		}
		opts.Consistency = cql.ConsistencyLevel(level)
	}
	if defaults.SerialConsistency != "" {
		level, err := cql.ParseSerialConsistency(defaults.SerialConsistency)
		if err != nil {
			return opts, err
		}
		opts.SerialConsistency = cql.SerialConsistencyLevel(level)
	}
	return opts, nil
}
