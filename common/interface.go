package common

import (
	"go.uber.org/zap"

	"github.com/omnibuildplatform/omni-cql/common/config"
	"github.com/omnibuildplatform/omni-cql/common/cql"
)

type (
	Closeable interface {
		Close()
	}

	// TemplateFactory assembles a ready-to-use execution template from store
	// configuration: driver session, error translator and template-wide
	// query defaults.
	TemplateFactory interface {
		CreateTemplate(config config.PersistentStore, logger *zap.Logger) (*cql.Template, error)
	}
)
