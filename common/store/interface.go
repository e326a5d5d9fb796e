package store

import (
	"go.uber.org/zap"

	appconfig "github.com/omnibuildplatform/omni-cql/common/config"
	"github.com/omnibuildplatform/omni-cql/common/cql"
)

type (
	// Plugin creates driver sessions for one backing store kind. The
	// translator returned alongside the session classifies that driver's
	// failures into the template error taxonomy.
	Plugin interface {
		CreateSession(cfg appconfig.PersistentStore, logger *zap.Logger) (cql.Session, cql.ErrorTranslator, error)
	}
)
