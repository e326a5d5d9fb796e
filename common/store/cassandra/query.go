package cassandra

import (
	"context"
	"fmt"

	"github.com/gocql/gocql"

	"github.com/omnibuildplatform/omni-cql/common/cql"
)

// buildQuery turns a driver-ready statement into a gocql query. Profile
// defaults are applied first so explicit statement options always win; unset
// options leave the session defaults in place.
func (s *Session) buildQuery(ctx context.Context, stmt cql.Statement) (*gocql.Query, error) {
	sess := s.Value.Load().(*gocql.Session)
	q := sess.Query(stmt.CQL(), stmt.Values()...).WithContext(ctx)

	opts := stmt.Options()
	if name := opts.ExecutionProfile; name != "" {
		prof, ok := s.profiles[name]
		if !ok {
			return nil, fmt.Errorf("unknown execution profile %q", name)
		}
		if prof.pageSize > 0 {
			q = q.PageSize(prof.pageSize)
		}
		if prof.consistency != nil {
			q = q.Consistency(*prof.consistency)
		}
		if prof.serial != nil {
			q = q.SerialConsistency(*prof.serial)
		}
	}
	if opts.PageSize > 0 {
		q = q.PageSize(opts.PageSize)
	}
	if opts.Consistency != nil {
		q = q.Consistency(convertConsistency(*opts.Consistency))
	}
	if opts.SerialConsistency != nil {
		q = q.SerialConsistency(convertSerialConsistency(*opts.SerialConsistency))
	}
	return q, nil
}

// preparedStatement defers preparation to the driver, which caches prepared
// statements per connection keyed by text.
type preparedStatement struct {
	stmt string
}

var _ cql.PreparedStatement = (*preparedStatement)(nil)

func (p *preparedStatement) Bind(values ...interface{}) (cql.Statement, error) {
	return cql.NewStatement(p.stmt, values...), nil
}
