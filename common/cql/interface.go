package cql

import "context"

type (
	// Session is the driver-facing collaborator of the template. It must be
	// safe for concurrent use; retries, pooling and statement caching are the
	// driver's concern.
	Session interface {
		Execute(ctx context.Context, stmt Statement) (ResultSet, error)
		Prepare(ctx context.Context, stmt string) (PreparedStatement, error)
		Close()
	}

	// PreparedStatement is a statement whose text has been registered with
	// the session and can be bound with positional values repeatedly.
	PreparedStatement interface {
		Bind(values ...interface{}) (Statement, error)
	}

	// Statement is a driver-ready executable unit: query text, bound values
	// and per-statement execution options.
	Statement interface {
		CQL() string
		Values() []interface{}
		Options() QueryOptions
	}

	// ResultSet is a forward-only, single-pass cursor over the rows produced
	// by one execution. It must not be shared across goroutines. Close is
	// idempotent.
	ResultSet interface {
		Next() (Row, bool)
		WasApplied() bool
		PageState() []byte
		Close() error
	}

	// Row exposes the columns of a single result row by position and name.
	Row interface {
		Columns() []string
		Value(index int) (interface{}, error)
		ValueByName(name string) (interface{}, error)
	}

	// ErrorTranslator rewrites driver-native failures into the package error
	// taxonomy. Translate must be idempotent: errors already belonging to the
	// taxonomy are returned unchanged.
	ErrorTranslator interface {
		Translate(op string, err error) error
	}

	// RowMapper maps one row to a result value. The row number is zero based
	// and follows source order. A nil result with a nil error is a valid
	// mapping outcome.
	RowMapper func(row Row, rowNum int) (interface{}, error)

	// ResultSetExtractor consumes a whole result set and produces a single
	// value from it.
	ResultSetExtractor func(rs ResultSet) (interface{}, error)

	// PreparedStatementCreator obtains a prepared statement from the session.
	// Failures raised here are translated since the callback performs driver
	// calls.
	PreparedStatementCreator func(ctx context.Context, session Session) (PreparedStatement, error)

	// PreparedStatementBinder binds values to a prepared statement. Failures
	// raised here are translated as well.
	PreparedStatementBinder func(ps PreparedStatement) (Statement, error)
)
