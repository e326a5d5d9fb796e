package cql

import (
	"context"

	"go.uber.org/zap"
)

// Template is the execution façade. It holds the session, the error
// translator and an immutable option set; it keeps no per-call state, so a
// single instance is safe for concurrent use.
type Template struct {
	session    Session
	translator ErrorTranslator
	opts       QueryOptions
	decoder    ColumnDecoder
	logger     *zap.Logger
}

func NewTemplate(session Session, translator ErrorTranslator, opts QueryOptions, logger *zap.Logger) *Template {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Template{
		session:    session,
		translator: translator,
		opts:       opts,
		decoder:    scalarDecoder{},
		logger:     logger,
	}
}

// WithDecoder returns a template using decoder for scalar operations. The
// receiver is left untouched.
func (t *Template) WithDecoder(decoder ColumnDecoder) *Template {
	clone := *t
	clone.decoder = decoder
	return &clone
}

// Options returns a copy of the template-wide execution settings.
func (t *Template) Options() QueryOptions { return t.opts }

// Close closes the underlying session.
func (t *Template) Close() { t.session.Close() }

// -----------------------------------------------------------------------
// execution core: one place builds the executable and issues the single
// session.Execute call, whatever the statement source was
// -----------------------------------------------------------------------

const (
	opPrepare = "prepare"
	opBind    = "bind"
	opExecute = "execute"
)

func (t *Template) translate(op string, err error) error {
	if err == nil {
		return nil
	}
	return t.translator.Translate(op, err)
}

// run executes one driver-ready statement with the template options applied
// on a derived statement.
func (t *Template) run(ctx context.Context, stmt Statement) (ResultSet, error) {
	executable := withOptions(stmt, t.opts)
	rs, err := t.session.Execute(ctx, executable)
	if err != nil {
		t.logger.Debug("statement execution failed",
			zap.String("cql", stmt.CQL()), zap.Error(err))
		return nil, t.translate(opExecute, err)
	}
	return rs, nil
}

// resultSet normalizes text plus optional positional values into one
// executed cursor. Text without values runs as a simple statement; with
// values it goes through the session's prepared-statement path.
func (t *Template) resultSet(ctx context.Context, stmt string, values []interface{}) (ResultSet, error) {
	if len(values) == 0 {
		return t.run(ctx, NewStatement(stmt))
	}
	ps, err := t.session.Prepare(ctx, stmt)
	if err != nil {
		return nil, t.translate(opPrepare, err)
	}
	bound, err := ps.Bind(values...)
	if err != nil {
		return nil, t.translate(opBind, err)
	}
	return t.run(ctx, bound)
}

// preparedResultSet normalizes the creator/binder form. Creator and binder
// failures are translated: both callbacks perform driver work.
func (t *Template) preparedResultSet(ctx context.Context, creator PreparedStatementCreator, binder PreparedStatementBinder) (ResultSet, error) {
	ps, err := creator(ctx, t.session)
	if err != nil {
		return nil, t.translate(opPrepare, err)
	}
	var bound Statement
	if binder != nil {
		bound, err = binder(ps)
	} else {
		bound, err = ps.Bind()
	}
	if err != nil {
		return nil, t.translate(opBind, err)
	}
	return t.run(ctx, bound)
}

// closeError translates driver failures the cursor reports on close, keeping
// the taxonomy uniform with failures raised at execute time.
func (t *Template) closeError(err error) error {
	return t.translate(opExecute, err)
}

// wasApplied drains nothing: it reads the applied flag and closes.
func (t *Template) wasApplied(rs ResultSet, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	applied := rs.WasApplied()
	if err := rs.Close(); err != nil {
		return false, t.translate(opExecute, err)
	}
	return applied, nil
}

// -----------------------------------------------------------------------
// execute: conditional-update semantics, returns the applied flag
// -----------------------------------------------------------------------

// Execute runs the statement and reports whether it was applied. With
// positional values the statement goes through the prepared path.
func (t *Template) Execute(ctx context.Context, stmt string, values ...interface{}) (bool, error) {
	return t.wasApplied(t.resultSet(ctx, stmt, values))
}

// ExecuteStatement runs a caller-built statement.
func (t *Template) ExecuteStatement(ctx context.Context, stmt Statement) (bool, error) {
	return t.wasApplied(t.run(ctx, stmt))
}

// ExecutePrepared runs the creator/binder form.
func (t *Template) ExecutePrepared(ctx context.Context, creator PreparedStatementCreator, binder PreparedStatementBinder) (bool, error) {
	return t.wasApplied(t.preparedResultSet(ctx, creator, binder))
}

// -----------------------------------------------------------------------
// query: whole-result extraction
// -----------------------------------------------------------------------

// Query runs the statement and hands the cursor to extract.
func (t *Template) Query(ctx context.Context, stmt string, extract ResultSetExtractor, values ...interface{}) (interface{}, error) {
	rs, err := t.resultSet(ctx, stmt, values)
	if err != nil {
		return nil, err
	}
	return extract(rs)
}

func (t *Template) QueryStatement(ctx context.Context, stmt Statement, extract ResultSetExtractor) (interface{}, error) {
	rs, err := t.run(ctx, stmt)
	if err != nil {
		return nil, err
	}
	return extract(rs)
}

func (t *Template) QueryPrepared(ctx context.Context, creator PreparedStatementCreator, binder PreparedStatementBinder, extract ResultSetExtractor) (interface{}, error) {
	rs, err := t.preparedResultSet(ctx, creator, binder)
	if err != nil {
		return nil, err
	}
	return extract(rs)
}

// QueryForResultSet returns the raw cursor. The caller owns it and must
// close it.
func (t *Template) QueryForResultSet(ctx context.Context, stmt string, values ...interface{}) (ResultSet, error) {
	return t.resultSet(ctx, stmt, values)
}

func (t *Template) QueryForResultSetStatement(ctx context.Context, stmt Statement) (ResultSet, error) {
	return t.run(ctx, stmt)
}

// -----------------------------------------------------------------------
// queryForObject: exactly-one cardinality
// -----------------------------------------------------------------------

// QueryForObject maps the single expected row. Zero rows yield an
// EmptyResultError, two or more an IncorrectResultSizeError without draining
// the cursor.
func (t *Template) QueryForObject(ctx context.Context, stmt string, mapper RowMapper, values ...interface{}) (interface{}, error) {
	rs, err := t.resultSet(ctx, stmt, values)
	if err != nil {
		return nil, err
	}
	return mapSingle(rs, mapper, t.closeError)
}

func (t *Template) QueryForObjectStatement(ctx context.Context, stmt Statement, mapper RowMapper) (interface{}, error) {
	rs, err := t.run(ctx, stmt)
	if err != nil {
		return nil, err
	}
	return mapSingle(rs, mapper, t.closeError)
}

func (t *Template) QueryForObjectPrepared(ctx context.Context, creator PreparedStatementCreator, binder PreparedStatementBinder, mapper RowMapper) (interface{}, error) {
	rs, err := t.preparedResultSet(ctx, creator, binder)
	if err != nil {
		return nil, err
	}
	return mapSingle(rs, mapper, t.closeError)
}

// QueryForMap is QueryForObject with a column-name map result.
func (t *Template) QueryForMap(ctx context.Context, stmt string, values ...interface{}) (map[string]interface{}, error) {
	result, err := t.QueryForObject(ctx, stmt, ColumnMapRowMapper(), values...)
	if err != nil {
		return nil, err
	}
	return result.(map[string]interface{}), nil
}

// QueryForScalar decodes the single column of the single expected row into
// dest, which must be a supported pointer type.
func (t *Template) QueryForScalar(ctx context.Context, stmt string, dest interface{}, values ...interface{}) error {
	result, err := t.QueryForObject(ctx, stmt, SingleColumnRowMapper(), values...)
	if err != nil {
		return err
	}
	return t.decoder.Decode(result, dest)
}

// -----------------------------------------------------------------------
// queryForList: list cardinality, source order preserved
// -----------------------------------------------------------------------

// QueryForList maps every row in source order; zero rows yield an empty
// slice.
func (t *Template) QueryForList(ctx context.Context, stmt string, mapper RowMapper, values ...interface{}) ([]interface{}, error) {
	rs, err := t.resultSet(ctx, stmt, values)
	if err != nil {
		return nil, err
	}
	return mapAll(rs, mapper, t.closeError)
}

func (t *Template) QueryForListStatement(ctx context.Context, stmt Statement, mapper RowMapper) ([]interface{}, error) {
	rs, err := t.run(ctx, stmt)
	if err != nil {
		return nil, err
	}
	return mapAll(rs, mapper, t.closeError)
}

func (t *Template) QueryForListPrepared(ctx context.Context, creator PreparedStatementCreator, binder PreparedStatementBinder, mapper RowMapper) ([]interface{}, error) {
	rs, err := t.preparedResultSet(ctx, creator, binder)
	if err != nil {
		return nil, err
	}
	return mapAll(rs, mapper, t.closeError)
}

// QueryForMapList maps every row to a column-name map.
func (t *Template) QueryForMapList(ctx context.Context, stmt string, values ...interface{}) ([]map[string]interface{}, error) {
	results, err := t.QueryForList(ctx, stmt, ColumnMapRowMapper(), values...)
	if err != nil {
		return nil, err
	}
	maps := make([]map[string]interface{}, 0, len(results))
	for _, r := range results {
		maps = append(maps, r.(map[string]interface{}))
	}
	return maps, nil
}

// QueryForScalarList returns the single column value of every row in source
// order, undecoded; callers needing typed values decode each entry
// themselves.
func (t *Template) QueryForScalarList(ctx context.Context, stmt string, values ...interface{}) ([]interface{}, error) {
	return t.QueryForList(ctx, stmt, SingleColumnRowMapper(), values...)
}
