package cassandra

import (
	"fmt"

	"github.com/gocql/gocql"

	"github.com/omnibuildplatform/omni-cql/common/cql"
)

const appliedColumn = "[applied]"

// resultSet is a single-pass cursor over a gocql iterator. It keeps exactly
// one row of lookahead: the constructor fetches the first row so execution
// failures surface immediately, and each Next pre-fetches the following row.
type resultSet struct {
	iter     *gocql.Iter
	columns  []string
	buffered map[string]interface{}
	done     bool
	closed   bool
	err      error
}

var _ cql.ResultSet = (*resultSet)(nil)

func newResultSet(iter *gocql.Iter) (*resultSet, error) {
	cols := iter.Columns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	rs := &resultSet{iter: iter, columns: names}

	first := make(map[string]interface{}, len(names))
	if iter.MapScan(first) {
		rs.buffered = first
		return rs, nil
	}
	rs.done = true
	rs.closed = true
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return rs, nil
}

func (r *resultSet) Next() (cql.Row, bool) {
	if r.buffered == nil {
		return nil, false
	}
	current := &row{columns: r.columns, values: r.buffered}
	r.buffered = nil

	if !r.done {
		next := make(map[string]interface{}, len(r.columns))
		if r.iter.MapScan(next) {
			r.buffered = next
		} else {
			r.done = true
			r.closed = true
			r.err = r.iter.Close()
		}
	}
	return current, true
}

// WasApplied reads the conditional-update flag without consuming the row
// carrying it. Statements without an applied column count as applied.
func (r *resultSet) WasApplied() bool {
	hasApplied := false
	for _, name := range r.columns {
		if name == appliedColumn {
			hasApplied = true
			break
		}
	}
	if !hasApplied {
		return true
	}
	if r.buffered == nil {
		return false
	}
	applied, _ := r.buffered[appliedColumn].(bool)
	return applied
}

func (r *resultSet) PageState() []byte {
	return r.iter.PageState()
}

func (r *resultSet) Close() error {
	if !r.closed {
		r.closed = true
		r.done = true
		r.buffered = nil
		r.err = r.iter.Close()
	}
	return r.err
}

// row materializes one result row; values are keyed by column name, order
// comes from the iterator's column metadata.
type row struct {
	columns []string
	values  map[string]interface{}
}

var _ cql.Row = (*row)(nil)

func (r *row) Columns() []string {
	return r.columns
}

func (r *row) Value(index int) (interface{}, error) {
	if index < 0 || index >= len(r.columns) {
		return nil, fmt.Errorf("column index %d out of range, row has %d columns", index, len(r.columns))
	}
	return r.values[r.columns[index]], nil
}

func (r *row) ValueByName(name string) (interface{}, error) {
	value, ok := r.values[name]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	return value, nil
}
