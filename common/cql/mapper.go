package cql

import "fmt"

// mapAll applies mapper to every row in source order. Zero rows yield an
// empty, non-nil slice. Mapper failures stop iteration and propagate
// untranslated; they are caller logic, not data access. Driver failures the
// cursor reports on close go through translate, since cursors surface
// mid-iteration execution failures there.
func mapAll(rs ResultSet, mapper RowMapper, translate func(error) error) ([]interface{}, error) {
	defer rs.Close()

	results := make([]interface{}, 0)
	for i := 0; ; i++ {
		row, ok := rs.Next()
		if !ok {
			break
		}
		value, err := mapper(row, i)
		if err != nil {
			return nil, err
		}
		results = append(results, value)
	}
	if err := rs.Close(); err != nil {
		return nil, translate(err)
	}
	return results, nil
}

// mapSingle enforces the exactly-one contract by advancing the cursor at most
// twice: a missing first row fails fast, a present second row fails without
// draining the remainder. A mapped nil from a present row is a valid result.
// Cursor-close failures translate the same way as in mapAll.
func mapSingle(rs ResultSet, mapper RowMapper, translate func(error) error) (interface{}, error) {
	defer rs.Close()

	row, ok := rs.Next()
	if !ok {
		if err := rs.Close(); err != nil {
			return nil, translate(err)
		}
		return nil, &EmptyResultError{Expected: 1}
	}
	value, err := mapper(row, 0)
	if err != nil {
		return nil, err
	}
	if _, extra := rs.Next(); extra {
		return nil, &IncorrectResultSizeError{Expected: 1, Actual: 2}
	}
	if err := rs.Close(); err != nil {
		return nil, translate(err)
	}
	return value, nil
}

// RowMapperExtractor adapts a RowMapper into a ResultSetExtractor producing
// the ordered list of mapped values. Extractors run outside the template's
// translation boundary, so cursor errors pass through as the cursor reports
// them.
func RowMapperExtractor(mapper RowMapper) ResultSetExtractor {
	return func(rs ResultSet) (interface{}, error) {
		return mapAll(rs, mapper, func(err error) error { return err })
	}
}

// ColumnMapRowMapper maps a row to a map keyed by column name. Column order
// is not preserved; use Row.Columns when order matters.
func ColumnMapRowMapper() RowMapper {
	return func(row Row, rowNum int) (interface{}, error) {
		m := make(map[string]interface{}, len(row.Columns()))
		for _, name := range row.Columns() {
			value, err := row.ValueByName(name)
			if err != nil {
				return nil, err
			}
			m[name] = value
		}
		return m, nil
	}
}

// SingleColumnRowMapper returns the sole column value of each row and fails
// when the row carries a different column count.
func SingleColumnRowMapper() RowMapper {
	return func(row Row, rowNum int) (interface{}, error) {
		if n := len(row.Columns()); n != 1 {
			return nil, fmt.Errorf("expected a single column result but row %d has %d columns", rowNum, n)
		}
		return row.Value(0)
	}
}
