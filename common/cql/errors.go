package cql

import (
	"errors"
	"fmt"
)

// The template rewrites driver-native failures into a small, stable taxonomy
// so callers can pick a retry policy without knowing which driver, or which
// statement form, was behind the call. The original driver error is always
// kept as the wrapped cause.

// ConnectionError indicates the driver could not reach a node or lost its
// connection mid-flight. Usually transient.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection failure during %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// InvalidQueryError indicates the statement text was malformed or
// semantically rejected by the store. Retrying will not help.
type InvalidQueryError struct {
	Op  string
	Err error
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid query during %s: %v", e.Op, e.Err)
}

func (e *InvalidQueryError) Unwrap() error { return e.Err }

// UncategorizedError is the fallback for driver failures the translator does
// not recognize.
type UncategorizedError struct {
	Op  string
	Err error
}

func (e *UncategorizedError) Error() string {
	return fmt.Sprintf("uncategorized data access failure during %s: %v", e.Op, e.Err)
}

func (e *UncategorizedError) Unwrap() error { return e.Err }

// IncorrectResultSizeError reports a cardinality violation: the query
// produced more rows than the caller's contract allows.
type IncorrectResultSizeError struct {
	Expected int
	Actual   int
}

func (e *IncorrectResultSizeError) Error() string {
	return fmt.Sprintf("incorrect result size: expected %d, actual %d", e.Expected, e.Actual)
}

// EmptyResultError reports zero rows where exactly one was required.
type EmptyResultError struct {
	Expected int
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("empty result: expected %d, actual 0", e.Expected)
}

func IsConnectionError(err error) bool {
	var e *ConnectionError
	return errors.As(err, &e)
}

func IsInvalidQueryError(err error) bool {
	var e *InvalidQueryError
	return errors.As(err, &e)
}

func IsUncategorizedError(err error) bool {
	var e *UncategorizedError
	return errors.As(err, &e)
}

func IsEmptyResultError(err error) bool {
	var e *EmptyResultError
	return errors.As(err, &e)
}

// IsIncorrectResultSizeError reports any cardinality violation; an empty
// result is the zero-row special case and matches as well.
func IsIncorrectResultSizeError(err error) bool {
	var size *IncorrectResultSizeError
	if errors.As(err, &size) {
		return true
	}
	return IsEmptyResultError(err)
}

// Translated reports whether err already belongs to the taxonomy. Translators
// use it to stay idempotent when an error crosses the boundary twice.
func Translated(err error) bool {
	return IsConnectionError(err) ||
		IsInvalidQueryError(err) ||
		IsUncategorizedError(err) ||
		IsIncorrectResultSizeError(err)
}
