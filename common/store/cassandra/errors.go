package cassandra

import (
	"context"
	"errors"

	"github.com/gocql/gocql"

	"github.com/omnibuildplatform/omni-cql/common/cql"
)

// Cassandra protocol error codes. gocql does not export these constants.
const (
	errUnavailable     = 0x1000
	errOverloaded      = 0x1001
	errIsBootstrapping = 0x1002
	errSyntax          = 0x2000
	errUnauthorized    = 0x2100
	errInvalid         = 0x2200
)

type translator struct{}

var _ cql.ErrorTranslator = translator{}

// NewErrorTranslator classifies gocql failures into the template taxonomy.
// Connection-level failures and node-availability responses become
// ConnectionError; statements the server rejects become InvalidQueryError;
// everything unrecognized falls back to UncategorizedError.
func NewErrorTranslator() cql.ErrorTranslator {
	return translator{}
}

func (translator) Translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if cql.Translated(err) {
		return err
	}
	if isConnectionError(err) {
		return &cql.ConnectionError{Op: op, Err: err}
	}
	var reqErr gocql.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.Code() {
		case errUnavailable, errOverloaded, errIsBootstrapping:
			return &cql.ConnectionError{Op: op, Err: err}
		case errSyntax, errUnauthorized, errInvalid:
			return &cql.InvalidQueryError{Op: op, Err: err}
		}
	}
	return &cql.UncategorizedError{Op: op, Err: err}
}

func isConnectionError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return errors.Is(err, gocql.ErrNoConnections) ||
		errors.Is(err, gocql.ErrConnectionClosed) ||
		errors.Is(err, gocql.ErrTimeoutNoResponse) ||
		errors.Is(err, gocql.ErrSessionClosed)
}
