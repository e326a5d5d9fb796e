package cassandra

import (
	"context"
	"errors"
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnibuildplatform/omni-cql/common/cql"
)

// requestError mimics a server error response; the concrete gocql error
// types cannot be constructed outside the driver package.
type requestError struct {
	code    int
	message string
}

func (e requestError) Code() int       { return e.code }
func (e requestError) Message() string { return e.message }
func (e requestError) Error() string   { return e.message }

var _ gocql.RequestError = requestError{}

func TestTranslateConnectionFailures(t *testing.T) {
	translator := NewErrorTranslator()
	causes := []error{
		gocql.ErrNoConnections,
		gocql.ErrConnectionClosed,
		gocql.ErrTimeoutNoResponse,
		gocql.ErrSessionClosed,
		context.DeadlineExceeded,
		requestError{code: errUnavailable, message: "cannot achieve consistency level"},
		requestError{code: errOverloaded, message: "coordinator overloaded"},
		requestError{code: errIsBootstrapping, message: "still bootstrapping"},
	}
	for _, cause := range causes {
		err := translator.Translate("execute", cause)
		assert.True(t, cql.IsConnectionError(err), "cause: %v", cause)
		assert.True(t, errors.Is(err, cause))
	}
}

func TestTranslateInvalidQueryFailures(t *testing.T) {
	translator := NewErrorTranslator()
	causes := []error{
		requestError{code: errSyntax, message: "line 1: no viable alternative"},
		requestError{code: errUnauthorized, message: "user has no SELECT permission"},
		requestError{code: errInvalid, message: "unconfigured table"},
	}
	for _, cause := range causes {
		err := translator.Translate("execute", cause)
		assert.True(t, cql.IsInvalidQueryError(err), "cause: %v", cause)
		assert.True(t, errors.Is(err, cause))
		assert.Contains(t, err.Error(), cause.Error())
	}
}

func TestTranslateFallsBackToUncategorized(t *testing.T) {
	translator := NewErrorTranslator()

	err := translator.Translate("execute", errors.New("totally unexpected"))
	assert.True(t, cql.IsUncategorizedError(err))

	err = translator.Translate("execute", requestError{code: 0x1300, message: "read timeout"})
	assert.True(t, cql.IsUncategorizedError(err))
}

func TestTranslateIsIdempotent(t *testing.T) {
	translator := NewErrorTranslator()

	once := translator.Translate("prepare", gocql.ErrNoConnections)
	twice := translator.Translate("execute", once)
	require.Same(t, once, twice)
}

func TestTranslateNil(t *testing.T) {
	assert.NoError(t, NewErrorTranslator().Translate("execute", nil))
}
