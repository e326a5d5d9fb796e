package cql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessagesCarryExpectedCounts(t *testing.T) {
	assert.Equal(t, "empty result: expected 1, actual 0", (&EmptyResultError{Expected: 1}).Error())
	assert.Equal(t, "incorrect result size: expected 1, actual 2",
		(&IncorrectResultSizeError{Expected: 1, Actual: 2}).Error())
}

func TestTaxonomyKeepsDriverCause(t *testing.T) {
	cause := errors.New("no node was available")
	err := &ConnectionError{Op: "execute", Err: cause}
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "no node was available")
	assert.Contains(t, err.Error(), "execute")
}

func TestPredicatesMatchOnlyTheirKind(t *testing.T) {
	cause := errors.New("cause")
	conn := &ConnectionError{Op: "execute", Err: cause}
	invalid := &InvalidQueryError{Op: "execute", Err: cause}
	uncat := &UncategorizedError{Op: "execute", Err: cause}
	empty := &EmptyResultError{Expected: 1}
	size := &IncorrectResultSizeError{Expected: 1, Actual: 2}

	assert.True(t, IsConnectionError(conn))
	assert.False(t, IsConnectionError(invalid))

	assert.True(t, IsInvalidQueryError(invalid))
	assert.False(t, IsInvalidQueryError(conn))

	assert.True(t, IsUncategorizedError(uncat))
	assert.False(t, IsUncategorizedError(conn))

	assert.True(t, IsEmptyResultError(empty))
	assert.False(t, IsEmptyResultError(size))

	// the zero-row case is a cardinality violation as well
	assert.True(t, IsIncorrectResultSizeError(size))
	assert.True(t, IsIncorrectResultSizeError(empty))
	assert.False(t, IsIncorrectResultSizeError(conn))
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	inner := &ConnectionError{Op: "prepare", Err: errors.New("down")}
	wrapped := fmt.Errorf("creating store: %w", inner)
	assert.True(t, IsConnectionError(wrapped))
	assert.True(t, Translated(wrapped))
}

func TestTranslatedCoversTheWholeTaxonomy(t *testing.T) {
	cause := errors.New("cause")
	for _, err := range []error{
		&ConnectionError{Op: "execute", Err: cause},
		&InvalidQueryError{Op: "execute", Err: cause},
		&UncategorizedError{Op: "execute", Err: cause},
		&EmptyResultError{Expected: 1},
		&IncorrectResultSizeError{Expected: 1, Actual: 2},
	} {
		assert.True(t, Translated(err), err.Error())
	}
	assert.False(t, Translated(cause))
}
