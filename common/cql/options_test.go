package cql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyToOnlyTouchesSetFields(t *testing.T) {
	base := QueryOptions{
		PageSize:         100,
		Consistency:      ConsistencyLevel(Quorum),
		ExecutionProfile: "base",
	}

	merged := QueryOptions{}.applyTo(base)
	assert.Equal(t, base, merged)

	merged = QueryOptions{PageSize: 5, SerialConsistency: SerialConsistencyLevel(Serial)}.applyTo(base)
	assert.Equal(t, 5, merged.PageSize)
	require.NotNil(t, merged.Consistency)
	assert.Equal(t, Quorum, *merged.Consistency)
	require.NotNil(t, merged.SerialConsistency)
	assert.Equal(t, Serial, *merged.SerialConsistency)
	assert.Equal(t, "base", merged.ExecutionProfile)
}

func TestApplyToIsIdempotent(t *testing.T) {
	opts := QueryOptions{PageSize: 5, Consistency: ConsistencyLevel(One), ExecutionProfile: "foo"}
	once := opts.applyTo(QueryOptions{})
	twice := opts.applyTo(once)
	assert.Equal(t, once, twice)
}

func TestApplyToCopiesPointerFields(t *testing.T) {
	opts := QueryOptions{Consistency: ConsistencyLevel(One)}
	merged := opts.applyTo(QueryOptions{})
	require.NotNil(t, merged.Consistency)
	assert.NotSame(t, opts.Consistency, merged.Consistency)
	assert.Equal(t, *opts.Consistency, *merged.Consistency)
}
