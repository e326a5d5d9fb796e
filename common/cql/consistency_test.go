package cql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsistencyRoundTrip(t *testing.T) {
	levels := []Consistency{Any, One, Two, Three, Quorum, All, LocalQuorum, EachQuorum, LocalOne}
	for _, level := range levels {
		parsed, err := ParseConsistency(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, parsed)
	}
}

func TestParseConsistencyIsCaseInsensitive(t *testing.T) {
	parsed, err := ParseConsistency("local_quorum")
	require.NoError(t, err)
	assert.Equal(t, LocalQuorum, parsed)
}

func TestParseConsistencyRejectsUnknownLevels(t *testing.T) {
	_, err := ParseConsistency("SOMETIMES")
	assert.Error(t, err)
}

func TestSerialConsistencyRoundTrip(t *testing.T) {
	for _, level := range []SerialConsistency{Serial, LocalSerial} {
		parsed, err := ParseSerialConsistency(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, parsed)
	}
	_, err := ParseSerialConsistency("QUORUM")
	assert.Error(t, err)
}

func TestConsistencyMarshalText(t *testing.T) {
	text, err := EachQuorum.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "EACH_QUORUM", string(text))

	var level Consistency
	require.NoError(t, level.UnmarshalText([]byte("LOCAL_ONE")))
	assert.Equal(t, LocalOne, level)
}
