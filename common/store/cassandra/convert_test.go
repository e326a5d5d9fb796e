package cassandra

import (
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"

	"github.com/omnibuildplatform/omni-cql/common/cql"
)

func TestConvertConsistency(t *testing.T) {
	tests := []struct {
		input  cql.Consistency
		output gocql.Consistency
	}{
		{cql.Any, gocql.Any},
		{cql.One, gocql.One},
		{cql.Two, gocql.Two},
		{cql.Three, gocql.Three},
		{cql.Quorum, gocql.Quorum},
		{cql.All, gocql.All},
		{cql.LocalQuorum, gocql.LocalQuorum},
		{cql.EachQuorum, gocql.EachQuorum},
		{cql.LocalOne, gocql.LocalOne},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.output, convertConsistency(tt.input))
	}
	assert.Panics(t, func() { convertConsistency(cql.Consistency(9999)) })
}

func TestConvertSerialConsistency(t *testing.T) {
	tests := []struct {
		input  cql.SerialConsistency
		output gocql.SerialConsistency
	}{
		{cql.Serial, gocql.Serial},
		{cql.LocalSerial, gocql.LocalSerial},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.output, convertSerialConsistency(tt.input))
	}
	assert.Panics(t, func() { convertSerialConsistency(cql.SerialConsistency(9999)) })
}
