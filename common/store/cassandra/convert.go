package cassandra

import (
	"fmt"

	"github.com/gocql/gocql"

	"github.com/omnibuildplatform/omni-cql/common/cql"
)

// The domain consistency levels never cast directly to the driver values;
// the numeric representations are not guaranteed to line up across driver
// versions.

func convertConsistency(c cql.Consistency) gocql.Consistency {
	switch c {
	case cql.Any:
		return gocql.Any
	case cql.One:
		return gocql.One
	case cql.Two:
		return gocql.Two
	case cql.Three:
		return gocql.Three
	case cql.Quorum:
		return gocql.Quorum
	case cql.All:
		return gocql.All
	case cql.LocalQuorum:
		return gocql.LocalQuorum
	case cql.EachQuorum:
		return gocql.EachQuorum
	case cql.LocalOne:
		return gocql.LocalOne
	default:
		panic(fmt.Sprintf("unknown consistency level: %v", c))
	}
}

func convertSerialConsistency(c cql.SerialConsistency) gocql.SerialConsistency {
	switch c {
	case cql.Serial:
		return gocql.Serial
	case cql.LocalSerial:
		return gocql.LocalSerial
	default:
		panic(fmt.Sprintf("unknown serial consistency level: %v", c))
	}
}
