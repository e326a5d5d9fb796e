package cql

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ColumnDecoder converts a single column value into a typed destination
// pointer. The template consults it for the scalar convenience operations;
// replace it to support additional destination types.
type ColumnDecoder interface {
	Decode(value interface{}, dest interface{}) error
}

// scalarDecoder is the default ColumnDecoder. It covers the destination types
// the gocql driver commonly produces plus uuid.UUID, reached through
// fmt.Stringer so the decoder stays driver-agnostic.
type scalarDecoder struct{}

func (scalarDecoder) Decode(value interface{}, dest interface{}) error {
	switch d := dest.(type) {
	case *interface{}:
		*d = value
		return nil
	case *string:
		if v, ok := value.(string); ok {
			*d = v
			return nil
		}
	case *int:
		switch v := value.(type) {
		case int:
			*d = v
			return nil
		case int64:
			*d = int(v)
			return nil
		}
	case *int64:
		switch v := value.(type) {
		case int64:
			*d = v
			return nil
		case int:
			*d = int64(v)
			return nil
		}
	case *float64:
		if v, ok := value.(float64); ok {
			*d = v
			return nil
		}
	case *bool:
		if v, ok := value.(bool); ok {
			*d = v
			return nil
		}
	case *time.Time:
		if v, ok := value.(time.Time); ok {
			*d = v
			return nil
		}
	case *[]byte:
		if v, ok := value.([]byte); ok {
			*d = v
			return nil
		}
	case *uuid.UUID:
		switch v := value.(type) {
		case uuid.UUID:
			*d = v
			return nil
		case string:
			parsed, err := uuid.Parse(v)
			if err != nil {
				return fmt.Errorf("decode column into uuid: %w", err)
			}
			*d = parsed
			return nil
		case fmt.Stringer:
			parsed, err := uuid.Parse(v.String())
			if err != nil {
				return fmt.Errorf("decode column into uuid: %w", err)
			}
			*d = parsed
			return nil
		}
	default:
		return fmt.Errorf("unsupported scalar destination type %T", dest)
	}
	return fmt.Errorf("cannot decode column value of type %T into %T", value, dest)
}
