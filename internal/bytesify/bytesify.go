// Package bytesify converts key objects into deterministic byte sequences.
//
// The output feeds hash addressing and key derivation, so it must be stable
// across processes and unambiguous: every value is length-framed or
// fixed-width, and distinct values of the same type never share an encoding.
package bytesify

import (
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// ErrUnsupported is returned when a value has no deterministic byte form.
var ErrUnsupported = errors.New("unsupported key type")

// Type tags keep values of different types from colliding byte-wise,
// e.g. the string "a" and the byte slice {0x61}.
const (
	tagString byte = iota + 1
	tagInt
	tagUint
	tagBool
	tagFloat
	tagBytes
	tagTime
	tagUUID
	tagBinary
)

// ToBytes converts v to its deterministic byte representation.
// Supported types: string, all int/uint widths, bool, float32/float64,
// []byte, [N]byte arrays, time.Time, uuid.UUID, encoding.BinaryMarshaler,
// and named types whose underlying kind is one of those.
func ToBytes(v any) ([]byte, error) {
	switch t := v.(type) {
	case string:
		return framed(tagString, []byte(t)), nil

	case int:
		return fixed64(tagInt, uint64(int64(t))), nil
	case int8:
		return fixed64(tagInt, uint64(int64(t))), nil
	case int16:
		return fixed64(tagInt, uint64(int64(t))), nil
	case int32:
		return fixed64(tagInt, uint64(int64(t))), nil
	case int64:
		return fixed64(tagInt, uint64(t)), nil

	case uint:
		return fixed64(tagUint, uint64(t)), nil
	case uint8:
		return fixed64(tagUint, uint64(t)), nil
	case uint16:
		return fixed64(tagUint, uint64(t)), nil
	case uint32:
		return fixed64(tagUint, uint64(t)), nil
	case uint64:
		return fixed64(tagUint, t), nil

	case bool:
		if t {
			return []byte{tagBool, 0x01}, nil
		}
		return []byte{tagBool, 0x00}, nil

	case float32:
		return fixed64(tagFloat, math.Float64bits(float64(t))), nil
	case float64:
		return fixed64(tagFloat, math.Float64bits(t)), nil

	case []byte:
		return framed(tagBytes, t), nil

	case time.Time:
		return fixed64(tagTime, uint64(t.UnixNano())), nil

	case uuid.UUID:
		return framed(tagUUID, t[:]), nil

	case encoding.BinaryMarshaler:
		data, err := t.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("%w: %T: %v", ErrUnsupported, v, err)
		}
		return framed(tagBinary, data), nil
	}

	return toBytesReflect(v)
}

// toBytesReflect handles named types (e.g. type UserID string) by
// re-dispatching on their underlying kind.
func toBytesReflect(v any) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil key", ErrUnsupported)
	}
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.String:
		return ToBytes(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ToBytes(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ToBytes(rv.Uint())
	case reflect.Bool:
		return ToBytes(rv.Bool())
	case reflect.Float32, reflect.Float64:
		return ToBytes(rv.Float())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return ToBytes(rv.Bytes())
		}
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			data := make([]byte, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				data[i] = byte(rv.Index(i).Uint())
			}
			return ToBytes(data)
		}
	case reflect.Ptr:
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil %s key", ErrUnsupported, rv.Type())
		}
		return ToBytes(rv.Elem().Interface())
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

// framed lays out [tag][4-byte big-endian length][data].
func framed(tag byte, data []byte) []byte {
	out := make([]byte, 5+len(data))
	out[0] = tag
	binary.BigEndian.PutUint32(out[1:5], uint32(len(data)))
	copy(out[5:], data)
	return out
}

// fixed64 lays out [tag][8 bytes big-endian].
func fixed64(tag byte, bits uint64) []byte {
	out := make([]byte, 9)
	out[0] = tag
	binary.BigEndian.PutUint64(out[1:], bits)
	return out
}
