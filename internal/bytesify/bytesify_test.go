package bytesify

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBytes_Deterministic(t *testing.T) {
	id := uuid.New()
	values := []any{
		"alice",
		"",
		42,
		int64(-7),
		uint32(9000),
		true,
		false,
		3.14,
		float32(2.5),
		[]byte{0xde, 0xad},
		time.Unix(0, 1700000000000000000),
		id,
	}

	for _, v := range values {
		first, err := ToBytes(v)
		require.NoError(t, err, "value %v", v)
		second, err := ToBytes(v)
		require.NoError(t, err)
		assert.Equal(t, first, second, "encoding of %v must be stable", v)
	}
}

func TestToBytes_DistinctValuesDistinctBytes(t *testing.T) {
	tests := []struct {
		name string
		a, b any
	}{
		{"different strings", "alice", "bob"},
		{"string vs bytes of same content", "a", []byte("a")},
		{"different ints", 1, 2},
		{"int vs uint of same magnitude", int64(5), uint64(5)},
		{"bool values", true, false},
		{"empty string vs empty bytes", "", []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ba, err := ToBytes(tt.a)
			require.NoError(t, err)
			bb, err := ToBytes(tt.b)
			require.NoError(t, err)
			assert.NotEqual(t, ba, bb)
		})
	}
}

func TestToBytes_NamedTypes(t *testing.T) {
	type UserID string
	type Port uint16

	got, err := ToBytes(UserID("u-123"))
	require.NoError(t, err)
	want, err := ToBytes("u-123")
	require.NoError(t, err)
	assert.Equal(t, want, got, "named string type must encode like its underlying value")

	_, err = ToBytes(Port(8080))
	require.NoError(t, err)
}

func TestToBytes_Unsupported(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"map", map[string]int{"a": 1}},
		{"struct", struct{ X int }{1}},
		{"slice of strings", []string{"a"}},
		{"nil pointer", (*string)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToBytes(tt.value)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupported)
		})
	}
}

func TestToBytes_PointerFollowsValue(t *testing.T) {
	s := "alice"
	got, err := ToBytes(&s)
	require.NoError(t, err)
	want, err := ToBytes("alice")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
