package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestWalk(t *testing.T) {
	b := NewEncoder().String(1, "abc").Uint64(2, 42).String(3, "").Bytes()

	var fields []Field
	require.NoError(t, Walk(b, func(f Field) error {
		fields = append(fields, f)
		return nil
	}))
	require.Len(t, fields, 3)

	s, err := fields[0].String()
	require.NoError(t, err)
	require.Equal(t, "abc", s)

	v, err := fields[1].Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(42), v)

	s, err = fields[2].String()
	require.NoError(t, err)
	require.Equal(t, "", s)

	_, err = fields[0].Uint64()
	require.ErrorIs(t, err, ErrWrongType)
}

func TestWalkTruncated(t *testing.T) {
	b := NewEncoder().String(1, "abcdef").Bytes()

	err := Walk(b[:len(b)-2], func(f Field) error { return nil })
	require.ErrorIs(t, err, ErrMalformed)
}

func TestWalkSkipsFixedFields(t *testing.T) {
	b := protowire.AppendTag(nil, 9, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, 7)
	b = append(b, NewEncoder().Uint64(1, 5).Bytes()...)

	var numbers []protowire.Number
	require.NoError(t, Walk(b, func(f Field) error {
		numbers = append(numbers, f.Number)
		return nil
	}))
	require.Equal(t, []protowire.Number{9, 1}, numbers)
}
