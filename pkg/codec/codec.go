// Package codec encodes fixed-schema records with the protobuf wire format.
// A record writes every field in field number order, even zero values, and a
// reader skips field numbers it doesn't know.
package codec

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

var (
	ErrMalformed = errors.New("malformed record")
	ErrWrongType = errors.New("unexpected wire type")
)

type Encoder struct {
	buf []byte
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) String(num protowire.Number, v string) *Encoder {
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendString(e.buf, v)
	return e
}

func (e *Encoder) Uint64(num protowire.Number, v uint64) *Encoder {
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, v)
	return e
}

func (e *Encoder) Bytes() []byte {
	return e.buf
}

type Field struct {
	Number protowire.Number
	Type   protowire.Type

	varint uint64
	bytes  []byte
}

func (f Field) String() (string, error) {
	if f.Type != protowire.BytesType {
		return "", fmt.Errorf("%w: field %d is %d", ErrWrongType, f.Number, f.Type)
	}

	return string(f.bytes), nil
}

func (f Field) Uint64() (uint64, error) {
	if f.Type != protowire.VarintType {
		return 0, fmt.Errorf("%w: field %d is %d", ErrWrongType, f.Number, f.Type)
	}

	return f.varint, nil
}

// Walk calls visit for every field of b. Fields of groups and fixed types are
// consumed but visited as well, so visit decides whether it cares about them.
func Walk(b []byte, visit func(f Field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		field := Field{Number: num, Type: typ}
		switch typ {
		case protowire.VarintType:
			field.varint, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			field.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}

		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		if err := visit(field); err != nil {
			return err
		}
	}

	return nil
}
