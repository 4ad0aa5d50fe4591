package repository

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/questx-lab/marketplace/pkg/xcontext"
)

// record is implemented by every entity persisted with the record codec.
type record interface {
	Serialize() []byte
	Deserialize([]byte) error
}

func getRecord(ctx context.Context, key []byte, r record) error {
	b, err := xcontext.KV(ctx).Get(key)
	if err != nil {
		return err
	}

	return r.Deserialize(b)
}

func setRecord(ctx context.Context, key []byte, r record) error {
	return xcontext.KV(ctx).Set(key, r.Serialize())
}

func getString(ctx context.Context, key []byte) (string, error) {
	b, err := xcontext.KV(ctx).Get(key)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func setString(ctx context.Context, key []byte, value string) error {
	return xcontext.KV(ctx).Set(key, []byte(value))
}

func getUint64(ctx context.Context, key []byte) (uint64, error) {
	b, err := xcontext.KV(ctx).Get(key)
	if err != nil {
		return 0, err
	}

	if len(b) != 8 {
		return 0, fmt.Errorf("invalid uint64 value of length %d", len(b))
	}

	return binary.BigEndian.Uint64(b), nil
}

func setUint64(ctx context.Context, key []byte, value uint64) error {
	return xcontext.KV(ctx).Set(key, binary.BigEndian.AppendUint64(nil, value))
}

func getUint256(ctx context.Context, key []byte) (*uint256.Int, error) {
	b, err := xcontext.KV(ctx).Get(key)
	if err != nil {
		return nil, err
	}

	if len(b) != 32 {
		return nil, fmt.Errorf("invalid uint256 value of length %d", len(b))
	}

	return new(uint256.Int).SetBytes32(b), nil
}

func setUint256(ctx context.Context, key []byte, value *uint256.Int) error {
	b := value.Bytes32()
	return xcontext.KV(ctx).Set(key, b[:])
}

func getBool(ctx context.Context, key []byte) (bool, error) {
	b, err := xcontext.KV(ctx).Get(key)
	if err != nil {
		return false, err
	}

	return len(b) == 1 && b[0] == 1, nil
}

func setBool(ctx context.Context, key []byte, value bool) error {
	if value {
		return xcontext.KV(ctx).Set(key, []byte{1})
	}

	return xcontext.KV(ctx).Set(key, []byte{0})
}
