package entity

import (
	"fmt"

	"github.com/questx-lab/marketplace/pkg/codec"
	"github.com/questx-lab/marketplace/pkg/errorx"
	"google.golang.org/protobuf/encoding/protowire"
)

// decodeRecord walks b, passing every field to visit, and checks that all of
// the required field numbers were present. Any failure is reported as a
// deserialization error.
func decodeRecord(
	name string,
	b []byte,
	required []protowire.Number,
	visit func(f codec.Field) error,
) error {
	seen := make(map[protowire.Number]bool, len(required))
	err := codec.Walk(b, func(f codec.Field) error {
		seen[f.Number] = true
		return visit(f)
	})
	if err != nil {
		return errorx.Wrap(errorx.Deserialization, err, "Cannot decode %s", name)
	}

	for _, num := range required {
		if !seen[num] {
			return errorx.Wrap(errorx.Deserialization,
				fmt.Errorf("missing field %d", num), "Cannot decode %s", name)
		}
	}

	return nil
}
