package common

import (
	"errors"
	"strings"

	"github.com/holiman/uint256"
)

var ErrInvalidTokenID = errors.New("invalid token id")

// ParseTokenID parses a decimal token id. Token ids are 256-bit unsigned
// integers, "007" and "7" name the same token.
func ParseTokenID(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrInvalidTokenID
	}

	id, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, errors.Join(ErrInvalidTokenID, err)
	}

	return id, nil
}
