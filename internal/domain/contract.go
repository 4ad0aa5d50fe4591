package domain

import (
	"context"
	"errors"

	"github.com/holiman/uint256"
	"github.com/questx-lab/marketplace/internal/common"
	"github.com/questx-lab/marketplace/pkg/errorx"
	"github.com/questx-lab/marketplace/pkg/xcontext"
)

func parseTokenID(tokenID string) (*uint256.Int, error) {
	id, err := common.ParseTokenID(tokenID)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid token id %q", tokenID)
	}

	return id, nil
}

func onlyDeployment(ctx context.Context) error {
	if !xcontext.IsDeploying(ctx) {
		return errorx.New(errorx.PermissionDenied, "Constructor can only be called at deployment")
	}

	return nil
}

// hostError keeps the errors raised by the host or another contract, they are
// already coded. Anything else is an internal failure.
func hostError(ctx context.Context, err error, format string, a ...any) error {
	var errx errorx.Error
	if errors.As(err, &errx) {
		return err
	}

	args := append(a, err)
	xcontext.Logger(ctx).Errorf(format+": %v", args...)
	return errorx.Unknown
}
