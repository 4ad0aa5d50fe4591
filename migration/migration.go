package migration

import (
	"context"

	"github.com/questx-lab/marketplace/pkg/kvstore"
	"github.com/questx-lab/marketplace/pkg/xcontext"
	"gorm.io/gorm"
)

type Migrator func(ctx context.Context, db *gorm.DB) error

var Migrators = map[string]Migrator{
	"0000": migrate0000,
}

// AutoMigrate brings the tables to the latest version. When it is called, no
// need to call other migrators.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	xcontext.Logger(ctx).Infof("Auto migrate kv entries table")
	return kvstore.Migrate(db)
}
