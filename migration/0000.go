package migration

import (
	"context"

	"github.com/questx-lab/marketplace/pkg/kvstore"
	"gorm.io/gorm"
)

// migrate0000 creates the storage of the host with the latest version.
func migrate0000(_ context.Context, db *gorm.DB) error {
	return db.Migrator().CreateTable(&kvstore.Entry{})
}
