package main

import (
	"fmt"

	"github.com/questx-lab/marketplace/migration"
	"github.com/questx-lab/marketplace/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(ctx *cli.Context) error {
	db, err := s.newDatabase()
	if err != nil {
		return err
	}

	version := ctx.String("version")
	if version == "" {
		return migration.AutoMigrate(s.ctx, db)
	}

	migrator, ok := migration.Migrators[version]
	if !ok {
		return fmt.Errorf("unknown migration version %s", version)
	}

	xcontext.Logger(s.ctx).Infof("Run migration %s", version)
	return migrator(s.ctx, db)
}
