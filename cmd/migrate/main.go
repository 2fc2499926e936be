package main

import (
	"context"
	"log/slog"

	"storefront/config"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle

	DB         *gorm.DB
	Logger     *slog.Logger
	Shutdowner fx.Shutdowner
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	).Run()
}

// migrate creates or updates every table once the database is reachable,
// then stops the application.
func migrate(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.DB.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
				return err
			}
			params.Logger.Info("Schema migrated", slog.Int("tables", len(model.All())))

			return params.Shutdowner.Shutdown()
		},
	})
}
