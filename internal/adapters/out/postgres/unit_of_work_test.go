package postgres_test

import (
	"context"
	"testing"

	"spraying/internal/adapters/out/postgres"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/sprayer"
	"spraying/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := postgres.Open(postgres.DBConfig{Driver: postgres.DriverSQLite, Path: ":memory:"}, nil)
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := postgres.Open(postgres.DBConfig{Driver: "oracle"}, nil)
	require.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	cfg := postgres.DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "spraying", SslMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=spraying sslmode=disable", cfg.DSN())
}

func TestGormUnitOfWork_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	factory := postgres.NewGormUnitOfWorkFactory(openSQLite(t))

	kept, err := sprayer.NewSprayer(kernel.NewUUID(), "Kept", sprayer.Expert, "")
	require.NoError(t, err)
	dropped, err := sprayer.NewSprayer(kernel.NewUUID(), "Dropped", sprayer.Beginner, "")
	require.NoError(t, err)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.SprayerDirectory().Add(ctx, kept))
	require.NoError(t, uow.Commit(ctx))
	require.ErrorIs(t, uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	uow = factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.SprayerDirectory().Add(ctx, dropped))
	require.NoError(t, uow.Rollback(ctx))

	directory := factory.Create().SprayerDirectory()
	_, err = directory.Get(ctx, kept.ID())
	require.NoError(t, err)
	_, err = directory.Get(ctx, dropped.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
