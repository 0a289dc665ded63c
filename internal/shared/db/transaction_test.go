package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID        uint `gorm:"primaryKey"`
	StoreID   uint
	Name      string
	IsDeleted bool
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&widget{}))
	return db
}

func TestRunInTransaction(t *testing.T) {
	db := setupTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			assert.True(t, InTransaction(txCtx))
			return GetTxFromContext(txCtx, db).Create(&widget{StoreID: 1, Name: "kept"}).Error
		})
		require.NoError(t, err)

		var count int64
		db.Model(&widget{}).Where("name = ?", "kept").Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rollback", func(t *testing.T) {
		boom := errors.New("boom")
		err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			require.NoError(t, GetTxFromContext(txCtx, db).Create(&widget{StoreID: 1, Name: "dropped"}).Error)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		var count int64
		db.Model(&widget{}).Where("name = ?", "dropped").Count(&count)
		assert.Zero(t, count)
	})

	t.Run("nested rollback keeps outer work", func(t *testing.T) {
		err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			require.NoError(t, GetTxFromContext(txCtx, db).Create(&widget{StoreID: 2, Name: "outer"}).Error)
			inner := tm.RunInTransaction(txCtx, func(innerCtx context.Context) error {
				require.NoError(t, GetTxFromContext(innerCtx, db).Create(&widget{StoreID: 2, Name: "inner"}).Error)
				return errors.New("inner failed")
			})
			assert.Error(t, inner)
			return nil
		})
		require.NoError(t, err)

		var names []string
		db.Model(&widget{}).Where("store_id = ?", 2).Pluck("name", &names)
		assert.Equal(t, []string{"outer"}, names)
	})
}

func TestScopes(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&[]widget{
		{StoreID: 1, Name: "a"},
		{StoreID: 1, Name: "b", IsDeleted: true},
		{StoreID: 2, Name: "c"},
	}).Error)

	var rows []widget
	require.NoError(t, db.Scopes(ForStore(1), NotDeleted()).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "a", rows[0].Name)

	rows = nil
	require.NoError(t, db.Order("id").Scopes(Paginate(2, 2)).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "c", rows[0].Name)
}
