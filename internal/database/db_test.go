package database_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hirewire/jobboard-backend/internal/database"
	"github.com/hirewire/jobboard-backend/internal/models"
)

func TestSeedPlans(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.BoostPlan{}))

	require.NoError(t, database.SeedPlans(db))

	var plans []models.BoostPlan
	require.NoError(t, db.Order("sort_order").Find(&plans).Error)
	require.Len(t, plans, 4)
	for _, p := range plans {
		require.True(t, p.IsActive)
		require.Greater(t, p.DurationDays, 0)
		require.False(t, p.Price.IsNegative())
	}

	// seeding again must not duplicate the catalog
	require.NoError(t, database.SeedPlans(db))
	var count int64
	require.NoError(t, db.Model(&models.BoostPlan{}).Count(&count).Error)
	require.EqualValues(t, 4, count)
}
