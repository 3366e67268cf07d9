package services_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hirewire/jobboard-backend/internal/boost"
	"github.com/hirewire/jobboard-backend/internal/models"
	"github.com/hirewire/jobboard-backend/internal/services"
)

// setupTestDB opens a private in-memory database migrated to the full
// schema. Single connection, so every query sees the same memory store;
// UTC NowFunc keeps stored and injected instants comparable.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.BoostPlan{},
		&models.Boost{},
		&models.BoostEvent{},
	))
	return db
}

func newBoostService(db *gorm.DB, now time.Time) *services.BoostService {
	svc := services.NewBoostService(db, &services.GormJobDirectory{DB: db})
	svc.Now = fixedClock(now)
	return svc
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func seedJob(t *testing.T, db *gorm.DB, employerID uuid.UUID, title string) *models.Job {
	t.Helper()
	job := &models.Job{EmployerID: employerID, Title: title, Status: "open"}
	require.NoError(t, db.Create(job).Error)
	return job
}

func seedPlan(t *testing.T, db *gorm.DB, category boost.Category, durationDays int, price string, active bool) *models.BoostPlan {
	t.Helper()
	plan := &models.BoostPlan{
		Name:                 string(category) + " plan",
		Category:             category,
		DurationDays:         durationDays,
		Price:                decimal.RequireFromString(price),
		VisibilityMultiplier: 2.0,
		Features:             []byte(`[]`),
		IsActive:             active,
	}
	require.NoError(t, db.Create(plan).Error)
	return plan
}

func requireKind(t *testing.T, err error, kind services.Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, services.KindOf(err))
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)),
		"decimal mismatch: got %s, want %s", got, want)
}
