package database

import (
	"log"
	"log/slog"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hirewire/jobboard-backend/internal/boost"
	"github.com/hirewire/jobboard-backend/internal/models"
)

func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	slog.Info("database connection established")

	// Migration: this creates the tables in Postgres automatically
	if err := db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.BoostPlan{},
		&models.Boost{},
		&models.BoostEvent{},
	); err != nil {
		log.Fatal("Migration failed:", err)
	}

	if err := SeedPlans(db); err != nil {
		slog.Warn("seeding default boost plans failed", "err", err)
	}
	return db
}

// SeedPlans inserts the four default tiers when the catalog is empty, so
// a fresh deployment has something employers can buy.
func SeedPlans(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.BoostPlan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.BoostPlan{
		{
			Name:                 "Basic Boost",
			Category:             boost.CategoryBasic,
			DurationDays:         7,
			Price:                decimal.RequireFromString("19.99"),
			VisibilityMultiplier: 1.5,
			Features:             datatypes.JSON(`["Highlighted in search results"]`),
			IsActive:             true,
			SortOrder:            1,
		},
		{
			Name:                 "Standard Boost",
			Category:             boost.CategoryStandard,
			DurationDays:         14,
			Price:                decimal.RequireFromString("35.00"),
			VisibilityMultiplier: 2.0,
			Features:             datatypes.JSON(`["Highlighted in search results","Featured on category page"]`),
			IsActive:             true,
			SortOrder:            2,
		},
		{
			Name:                 "Premium Boost",
			Category:             boost.CategoryPremium,
			DurationDays:         30,
			Price:                decimal.RequireFromString("79.99"),
			VisibilityMultiplier: 3.0,
			Features:             datatypes.JSON(`["Highlighted in search results","Featured on category page","Homepage spotlight"]`),
			IsActive:             true,
			SortOrder:            3,
		},
		{
			Name:                 "Enterprise Boost",
			Category:             boost.CategoryEnterprise,
			DurationDays:         60,
			Price:                decimal.RequireFromString("149.99"),
			VisibilityMultiplier: 5.0,
			Features:             datatypes.JSON(`["Highlighted in search results","Featured on category page","Homepage spotlight","Newsletter placement"]`),
			IsActive:             true,
			SortOrder:            4,
		},
	}
	return db.Create(&defaults).Error
}
