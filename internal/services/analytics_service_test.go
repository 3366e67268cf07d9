package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hirewire/jobboard-backend/internal/boost"
	"github.com/hirewire/jobboard-backend/internal/models"
	"github.com/hirewire/jobboard-backend/internal/services"
)

// seedAnalyticsFixture builds the §-style scenario: one approved boost
// (net 31.50), one refunded boost (price 35.00), one still pending.
// All three are submitted inside the query window.
func seedAnalyticsFixture(t *testing.T, db *gorm.DB, svc *services.BoostService) (approved, refunded, pending *models.Boost) {
	t.Helper()
	employer := uuid.New()
	plan := seedPlan(t, db, boost.CategoryStandard, 14, "35.00", true)

	jobs := []*models.Job{
		seedJob(t, db, employer, "Backend Engineer"),
		seedJob(t, db, employer, "Frontend Engineer"),
		seedJob(t, db, employer, "Data Engineer"),
	}

	var err error
	approved, err = svc.CreateBoost(context.Background(), employer, createRequest(jobs[0], plan))
	require.NoError(t, err)
	approved, err = svc.Approve(context.Background(), approved.ID)
	require.NoError(t, err)

	refunded, err = svc.CreateBoost(context.Background(), employer, createRequest(jobs[1], plan))
	require.NoError(t, err)
	refunded, err = svc.Refund(context.Background(), refunded.ID, "payment dispute")
	require.NoError(t, err)

	pending, err = svc.CreateBoost(context.Background(), employer, createRequest(jobs[2], plan))
	require.NoError(t, err)

	// pin submission instants inside the window regardless of wall clock
	for _, b := range []*models.Boost{approved, refunded, pending} {
		require.NoError(t, db.Model(&models.Boost{}).
			Where("id = ?", b.ID).
			UpdateColumn("created_at", svc.Now().AddDate(0, 0, -1)).Error)
	}
	return approved, refunded, pending
}

func TestAnalytics_FinancialFigures(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newBoostService(db, now)
	analytics := services.NewAnalyticsService(db, svc)

	seedAnalyticsFixture(t, db, svc)

	snap, err := analytics.Compute(context.Background(), 30)
	require.NoError(t, err)

	requireDecimal(t, "31.50", snap.TotalRevenue)
	requireDecimal(t, "3.50", snap.TotalPlatformFees)
	requireDecimal(t, "35.00", snap.RefundedAmount)
	requireDecimal(t, "35.00", snap.AveragePrice)
	require.EqualValues(t, 1, snap.PaidCount)
	require.EqualValues(t, 1, snap.ActiveCount)
	require.EqualValues(t, 1, snap.PendingCount)
}

// A boost still Pending when queried is excluded from revenue but counts
// in the approval-rate denominator: 1 resolved of 3 submitted.
func TestAnalytics_ApprovalRateMeasuresResolution(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newBoostService(db, now)
	analytics := services.NewAnalyticsService(db, svc)

	seedAnalyticsFixture(t, db, svc)

	snap, err := analytics.Compute(context.Background(), 30)
	require.NoError(t, err)
	require.InDelta(t, 33.33, snap.ApprovalRate, 0.001)
}

func TestAnalytics_RevenueByCategory(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newBoostService(db, now)
	analytics := services.NewAnalyticsService(db, svc)

	employer := uuid.New()
	standard := seedPlan(t, db, boost.CategoryStandard, 14, "35.00", true)
	premium := seedPlan(t, db, boost.CategoryPremium, 30, "79.99", true)

	for _, plan := range []*models.BoostPlan{standard, premium} {
		job := seedJob(t, db, employer, "Engineer "+string(plan.Category))
		b, err := svc.CreateBoost(context.Background(), employer, createRequest(job, plan))
		require.NoError(t, err)
		_, err = svc.Approve(context.Background(), b.ID)
		require.NoError(t, err)
		require.NoError(t, db.Model(&models.Boost{}).
			Where("id = ?", b.ID).
			UpdateColumn("created_at", now.AddDate(0, 0, -1)).Error)
	}

	snap, err := analytics.Compute(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, snap.RevenueByCategory, 2)

	byCat := make(map[boost.Category]services.CategoryRevenue)
	for _, row := range snap.RevenueByCategory {
		byCat[row.Category] = row
	}
	requireDecimal(t, "71.99", byCat[boost.CategoryPremium].Revenue) // 79.99 − 8.00 fee
	requireDecimal(t, "31.50", byCat[boost.CategoryStandard].Revenue)
	require.EqualValues(t, 1, byCat[boost.CategoryPremium].Boosts)
}

// Boosts submitted before the window contribute nothing, even when paid.
func TestAnalytics_WindowExcludesOldBoosts(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newBoostService(db, now)
	analytics := services.NewAnalyticsService(db, svc)

	employer := uuid.New()
	plan := seedPlan(t, db, boost.CategoryStandard, 200, "35.00", true)
	job := seedJob(t, db, employer, "Backend Engineer")

	b, err := svc.CreateBoost(context.Background(), employer, createRequest(job, plan))
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), b.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Boost{}).
		Where("id = ?", b.ID).
		UpdateColumn("created_at", now.AddDate(0, 0, -60)).Error)

	snap, err := analytics.Compute(context.Background(), 30)
	require.NoError(t, err)
	requireDecimal(t, "0", snap.TotalRevenue)
	require.EqualValues(t, 0, snap.PaidCount)
	require.Equal(t, float64(0), snap.ApprovalRate)
	// point-in-time count still sees the active boost
	require.EqualValues(t, 1, snap.ActiveCount)
}

func TestAnalytics_RunsExpiryPassFirst(t *testing.T) {
	db := setupTestDB(t)
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newBoostService(db, start)
	analytics := services.NewAnalyticsService(db, svc)

	employer := uuid.New()
	plan := seedPlan(t, db, boost.CategoryStandard, 7, "35.00", true)
	job := seedJob(t, db, employer, "Backend Engineer")

	b, err := svc.CreateBoost(context.Background(), employer, createRequest(job, plan))
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), b.ID)
	require.NoError(t, err)

	// query eight days later: the boost must be counted as expired, not
	// active, and its revenue still counts (it ran its course)
	later := start.AddDate(0, 0, 8)
	svc.Now = fixedClock(later)
	require.NoError(t, db.Model(&models.Boost{}).
		Where("id = ?", b.ID).
		UpdateColumn("created_at", later.AddDate(0, 0, -2)).Error)

	snap, err := analytics.Compute(context.Background(), 30)
	require.NoError(t, err)
	require.EqualValues(t, 0, snap.ActiveCount)
	requireDecimal(t, "31.50", snap.TotalRevenue)

	var after models.Boost
	require.NoError(t, db.First(&after, "id = ?", b.ID).Error)
	require.Equal(t, boost.StatusExpired, after.Status)
}

func TestAnalytics_PeriodBounds(t *testing.T) {
	db := setupTestDB(t)
	svc := newBoostService(db, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	analytics := services.NewAnalyticsService(db, svc)

	_, err := analytics.Compute(context.Background(), 0)
	requireKind(t, err, services.KindValidation)
	_, err = analytics.Compute(context.Background(), 400)
	requireKind(t, err, services.KindValidation)
}

func TestAnalytics_EmptyStore(t *testing.T) {
	db := setupTestDB(t)
	svc := newBoostService(db, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	analytics := services.NewAnalyticsService(db, svc)

	snap, err := analytics.Compute(context.Background(), 30)
	require.NoError(t, err)
	requireDecimal(t, "0", snap.TotalRevenue)
	requireDecimal(t, "0", snap.RefundedAmount)
	require.Equal(t, float64(0), snap.ApprovalRate)
	require.Empty(t, snap.RevenueByCategory)
}
