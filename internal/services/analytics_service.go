package services

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hirewire/jobboard-backend/internal/boost"
	"github.com/hirewire/jobboard-backend/internal/models"
)

// FinancialSnapshot is the computed financial view over a bounded time
// window. Entirely derived from boost rows, never stored.
type FinancialSnapshot struct {
	PeriodDays        int               `json:"period_days"`
	TotalRevenue      decimal.Decimal   `json:"total_revenue"`
	TotalPlatformFees decimal.Decimal   `json:"total_platform_fees"`
	RefundedAmount    decimal.Decimal   `json:"refunded_amount"`
	AveragePrice      decimal.Decimal   `json:"average_price"`
	PaidCount         int64             `json:"paid_count"`
	ActiveCount       int64             `json:"active_count"`
	PendingCount      int64             `json:"pending_count"`
	ApprovalRate      float64           `json:"approval_rate"`
	RevenueByCategory []CategoryRevenue `json:"revenue_by_category"`
}

type CategoryRevenue struct {
	Category boost.Category  `json:"category"`
	Revenue  decimal.Decimal `json:"revenue" gorm:"column:revenue"`
	Boosts   int64           `json:"boosts" gorm:"column:boosts"`
}

// AnalyticsService derives revenue, fee, refund and approval-rate
// figures from the boost record store. Read-only apart from the expiry
// pass it triggers first.
type AnalyticsService struct {
	DB     *gorm.DB
	Boosts *BoostService
}

func NewAnalyticsService(db *gorm.DB, boosts *BoostService) *AnalyticsService {
	return &AnalyticsService{DB: db, Boosts: boosts}
}

// resolvedStatuses are the states a paid boost can be in: still running
// or naturally run out. Revenue is only counted over these.
var resolvedStatuses = []boost.Status{boost.StatusActive, boost.StatusExpired}

// Compute aggregates over [now − periodDays, now]. The expiry pass runs
// first so expired counts and revenue reflect the current instant.
func (s *AnalyticsService) Compute(ctx context.Context, periodDays int) (*FinancialSnapshot, error) {
	if periodDays < 1 || periodDays > 365 {
		return nil, invalidInput("period must be between 1 and 365 days")
	}

	now := s.Boosts.Now()
	if err := s.Boosts.ReconcileExpiry(ctx, now); err != nil {
		slog.Warn("expiry reconciliation failed before analytics", "err", err)
	}
	since := now.AddDate(0, 0, -periodDays)

	snap := &FinancialSnapshot{PeriodDays: periodDays}

	// Revenue over paid, resolved boosts submitted in-window.
	var paid struct {
		Revenue decimal.Decimal
		Fees    decimal.Decimal
		Avg     decimal.Decimal
		Boosts  int64
	}
	err := s.paidWindow(ctx, since, now).
		Select("COALESCE(SUM(net_revenue), 0) AS revenue, COALESCE(SUM(platform_fee), 0) AS fees, COALESCE(AVG(price), 0) AS avg, COUNT(*) AS boosts").
		Scan(&paid).Error
	if err != nil {
		return nil, err
	}
	snap.TotalRevenue = paid.Revenue
	snap.TotalPlatformFees = paid.Fees
	snap.AveragePrice = paid.Avg.Round(2)
	snap.PaidCount = paid.Boosts

	// Refunds over the same window, regardless of status.
	var refunded decimal.Decimal
	err = s.DB.WithContext(ctx).Model(&models.Boost{}).
		Where("payment_status = ? AND created_at BETWEEN ? AND ?", boost.PaymentRefunded, since, now).
		Select("COALESCE(SUM(price), 0)").
		Scan(&refunded).Error
	if err != nil {
		return nil, err
	}
	snap.RefundedAmount = refunded

	// Point-in-time counts, not windowed.
	err = s.DB.WithContext(ctx).Model(&models.Boost{}).
		Where("status = ?", boost.StatusActive).
		Count(&snap.ActiveCount).Error
	if err != nil {
		return nil, err
	}
	err = s.DB.WithContext(ctx).Model(&models.Boost{}).
		Where("status = ?", boost.StatusPending).
		Count(&snap.PendingCount).Error
	if err != nil {
		return nil, err
	}

	// Approval rate: resolution among requests submitted in-window. A
	// boost still Pending counts in the denominator only.
	var resolved, submitted int64
	err = s.DB.WithContext(ctx).Model(&models.Boost{}).
		Where("status IN ? AND created_at BETWEEN ? AND ?", resolvedStatuses, since, now).
		Count(&resolved).Error
	if err != nil {
		return nil, err
	}
	err = s.DB.WithContext(ctx).Model(&models.Boost{}).
		Where("created_at BETWEEN ? AND ?", since, now).
		Count(&submitted).Error
	if err != nil {
		return nil, err
	}
	if submitted > 0 {
		snap.ApprovalRate = math.Round(float64(resolved)/float64(submitted)*10000) / 100
	}

	// Per-category revenue over the same paid/window filter.
	byCategory := make([]CategoryRevenue, 0)
	err = s.paidWindow(ctx, since, now).
		Select("category, COALESCE(SUM(net_revenue), 0) AS revenue, COUNT(*) AS boosts").
		Group("category").
		Order("category").
		Scan(&byCategory).Error
	if err != nil {
		return nil, err
	}
	snap.RevenueByCategory = byCategory

	return snap, nil
}

func (s *AnalyticsService) paidWindow(ctx context.Context, since, now time.Time) *gorm.DB {
	return s.DB.WithContext(ctx).Model(&models.Boost{}).
		Where("status IN ? AND payment_status = ? AND created_at BETWEEN ? AND ?",
			resolvedStatuses, boost.PaymentPaid, since, now)
}
