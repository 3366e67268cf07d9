package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hirewire/jobboard-backend/internal/boost"
	"github.com/hirewire/jobboard-backend/internal/dtos"
	"github.com/hirewire/jobboard-backend/internal/models"
)

// JobInfo is what the boost engine needs to know about a listing.
type JobInfo struct {
	OwnerID uuid.UUID
	Status  string
}

// JobDirectory is the external job catalog, consumed at an interface so
// the engine never depends on job CRUD internals.
type JobDirectory interface {
	GetJob(ctx context.Context, jobID uuid.UUID) (*JobInfo, error)
}

// GormJobDirectory resolves jobs from the shared jobs table.
type GormJobDirectory struct {
	DB *gorm.DB
}

func (d *GormJobDirectory) GetJob(ctx context.Context, jobID uuid.UUID) (*JobInfo, error) {
	var job models.Job
	if err := d.DB.WithContext(ctx).First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("job not found")
		}
		return nil, err
	}
	return &JobInfo{OwnerID: job.EmployerID, Status: job.Status}, nil
}

// BoostService owns the boost record store, the approval/rejection
// workflow, the refund processor, and the expiry recalculation pass.
type BoostService struct {
	DB   *gorm.DB
	Jobs JobDirectory

	// Now is the injected clock; every time computation reads it once
	// and passes the instant down, so tests can fix time.
	Now func() time.Time
}

func NewBoostService(db *gorm.DB, jobs JobDirectory) *BoostService {
	return &BoostService{DB: db, Jobs: jobs, Now: time.Now}
}

// CreateBoost records a new Pending promotion request, snapshotting the
// plan's type, duration and price so later plan edits never reprice it.
// The expiry set here is provisional; approval recomputes it from the
// approval instant.
func (s *BoostService) CreateBoost(ctx context.Context, employerID uuid.UUID, req *dtos.BoostCreationRequest) (*models.Boost, error) {
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, invalidInput("jobId must be a valid UUID")
	}
	planID, err := uuid.Parse(req.BoostPlanID)
	if err != nil {
		return nil, invalidInput("boostPlanId must be a valid UUID")
	}

	job, err := s.Jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.OwnerID != employerID {
		return nil, unauthorized("job does not belong to this employer")
	}

	var plan models.BoostPlan
	if err := s.DB.WithContext(ctx).First(&plan, "id = ?", planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("boost plan not found")
		}
		return nil, err
	}
	if !plan.IsActive {
		return nil, notFound("boost plan is not available")
	}

	// One Pending/Active boost per job at a time.
	var existing int64
	err = s.DB.WithContext(ctx).Model(&models.Boost{}).
		Where("job_id = ? AND status IN ?", jobID, []boost.Status{boost.StatusPending, boost.StatusActive}).
		Count(&existing).Error
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, conflict("job already has a pending or active boost")
	}

	now := s.Now()
	b := &models.Boost{
		EmployerID:    employerID,
		JobID:         jobID,
		PlanID:        planID,
		Category:      plan.Category,
		DurationDays:  plan.DurationDays,
		Price:         plan.Price,
		Status:        boost.StatusPending,
		PaymentStatus: boost.PaymentPending,
		PaymentMethod: req.PaymentMethod,
		ExpiryDate:    now.AddDate(0, 0, plan.DurationDays),
		RemainingDays: plan.DurationDays,
	}
	if err := s.DB.WithContext(ctx).Create(b).Error; err != nil {
		return nil, err
	}
	s.recordEvent(ctx, b.ID, "BOOST_CREATED", fmt.Sprintf("plan %s (%s)", plan.Name, plan.Category))
	return b, nil
}

// Approve moves a Pending boost to Active: approval timestamps, expiry
// measured from the approval instant, payment marked Paid, and the fee
// split settled. The update is conditional on the row still being
// Pending so two concurrent approvals cannot both win.
func (s *BoostService) Approve(ctx context.Context, id uuid.UUID) (*models.Boost, error) {
	b, err := s.getBoost(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != boost.StatusPending {
		return nil, invalidState(fmt.Sprintf("cannot approve a boost in status %q", b.Status))
	}

	now := s.Now()
	fee, net := boost.SplitFee(b.Price)
	res := s.DB.WithContext(ctx).Model(&models.Boost{}).
		Where("id = ? AND status = ?", id, boost.StatusPending).
		Updates(map[string]interface{}{
			"status":         boost.StatusActive,
			"payment_status": boost.PaymentPaid,
			"approved_at":    now,
			"expiry_date":    now.AddDate(0, 0, b.DurationDays),
			"remaining_days": b.DurationDays,
			"platform_fee":   fee,
			"net_revenue":    net,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// lost a race: someone else resolved this boost first
		return nil, invalidState("boost is no longer pending")
	}
	s.recordEvent(ctx, id, "BOOST_APPROVED", fmt.Sprintf("fee %s, net %s", fee, net))
	return s.getBoost(ctx, id)
}

// Reject moves a Pending boost to Rejected with a mandatory reason and
// flags the payment for refund. Conditional update, same as Approve.
func (s *BoostService) Reject(ctx context.Context, id uuid.UUID, reason string) (*models.Boost, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, invalidInput("rejectionReason is required")
	}

	b, err := s.getBoost(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != boost.StatusPending {
		return nil, invalidState(fmt.Sprintf("cannot reject a boost in status %q", b.Status))
	}

	now := s.Now()
	res := s.DB.WithContext(ctx).Model(&models.Boost{}).
		Where("id = ? AND status = ?", id, boost.StatusPending).
		Updates(map[string]interface{}{
			"status":           boost.StatusRejected,
			"payment_status":   boost.PaymentRefunded,
			"rejected_at":      now,
			"rejection_reason": reason,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, invalidState("boost is no longer pending")
	}
	s.recordEvent(ctx, id, "BOOST_REJECTED", reason)
	return s.getBoost(ctx, id)
}

// Refund marks the payment Refunded and the boost Rejected regardless of
// its current status — an administrative override that can cut an active
// promotion short. Idempotent: refunding twice is a safe no-op surfaced
// as AlreadyRefunded.
func (s *BoostService) Refund(ctx context.Context, id uuid.UUID, reason string) (*models.Boost, error) {
	if _, err := s.getBoost(ctx, id); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = boost.DefaultRefundReason
	}

	now := s.Now()
	res := s.DB.WithContext(ctx).Model(&models.Boost{}).
		Where("id = ? AND payment_status <> ?", id, boost.PaymentRefunded).
		Updates(map[string]interface{}{
			"payment_status":   boost.PaymentRefunded,
			"status":           boost.StatusRejected,
			"rejected_at":      now,
			"rejection_reason": reason,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, alreadyRefunded("boost has already been refunded")
	}
	s.recordEvent(ctx, id, "BOOST_REFUNDED", reason)
	return s.getBoost(ctx, id)
}

// ReconcileExpiry brings status and remaining_days in line with the
// given instant. Step one expires overdue Active boosts in a single bulk
// update; step two refreshes remaining_days on the survivors row by row,
// logging and skipping individual failures. Both steps are idempotent,
// so a retried pass converges.
func (s *BoostService) ReconcileExpiry(ctx context.Context, now time.Time) error {
	var overdue []uuid.UUID
	err := s.DB.WithContext(ctx).Model(&models.Boost{}).
		Where("status = ? AND expiry_date < ?", boost.StatusActive, now).
		Pluck("id", &overdue).Error
	if err != nil {
		return err
	}

	if len(overdue) > 0 {
		res := s.DB.WithContext(ctx).Model(&models.Boost{}).
			Where("status = ? AND expiry_date < ?", boost.StatusActive, now).
			Updates(map[string]interface{}{
				"status":         boost.StatusExpired,
				"remaining_days": 0,
			})
		if res.Error != nil {
			return res.Error
		}
		slog.Info("expired overdue boosts", "count", res.RowsAffected)
		for _, id := range overdue {
			s.recordEvent(ctx, id, "BOOST_EXPIRED", "expired by reconciliation pass")
		}
	}

	var active []models.Boost
	err = s.DB.WithContext(ctx).
		Select("id", "expiry_date", "remaining_days").
		Where("status = ?", boost.StatusActive).
		Find(&active).Error
	if err != nil {
		return err
	}
	for _, b := range active {
		remaining := boost.RemainingDays(b.ExpiryDate, now)
		if remaining == b.RemainingDays {
			continue
		}
		err := s.DB.WithContext(ctx).Model(&models.Boost{}).
			Where("id = ?", b.ID).
			UpdateColumn("remaining_days", remaining).Error
		if err != nil {
			// best-effort: the next pass will retry this row
			slog.Warn("remaining_days refresh failed", "boostId", b.ID, "err", err)
		}
	}
	return nil
}

// ListAll returns the reconciled, filtered, paginated admin view.
// Search matches on the promoted job's title.
func (s *BoostService) ListAll(ctx context.Context, q *dtos.BoostListQuery) ([]models.Boost, int64, error) {
	if err := s.ReconcileExpiry(ctx, s.Now()); err != nil {
		// reconciliation is best-effort on read paths; stale rows beat a failed listing
		slog.Warn("expiry reconciliation failed", "err", err)
	}

	query := s.DB.WithContext(ctx).Model(&models.Boost{})
	if q.Status != "" {
		status, err := boost.ParseStatus(strings.ToLower(q.Status))
		if err != nil {
			return nil, 0, invalidInput(err.Error())
		}
		query = query.Where("boosts.status = ?", status)
	}
	if q.Search != "" {
		query = query.
			Joins("JOIN jobs ON jobs.id = boosts.job_id").
			Where("LOWER(jobs.title) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	boosts := make([]models.Boost, 0)
	err := query.Preload("Job").
		Order("boosts.created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&boosts).Error
	if err != nil {
		return nil, 0, err
	}
	return boosts, total, nil
}

// ListByEmployer returns the reconciled boosts owned by one employer.
func (s *BoostService) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]models.Boost, error) {
	if err := s.ReconcileExpiry(ctx, s.Now()); err != nil {
		slog.Warn("expiry reconciliation failed", "err", err)
	}
	boosts := make([]models.Boost, 0)
	err := s.DB.WithContext(ctx).
		Preload("Job").
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&boosts).Error
	if err != nil {
		return nil, err
	}
	return boosts, nil
}

// TrackView bumps the opaque view counter atomically.
func (s *BoostService) TrackView(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Model(&models.Boost{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound("boost not found")
	}
	return nil
}

func (s *BoostService) getBoost(ctx context.Context, id uuid.UUID) (*models.Boost, error) {
	var b models.Boost
	if err := s.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("boost not found")
		}
		return nil, err
	}
	return &b, nil
}

// recordEvent appends to the audit trail; failures are logged, never
// surfaced.
func (s *BoostService) recordEvent(ctx context.Context, boostID uuid.UUID, eventType, details string) {
	event := &models.BoostEvent{BoostID: boostID, EventType: eventType, Details: details}
	if err := s.DB.WithContext(ctx).Create(event).Error; err != nil {
		slog.Warn("boost event write failed", "boostId", boostID, "type", eventType, "err", err)
	}
}
