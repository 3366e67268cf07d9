package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hirewire/jobboard-backend/internal/boost"
)

// BoostPlan is a priced promotion tier. Administrators create and toggle
// plans; employers pick from the active ones.
type BoostPlan struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name                 string          `gorm:"not null" json:"name"`
	Category             boost.Category  `gorm:"size:20;not null" json:"category"`
	DurationDays         int             `gorm:"not null" json:"duration_days"`
	Price                decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	VisibilityMultiplier float64         `gorm:"not null;default:1.0" json:"visibility_multiplier"`
	Features             datatypes.JSON  `json:"features"`
	IsActive             bool            `gorm:"default:true;index" json:"is_active"`
	SortOrder            int             `gorm:"default:0" json:"sort_order"`
}

func (p *BoostPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Boost is one promotion request against one job. Category, duration and
// price are snapshots of the plan at creation time; the fee split is
// computed at approval and never touched again.
type Boost struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"` // doubles as the submission instant
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	EmployerID uuid.UUID `gorm:"type:uuid;not null;index" json:"employer_id"`
	JobID      uuid.UUID `gorm:"type:uuid;not null;index" json:"job_id"`
	// Association: GORM needs Preload() to fill this
	Job    Job       `json:"job,omitempty"`
	PlanID uuid.UUID `gorm:"type:uuid;not null;index" json:"plan_id"`

	Category     boost.Category  `gorm:"size:20;not null" json:"category"`
	DurationDays int             `gorm:"not null" json:"duration_days"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	PlatformFee  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"platform_fee"`
	NetRevenue   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"net_revenue"`

	Status        boost.Status        `gorm:"size:20;not null;default:'pending';index" json:"status"`
	PaymentStatus boost.PaymentStatus `gorm:"size:20;not null;default:'pending';index" json:"payment_status"`
	PaymentMethod string              `json:"payment_method"`

	RejectionReason string     `gorm:"type:text" json:"rejection_reason,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	ExpiryDate      time.Time  `gorm:"index" json:"expiry_date"`

	// RemainingDays is a materialized view over ExpiryDate, refreshed by
	// the expiry pass and the approval transition only.
	RemainingDays int `gorm:"default:0" json:"remaining_days"`

	// Opaque usage metrics, never derived by the engine.
	Views     int64   `gorm:"default:0" json:"views"`
	ClickRate float64 `gorm:"default:0" json:"click_rate"`
}

func (b *Boost) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BoostEvent is an append-only audit row for boost lifecycle changes.
type BoostEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	BoostID   uuid.UUID `gorm:"type:uuid;not null;index" json:"boost_id"`
	EventType string    `gorm:"size:40;not null" json:"event_type"`
	Details   string    `gorm:"type:text" json:"details"`
}
