package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hirewire/jobboard-backend/internal/boost"
	"github.com/hirewire/jobboard-backend/internal/dtos"
	"github.com/hirewire/jobboard-backend/internal/models"
)

// Plan validation bounds.
const (
	minPlanDuration = 1
	maxPlanDuration = 365
	minMultiplier   = 1.0
	maxMultiplier   = 10.0
)

type PlanService struct {
	DB *gorm.DB
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{DB: db}
}

// validatePlan normalizes and checks the request fields shared by create
// and update. Binding tags catch most of this already; the service
// re-checks so it is safe from any caller.
func (s *PlanService) validatePlan(req *dtos.PlanRequest) (boost.Category, decimal.Decimal, datatypes.JSON, error) {
	category, err := boost.ParseCategory(strings.ToLower(strings.TrimSpace(req.Category)))
	if err != nil {
		return "", decimal.Decimal{}, nil, invalidInput(err.Error())
	}
	if req.DurationDays < minPlanDuration || req.DurationDays > maxPlanDuration {
		return "", decimal.Decimal{}, nil, invalidInput("durationDays must be between 1 and 365")
	}
	if req.VisibilityMultiplier < minMultiplier || req.VisibilityMultiplier > maxMultiplier {
		return "", decimal.Decimal{}, nil, invalidInput("visibilityMultiplier must be between 1.0 and 10.0")
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return "", decimal.Decimal{}, nil, invalidInput("price must be a decimal string")
	}
	if price.IsNegative() {
		return "", decimal.Decimal{}, nil, invalidInput("price must not be negative")
	}

	features := req.Features
	if features == nil {
		features = []string{}
	}
	raw, err := json.Marshal(features)
	if err != nil {
		return "", decimal.Decimal{}, nil, invalidInput("features must be a list of strings")
	}
	return category, price.Round(2), datatypes.JSON(raw), nil
}

func (s *PlanService) CreatePlan(req *dtos.PlanRequest) (*models.BoostPlan, error) {
	category, price, features, err := s.validatePlan(req)
	if err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	plan := &models.BoostPlan{
		Name:                 req.Name,
		Category:             category,
		DurationDays:         req.DurationDays,
		Price:                price,
		VisibilityMultiplier: req.VisibilityMultiplier,
		Features:             features,
		IsActive:             active,
		SortOrder:            req.SortOrder,
	}
	if err := s.DB.Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) UpdatePlan(id uuid.UUID, req *dtos.PlanRequest) (*models.BoostPlan, error) {
	category, price, features, err := s.validatePlan(req)
	if err != nil {
		return nil, err
	}

	plan, err := s.GetPlan(id)
	if err != nil {
		return nil, err
	}
	plan.Name = req.Name
	plan.Category = category
	plan.DurationDays = req.DurationDays
	plan.Price = price
	plan.VisibilityMultiplier = req.VisibilityMultiplier
	plan.Features = features
	plan.SortOrder = req.SortOrder
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if err := s.DB.Save(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

// SetActive toggles employer visibility without touching history.
func (s *PlanService) SetActive(id uuid.UUID, active bool) (*models.BoostPlan, error) {
	plan, err := s.GetPlan(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(plan).Update("is_active", active).Error; err != nil {
		return nil, err
	}
	plan.IsActive = active
	return plan, nil
}

// DeletePlan removes a plan only when no boost references it; deleting a
// referenced plan is rejected rather than orphaning the snapshots.
func (s *PlanService) DeletePlan(id uuid.UUID) error {
	if _, err := s.GetPlan(id); err != nil {
		return err
	}
	var refs int64
	if err := s.DB.Model(&models.Boost{}).Where("plan_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return conflict("plan is referenced by existing boosts and cannot be deleted")
	}
	return s.DB.Delete(&models.BoostPlan{}, "id = ?", id).Error
}

func (s *PlanService) GetPlan(id uuid.UUID) (*models.BoostPlan, error) {
	var plan models.BoostPlan
	if err := s.DB.First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("boost plan not found")
		}
		return nil, err
	}
	return &plan, nil
}

// ListPlans returns plans ordered by sort order; activeOnly narrows to
// the tiers employers can currently buy.
func (s *PlanService) ListPlans(activeOnly bool) ([]models.BoostPlan, error) {
	q := s.DB.Model(&models.BoostPlan{}).Order("sort_order asc, created_at asc")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	plans := make([]models.BoostPlan, 0)
	if err := q.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
