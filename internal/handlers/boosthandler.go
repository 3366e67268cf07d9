package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hirewire/jobboard-backend/internal/dtos"
	"github.com/hirewire/jobboard-backend/internal/middleware"
	"github.com/hirewire/jobboard-backend/internal/notify"
	"github.com/hirewire/jobboard-backend/internal/services"
)

// BoostHandler exposes the boost lifecycle over REST.
// Dependency injection, same as the other handlers.
type BoostHandler struct {
	BoostService     *services.BoostService
	AnalyticsService *services.AnalyticsService
	Notifier         notify.Publisher
}

func NewBoostHandler(b *services.BoostService, a *services.AnalyticsService, n notify.Publisher) *BoostHandler {
	return &BoostHandler{
		BoostService:     b,
		AnalyticsService: a,
		Notifier:         n,
	}
}

// CreateBoost is POST /boost/create (employer only)
func (h *BoostHandler) CreateBoost(c *gin.Context) {
	principal, _ := middleware.CurrentUser(c)

	var req dtos.BoostCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	boost, err := h.BoostService.CreateBoost(c.Request.Context(), principal.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Notifier.Publish(c.Request.Context(), notify.EventBoostCreated, gin.H{
		"boostId":    boost.ID,
		"jobId":      boost.JobID,
		"employerId": boost.EmployerID,
	})
	c.JSON(http.StatusCreated, boost)
}

// ListAdmin is GET /boost/admin/all?status&search&page&limit
func (h *BoostHandler) ListAdmin(c *gin.Context) {
	var q dtos.BoostListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	boosts, total, err := h.BoostService.ListAll(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  boosts,
		"total": total,
		"page":  q.Page,
		"limit": q.Limit,
	})
}

// ListMine is GET /boost/my (employer only)
func (h *BoostHandler) ListMine(c *gin.Context) {
	principal, _ := middleware.CurrentUser(c)

	boosts, err := h.BoostService.ListByEmployer(c.Request.Context(), principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": boosts})
}

// Approve is PUT /boost/:id/approve (admin only)
func (h *BoostHandler) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	boost, err := h.BoostService.Approve(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Notifier.Publish(c.Request.Context(), notify.EventBoostApproved, gin.H{
		"boostId":    boost.ID,
		"employerId": boost.EmployerID,
		"expiryDate": boost.ExpiryDate,
	})
	c.JSON(http.StatusOK, boost)
}

// Reject is PUT /boost/:id/reject (admin only)
func (h *BoostHandler) Reject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dtos.BoostRejectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	boost, err := h.BoostService.Reject(c.Request.Context(), id, req.RejectionReason)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Notifier.Publish(c.Request.Context(), notify.EventBoostRejected, gin.H{
		"boostId":    boost.ID,
		"employerId": boost.EmployerID,
		"reason":     boost.RejectionReason,
	})
	c.JSON(http.StatusOK, boost)
}

// Refund is PUT /boost/:id/refund (admin only)
func (h *BoostHandler) Refund(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dtos.BoostRefundRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
			return
		}
	}

	boost, err := h.BoostService.Refund(c.Request.Context(), id, req.RefundReason)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Notifier.Publish(c.Request.Context(), notify.EventBoostRefunded, gin.H{
		"boostId":    boost.ID,
		"employerId": boost.EmployerID,
		"reason":     boost.RejectionReason,
	})
	c.JSON(http.StatusOK, boost)
}

// Analytics is GET /boost/admin/analytics?period=<days>
func (h *BoostHandler) Analytics(c *gin.Context) {
	var q dtos.AnalyticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	snapshot, err := h.AnalyticsService.Compute(c.Request.Context(), q.Period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// TrackView is PUT /boost/:id/track — public view-counter bump
func (h *BoostHandler) TrackView(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.BoostService.TrackView(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracked": true})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"kind":  string(services.KindValidation),
			"error": "id must be a valid UUID",
		})
		return uuid.Nil, false
	}
	return id, true
}
