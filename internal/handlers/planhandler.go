package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/jobboard-backend/internal/dtos"
	"github.com/hirewire/jobboard-backend/internal/services"
)

type PlanHandler struct {
	PlanService *services.PlanService
}

func NewPlanHandler(p *services.PlanService) *PlanHandler {
	return &PlanHandler{PlanService: p}
}

// ListActive is GET /boost/plans — the public catalog employers pick from
func (h *PlanHandler) ListActive(c *gin.Context) {
	plans, err := h.PlanService.ListPlans(true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": plans})
}

// ListAll is GET /boost/admin/plans — includes deactivated tiers
func (h *PlanHandler) ListAll(c *gin.Context) {
	plans, err := h.PlanService.ListPlans(false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": plans})
}

// Create is POST /boost/admin/plans
func (h *PlanHandler) Create(c *gin.Context) {
	var req dtos.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	plan, err := h.PlanService.CreatePlan(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// Update is PUT /boost/admin/plans/:id
func (h *PlanHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dtos.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	plan, err := h.PlanService.UpdatePlan(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// SetActive is PUT /boost/admin/plans/:id/active
func (h *PlanHandler) SetActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dtos.PlanActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	plan, err := h.PlanService.SetActive(id, *req.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Delete is DELETE /boost/admin/plans/:id — rejected while boosts
// reference the plan
func (h *PlanHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.PlanService.DeletePlan(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
