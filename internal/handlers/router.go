package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hirewire/jobboard-backend/internal/middleware"
)

// RegisterRoutes mounts the boost engine's REST surface under the given
// group. Plan mutations live under /admin/plans rather than /boost so
// the PUT tree under /boost holds only :id routes (gin rejects a static
// segment alongside a wildcard sibling).
func RegisterRoutes(api *gin.RouterGroup, bh *BoostHandler, ph *PlanHandler) {
	api.GET("/health", HealthCheck)

	boost := api.Group("/boost", middleware.Authenticate())
	{
		// public catalog + usage tracking
		boost.GET("/plans", ph.ListActive)
		boost.PUT("/:id/track", bh.TrackView)

		// employer
		boost.POST("/create", middleware.RequireEmployer(), bh.CreateBoost)
		boost.GET("/my", middleware.RequireEmployer(), bh.ListMine)

		// admin
		boost.PUT("/:id/approve", middleware.RequireAdmin(), bh.Approve)
		boost.PUT("/:id/reject", middleware.RequireAdmin(), bh.Reject)
		boost.PUT("/:id/refund", middleware.RequireAdmin(), bh.Refund)
		boost.GET("/admin/all", middleware.RequireAdmin(), bh.ListAdmin)
		boost.GET("/admin/analytics", middleware.RequireAdmin(), bh.Analytics)
	}

	plans := api.Group("/admin/plans", middleware.Authenticate(), middleware.RequireAdmin())
	{
		plans.GET("", ph.ListAll)
		plans.POST("", ph.Create)
		plans.PUT("/:id", ph.Update)
		plans.PUT("/:id/active", ph.SetActive)
		plans.DELETE("/:id", ph.Delete)
	}
}
