package dtos

type BoostCreationRequest struct {
	JobID         string `json:"jobId" binding:"required,uuid"`
	BoostPlanID   string `json:"boostPlanId" binding:"required,uuid"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

type BoostRejectionRequest struct {
	RejectionReason string `json:"rejectionReason" binding:"required,min=3"`
}

type BoostRefundRequest struct {
	// Optional; the service falls back to a default reason
	RefundReason string `json:"refundReason"`
}

// BoostListQuery backs GET /boost/admin/all.
type BoostListQuery struct {
	Status string `form:"status"`
	Search string `form:"search"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

// AnalyticsQuery backs GET /boost/admin/analytics.
type AnalyticsQuery struct {
	Period int `form:"period,default=30" binding:"omitempty,min=1,max=365"`
}
