package dtos

type PlanRequest struct {
	Name                 string   `json:"name" binding:"required"`
	Category             string   `json:"category" binding:"required"`
	DurationDays         int      `json:"durationDays" binding:"required,min=1,max=365"`
	Price                string   `json:"price" binding:"required"` // decimal string, e.g. "35.00"
	VisibilityMultiplier float64  `json:"visibilityMultiplier" binding:"required,min=1,max=10"`
	Features             []string `json:"features"`
	SortOrder            int      `json:"sortOrder"`
	IsActive             *bool    `json:"isActive"` // defaults to true on create
}

type PlanActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
