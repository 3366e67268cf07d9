package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Platform roles. Auth itself lives in the gateway; we only consume the
// resolved role.
const (
	RoleAdmin     = "admin"
	RoleEmployer  = "employee"
	RoleJobSeeker = "jobseeker"
)

type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Name  string `json:"name"`
	Role  string `gorm:"not null;default:'jobseeker'" json:"role"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Job is the listing a boost promotes. Job CRUD lives elsewhere in the
// platform; the boost engine only reads ownership and status from it.
type Job struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	EmployerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"employer_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"default:'open'" json:"status"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
