package celebrities

import (
	"time"

	"github.com/google/uuid"
)

// Celebrity is the read-mostly catalog entry shown on the public site and
// referenced by booking requests.
type Celebrity struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name            string    `json:"name" gorm:"not null;size:255"`
	Image           string    `json:"image" gorm:"size:500"`
	Description     string    `json:"description" gorm:"type:text"`
	FullDescription string    `json:"full_description" gorm:"type:text"`
	Category        string    `json:"category" gorm:"not null;size:100;index"`
	FeeRange        string    `json:"fee_range" gorm:"size:100"`
	Availability    bool      `json:"availability" gorm:"default:true"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Celebrity) TableName() string {
	return "celebrities"
}

type CreateCelebrityRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=255"`
	Image           string `json:"image" binding:"omitempty,url"`
	Description     string `json:"description" binding:"max=2000"`
	FullDescription string `json:"full_description" binding:"max=10000"`
	Category        string `json:"category" binding:"required,min=2,max=100"`
	FeeRange        string `json:"fee_range" binding:"max=100"`
	Availability    *bool  `json:"availability"`
}

type UpdateCelebrityRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=2,max=255"`
	Image           *string `json:"image" binding:"omitempty,url"`
	Description     *string `json:"description" binding:"omitempty,max=2000"`
	FullDescription *string `json:"full_description" binding:"omitempty,max=10000"`
	Category        *string `json:"category" binding:"omitempty,min=2,max=100"`
	FeeRange        *string `json:"fee_range" binding:"omitempty,max=100"`
	Availability    *bool   `json:"availability"`
}

type SearchQuery struct {
	Query string `form:"q" binding:"required,min=1,max=255"`
}
