package bookings

import (
	"time"

	"github.com/google/uuid"

	"bookceleb/internal/celebrities"
)

// Booking is a persisted request to engage a celebrity for an event. Created
// with status "pending"; only an admin mutates the status afterwards.
type Booking struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	CelebrityID uuid.UUID `json:"celebrity_id" gorm:"type:uuid;index;not null"`

	// Event attributes
	EventDate time.Time `json:"event_date" gorm:"not null"`
	EventType string    `json:"event_type" gorm:"size:100;not null"`
	Budget    string    `json:"budget" gorm:"size:100;not null"`
	Location  string    `json:"location" gorm:"size:255;not null"`
	Message   string    `json:"message" gorm:"type:text"`

	// Requester attributes
	FullName string `json:"full_name" gorm:"size:255;not null"`
	JobTitle string `json:"job_title" gorm:"size:255;not null"`
	Gender   string `json:"gender" gorm:"size:100;not null"`
	Phone    string `json:"phone" gorm:"size:50;not null"`
	Email    string `json:"email" gorm:"size:255;not null"`
	Address  string `json:"address" gorm:"size:500;not null"`
	Airport  string `json:"airport" gorm:"size:255;not null"`

	FullDescription string  `json:"full_description" gorm:"type:text"`
	Amount          float64 `json:"amount" gorm:"default:0"`
	Status          Status  `json:"status" gorm:"type:varchar(20);default:'pending'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Celebrity *celebrities.Celebrity `json:"celebrity,omitempty" gorm:"foreignKey:CelebrityID;constraint:OnDelete:RESTRICT;"`
}

func (Booking) TableName() string {
	return "bookings"
}

// SubmitBookingRequest is the public intake payload. All values arrive as
// strings; the required-field gate in validate.go runs before anything else,
// so no binding tags here.
type SubmitBookingRequest struct {
	CelebrityID     string `json:"celebrity_id"`
	EventDate       string `json:"event_date"`
	Budget          string `json:"budget"`
	EventType       string `json:"event_type"`
	Location        string `json:"location"`
	Message         string `json:"message"`
	FullName        string `json:"full_name"`
	JobTitle        string `json:"job_title"`
	Gender          string `json:"gender"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Address         string `json:"address"`
	Airport         string `json:"airport"`
	FullDescription string `json:"full_description"`
}

// UpdateStatusRequest is the admin status transition payload.
type UpdateStatusRequest struct {
	Status string   `json:"status" binding:"required,bookingstatus"`
	Amount *float64 `json:"amount" binding:"omitempty,min=0"`
}

// BookingListQuery filters the admin booking list.
type BookingListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,bookingstatus"`
}

// PaginatedBookings is the admin list response.
type PaginatedBookings struct {
	Bookings   []Booking `json:"bookings"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}

// DashboardStats backs the admin dashboard header cards.
type DashboardStats struct {
	TotalCelebrities int64     `json:"total_celebrities"`
	TotalBookings    int64     `json:"total_bookings"`
	PendingBookings  int64     `json:"pending_bookings"`
	TotalRevenue     float64   `json:"total_revenue"`
	RecentBookings   []Booking `json:"recent_bookings"`
}

// Fixed option sets offered by the public booking form. The intake gate does
// not reject values outside these sets; they are form metadata.
var (
	EventTypes = []string{
		"Birthday",
		"Meet and Greet",
		"Convention/Trade Show",
		"Musical Performance",
		"Speaking Engagement",
		"Virtual Event",
		"Wedding",
	}

	BudgetBands = []string{
		"$5,000 or less",
		"$5,000 - $10,000",
		"$10,000 - $20,000",
		"$20,000 - $30,000",
		"$30,000 - $50,000",
		"$50,000 - $100,000",
		"$100,000 - $500,000",
		"$500,000 and above",
	}
)
