package contact

import (
	"time"

	"github.com/google/uuid"
)

// Message is a persisted contact form submission.
type Message struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "contact_messages"
}

// SubmitContactRequest is the public contact form payload. Validation runs in
// the service so the error contract matches the booking intake.
type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
