package contact

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bookceleb/internal/notifications"
	"bookceleb/pkg/logger"
)

type Service interface {
	// SubmitMessage runs the contact workflow: validate, persist, notify.
	SubmitMessage(ctx context.Context, req SubmitContactRequest) (*Message, error)

	// Admin operations
	ListMessages(ctx context.Context) ([]Message, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo   Repository
	mailer notifications.Mailer
	logger *logger.Logger
}

func NewService(repo Repository, mailer notifications.Mailer) Service {
	return &service{
		repo:   repo,
		mailer: mailer,
		logger: logger.GetDefault(),
	}
}

// requiredFields lists the contact form fields in reporting order.
var requiredFields = []string{"name", "email", "message"}

// missingFields applies the same exact-empty rule as the booking intake: a
// value is missing only if it equals "".
func missingFields(req SubmitContactRequest) []string {
	values := map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"message": req.Message,
	}

	var missing []string
	for _, field := range requiredFields {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

func (s *service) SubmitMessage(ctx context.Context, req SubmitContactRequest) (*Message, error) {
	if missing := missingFields(req); len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	message := &Message{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, &PersistenceError{Err: err}
	}

	s.logger.LogContactReceived(ctx, message.ID.String(), message.Email)

	emailData := notifications.ContactEmailData{
		Name:      message.Name,
		Email:     message.Email,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
	if err := s.mailer.SendContactMessage(ctx, emailData); err != nil {
		s.logger.LogNotificationFailed(ctx, message.ID.String(), err)
		return message, &NotificationError{MessageID: message.ID, Err: err}
	}

	return message, nil
}

func (s *service) ListMessages(ctx context.Context) ([]Message, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
