package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookceleb/internal/notifications"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, message *Message) error {
	args := m.Called(ctx, message)
	if args.Error(0) == nil && message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockRepository) GetAll(ctx context.Context) ([]Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Message), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendBookingRequest(ctx context.Context, data notifications.BookingEmailData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *mockMailer) SendContactMessage(ctx context.Context, data notifications.ContactEmailData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func validRequest() SubmitContactRequest {
	return SubmitContactRequest{
		Name:    "Jordan Smith",
		Email:   "jordan@example.com",
		Message: "Interested in booking for a corporate event.",
	}
}

func TestSubmitMessageValidationFailure(t *testing.T) {
	repo := new(mockRepository)
	mailer := new(mockMailer)
	svc := NewService(repo, mailer)

	message, err := svc.SubmitMessage(context.Background(), SubmitContactRequest{Email: "jordan@example.com"})

	assert.Nil(t, message)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"name", "message"}, validationErr.Missing)
	assert.Equal(t, "Please fill in all required fields: name, message", err.Error())

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "SendContactMessage", mock.Anything, mock.Anything)
}

func TestSubmitMessagePersistenceFailureSkipsNotification(t *testing.T) {
	repo := new(mockRepository)
	mailer := new(mockMailer)
	svc := NewService(repo, mailer)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	message, err := svc.SubmitMessage(context.Background(), validRequest())

	assert.Nil(t, message)
	var persistenceErr *PersistenceError
	assert.ErrorAs(t, err, &persistenceErr)
	assert.Equal(t, "disk full", err.Error())
	mailer.AssertNotCalled(t, "SendContactMessage", mock.Anything, mock.Anything)
}

func TestSubmitMessageNotificationFailureKeepsRecord(t *testing.T) {
	repo := new(mockRepository)
	mailer := new(mockMailer)
	svc := NewService(repo, mailer)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendContactMessage", mock.Anything, mock.Anything).
		Return(errors.New("provider unavailable"))

	message, err := svc.SubmitMessage(context.Background(), validRequest())

	assert.NotNil(t, message)
	assert.NotEqual(t, uuid.Nil, message.ID)

	var notificationErr *NotificationError
	assert.ErrorAs(t, err, &notificationErr)
	assert.Equal(t, message.ID, notificationErr.MessageID)
}

func TestSubmitMessageSuccess(t *testing.T) {
	repo := new(mockRepository)
	mailer := new(mockMailer)
	svc := NewService(repo, mailer)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	var sent notifications.ContactEmailData
	mailer.On("SendContactMessage", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(notifications.ContactEmailData)
		}).
		Return(nil)

	req := validRequest()
	message, err := svc.SubmitMessage(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, req.Name, message.Name)
	assert.False(t, message.CreatedAt.IsZero())
	assert.Equal(t, req.Name, sent.Name)
	assert.Equal(t, req.Email, sent.Email)
	assert.Equal(t, req.Message, sent.Message)
}

func TestSubmitMessageWhitespaceCountsAsPresent(t *testing.T) {
	repo := new(mockRepository)
	mailer := new(mockMailer)
	svc := NewService(repo, mailer)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendContactMessage", mock.Anything, mock.Anything).Return(nil)

	req := validRequest()
	req.Message = "   "

	_, err := svc.SubmitMessage(context.Background(), req)

	assert.NoError(t, err)
	repo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}
