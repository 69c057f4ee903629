package bookings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"bookceleb/internal/celebrities"
	"bookceleb/internal/notifications"
	"bookceleb/pkg/logger"
)

// CelebrityDirectory is the slice of the celebrity service the booking flow
// needs (defined here to avoid a circular dependency).
type CelebrityDirectory interface {
	GetCelebrity(ctx context.Context, id uuid.UUID) (*celebrities.Celebrity, error)
	CountCelebrities(ctx context.Context) (int64, error)
}

type Service interface {
	// SubmitBooking runs the intake workflow: validate, persist, notify.
	// Strictly sequential, one attempt per stage, no rollback of the insert
	// when the notification fails.
	SubmitBooking(ctx context.Context, req SubmitBookingRequest) (*Booking, error)

	// Admin operations
	GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error)
	ListBookings(ctx context.Context, query BookingListQuery) (*PaginatedBookings, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*Booking, error)
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type service struct {
	repo        Repository
	celebrities CelebrityDirectory
	mailer      notifications.Mailer
	logger      *logger.Logger
}

func NewService(repo Repository, directory CelebrityDirectory, mailer notifications.Mailer) Service {
	return &service{
		repo:        repo,
		celebrities: directory,
		mailer:      mailer,
		logger:      logger.GetDefault(),
	}
}

func (s *service) SubmitBooking(ctx context.Context, req SubmitBookingRequest) (*Booking, error) {
	// Stage 1: required-field gate. Nothing below runs with missing fields.
	if missing := MissingFields(req); len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	celebrityID, err := uuid.Parse(req.CelebrityID)
	if err != nil {
		return nil, fmt.Errorf("invalid celebrity id")
	}

	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("invalid event date: %w", err)
	}

	// The notification needs the display name, and a dangling reference
	// would only fail at insert time anyway; resolve it up front.
	celebrity, err := s.celebrities.GetCelebrity(ctx, celebrityID)
	if err != nil {
		if errors.Is(err, celebrities.ErrCelebrityNotFound) {
			return nil, err
		}
		return nil, &PersistenceError{Err: err}
	}

	booking := &Booking{
		CelebrityID:     celebrityID,
		EventDate:       eventDate,
		EventType:       req.EventType,
		Budget:          req.Budget,
		Location:        req.Location,
		Message:         req.Message,
		FullName:        req.FullName,
		JobTitle:        req.JobTitle,
		Gender:          req.Gender,
		Phone:           req.Phone,
		Email:           req.Email,
		Address:         req.Address,
		Airport:         req.Airport,
		FullDescription: req.FullDescription,
		Status:          StatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	// Stage 2: single insert. A store error stops the workflow here; the
	// notification stage must not run.
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, &PersistenceError{Err: err}
	}

	s.logger.LogBookingSubmitted(ctx, booking.ID.String(), booking.CelebrityID.String())

	// Stage 3: one send attempt. On failure the booking stays persisted;
	// the caller learns the send failed and gets the booking id back.
	emailData := notifications.BookingEmailData{
		CelebrityName: celebrity.Name,
		EventDate:     booking.EventDate,
		EventType:     booking.EventType,
		Budget:        booking.Budget,
		Location:      booking.Location,
		FullName:      booking.FullName,
		Email:         booking.Email,
		Phone:         booking.Phone,
		JobTitle:      booking.JobTitle,
		Message:       booking.Message,
	}
	if err := s.mailer.SendBookingRequest(ctx, emailData); err != nil {
		s.logger.LogNotificationFailed(ctx, booking.ID.String(), err)
		return booking, &NotificationError{BookingID: booking.ID, Err: err}
	}

	return booking, nil
}

// parseEventDate accepts the date-input format used by the booking form, or
// a full RFC 3339 timestamp.
func parseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (s *service) GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListBookings(ctx context.Context, query BookingListQuery) (*PaginatedBookings, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	bookings, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, err
	}

	return &PaginatedBookings{
		Bookings:   bookings,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}, nil
}

func (s *service) UpdateBookingStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*Booking, error) {
	if !IsValidStatus(req.Status) {
		return nil, fmt.Errorf("invalid booking status: %s", req.Status)
	}

	if err := s.repo.UpdateStatus(ctx, id, Status(req.Status), req.Amount); err != nil {
		return nil, err
	}

	s.logger.LogBookingStatusChanged(ctx, id.String(), req.Status)
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	totalCelebrities, err := s.celebrities.CountCelebrities(ctx)
	if err != nil {
		return nil, err
	}

	totalBookings, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	pendingBookings, err := s.repo.CountByStatus(ctx, StatusPending)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := s.repo.SumAmounts(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.GetRecent(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalCelebrities: totalCelebrities,
		TotalBookings:    totalBookings,
		PendingBookings:  pendingBookings,
		TotalRevenue:     totalRevenue,
		RecentBookings:   recent,
	}, nil
}
