package bookings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) SubmitBooking(ctx context.Context, req SubmitBookingRequest) (*Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *mockService) GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *mockService) ListBookings(ctx context.Context, query BookingListQuery) (*PaginatedBookings, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PaginatedBookings), args.Error(1)
}

func (m *mockService) UpdateBookingStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*Booking, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *mockService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DashboardStats), args.Error(1)
}

func performSubmit(t *testing.T, svc Service, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	ctrl := NewController(svc)
	engine.POST("/bookings", ctrl.SubmitBooking)

	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestSubmitBookingEndpointValidationError(t *testing.T) {
	svc := new(mockService)
	svc.On("SubmitBooking", mock.Anything, mock.Anything).
		Return(nil, &ValidationError{Missing: []string{"phone", "email"}})

	recorder := performSubmit(t, svc, SubmitBookingRequest{})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Please fill in all required fields: phone, email", body["error"])
}

func TestSubmitBookingEndpointPersistenceError(t *testing.T) {
	svc := new(mockService)
	svc.On("SubmitBooking", mock.Anything, mock.Anything).
		Return(nil, &PersistenceError{Err: errors.New("connection refused")})

	recorder := performSubmit(t, svc, completeRequest())

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	// The store's message surfaces verbatim.
	assert.Equal(t, "connection refused", body["error"])
}

func TestSubmitBookingEndpointNotificationError(t *testing.T) {
	bookingID := uuid.New()
	svc := new(mockService)
	svc.On("SubmitBooking", mock.Anything, mock.Anything).
		Return(&Booking{ID: bookingID, Status: StatusPending},
			&NotificationError{BookingID: bookingID, Err: errors.New("provider unavailable")})

	recorder := performSubmit(t, svc, completeRequest())

	assert.Equal(t, http.StatusBadGateway, recorder.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Failed to send email notification: provider unavailable", body["error"])
	// The caller can still find the booking that was kept.
	assert.Equal(t, bookingID.String(), body["booking_id"])
}

func TestSubmitBookingEndpointSuccess(t *testing.T) {
	bookingID := uuid.New()
	svc := new(mockService)
	svc.On("SubmitBooking", mock.Anything, mock.Anything).
		Return(&Booking{ID: bookingID, Status: StatusPending}, nil)

	recorder := performSubmit(t, svc, completeRequest())

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, bookingID.String(), data["id"])
	assert.Equal(t, "pending", data["status"])
}

func TestSubmitBookingEndpointMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := new(mockService)
	engine := gin.New()
	engine.POST("/bookings", NewController(svc).SubmitBooking)

	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	svc.AssertNotCalled(t, "SubmitBooking", mock.Anything, mock.Anything)
}
