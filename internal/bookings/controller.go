package bookings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookceleb/internal/celebrities"
	"bookceleb/internal/shared/utils/response"
)

type Controller interface {
	// Public
	SubmitBooking(c *gin.Context)
	GetBookingOptions(c *gin.Context)

	// Admin
	GetBooking(c *gin.Context)
	ListBookings(c *gin.Context)
	UpdateBookingStatus(c *gin.Context)
	GetDashboardStats(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// SubmitBooking handles the public intake form. The three workflow stages map
// to distinct status codes: 400 means nothing happened, 500 means the insert
// failed, 502 means the booking exists but the notification did not go out.
func (ctrl *controller) SubmitBooking(c *gin.Context) {
	var req SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	booking, err := ctrl.service.SubmitBooking(c.Request.Context(), req)
	if err != nil {
		var validationErr *ValidationError
		var persistenceErr *PersistenceError
		var notificationErr *NotificationError

		switch {
		case errors.As(err, &validationErr):
			response.RespondError(c, http.StatusBadRequest, validationErr.Error())
		case errors.Is(err, celebrities.ErrCelebrityNotFound):
			response.RespondError(c, http.StatusNotFound, "celebrity not found")
		case errors.As(err, &persistenceErr):
			response.RespondError(c, http.StatusInternalServerError, persistenceErr.Error())
		case errors.As(err, &notificationErr):
			c.JSON(http.StatusBadGateway, gin.H{
				"error":      notificationErr.Error(),
				"booking_id": notificationErr.BookingID,
			})
		default:
			response.RespondError(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	response.RespondSuccess(c, http.StatusOK, booking)
}

// GetBookingOptions returns the fixed option sets the booking form renders.
func (ctrl *controller) GetBookingOptions(c *gin.Context) {
	response.RespondSuccess(c, http.StatusOK, gin.H{
		"event_types":  EventTypes,
		"budget_bands": BudgetBands,
	})
}

func (ctrl *controller) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	booking, err := ctrl.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Booking not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch booking", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking fetched successfully", booking, nil)
}

func (ctrl *controller) ListBookings(c *gin.Context) {
	var query BookingListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := ctrl.service.ListBookings(c.Request.Context(), query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch bookings", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookings fetched successfully", result, nil)
}

func (ctrl *controller) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	booking, err := ctrl.service.UpdateBookingStatus(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Booking not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update booking status", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking status updated successfully", booking, nil)
}

func (ctrl *controller) GetDashboardStats(c *gin.Context) {
	stats, err := ctrl.service.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch dashboard stats", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Dashboard stats fetched successfully", stats, nil)
}
