package contact

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookceleb/internal/shared/utils/response"
)

type Controller interface {
	// Public
	SubmitMessage(c *gin.Context)

	// Admin
	ListMessages(c *gin.Context)
	DeleteMessage(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// SubmitMessage handles the public contact form with the same status mapping
// as the booking intake.
func (ctrl *controller) SubmitMessage(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := ctrl.service.SubmitMessage(c.Request.Context(), req)
	if err != nil {
		var validationErr *ValidationError
		var persistenceErr *PersistenceError
		var notificationErr *NotificationError

		switch {
		case errors.As(err, &validationErr):
			response.RespondError(c, http.StatusBadRequest, validationErr.Error())
		case errors.As(err, &persistenceErr):
			response.RespondError(c, http.StatusInternalServerError, persistenceErr.Error())
		case errors.As(err, &notificationErr):
			c.JSON(http.StatusBadGateway, gin.H{
				"error":      notificationErr.Error(),
				"message_id": notificationErr.MessageID,
			})
		default:
			response.RespondError(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	response.RespondSuccess(c, http.StatusOK, message)
}

func (ctrl *controller) ListMessages(c *gin.Context) {
	messages, err := ctrl.service.ListMessages(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch messages", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Messages fetched successfully", messages, nil)
}

func (ctrl *controller) DeleteMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid message ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteMessage(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrMessageNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Message not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete message", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Message deleted successfully", nil, nil)
}
