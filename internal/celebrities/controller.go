package celebrities

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookceleb/internal/shared/utils/response"
)

type Controller interface {
	ListCelebrities(c *gin.Context)
	GetCelebrity(c *gin.Context)
	SearchCelebrities(c *gin.Context)
	CreateCelebrity(c *gin.Context)
	UpdateCelebrity(c *gin.Context)
	DeleteCelebrity(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) ListCelebrities(c *gin.Context) {
	celebs, err := ctrl.service.ListCelebrities(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch celebrities", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Celebrities retrieved successfully", celebs, nil)
}

func (ctrl *controller) GetCelebrity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid celebrity ID", nil, err.Error())
		return
	}

	celeb, err := ctrl.service.GetCelebrity(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCelebrityNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Celebrity not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch celebrity", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Celebrity retrieved successfully", celeb, nil)
}

func (ctrl *controller) SearchCelebrities(c *gin.Context) {
	var query SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Search query is required", nil, err.Error())
		return
	}

	celebs, err := ctrl.service.SearchCelebrities(c.Request.Context(), query.Query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to search celebrities", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Search completed successfully", celebs, nil)
}

func (ctrl *controller) CreateCelebrity(c *gin.Context) {
	var req CreateCelebrityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	celeb, err := ctrl.service.CreateCelebrity(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create celebrity", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Celebrity created successfully", celeb, nil)
}

func (ctrl *controller) UpdateCelebrity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid celebrity ID", nil, err.Error())
		return
	}

	var req UpdateCelebrityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	celeb, err := ctrl.service.UpdateCelebrity(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrCelebrityNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Celebrity not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update celebrity", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Celebrity updated successfully", celeb, nil)
}

func (ctrl *controller) DeleteCelebrity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid celebrity ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteCelebrity(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrCelebrityNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Celebrity not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete celebrity", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Celebrity deleted successfully", nil, nil)
}
