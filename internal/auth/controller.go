package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookceleb/internal/shared/utils/response"
)

type Controller interface {
	Signup(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Me(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := ctrl.service.Signup(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAdminCode):
			response.RespondJSON(c, "error", http.StatusForbidden, "Invalid admin code", nil, err.Error())
		case errors.Is(err, ErrWeakPassword):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Password too weak", nil, err.Error())
		case errors.Is(err, ErrEmailTaken):
			response.RespondJSON(c, "error", http.StatusConflict, "Email already registered", nil, err.Error())
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create account", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Account created successfully", result, nil)
}

func (ctrl *controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := ctrl.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "Invalid email or password", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to log in", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Logged in successfully", result, nil)
}

func (ctrl *controller) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	tokens, err := ctrl.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "Invalid or expired refresh token", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to refresh tokens", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Tokens refreshed successfully", tokens, nil)
}

// Me returns the authenticated caller's profile. The user id comes from the
// JWT middleware, never from the request.
func (ctrl *controller) Me(c *gin.Context) {
	rawID, exists := c.Get("user_id")
	if !exists {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "user not found in context", nil, nil)
		return
	}

	id, err := uuid.Parse(rawID.(string))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "invalid user id in token", nil, nil)
		return
	}

	profile, err := ctrl.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Profile not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch profile", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Profile fetched successfully", profile, nil)
}
