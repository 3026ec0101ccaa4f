package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SandMart23/Aplikasi-Bawang/internal/services"
	"github.com/SandMart23/Aplikasi-Bawang/pkg/utils"
)

// AuthHandler holds the authentication service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// LoginUser handles operator login.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "LoginUser: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	authResp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "LoginUser: Error from authService.Login")
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid username or password.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to login.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, authResp)
}

// LogoutUser clears the stored session flags. The client discards its token.
func (h *AuthHandler) LogoutUser(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		utils.LogError(err, "LogoutUser: Error from authService.Logout")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodePersistenceFailed, "Failed to logout.", "Storage failure"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully. Please discard your token."})
}

// GetCurrentUser reports the authenticated operator and the stored session
// flag.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "User not authenticated.", "Missing username in context"))
		return
	}

	session, err := h.authService.CurrentSession(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetCurrentUser: Error from authService.CurrentSession")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodePersistenceFailed, "Failed to read session.", "Storage failure"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": username,
		"session":  session,
	})
}
