package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nexus/models"
	"nexus/services/session"
	"nexus/utils"
)

// AuthHandler exposes the simulated login flows: OTP by SMS (the code lands
// in the log) and the seeded demo password accounts.
type AuthHandler struct {
	Sessions session.SessionService
}

func NewAuthHandler(sessions session.SessionService) *AuthHandler {
	return &AuthHandler{Sessions: sessions}
}

func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var input struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Sessions.RequestOTP(c.Request.Context(), input.Phone); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to send code", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": true})
}

// VerifyOTP runs under the single-flight guard: the verify button stays
// disabled while one attempt is pending, and abandoning the screen cancels
// the attempt without logging anyone in.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var input struct {
		Phone string      `json:"phone" binding:"required"`
		Code  string      `json:"code" binding:"required"`
		Role  models.Role `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Role == "" {
		input.Role = models.RoleClient
	}

	release, err := h.Sessions.Guard().Begin("verifyOtp")
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "operation in flight", err.Error())
		return
	}
	defer release()

	token, err := h.Sessions.VerifyOTP(c.Request.Context(), input.Phone, input.Code, input.Role)
	if err != nil {
		if errors.Is(err, c.Request.Context().Err()) && c.Request.Context().Err() != nil {
			c.Status(499)
			return
		}
		utils.JSONError(c, http.StatusUnauthorized, "verification failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	token, err := h.Sessions.LoginWithPassword(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "login failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
