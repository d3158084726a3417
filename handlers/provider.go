package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nexus/models"
	"nexus/services/provider"
	"nexus/utils"
)

// ProviderHandler exposes the provider-side actions: studio publishing,
// availability blocking, and answering booking requests.
type ProviderHandler struct {
	Providers provider.ProviderService
}

func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Providers: svc}
}

func (h *ProviderHandler) PublishStudio(c *gin.Context) {
	var input models.Provider
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Providers.PublishStudio(c.Request.Context(), input); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "publish failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"published": true})
}

func (h *ProviderHandler) SetSlotBlocked(c *gin.Context) {
	var input struct {
		ProviderID string    `json:"providerId" binding:"required"`
		At         time.Time `json:"at" binding:"required"`
		Blocked    bool      `json:"blocked"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Providers.SetSlotBlocked(c.Request.Context(), input.ProviderID, input.At, input.Blocked); err != nil {
		utils.JSONError(c, http.StatusNotFound, "slot update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocked": input.Blocked})
}

func (h *ProviderHandler) ListRequests(c *gin.Context) {
	bookings, err := h.Providers.ListRequests(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list requests", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *ProviderHandler) AcceptBooking(c *gin.Context) {
	b, err := h.Providers.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "accept failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

func (h *ProviderHandler) RefuseBooking(c *gin.Context) {
	b, err := h.Providers.Refuse(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "refuse failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

func (h *ProviderHandler) CancelBooking(c *gin.Context) {
	b, err := h.Providers.CancelByClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "cancel failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
