package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nexus/database/repository"
	"nexus/models"
	"nexus/services/booking"
	"nexus/services/session"
	"nexus/utils"
)

// BookingFlowHandler drives the booking wizard over HTTP. Each step endpoint
// feeds the draft state machine; Submit runs under the session's
// single-flight guard and is cancelled when the client goes away.
type BookingFlowHandler struct {
	Flow     booking.BookingFlowService
	Sessions session.SessionService
	Bookings repository.BookingRepository
}

func NewBookingFlowHandler(flow booking.BookingFlowService, sessions session.SessionService, bookings repository.BookingRepository) *BookingFlowHandler {
	return &BookingFlowHandler{Flow: flow, Sessions: sessions, Bookings: bookings}
}

// respondFlowError maps the local validation taxonomy onto HTTP statuses.
// Everything here is recoverable at the step that raised it.
func respondFlowError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONFieldErrors(c, http.StatusUnprocessableEntity, "validation failed", vErr.Fields)
		return
	}
	var fErr *booking.FlowError
	if errors.As(err, &fErr) {
		utils.JSONError(c, http.StatusUnprocessableEntity, fErr.Code, fErr.Message)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "booking flow error", err.Error())
}

func (h *BookingFlowHandler) SelectProvider(c *gin.Context) {
	var input struct {
		ProviderID string `json:"providerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Flow.SelectProvider(c.Request.Context(), input.ProviderID); err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": h.Flow.Step(c.Request.Context()).String()})
}

func (h *BookingFlowHandler) SelectService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Flow.SelectService(c.Request.Context(), input.ServiceID); err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": h.Flow.Step(c.Request.Context()).String()})
}

func (h *BookingFlowHandler) SelectLocation(c *gin.Context) {
	var input struct {
		Mode models.Mode `json:"mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !input.Mode.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "mode must be domicile or studio")
		return
	}
	if err := h.Flow.SelectLocation(c.Request.Context(), input.Mode); err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": h.Flow.Step(c.Request.Context()).String()})
}

func (h *BookingFlowHandler) SelectDateTime(c *gin.Context) {
	var input struct {
		Start time.Time `json:"start" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Flow.SelectDateTime(c.Request.Context(), input.Start); err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": h.Flow.Step(c.Request.Context()).String()})
}

func (h *BookingFlowHandler) EnterContact(c *gin.Context) {
	var input models.Contact
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Flow.EnterContact(c.Request.Context(), input); err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": h.Flow.Step(c.Request.Context()).String()})
}

// GetDraft reports the draft and which steps currently pass validation, so
// the render layer can enable or disable its Continue affordances.
func (h *BookingFlowHandler) GetDraft(c *gin.Context) {
	ctx := c.Request.Context()
	steps := map[string]bool{}
	for s := models.StepSelectProvider; s < models.StepComplete; s++ {
		steps[s.String()] = h.Flow.IsStepValid(ctx, s)
	}
	c.JSON(http.StatusOK, gin.H{
		"draft":      h.Flow.Draft(ctx),
		"step":       h.Flow.Step(ctx).String(),
		"stepsValid": steps,
	})
}

// Submit finalizes the draft. The request context doubles as the
// cancellation token: a client navigating away aborts the simulated
// processing and no side effects apply.
func (h *BookingFlowHandler) Submit(c *gin.Context) {
	release, err := h.Sessions.Guard().Begin("submit")
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "operation in flight", err.Error())
		return
	}
	defer release()

	record, err := h.Flow.Submit(c.Request.Context())
	if err != nil {
		if errors.Is(err, c.Request.Context().Err()) && c.Request.Context().Err() != nil {
			// Client went away; nothing was applied and there is nobody to
			// answer. 499 matches the convention for cancelled requests.
			c.Status(499)
			return
		}
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": record})
}

func (h *BookingFlowHandler) CancelDraft(c *gin.Context) {
	h.Flow.Cancel(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"step": models.StepSelectProvider.String()})
}

// ListBookings returns every booking record, newest last.
func (h *BookingFlowHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Bookings.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
