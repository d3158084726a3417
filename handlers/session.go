package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nexus/models"
	"nexus/services/booking"
	"nexus/services/session"
	"nexus/utils"
)

// SessionHandler exposes role switching and screen navigation.
type SessionHandler struct {
	Sessions session.SessionService
	Nav      *session.Navigator
	Flow     booking.BookingFlowService
}

func NewSessionHandler(sessions session.SessionService, nav *session.Navigator, flow booking.BookingFlowService) *SessionHandler {
	return &SessionHandler{Sessions: sessions, Nav: nav, Flow: flow}
}

// screenGate maps booking wizard screens to the step that must already be
// valid before the UI may move forward onto them. The navigator itself stays
// rule-free; this is the caller-side gate.
var screenGate = map[models.Screen]models.DraftStep{
	models.ScreenBookingLocation: models.StepSelectService,
	models.ScreenBookingDate:     models.StepSelectLocation,
	models.ScreenBookingContact:  models.StepSelectDateTime,
	models.ScreenBookingConfirm:  models.StepEnterContact,
}

func (h *SessionHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"role":         h.Sessions.Role(c.Request.Context()),
		"screen":       h.Nav.Current(),
		"historyDepth": h.Nav.Depth(),
		"pendingOp":    h.Sessions.Guard().Active(),
	})
}

func (h *SessionHandler) Navigate(c *gin.Context) {
	var input struct {
		Screen models.Screen `json:"screen" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if gate, gated := screenGate[input.Screen]; gated && !h.Flow.IsStepValid(c.Request.Context(), gate) {
		utils.JSONError(c, http.StatusConflict, "step incomplete",
			"complete the "+gate.String()+" step before continuing")
		return
	}
	from := h.Nav.Current()
	if err := h.Nav.NavigateTo(input.Screen); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid screen", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"screen":       h.Nav.Current(),
		"historyDepth": h.Nav.Depth(),
		"direction":    transitionDirection(from, h.Nav.Current()),
	})
}

func (h *SessionHandler) GoBack(c *gin.Context) {
	from := h.Nav.Current()
	to := h.Nav.GoBack()
	c.JSON(http.StatusOK, gin.H{
		"screen":       to,
		"historyDepth": h.Nav.Depth(),
		"direction":    transitionDirection(from, to),
	})
}

// transitionDirection tells the render layer which way to animate a screen
// change, using the screen total order.
func transitionDirection(from, to models.Screen) string {
	switch models.CompareScreens(from, to) {
	case -1:
		return "forward"
	case 1:
		return "backward"
	}
	return "none"
}

func (h *SessionHandler) SwitchRole(c *gin.Context) {
	var input struct {
		Role models.Role `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	screen, token, err := h.Sessions.SwitchRole(c.Request.Context(), input.Role)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "role switch failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": input.Role, "screen": screen, "token": token})
}
