package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"laundrybook/models"
	"laundrybook/services/notification"
	"laundrybook/services/payment"
	"laundrybook/services/wizard"
	"laundrybook/utils"
)

// BookingHandler serves the booking session endpoints: the wizard state
// machine, payment-intent creation and final confirmation.
type BookingHandler struct {
	Sessions wizard.SessionService
	Payments payment.Service
	Notifier notification.Service
	Logger   *zap.Logger
}

func NewBookingHandler(sessions wizard.SessionService, payments payment.Service, notifier notification.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Sessions: sessions,
		Payments: payments,
		Notifier: notifier,
		Logger:   logger,
	}
}

// respondError maps service failures to status codes: gate/input failures
// are 400, missing sessions 404, everything else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case models.IsValidationError(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}

// StartSession creates a fresh booking session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	session, err := h.Sessions.Start(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizard.View(session))
}

// GetSession returns the current session state with derived progress and
// cart total.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Sessions.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizard.View(session))
}

// UpdateSession merges partial draft fields into the session.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var update models.DraftUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Sessions.Update(c.Request.Context(), c.Param("sessionID"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizard.View(session))
}

// AddService appends one catalog item to the cart. The Wash item requires a
// washType choice; its price comes from the chosen variant.
func (h *BookingHandler) AddService(c *gin.Context) {
	var input struct {
		ID       string          `json:"id"`
		WashType models.WashType `json:"washType"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Sessions.AddService(c.Request.Context(), c.Param("sessionID"), input.ID, input.WashType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizard.View(session))
}

// RemoveService removes one occurrence of the item from the cart.
func (h *BookingHandler) RemoveService(c *gin.Context) {
	session, err := h.Sessions.RemoveService(c.Request.Context(), c.Param("sessionID"), c.Param("itemID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizard.View(session))
}

// NextPage gates the current page and advances the wizard.
func (h *BookingHandler) NextPage(c *gin.Context) {
	session, err := h.Sessions.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizard.View(session))
}

// PrevPage moves the wizard one page back without un-completing steps.
func (h *BookingHandler) PrevPage(c *gin.Context) {
	session, err := h.Sessions.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizard.View(session))
}

// CreatePaymentIntent creates a payment intent for the session's cart total
// and returns the client secret for client-side confirmation.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	session, err := h.Sessions.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}

	clientSecret, err := h.Payments.CreateIntent(c.Request.Context(), session.Draft.TotalPrice())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// ConfirmBooking finalizes the booking after client-side payment success:
// the confirmation email is dispatched and the session discarded. A failed
// dispatch surfaces the error and keeps the session; nothing is retried
// automatically.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("sessionID")

	session, err := h.Sessions.Get(ctx, sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.Notifier.SendConfirmation(ctx, session.Draft, session.Draft.TotalPrice())
	if err != nil {
		if models.IsValidationError(err) {
			respondError(c, err)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send confirmation email", err.Error())
		return
	}

	if err := h.Sessions.Cancel(ctx, sessionID); err != nil {
		h.Logger.Warn("failed to discard confirmed session",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"bookingReference": result.BookingReference,
		"totalPrice":       result.TotalPrice,
		"message":          result.Message,
	})
}

// CancelSession abandons the booking.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Sessions.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
