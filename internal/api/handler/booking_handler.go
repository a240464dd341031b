package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tourkart/booking-gateway/internal/core/ports"
)

// BookingHandler exposes the per-tour booking flow. Every route is scoped to
// the caller's session, so flows for different sessions or tours never touch.
type BookingHandler struct {
	flows ports.BookingFlowService
}

func NewBookingHandler(flows ports.BookingFlowService) *BookingHandler {
	return &BookingHandler{flows: flows}
}

// Start handles POST /v1/tours/:id/booking.
//
// @Summary      Start (or restart) the booking flow for a tour
// @Tags         booking
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tour ID"
// @Success      201  {object}  flowResponse
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /v1/tours/{id}/booking [post]
func (h *BookingHandler) Start(c echo.Context) error {
	sessionID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	view, err := h.flows.Start(c.Request().Context(), sessionID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toFlowResponse(view))
}

// View handles GET /v1/tours/:id/booking.
//
// @Summary      Read the current booking flow state
// @Tags         booking
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tour ID"
// @Success      200  {object}  flowResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/tours/{id}/booking [get]
func (h *BookingHandler) View(c echo.Context) error {
	sessionID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	view, err := h.flows.View(c.Request().Context(), sessionID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFlowResponse(view))
}

// UpdateDraft handles PUT /v1/tours/:id/booking/draft.
//
// @Summary      Assign booking form fields
// @Tags         booking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Tour ID"
// @Param        body  body      updateDraftRequest  true  "Fields to assign"
// @Success      200   {object}  flowResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/tours/{id}/booking/draft [put]
func (h *BookingHandler) UpdateDraft(c echo.Context) error {
	sessionID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req updateDraftRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	view, err := h.flows.UpdateDraft(c.Request().Context(), sessionID, c.Param("id"), ports.DraftUpdate{
		FullName:     req.FullName,
		Age:          req.Age,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		PartySize:    req.PartySize,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFlowResponse(view))
}

// Review handles POST /v1/tours/:id/booking/review.
//
// @Summary      Submit booking details and move to payment review
// @Tags         booking
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tour ID"
// @Success      200  {object}  flowResponse
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/tours/{id}/booking/review [post]
func (h *BookingHandler) Review(c echo.Context) error {
	sessionID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	view, err := h.flows.SubmitDetails(c.Request().Context(), sessionID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFlowResponse(view))
}

// Payment handles POST /v1/tours/:id/booking/payment.
//
// @Summary      Choose a payment method and submit the booking
// @Tags         booking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Tour ID"
// @Param        body  body      choosePaymentRequest  true  "Payment label"
// @Success      200   {object}  flowResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/tours/{id}/booking/payment [post]
func (h *BookingHandler) Payment(c echo.Context) error {
	sessionID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req choosePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	view, err := h.flows.ChoosePayment(c.Request().Context(), sessionID, c.Param("id"), req.Method)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFlowResponse(view))
}

// Cancel handles DELETE /v1/tours/:id/booking.
//
// @Summary      Cancel the booking flow, discarding the draft
// @Tags         booking
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tour ID"
// @Success      200  {object}  flowResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/tours/{id}/booking [delete]
func (h *BookingHandler) Cancel(c echo.Context) error {
	sessionID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	view, err := h.flows.Cancel(c.Request().Context(), sessionID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFlowResponse(view))
}
