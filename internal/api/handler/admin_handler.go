package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tourkart/booking-gateway/internal/core/ports"
)

// AdminHandler serves the privileged dashboard reads.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Bookings handles GET /admin/bookings.
//
// @Summary      List all customer bookings
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.BookingRecord
// @Failure      403  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /admin/bookings [get]
func (h *AdminHandler) Bookings(c echo.Context) error {
	_, role, err := ctxSession(c)
	if err != nil {
		return err
	}

	records, err := h.admin.AllBookings(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Stats handles GET /admin/stats.
//
// @Summary      Dashboard counters
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AdminStats
// @Failure      403  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	_, role, err := ctxSession(c)
	if err != nil {
		return err
	}

	stats, err := h.admin.Stats(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
