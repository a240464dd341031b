package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tourkart/booking-gateway/internal/core/domain"
	"github.com/tourkart/booking-gateway/internal/core/ports"
)

// TourHandler serves the catalog display data.
type TourHandler struct {
	catalog ports.CatalogClient
}

func NewTourHandler(catalog ports.CatalogClient) *TourHandler {
	return &TourHandler{catalog: catalog}
}

type tourResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	UnitPrice   int64  `json:"unit_price"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

func toTourResponse(t domain.TourReference) tourResponse {
	return tourResponse{
		ID:          t.ID,
		Name:        t.Name,
		UnitPrice:   t.UnitPrice,
		Duration:    t.Duration,
		Description: t.Description,
		ImageURL:    t.ImageURL,
	}
}

// List handles GET /v1/tours.
//
// @Summary      List tours
// @Tags         tours
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   tourResponse
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /v1/tours [get]
func (h *TourHandler) List(c echo.Context) error {
	tours, err := h.catalog.ListTours(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]tourResponse, 0, len(tours))
	for _, t := range tours {
		resp = append(resp, toTourResponse(t))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /v1/tours/:id.
//
// @Summary      Get a tour by ID
// @Tags         tours
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tour ID"
// @Success      200  {object}  tourResponse
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /v1/tours/{id} [get]
func (h *TourHandler) Get(c echo.Context) error {
	tour, err := h.catalog.GetTour(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTourResponse(*tour))
}
