package upstream

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tourkart/booking-gateway/internal/core/domain"
)

// tourPayload mirrors the catalog API's JSON shape.
type tourPayload struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

func (p tourPayload) toDomain() domain.TourReference {
	return domain.TourReference{
		ID:          p.ID,
		Name:        p.Name,
		UnitPrice:   p.Price,
		Duration:    p.Duration,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}

// CatalogClient reads tours from the marketplace catalog API.
type CatalogClient struct {
	client
}

func NewCatalogClient(baseURL string, timeout time.Duration, log zerolog.Logger) *CatalogClient {
	return &CatalogClient{client: newClient(baseURL, timeout, log)}
}

func (c *CatalogClient) ListTours(ctx context.Context) ([]domain.TourReference, error) {
	var payload []tourPayload
	if err := c.getJSON(ctx, "/api/tours", &payload); err != nil {
		return nil, err
	}

	tours := make([]domain.TourReference, 0, len(payload))
	for _, p := range payload {
		tours = append(tours, p.toDomain())
	}
	return tours, nil
}

func (c *CatalogClient) GetTour(ctx context.Context, id string) (*domain.TourReference, error) {
	var payload tourPayload
	if err := c.getJSON(ctx, "/api/tours/"+id, &payload); err != nil {
		return nil, err
	}
	if payload.ID == "" {
		return nil, domain.ErrTourNotFound
	}
	tour := payload.toDomain()
	return &tour, nil
}
