package upstream

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tourkart/booking-gateway/internal/core/ports"
)

// AdminClient reads the privileged listing and statistics endpoints.
type AdminClient struct {
	client
}

func NewAdminClient(baseURL string, timeout time.Duration, log zerolog.Logger) *AdminClient {
	return &AdminClient{client: newClient(baseURL, timeout, log)}
}

// bookingRecordPayload mirrors the backend's booking listing shape.
type bookingRecordPayload struct {
	ID             string `json:"_id"`
	TourName       string `json:"tourName"`
	Name           string `json:"name"`
	Mobile         string `json:"mobile"`
	Email          string `json:"email"`
	NumberOfPeople int    `json:"numberOfPeople"`
	PaymentMethod  string `json:"paymentMethod"`
}

func (c *AdminClient) AllBookings(ctx context.Context) ([]ports.BookingRecord, error) {
	var payload []bookingRecordPayload
	if err := c.getJSON(ctx, "/api/all-bookings", &payload); err != nil {
		return nil, err
	}

	records := make([]ports.BookingRecord, 0, len(payload))
	for _, p := range payload {
		records = append(records, ports.BookingRecord{
			ID:            p.ID,
			TourName:      p.TourName,
			CustomerName:  p.Name,
			MobileNumber:  p.Mobile,
			Email:         p.Email,
			PartySize:     p.NumberOfPeople,
			PaymentMethod: p.PaymentMethod,
		})
	}
	return records, nil
}

func (c *AdminClient) Stats(ctx context.Context) (*ports.AdminStats, error) {
	var payload struct {
		TotalUsers    int `json:"totalUsers"`
		TotalBookings int `json:"totalBookings"`
	}
	if err := c.getJSON(ctx, "/api/admin/stats", &payload); err != nil {
		return nil, err
	}
	return &ports.AdminStats{
		TotalUsers:    payload.TotalUsers,
		TotalBookings: payload.TotalBookings,
	}, nil
}
