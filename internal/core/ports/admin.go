package ports

import (
	"context"

	"github.com/tourkart/booking-gateway/internal/core/domain"
)

// BookingRecord is one confirmed booking as reported by the marketplace
// backend for the admin listing.
type BookingRecord struct {
	ID            string `json:"id"`
	TourName      string `json:"tour_name"`
	CustomerName  string `json:"customer_name"`
	MobileNumber  string `json:"mobile_number"`
	Email         string `json:"email"`
	PartySize     int    `json:"party_size"`
	PaymentMethod string `json:"payment_method"`
}

// AdminStats aggregates the dashboard counters.
type AdminStats struct {
	TotalUsers    int `json:"total_users"`
	TotalBookings int `json:"total_bookings"`
}

// AdminClient reads the privileged listing and statistics endpoints.
type AdminClient interface {
	AllBookings(ctx context.Context) ([]BookingRecord, error)
	Stats(ctx context.Context) (*AdminStats, error)
}

// AdminService exposes the privileged dashboard reads. The caller's role is
// re-checked at the service layer: only domain.RoleAdmin may pass.
type AdminService interface {
	AllBookings(ctx context.Context, role domain.Role) ([]BookingRecord, error)
	Stats(ctx context.Context, role domain.Role) (*AdminStats, error)
}
