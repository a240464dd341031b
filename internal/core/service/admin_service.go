package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tourkart/booking-gateway/internal/core/domain"
	"github.com/tourkart/booking-gateway/internal/core/ports"
)

type adminService struct {
	client ports.AdminClient
	log    zerolog.Logger
}

// NewAdminService returns the privileged dashboard reads, re-checking the
// caller's role at the service layer.
func NewAdminService(client ports.AdminClient, log zerolog.Logger) ports.AdminService {
	return &adminService{client: client, log: log}
}

func (s *adminService) AllBookings(ctx context.Context, role domain.Role) ([]ports.BookingRecord, error) {
	if role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	records, err := s.client.AllBookings(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch bookings listing")
		return nil, fmt.Errorf("admin bookings: %w", err)
	}
	return records, nil
}

func (s *adminService) Stats(ctx context.Context, role domain.Role) (*ports.AdminStats, error) {
	if role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	stats, err := s.client.Stats(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch admin stats")
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	return stats, nil
}
