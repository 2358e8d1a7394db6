package contracts

import (
	"context"

	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/dto/responses"
)

// BookingUsecase backs the public, unauthenticated booking endpoints.
type BookingUsecase interface {
	GetPublicCompany(ctx context.Context, slug string) (*responses.PublicCompanyResponse, error)
	GetAvailability(ctx context.Context, slug, date string, durationMinutes int) (*responses.AvailabilityResponse, error)
	Book(ctx context.Context, slug string, request *requests.PublicBooking) (*responses.BookingResponse, error)
}
