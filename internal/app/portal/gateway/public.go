package gateway

import (
	"context"
	"fmt"
	"net/url"

	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/dto/responses"
)

// GetPublicCompany loads the tenant payload behind the booking wizard. An
// unknown or deactivated slug comes back as *APIError with status 404.
func (c *Client) GetPublicCompany(ctx context.Context, companySlug string) (*responses.PublicCompanyResponse, error) {
	var result responses.PublicCompanyResponse
	path := fmt.Sprintf("/public/%s", url.PathEscape(companySlug))
	if _, err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAvailability lists the free start times for a date. Zero duration lets
// the server fall back to the selected service's own duration.
func (c *Client) GetAvailability(ctx context.Context, companySlug, date string, durationMinutes int) (*responses.AvailabilityResponse, error) {
	query := url.Values{}
	query.Set("date", date)
	if durationMinutes > 0 {
		query.Set("duration", fmt.Sprintf("%d", durationMinutes))
	}

	var result responses.AvailabilityResponse
	path := fmt.Sprintf("/public/%s/availability?%s", url.PathEscape(companySlug), query.Encode())
	if _, err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateBooking(ctx context.Context, companySlug string, request *requests.PublicBooking) (*responses.BookingResponse, error) {
	var result responses.BookingResponse
	path := fmt.Sprintf("/public/%s/bookings", url.PathEscape(companySlug))
	if _, err := c.post(ctx, path, request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
