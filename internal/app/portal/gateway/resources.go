package gateway

import (
	"context"
	"fmt"
	"net/url"

	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/dto/responses"
)

// ListOptions narrows a paginated list call. Zero values are left off the
// query string so the server applies its own defaults.
type ListOptions struct {
	Search   string
	Category string
	Date     string
	Status   string
	Page     int
	PageSize int
}

func (o ListOptions) encode() string {
	query := url.Values{}
	if o.Search != "" {
		query.Set("search", o.Search)
	}
	if o.Category != "" {
		query.Set("category", o.Category)
	}
	if o.Date != "" {
		query.Set("date", o.Date)
	}
	if o.Status != "" {
		query.Set("status", o.Status)
	}
	if o.Page > 0 {
		query.Set("page", fmt.Sprintf("%d", o.Page))
	}
	if o.PageSize > 0 {
		query.Set("page_size", fmt.Sprintf("%d", o.PageSize))
	}
	if encoded := query.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

func (c *Client) ListCustomers(ctx context.Context, opts ListOptions) ([]models.Customer, *responses.Pagination, error) {
	var result []models.Customer
	env, err := c.get(ctx, "/customers"+opts.encode(), &result)
	if err != nil {
		return nil, nil, err
	}
	return result, env.Pagination, nil
}

func (c *Client) CreateCustomer(ctx context.Context, request *requests.CreateCustomer) (*models.Customer, error) {
	var result models.Customer
	if _, err := c.post(ctx, "/customers", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, customerID string, request *requests.UpdateCustomer) (*models.Customer, error) {
	var result models.Customer
	if _, err := c.put(ctx, "/customers/"+url.PathEscape(customerID), request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, customerID string) error {
	return c.delete(ctx, "/customers/"+url.PathEscape(customerID))
}

func (c *Client) ListProducts(ctx context.Context, opts ListOptions) ([]models.Product, *responses.Pagination, error) {
	var result []models.Product
	env, err := c.get(ctx, "/products"+opts.encode(), &result)
	if err != nil {
		return nil, nil, err
	}
	return result, env.Pagination, nil
}

func (c *Client) ListLowStockProducts(ctx context.Context) ([]models.Product, error) {
	var result []models.Product
	if _, err := c.get(ctx, "/products/low-stock", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) CreateProduct(ctx context.Context, request *requests.CreateProduct) (*models.Product, error) {
	var result models.Product
	if _, err := c.post(ctx, "/products", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListAppointments(ctx context.Context, opts ListOptions) ([]models.Appointment, *responses.Pagination, error) {
	var result []models.Appointment
	env, err := c.get(ctx, "/appointments"+opts.encode(), &result)
	if err != nil {
		return nil, nil, err
	}
	return result, env.Pagination, nil
}

func (c *Client) ListTodayAppointments(ctx context.Context) ([]models.Appointment, error) {
	var result []models.Appointment
	if _, err := c.get(ctx, "/appointments/today", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) CheckAppointmentAvailability(ctx context.Context, date string) (*responses.OwnerAvailabilityResponse, error) {
	query := url.Values{}
	query.Set("date", date)
	var result responses.OwnerAvailabilityResponse
	if _, err := c.get(ctx, "/appointments/availability?"+query.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	var result models.Appointment
	if _, err := c.post(ctx, "/appointments", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error) {
	var result models.Appointment
	if _, err := c.put(ctx, "/appointments/"+url.PathEscape(appointmentID), request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetFinancialSummary(ctx context.Context, startDate, endDate string) (*responses.FinancialSummary, error) {
	query := url.Values{}
	if startDate != "" {
		query.Set("start_date", startDate)
	}
	if endDate != "" {
		query.Set("end_date", endDate)
	}
	path := "/financial/summary"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var result responses.FinancialSummary
	if _, err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetBusinessConfig(ctx context.Context) (*responses.BusinessConfigResponse, error) {
	var result responses.BusinessConfigResponse
	if _, err := c.get(ctx, "/config", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateBusinessConfig(ctx context.Context, request *requests.UpdateBusinessConfig) (*responses.BusinessConfigResponse, error) {
	var result responses.BusinessConfigResponse
	if _, err := c.put(ctx, "/config", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListTemplates(ctx context.Context) ([]responses.TemplateSummary, error) {
	var result []responses.TemplateSummary
	if _, err := c.get(ctx, "/config/templates", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) ApplyTemplate(ctx context.Context, templateKey string) (*responses.BusinessConfigResponse, error) {
	var result responses.BusinessConfigResponse
	request := &requests.ApplyTemplate{Template: templateKey}
	if _, err := c.post(ctx, "/config/templates/apply", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
