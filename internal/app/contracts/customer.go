package contracts

import (
	"context"

	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/dto/requests"
)

type CustomerUsecase interface {
	ListCustomers(ctx context.Context, companyID string, request *requests.ListCustomers) ([]models.Customer, int, error)
	CreateCustomer(ctx context.Context, companyID string, request *requests.CreateCustomer) (*models.Customer, error)
	GetCustomer(ctx context.Context, companyID, customerID string) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, companyID, customerID string, request *requests.UpdateCustomer) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, companyID, customerID string) error
}

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) (string, error)
	FindCustomerByID(ctx context.Context, companyID, customerID string) (*models.Customer, error)
	FindCustomerByEmail(ctx context.Context, companyID, email string) (*models.Customer, error)
	FindCustomers(ctx context.Context, companyID, search string, page, pageSize int) ([]models.Customer, int, error)
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
	SoftDeleteCustomer(ctx context.Context, companyID, customerID string) error
}
