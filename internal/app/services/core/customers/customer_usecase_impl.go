package customers

import (
	"context"
	"sync"
	"time"

	"bizsuite-service/internal/app/contracts"
	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

var (
	customerUsecaseInstance contracts.CustomerUsecase
	onceCustomerUsecase     sync.Once
)

type customerUsecase struct {
	Log                *zap.Logger
	CustomerRepository contracts.CustomerRepository
}

func NewCustomerUsecase(logger *zap.Logger, customerRepository contracts.CustomerRepository) contracts.CustomerUsecase {
	onceCustomerUsecase.Do(func() {
		customerUsecaseInstance = &customerUsecase{
			Log:                logger,
			CustomerRepository: customerRepository,
		}
	})
	return customerUsecaseInstance
}

func (uc *customerUsecase) ListCustomers(ctx context.Context, companyID string, request *requests.ListCustomers) ([]models.Customer, int, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("customerUsecase.ListCustomers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)
	return uc.CustomerRepository.FindCustomers(ctx, companyID, request.Search, request.Page, request.PageSize)
}

func (uc *customerUsecase) CreateCustomer(ctx context.Context, companyID string, request *requests.CreateCustomer) (*models.Customer, error) {
	now := time.Now()
	customer := &models.Customer{
		CompanyID: companyID,
		Name:      request.Name,
		Email:     request.Email,
		Phone:     request.Phone,
		Notes:     request.Notes,
		Active:    true,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	customerID, err := uc.CustomerRepository.CreateCustomer(ctx, customer)
	if err != nil {
		return nil, err
	}
	customer.ID = customerID
	return customer, nil
}

func (uc *customerUsecase) GetCustomer(ctx context.Context, companyID, customerID string) (*models.Customer, error) {
	customer, err := uc.CustomerRepository.FindCustomerByID(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, exceptions.ErrCustomerNotFound(nil)
	}
	return customer, nil
}

func (uc *customerUsecase) UpdateCustomer(ctx context.Context, companyID, customerID string, request *requests.UpdateCustomer) (*models.Customer, error) {
	customer, err := uc.GetCustomer(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}

	customer.Name = request.Name
	customer.Email = request.Email
	customer.Phone = request.Phone
	customer.Notes = request.Notes
	if request.Active != nil {
		customer.Active = *request.Active
	}

	if err := uc.CustomerRepository.UpdateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (uc *customerUsecase) DeleteCustomer(ctx context.Context, companyID, customerID string) error {
	if _, err := uc.GetCustomer(ctx, companyID, customerID); err != nil {
		return err
	}
	return uc.CustomerRepository.SoftDeleteCustomer(ctx, companyID, customerID)
}
