package products

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
	productUsecaseInstance contracts.ProductUsecase
	onceProductUsecase     sync.Once
)

type productUsecase struct {
	Log                     *zap.Logger
	ProductRepository       contracts.ProductRepository
	StockMovementRepository contracts.StockMovementRepository
}

func NewProductUsecase(
	logger *zap.Logger,
	productRepository contracts.ProductRepository,
	stockMovementRepository contracts.StockMovementRepository,
) contracts.ProductUsecase {
	onceProductUsecase.Do(func() {
		productUsecaseInstance = &productUsecase{
			Log:                     logger,
			ProductRepository:       productRepository,
			StockMovementRepository: stockMovementRepository,
		}
	})
	return productUsecaseInstance
}

func (uc *productUsecase) ListProducts(ctx context.Context, companyID string, request *requests.ListProducts) ([]models.Product, int, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("productUsecase.ListProducts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)
	return uc.ProductRepository.FindProducts(ctx, companyID, request)
}

func (uc *productUsecase) ListLowStockProducts(ctx context.Context, companyID string) ([]models.Product, error) {
	return uc.ProductRepository.FindLowStockProducts(ctx, companyID)
}

func (uc *productUsecase) CreateProduct(ctx context.Context, companyID string, request *requests.CreateProduct) (*models.Product, error) {
	now := time.Now()
	product := &models.Product{
		CompanyID:   companyID,
		Name:        request.Name,
		Description: request.Description,
		Category:    request.Category,
		Price:       request.Price,
		Cost:        request.Cost,
		Quantity:    request.Quantity,
		MinQuantity: request.MinQuantity,
		Unit:        request.Unit,
		Active:      true,
		TimeModel:   models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	productID, err := uc.ProductRepository.CreateProduct(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = productID

	// Opening stock shows up in the movement history too.
	if request.Quantity > 0 {
		movement := &models.StockMovement{
			CompanyID: companyID,
			ProductID: productID,
			Type:      constvars.StockMovementIn,
			Quantity:  request.Quantity,
			Reason:    "initial stock",
			TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
		}
		if _, err := uc.StockMovementRepository.CreateStockMovement(ctx, movement); err != nil {
			return nil, err
		}
	}
	return product, nil
}

func (uc *productUsecase) GetProduct(ctx context.Context, companyID, productID string) (*models.Product, error) {
	product, err := uc.ProductRepository.FindProductByID(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, exceptions.ErrProductNotFound(nil)
	}
	return product, nil
}

// UpdateProduct never touches Quantity. Stock changes only happen through
// CreateStockMovement so the counter always matches the movement history.
func (uc *productUsecase) UpdateProduct(ctx context.Context, companyID, productID string, request *requests.UpdateProduct) (*models.Product, error) {
	product, err := uc.GetProduct(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}

	product.Name = request.Name
	product.Description = request.Description
	product.Category = request.Category
	product.Price = request.Price
	product.Cost = request.Cost
	product.MinQuantity = request.MinQuantity
	product.Unit = request.Unit
	if request.Active != nil {
		product.Active = *request.Active
	}

	if err := uc.ProductRepository.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *productUsecase) DeleteProduct(ctx context.Context, companyID, productID string) error {
	if _, err := uc.GetProduct(ctx, companyID, productID); err != nil {
		return err
	}
	return uc.ProductRepository.SoftDeleteProduct(ctx, companyID, productID)
}

func (uc *productUsecase) CreateStockMovement(ctx context.Context, companyID, productID, userID string, request *requests.CreateStockMovement) (*models.StockMovement, error) {
	product, err := uc.GetProduct(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}

	switch request.Type {
	case constvars.StockMovementIn:
		product.Quantity += request.Quantity
	case constvars.StockMovementOut:
		if product.Quantity < request.Quantity {
			return nil, exceptions.ErrInsufficientStock(nil)
		}
		product.Quantity -= request.Quantity
	}

	now := time.Now()
	movement := &models.StockMovement{
		CompanyID: companyID,
		ProductID: productID,
		Type:      request.Type,
		Quantity:  request.Quantity,
		Reason:    request.Reason,
		UserID:    userID,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	movementID, err := uc.StockMovementRepository.CreateStockMovement(ctx, movement)
	if err != nil {
		return nil, err
	}
	movement.ID = movementID

	if err := uc.ProductRepository.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return movement, nil
}

func (uc *productUsecase) ListStockMovements(ctx context.Context, companyID, productID string, page, pageSize int) ([]models.StockMovement, int, error) {
	if _, err := uc.GetProduct(ctx, companyID, productID); err != nil {
		return nil, 0, err
	}
	return uc.StockMovementRepository.FindStockMovementsByProduct(ctx, companyID, productID, page, pageSize)
}
