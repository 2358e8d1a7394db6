package contracts

import (
	"context"

	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/dto/requests"
)

type ProductUsecase interface {
	ListProducts(ctx context.Context, companyID string, request *requests.ListProducts) ([]models.Product, int, error)
	ListLowStockProducts(ctx context.Context, companyID string) ([]models.Product, error)
	CreateProduct(ctx context.Context, companyID string, request *requests.CreateProduct) (*models.Product, error)
	GetProduct(ctx context.Context, companyID, productID string) (*models.Product, error)
	UpdateProduct(ctx context.Context, companyID, productID string, request *requests.UpdateProduct) (*models.Product, error)
	DeleteProduct(ctx context.Context, companyID, productID string) error
	CreateStockMovement(ctx context.Context, companyID, productID, userID string, request *requests.CreateStockMovement) (*models.StockMovement, error)
	ListStockMovements(ctx context.Context, companyID, productID string, page, pageSize int) ([]models.StockMovement, int, error)
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) (string, error)
	FindProductByID(ctx context.Context, companyID, productID string) (*models.Product, error)
	FindProducts(ctx context.Context, companyID string, filter *requests.ListProducts) ([]models.Product, int, error)
	FindActiveProducts(ctx context.Context, companyID string) ([]models.Product, error)
	FindLowStockProducts(ctx context.Context, companyID string) ([]models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	SoftDeleteProduct(ctx context.Context, companyID, productID string) error
}

type StockMovementRepository interface {
	CreateStockMovement(ctx context.Context, movement *models.StockMovement) (string, error)
	FindStockMovementsByProduct(ctx context.Context, companyID, productID string, page, pageSize int) ([]models.StockMovement, int, error)
}
