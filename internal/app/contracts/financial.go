package contracts

import (
	"context"

	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/dto/responses"
)

type FinancialUsecase interface {
	ListCategories(ctx context.Context, companyID string) ([]models.FinancialCategory, error)
	CreateCategory(ctx context.Context, companyID string, request *requests.CreateCategory) (*models.FinancialCategory, error)
	DeleteCategory(ctx context.Context, companyID, categoryID string) error

	ListTransactions(ctx context.Context, companyID string, request *requests.ListTransactions) ([]models.Transaction, int, error)
	CreateTransaction(ctx context.Context, companyID string, request *requests.CreateTransaction) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, companyID, transactionID string, request *requests.UpdateTransaction) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, companyID, transactionID string) error

	ListPayables(ctx context.Context, companyID string) ([]models.AccountPayable, error)
	CreatePayable(ctx context.Context, companyID string, request *requests.CreatePayable) (*models.AccountPayable, error)
	PayPayable(ctx context.Context, companyID, payableID string) (*models.AccountPayable, error)
	DeletePayable(ctx context.Context, companyID, payableID string) error

	ListReceivables(ctx context.Context, companyID string) ([]models.AccountReceivable, error)
	CreateReceivable(ctx context.Context, companyID string, request *requests.CreateReceivable) (*models.AccountReceivable, error)
	ReceiveReceivable(ctx context.Context, companyID, receivableID string) (*models.AccountReceivable, error)
	DeleteReceivable(ctx context.Context, companyID, receivableID string) error

	ListInvoices(ctx context.Context, companyID string) ([]models.Invoice, error)
	CreateInvoice(ctx context.Context, companyID string, request *requests.CreateInvoice) (*models.Invoice, error)
	UpdateInvoice(ctx context.Context, companyID, invoiceID string, request *requests.UpdateInvoice) (*models.Invoice, error)
	DeleteInvoice(ctx context.Context, companyID, invoiceID string) error

	GetSummary(ctx context.Context, companyID, startDate, endDate string) (*responses.FinancialSummary, error)
}

type FinancialCategoryRepository interface {
	CreateCategory(ctx context.Context, category *models.FinancialCategory) (string, error)
	FindCategoryByID(ctx context.Context, companyID, categoryID string) (*models.FinancialCategory, error)
	FindActiveCategories(ctx context.Context, companyID string) ([]models.FinancialCategory, error)
	SoftDeleteCategory(ctx context.Context, companyID, categoryID string) error
}

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, transaction *models.Transaction) (string, error)
	FindTransactionByID(ctx context.Context, companyID, transactionID string) (*models.Transaction, error)
	FindTransactions(ctx context.Context, companyID string, filter *requests.ListTransactions) ([]models.Transaction, int, error)
	FindTransactionsByDateRange(ctx context.Context, companyID, startDate, endDate string) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, transaction *models.Transaction) error
	DeleteTransaction(ctx context.Context, companyID, transactionID string) error
}

type PayableRepository interface {
	CreatePayable(ctx context.Context, payable *models.AccountPayable) (string, error)
	FindPayableByID(ctx context.Context, companyID, payableID string) (*models.AccountPayable, error)
	FindPayables(ctx context.Context, companyID string) ([]models.AccountPayable, error)
	FindPendingPayables(ctx context.Context, companyID string) ([]models.AccountPayable, error)
	UpdatePayable(ctx context.Context, payable *models.AccountPayable) error
	DeletePayable(ctx context.Context, companyID, payableID string) error
}

type ReceivableRepository interface {
	CreateReceivable(ctx context.Context, receivable *models.AccountReceivable) (string, error)
	FindReceivableByID(ctx context.Context, companyID, receivableID string) (*models.AccountReceivable, error)
	FindReceivables(ctx context.Context, companyID string) ([]models.AccountReceivable, error)
	FindPendingReceivables(ctx context.Context, companyID string) ([]models.AccountReceivable, error)
	UpdateReceivable(ctx context.Context, receivable *models.AccountReceivable) error
	DeleteReceivable(ctx context.Context, companyID, receivableID string) error
}

type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, invoice *models.Invoice) (string, error)
	FindInvoiceByID(ctx context.Context, companyID, invoiceID string) (*models.Invoice, error)
	FindInvoices(ctx context.Context, companyID string) ([]models.Invoice, error)
	CountInvoices(ctx context.Context, companyID string) (int, error)
	UpdateInvoice(ctx context.Context, invoice *models.Invoice) error
	DeleteInvoice(ctx context.Context, companyID, invoiceID string) error
}
