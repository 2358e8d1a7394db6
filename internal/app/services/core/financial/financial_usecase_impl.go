package financial

import (
	"context"
	"sync"
	"time"

	"bizsuite-service/internal/app/contracts"
	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/dto/responses"
	"bizsuite-service/internal/pkg/exceptions"
	"bizsuite-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	financialUsecaseInstance contracts.FinancialUsecase
	onceFinancialUsecase     sync.Once
)

type financialUsecase struct {
	Log                   *zap.Logger
	CategoryRepository    contracts.FinancialCategoryRepository
	TransactionRepository contracts.TransactionRepository
	PayableRepository     contracts.PayableRepository
	ReceivableRepository  contracts.ReceivableRepository
	InvoiceRepository     contracts.InvoiceRepository
}

func NewFinancialUsecase(
	logger *zap.Logger,
	categoryRepository contracts.FinancialCategoryRepository,
	transactionRepository contracts.TransactionRepository,
	payableRepository contracts.PayableRepository,
	receivableRepository contracts.ReceivableRepository,
	invoiceRepository contracts.InvoiceRepository,
) contracts.FinancialUsecase {
	onceFinancialUsecase.Do(func() {
		financialUsecaseInstance = &financialUsecase{
			Log:                   logger,
			CategoryRepository:    categoryRepository,
			TransactionRepository: transactionRepository,
			PayableRepository:     payableRepository,
			ReceivableRepository:  receivableRepository,
			InvoiceRepository:     invoiceRepository,
		}
	})
	return financialUsecaseInstance
}

func (uc *financialUsecase) ListCategories(ctx context.Context, companyID string) ([]models.FinancialCategory, error) {
	return uc.CategoryRepository.FindActiveCategories(ctx, companyID)
}

func (uc *financialUsecase) CreateCategory(ctx context.Context, companyID string, request *requests.CreateCategory) (*models.FinancialCategory, error) {
	now := time.Now()
	category := &models.FinancialCategory{
		CompanyID: companyID,
		Name:      request.Name,
		Type:      request.Type,
		Color:     request.Color,
		Active:    true,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	categoryID, err := uc.CategoryRepository.CreateCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	category.ID = categoryID
	return category, nil
}

func (uc *financialUsecase) DeleteCategory(ctx context.Context, companyID, categoryID string) error {
	category, err := uc.CategoryRepository.FindCategoryByID(ctx, companyID, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return exceptions.ErrCategoryNotFound(nil)
	}
	return uc.CategoryRepository.SoftDeleteCategory(ctx, companyID, categoryID)
}

func (uc *financialUsecase) ListTransactions(ctx context.Context, companyID string, request *requests.ListTransactions) ([]models.Transaction, int, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("financialUsecase.ListTransactions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)
	return uc.TransactionRepository.FindTransactions(ctx, companyID, request)
}

func (uc *financialUsecase) CreateTransaction(ctx context.Context, companyID string, request *requests.CreateTransaction) (*models.Transaction, error) {
	if request.CategoryID != "" {
		category, err := uc.CategoryRepository.FindCategoryByID(ctx, companyID, request.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, exceptions.ErrCategoryNotFound(nil)
		}
	}

	status := request.Status
	if status == "" {
		status = constvars.FinancialStatusPaid
	}

	now := time.Now()
	transaction := &models.Transaction{
		CompanyID:   companyID,
		CategoryID:  request.CategoryID,
		Type:        request.Type,
		Description: request.Description,
		Amount:      request.Amount,
		Date:        request.Date,
		Status:      status,
		TimeModel:   models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	transactionID, err := uc.TransactionRepository.CreateTransaction(ctx, transaction)
	if err != nil {
		return nil, err
	}
	transaction.ID = transactionID
	return transaction, nil
}

func (uc *financialUsecase) UpdateTransaction(ctx context.Context, companyID, transactionID string, request *requests.UpdateTransaction) (*models.Transaction, error) {
	transaction, err := uc.TransactionRepository.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, exceptions.ErrEntryNotFound(nil)
	}

	if request.CategoryID != "" {
		transaction.CategoryID = request.CategoryID
	}
	if request.Description != "" {
		transaction.Description = request.Description
	}
	if request.Amount > 0 {
		transaction.Amount = request.Amount
	}
	if request.Date != "" {
		transaction.Date = request.Date
	}
	if request.Status != "" {
		transaction.Status = request.Status
	}

	if err := uc.TransactionRepository.UpdateTransaction(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (uc *financialUsecase) DeleteTransaction(ctx context.Context, companyID, transactionID string) error {
	transaction, err := uc.TransactionRepository.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		return err
	}
	if transaction == nil {
		return exceptions.ErrEntryNotFound(nil)
	}
	return uc.TransactionRepository.DeleteTransaction(ctx, companyID, transactionID)
}

func (uc *financialUsecase) ListPayables(ctx context.Context, companyID string) ([]models.AccountPayable, error) {
	payables, err := uc.PayableRepository.FindPayables(ctx, companyID)
	if err != nil {
		return nil, err
	}

	// Pending entries past their due date roll over to overdue on read.
	today := time.Now().Format(constvars.CalendarDateLayout)
	for i := range payables {
		if payables[i].Status == constvars.FinancialStatusPending && payables[i].DueDate < today {
			payables[i].Status = constvars.FinancialStatusOverdue
			if err := uc.PayableRepository.UpdatePayable(ctx, &payables[i]); err != nil {
				return nil, err
			}
		}
	}
	return payables, nil
}

func (uc *financialUsecase) CreatePayable(ctx context.Context, companyID string, request *requests.CreatePayable) (*models.AccountPayable, error) {
	now := time.Now()
	payable := &models.AccountPayable{
		CompanyID:   companyID,
		Description: request.Description,
		Supplier:    request.Supplier,
		Amount:      request.Amount,
		DueDate:     request.DueDate,
		Status:      constvars.FinancialStatusPending,
		TimeModel:   models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	payableID, err := uc.PayableRepository.CreatePayable(ctx, payable)
	if err != nil {
		return nil, err
	}
	payable.ID = payableID
	return payable, nil
}

// PayPayable marks the entry paid and records the matching expense
// transaction so the summary stays consistent.
func (uc *financialUsecase) PayPayable(ctx context.Context, companyID, payableID string) (*models.AccountPayable, error) {
	payable, err := uc.PayableRepository.FindPayableByID(ctx, companyID, payableID)
	if err != nil {
		return nil, err
	}
	if payable == nil {
		return nil, exceptions.ErrEntryNotFound(nil)
	}

	now := time.Now()
	payable.Status = constvars.FinancialStatusPaid
	payable.PaidDate = now.Format(constvars.CalendarDateLayout)
	if err := uc.PayableRepository.UpdatePayable(ctx, payable); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		CompanyID:   companyID,
		Type:        constvars.TransactionTypeExpense,
		Description: payable.Description,
		Amount:      payable.Amount,
		Date:        payable.PaidDate,
		Status:      constvars.FinancialStatusPaid,
		TimeModel:   models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	if _, err := uc.TransactionRepository.CreateTransaction(ctx, transaction); err != nil {
		return nil, err
	}
	return payable, nil
}

func (uc *financialUsecase) DeletePayable(ctx context.Context, companyID, payableID string) error {
	payable, err := uc.PayableRepository.FindPayableByID(ctx, companyID, payableID)
	if err != nil {
		return err
	}
	if payable == nil {
		return exceptions.ErrEntryNotFound(nil)
	}
	return uc.PayableRepository.DeletePayable(ctx, companyID, payableID)
}

func (uc *financialUsecase) ListReceivables(ctx context.Context, companyID string) ([]models.AccountReceivable, error) {
	receivables, err := uc.ReceivableRepository.FindReceivables(ctx, companyID)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format(constvars.CalendarDateLayout)
	for i := range receivables {
		if receivables[i].Status == constvars.FinancialStatusPending && receivables[i].DueDate < today {
			receivables[i].Status = constvars.FinancialStatusOverdue
			if err := uc.ReceivableRepository.UpdateReceivable(ctx, &receivables[i]); err != nil {
				return nil, err
			}
		}
	}
	return receivables, nil
}

func (uc *financialUsecase) CreateReceivable(ctx context.Context, companyID string, request *requests.CreateReceivable) (*models.AccountReceivable, error) {
	now := time.Now()
	receivable := &models.AccountReceivable{
		CompanyID:    companyID,
		Description:  request.Description,
		CustomerName: request.CustomerName,
		Amount:       request.Amount,
		DueDate:      request.DueDate,
		Status:       constvars.FinancialStatusPending,
		TimeModel:    models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	receivableID, err := uc.ReceivableRepository.CreateReceivable(ctx, receivable)
	if err != nil {
		return nil, err
	}
	receivable.ID = receivableID
	return receivable, nil
}

func (uc *financialUsecase) ReceiveReceivable(ctx context.Context, companyID, receivableID string) (*models.AccountReceivable, error) {
	receivable, err := uc.ReceivableRepository.FindReceivableByID(ctx, companyID, receivableID)
	if err != nil {
		return nil, err
	}
	if receivable == nil {
		return nil, exceptions.ErrEntryNotFound(nil)
	}

	now := time.Now()
	receivable.Status = constvars.FinancialStatusReceived
	receivable.ReceivedDate = now.Format(constvars.CalendarDateLayout)
	if err := uc.ReceivableRepository.UpdateReceivable(ctx, receivable); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		CompanyID:   companyID,
		Type:        constvars.TransactionTypeIncome,
		Description: receivable.Description,
		Amount:      receivable.Amount,
		Date:        receivable.ReceivedDate,
		Status:      constvars.FinancialStatusReceived,
		TimeModel:   models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	if _, err := uc.TransactionRepository.CreateTransaction(ctx, transaction); err != nil {
		return nil, err
	}
	return receivable, nil
}

func (uc *financialUsecase) DeleteReceivable(ctx context.Context, companyID, receivableID string) error {
	receivable, err := uc.ReceivableRepository.FindReceivableByID(ctx, companyID, receivableID)
	if err != nil {
		return err
	}
	if receivable == nil {
		return exceptions.ErrEntryNotFound(nil)
	}
	return uc.ReceivableRepository.DeleteReceivable(ctx, companyID, receivableID)
}

func (uc *financialUsecase) ListInvoices(ctx context.Context, companyID string) ([]models.Invoice, error) {
	return uc.InvoiceRepository.FindInvoices(ctx, companyID)
}

func (uc *financialUsecase) CreateInvoice(ctx context.Context, companyID string, request *requests.CreateInvoice) (*models.Invoice, error) {
	count, err := uc.InvoiceRepository.CountInvoices(ctx, companyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	invoice := &models.Invoice{
		CompanyID:    companyID,
		Number:       utils.GenerateInvoiceNumber(now, count+1),
		CustomerName: request.CustomerName,
		Items:        mapInvoiceItems(request.Items),
		IssueDate:    request.IssueDate,
		DueDate:      request.DueDate,
		Status:       constvars.FinancialStatusPending,
		TimeModel:    models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	invoice.Total = invoiceTotal(invoice.Items)

	invoiceID, err := uc.InvoiceRepository.CreateInvoice(ctx, invoice)
	if err != nil {
		return nil, err
	}
	invoice.ID = invoiceID
	return invoice, nil
}

func (uc *financialUsecase) UpdateInvoice(ctx context.Context, companyID, invoiceID string, request *requests.UpdateInvoice) (*models.Invoice, error) {
	invoice, err := uc.InvoiceRepository.FindInvoiceByID(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, exceptions.ErrEntryNotFound(nil)
	}

	if request.CustomerName != "" {
		invoice.CustomerName = request.CustomerName
	}
	if len(request.Items) > 0 {
		invoice.Items = mapInvoiceItems(request.Items)
		invoice.Total = invoiceTotal(invoice.Items)
	}
	if request.DueDate != "" {
		invoice.DueDate = request.DueDate
	}
	if request.Status != "" {
		invoice.Status = request.Status
	}

	if err := uc.InvoiceRepository.UpdateInvoice(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (uc *financialUsecase) DeleteInvoice(ctx context.Context, companyID, invoiceID string) error {
	invoice, err := uc.InvoiceRepository.FindInvoiceByID(ctx, companyID, invoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return exceptions.ErrEntryNotFound(nil)
	}
	return uc.InvoiceRepository.DeleteInvoice(ctx, companyID, invoiceID)
}

// GetSummary aggregates the period's cash flow. ProjectedBalance assumes
// every pending receivable arrives and every pending payable gets paid.
func (uc *financialUsecase) GetSummary(ctx context.Context, companyID, startDate, endDate string) (*responses.FinancialSummary, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("financialUsecase.GetSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	transactions, err := uc.TransactionRepository.FindTransactionsByDateRange(ctx, companyID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	summary := &responses.FinancialSummary{}
	for _, transaction := range transactions {
		switch transaction.Type {
		case constvars.TransactionTypeIncome:
			summary.Income += transaction.Amount
		case constvars.TransactionTypeExpense:
			summary.Expenses += transaction.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expenses

	pendingPayables, err := uc.PayableRepository.FindPendingPayables(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, payable := range pendingPayables {
		summary.PendingPayables += payable.Amount
	}

	pendingReceivables, err := uc.ReceivableRepository.FindPendingReceivables(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, receivable := range pendingReceivables {
		summary.PendingReceivables += receivable.Amount
	}

	summary.ProjectedBalance = summary.Balance + summary.PendingReceivables - summary.PendingPayables
	return summary, nil
}

func mapInvoiceItems(items []requests.InvoiceItem) []models.InvoiceItem {
	mapped := make([]models.InvoiceItem, 0, len(items))
	for _, item := range items {
		mapped = append(mapped, models.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return mapped
}

func invoiceTotal(items []models.InvoiceItem) float64 {
	total := 0.0
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}
