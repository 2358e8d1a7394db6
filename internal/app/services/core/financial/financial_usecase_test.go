package financial

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/dto/requests"
)

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) (string, error) {
	args := m.Called(ctx, transaction)
	return args.String(0), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, companyID, transactionID string) (*models.Transaction, error) {
	args := m.Called(ctx, companyID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context, companyID string, filter *requests.ListTransactions) ([]models.Transaction, int, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]models.Transaction), args.Int(1), args.Error(2)
}

func (m *MockTransactionRepository) FindTransactionsByDateRange(ctx context.Context, companyID, startDate, endDate string) ([]models.Transaction, error) {
	args := m.Called(ctx, companyID, startDate, endDate)
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, transaction *models.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, companyID, transactionID string) error {
	args := m.Called(ctx, companyID, transactionID)
	return args.Error(0)
}

type MockPayableRepository struct {
	mock.Mock
}

func (m *MockPayableRepository) CreatePayable(ctx context.Context, payable *models.AccountPayable) (string, error) {
	args := m.Called(ctx, payable)
	return args.String(0), args.Error(1)
}

func (m *MockPayableRepository) FindPayableByID(ctx context.Context, companyID, payableID string) (*models.AccountPayable, error) {
	args := m.Called(ctx, companyID, payableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AccountPayable), args.Error(1)
}

func (m *MockPayableRepository) FindPayables(ctx context.Context, companyID string) ([]models.AccountPayable, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]models.AccountPayable), args.Error(1)
}

func (m *MockPayableRepository) FindPendingPayables(ctx context.Context, companyID string) ([]models.AccountPayable, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]models.AccountPayable), args.Error(1)
}

func (m *MockPayableRepository) UpdatePayable(ctx context.Context, payable *models.AccountPayable) error {
	args := m.Called(ctx, payable)
	return args.Error(0)
}

func (m *MockPayableRepository) DeletePayable(ctx context.Context, companyID, payableID string) error {
	args := m.Called(ctx, companyID, payableID)
	return args.Error(0)
}

type MockReceivableRepository struct {
	mock.Mock
}

func (m *MockReceivableRepository) CreateReceivable(ctx context.Context, receivable *models.AccountReceivable) (string, error) {
	args := m.Called(ctx, receivable)
	return args.String(0), args.Error(1)
}

func (m *MockReceivableRepository) FindReceivableByID(ctx context.Context, companyID, receivableID string) (*models.AccountReceivable, error) {
	args := m.Called(ctx, companyID, receivableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AccountReceivable), args.Error(1)
}

func (m *MockReceivableRepository) FindReceivables(ctx context.Context, companyID string) ([]models.AccountReceivable, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]models.AccountReceivable), args.Error(1)
}

func (m *MockReceivableRepository) FindPendingReceivables(ctx context.Context, companyID string) ([]models.AccountReceivable, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]models.AccountReceivable), args.Error(1)
}

func (m *MockReceivableRepository) UpdateReceivable(ctx context.Context, receivable *models.AccountReceivable) error {
	args := m.Called(ctx, receivable)
	return args.Error(0)
}

func (m *MockReceivableRepository) DeleteReceivable(ctx context.Context, companyID, receivableID string) error {
	args := m.Called(ctx, companyID, receivableID)
	return args.Error(0)
}

func newFinancialUsecase(transactions *MockTransactionRepository, payables *MockPayableRepository, receivables *MockReceivableRepository) *financialUsecase {
	return &financialUsecase{
		Log:                   zap.NewNop(),
		TransactionRepository: transactions,
		PayableRepository:     payables,
		ReceivableRepository:  receivables,
	}
}

func TestGetSummary(t *testing.T) {
	transactions := new(MockTransactionRepository)
	payables := new(MockPayableRepository)
	receivables := new(MockReceivableRepository)
	usecase := newFinancialUsecase(transactions, payables, receivables)

	transactions.On("FindTransactionsByDateRange", mock.Anything, "company1", "2024-06-01", "2024-06-30").Return([]models.Transaction{
		{Type: constvars.TransactionTypeIncome, Amount: 500},
		{Type: constvars.TransactionTypeIncome, Amount: 250},
		{Type: constvars.TransactionTypeExpense, Amount: 300},
	}, nil)
	payables.On("FindPendingPayables", mock.Anything, "company1").Return([]models.AccountPayable{
		{Amount: 120, Status: constvars.FinancialStatusPending},
		{Amount: 80, Status: constvars.FinancialStatusOverdue},
	}, nil)
	receivables.On("FindPendingReceivables", mock.Anything, "company1").Return([]models.AccountReceivable{
		{Amount: 400, Status: constvars.FinancialStatusPending},
	}, nil)

	summary, err := usecase.GetSummary(context.Background(), "company1", "2024-06-01", "2024-06-30")
	assert.NoError(t, err)
	assert.Equal(t, 750.0, summary.Income)
	assert.Equal(t, 300.0, summary.Expenses)
	assert.Equal(t, 450.0, summary.Balance)
	assert.Equal(t, 200.0, summary.PendingPayables, "overdue entries still count as pending money out")
	assert.Equal(t, 400.0, summary.PendingReceivables)
	assert.Equal(t, 650.0, summary.ProjectedBalance)
}

func TestListPayables_RollsOverdueEntries(t *testing.T) {
	transactions := new(MockTransactionRepository)
	payables := new(MockPayableRepository)
	receivables := new(MockReceivableRepository)
	usecase := newFinancialUsecase(transactions, payables, receivables)

	yesterday := time.Now().AddDate(0, 0, -1).Format(constvars.CalendarDateLayout)
	nextWeek := time.Now().AddDate(0, 0, 7).Format(constvars.CalendarDateLayout)

	payables.On("FindPayables", mock.Anything, "company1").Return([]models.AccountPayable{
		{ID: "late", Amount: 100, DueDate: yesterday, Status: constvars.FinancialStatusPending},
		{ID: "upcoming", Amount: 200, DueDate: nextWeek, Status: constvars.FinancialStatusPending},
		{ID: "settled", Amount: 300, DueDate: yesterday, Status: constvars.FinancialStatusPaid},
	}, nil)
	payables.On("UpdatePayable", mock.Anything, mock.MatchedBy(func(payable *models.AccountPayable) bool {
		return payable.ID == "late" && payable.Status == constvars.FinancialStatusOverdue
	})).Return(nil).Once()

	result, err := usecase.ListPayables(context.Background(), "company1")
	assert.NoError(t, err)
	assert.Equal(t, constvars.FinancialStatusOverdue, result[0].Status)
	assert.Equal(t, constvars.FinancialStatusPending, result[1].Status)
	assert.Equal(t, constvars.FinancialStatusPaid, result[2].Status, "already settled entries are left alone")
	payables.AssertExpectations(t)
}

func TestPayPayable_RecordsTheMatchingExpense(t *testing.T) {
	transactions := new(MockTransactionRepository)
	payables := new(MockPayableRepository)
	receivables := new(MockReceivableRepository)
	usecase := newFinancialUsecase(transactions, payables, receivables)

	payables.On("FindPayableByID", mock.Anything, "company1", "payable1").Return(&models.AccountPayable{
		ID:          "payable1",
		CompanyID:   "company1",
		Description: "Aluguel",
		Amount:      1500,
		Status:      constvars.FinancialStatusPending,
	}, nil)
	payables.On("UpdatePayable", mock.Anything, mock.MatchedBy(func(payable *models.AccountPayable) bool {
		return payable.Status == constvars.FinancialStatusPaid && payable.PaidDate != ""
	})).Return(nil)
	transactions.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(transaction *models.Transaction) bool {
		return transaction.Type == constvars.TransactionTypeExpense &&
			transaction.Amount == 1500 &&
			transaction.Description == "Aluguel" &&
			transaction.Status == constvars.FinancialStatusPaid
	})).Return("transaction1", nil)

	paid, err := usecase.PayPayable(context.Background(), "company1", "payable1")
	assert.NoError(t, err)
	assert.Equal(t, constvars.FinancialStatusPaid, paid.Status)
	transactions.AssertExpectations(t)
}

func TestReceiveReceivable_RecordsTheMatchingIncome(t *testing.T) {
	transactions := new(MockTransactionRepository)
	payables := new(MockPayableRepository)
	receivables := new(MockReceivableRepository)
	usecase := newFinancialUsecase(transactions, payables, receivables)

	receivables.On("FindReceivableByID", mock.Anything, "company1", "receivable1").Return(&models.AccountReceivable{
		ID:          "receivable1",
		CompanyID:   "company1",
		Description: "Pacote mensal",
		Amount:      600,
		Status:      constvars.FinancialStatusPending,
	}, nil)
	receivables.On("UpdateReceivable", mock.Anything, mock.Anything).Return(nil)
	transactions.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(transaction *models.Transaction) bool {
		return transaction.Type == constvars.TransactionTypeIncome && transaction.Amount == 600
	})).Return("transaction1", nil)

	received, err := usecase.ReceiveReceivable(context.Background(), "company1", "receivable1")
	assert.NoError(t, err)
	assert.Equal(t, constvars.FinancialStatusReceived, received.Status)
	transactions.AssertExpectations(t)
}
