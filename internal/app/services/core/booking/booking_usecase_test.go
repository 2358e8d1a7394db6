package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	appconfig "bizsuite-service/internal/app/config"
	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/exceptions"
)

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) CreateCompany(ctx context.Context, company *models.Company) (string, error) {
	args := m.Called(ctx, company)
	return args.String(0), args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*models.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyBySlug(ctx context.Context, slug string) (*models.Company, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company *models.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) CreateConfig(ctx context.Context, config *models.BusinessConfig) (string, error) {
	args := m.Called(ctx, config)
	return args.String(0), args.Error(1)
}

func (m *MockConfigRepository) FindConfigByCompanyID(ctx context.Context, companyID string) (*models.BusinessConfig, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BusinessConfig), args.Error(1)
}

func (m *MockConfigRepository) UpdateConfig(ctx context.Context, config *models.BusinessConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) (string, error) {
	args := m.Called(ctx, customer)
	return args.String(0), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, companyID, customerID string) (*models.Customer, error) {
	args := m.Called(ctx, companyID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByEmail(ctx context.Context, companyID, email string) (*models.Customer, error) {
	args := m.Called(ctx, companyID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomers(ctx context.Context, companyID, search string, page, pageSize int) ([]models.Customer, int, error) {
	args := m.Called(ctx, companyID, search, page, pageSize)
	return args.Get(0).([]models.Customer), args.Int(1), args.Error(2)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) SoftDeleteCustomer(ctx context.Context, companyID, customerID string) error {
	args := m.Called(ctx, companyID, customerID)
	return args.Error(0)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindAppointmentByID(ctx context.Context, companyID, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, companyID, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAppointments(ctx context.Context, companyID string, filter *requests.ListAppointments) ([]models.Appointment, int, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]models.Appointment), args.Int(1), args.Error(2)
}

func (m *MockAppointmentRepository) FindActiveAppointmentsByDate(ctx context.Context, companyID, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, companyID, date)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) DeleteAppointment(ctx context.Context, companyID, appointmentID string) error {
	args := m.Called(ctx, companyID, appointmentID)
	return args.Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockMailerService struct {
	mock.Mock
}

func (m *MockMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type bookingFixture struct {
	usecase      *bookingUsecase
	companies    *MockCompanyRepository
	configs      *MockConfigRepository
	customers    *MockCustomerRepository
	appointments *MockAppointmentRepository
	locker       *MockLockerService
	mailer       *MockMailerService
}

func newBookingFixture() *bookingFixture {
	fixture := &bookingFixture{
		companies:    new(MockCompanyRepository),
		configs:      new(MockConfigRepository),
		customers:    new(MockCustomerRepository),
		appointments: new(MockAppointmentRepository),
		locker:       new(MockLockerService),
		mailer:       new(MockMailerService),
	}
	fixture.usecase = &bookingUsecase{
		Log:                   zap.NewNop(),
		CompanyRepository:     fixture.companies,
		ConfigRepository:      fixture.configs,
		CustomerRepository:    fixture.customers,
		AppointmentRepository: fixture.appointments,
		LockerService:         fixture.locker,
		MailerService:         fixture.mailer,
		InternalConfig: &appconfig.InternalConfig{
			App: appconfig.App{BookingLockTTLInSeconds: 10},
		},
	}
	return fixture
}

func openCompany() *models.Company {
	return &models.Company{
		ID:           "company1",
		Name:         "Barbearia Demo",
		Slug:         "barbearia-demo",
		BusinessType: "barbershop",
		Email:        "owner@example.com",
		Active:       true,
		OpeningHours: map[string]models.OpeningHours{
			"monday":    {Open: "09:00", Close: "12:00"},
			"tuesday":   {Open: "09:00", Close: "12:00"},
			"wednesday": {Open: "09:00", Close: "12:00"},
			"thursday":  {Open: "09:00", Close: "12:00"},
			"friday":    {Open: "09:00", Close: "12:00"},
			"saturday":  {Open: "09:00", Close: "12:00"},
			"sunday":    {Closed: true},
		},
	}
}

func quietConfig() *models.BusinessConfig {
	return &models.BusinessConfig{
		CompanyID: "company1",
		Appointments: models.AppointmentSettings{
			IntervalMinutes:        30,
			DefaultDurationMinutes: 30,
		},
	}
}

// futureDate returns the next occurrence of a non-Sunday date at least one
// day out, so availability math never collides with the closed day.
func futureDate(t *testing.T) string {
	t.Helper()
	day := time.Now().AddDate(0, 0, 1)
	for day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}
	return day.Format(constvars.CalendarDateLayout)
}

func assertCustomError(t *testing.T, err error, expected *exceptions.CustomError) {
	t.Helper()
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, expected.StatusCode, customErr.StatusCode)
	assert.Equal(t, expected.DevMessage, customErr.DevMessage)
}

func TestGetAvailability(t *testing.T) {
	t.Run("free slots exclude overlapping appointments", func(t *testing.T) {
		fixture := newBookingFixture()
		date := futureDate(t)

		fixture.companies.On("FindCompanyBySlug", mock.Anything, "barbearia-demo").Return(openCompany(), nil)
		fixture.configs.On("FindConfigByCompanyID", mock.Anything, "company1").Return(quietConfig(), nil)
		fixture.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "company1", date).Return([]models.Appointment{
			{Time: "10:00", DurationMinutes: 30, Status: constvars.AppointmentStatusConfirmed},
		}, nil)

		result, err := fixture.usecase.GetAvailability(context.Background(), "barbearia-demo", date, 0)
		assert.NoError(t, err)
		assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, result.Slots)
		assert.Empty(t, result.Message)
	})

	t.Run("longer bookings need room before closing", func(t *testing.T) {
		fixture := newBookingFixture()
		date := futureDate(t)

		fixture.companies.On("FindCompanyBySlug", mock.Anything, "barbearia-demo").Return(openCompany(), nil)
		fixture.configs.On("FindConfigByCompanyID", mock.Anything, "company1").Return(quietConfig(), nil)
		fixture.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "company1", date).Return([]models.Appointment{
			{Time: "10:00", DurationMinutes: 30},
		}, nil)

		result, err := fixture.usecase.GetAvailability(context.Background(), "barbearia-demo", date, 60)
		assert.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:30", "11:00"}, result.Slots)
	})

	t.Run("past date is a message, not an error", func(t *testing.T) {
		fixture := newBookingFixture()

		fixture.companies.On("FindCompanyBySlug", mock.Anything, "barbearia-demo").Return(openCompany(), nil)
		fixture.configs.On("FindConfigByCompanyID", mock.Anything, "company1").Return(quietConfig(), nil)

		result, err := fixture.usecase.GetAvailability(context.Background(), "barbearia-demo", "2020-01-01", 0)
		assert.NoError(t, err)
		assert.Empty(t, result.Slots)
		assert.Equal(t, "this date has already passed", result.Message)
		fixture.appointments.AssertNotCalled(t, "FindActiveAppointmentsByDate")
	})

	t.Run("closed day is a message, not an error", func(t *testing.T) {
		fixture := newBookingFixture()

		sunday := time.Now().AddDate(0, 0, 1)
		for sunday.Weekday() != time.Sunday {
			sunday = sunday.AddDate(0, 0, 1)
		}

		fixture.companies.On("FindCompanyBySlug", mock.Anything, "barbearia-demo").Return(openCompany(), nil)
		fixture.configs.On("FindConfigByCompanyID", mock.Anything, "company1").Return(quietConfig(), nil)

		result, err := fixture.usecase.GetAvailability(context.Background(), "barbearia-demo", sunday.Format(constvars.CalendarDateLayout), 0)
		assert.NoError(t, err)
		assert.Empty(t, result.Slots)
		assert.Equal(t, "closed on this day", result.Message)
	})

	t.Run("fully booked day says so", func(t *testing.T) {
		fixture := newBookingFixture()
		date := futureDate(t)

		fixture.companies.On("FindCompanyBySlug", mock.Anything, "barbearia-demo").Return(openCompany(), nil)
		fixture.configs.On("FindConfigByCompanyID", mock.Anything, "company1").Return(quietConfig(), nil)
		fixture.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "company1", date).Return([]models.Appointment{
			{Time: "09:00", DurationMinutes: 180},
		}, nil)

		result, err := fixture.usecase.GetAvailability(context.Background(), "barbearia-demo", date, 0)
		assert.NoError(t, err)
		assert.Empty(t, result.Slots)
		assert.Equal(t, "no available times on this day", result.Message)
	})

	t.Run("unknown slug fails", func(t *testing.T) {
		fixture := newBookingFixture()

		fixture.companies.On("FindCompanyBySlug", mock.Anything, "ghost").Return(nil, nil)

		_, err := fixture.usecase.GetAvailability(context.Background(), "ghost", futureDate(t), 0)
		assertCustomError(t, err, exceptions.ErrBusinessNotFound(nil))
	})
}

func TestBook(t *testing.T) {
	newRequest := func(date string) *requests.PublicBooking {
		return &requests.PublicBooking{
			Name:            "Ana Souza",
			Email:           "ana@example.com",
			Phone:           "11988880001",
			ServiceName:     "Corte",
			ServicePrice:    40,
			DurationMinutes: 30,
			Date:            date,
			Time:            "09:00",
		}
	}

	t.Run("creates a pending appointment for a new customer", func(t *testing.T) {
		fixture := newBookingFixture()
		date := futureDate(t)

		fixture.companies.On("FindCompanyBySlug", mock.Anything, "barbearia-demo").Return(openCompany(), nil)
		fixture.configs.On("FindConfigByCompanyID", mock.Anything, "company1").Return(quietConfig(), nil)
		fixture.locker.On("TryLock", mock.Anything, mock.Anything, 10*time.Second).Return(true, "lock-value", nil)
		fixture.locker.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
		fixture.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "company1", date).Return([]models.Appointment{}, nil)
		fixture.customers.On("FindCustomerByEmail", mock.Anything, "company1", "ana@example.com").Return(nil, nil)
		fixture.customers.On("CreateCustomer", mock.Anything, mock.AnythingOfType("*models.Customer")).Return("customer1", nil)
		fixture.appointments.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(appointment *models.Appointment) bool {
			return appointment.Status == constvars.AppointmentStatusPending &&
				appointment.ServiceName == "Corte" &&
				appointment.Time == "09:00" &&
				appointment.CustomerID == "customer1"
		})).Return("appointment1", nil)

		result, err := fixture.usecase.Book(context.Background(), "barbearia-demo", newRequest(date))
		assert.NoError(t, err)
		assert.Equal(t, "appointment1", result.Appointment.ID)
		assert.Equal(t, constvars.AppointmentStatusPending, result.Appointment.Status)
		assert.Equal(t, "Ana Souza", result.Appointment.Customer.Name)
		fixture.locker.AssertCalled(t, "Unlock", mock.Anything, mock.Anything, "lock-value")
		fixture.mailer.AssertNotCalled(t, "SendEmail")
	})

	t.Run("reuses the customer matched by email", func(t *testing.T) {
		fixture := newBookingFixture()
		date := futureDate(t)

		fixture.companies.On("FindCompanyBySlug", mock.Anything, "barbearia-demo").Return(openCompany(), nil)
		fixture.configs.On("FindConfigByCompanyID", mock.Anything, "company1").Return(quietConfig(), nil)
		fixture.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		fixture.locker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		fixture.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "company1", date).Return([]models.Appointment{}, nil)
		fixture.customers.On("FindCustomerByEmail", mock.Anything, "company1", "ana@example.com").Return(&models.Customer{
			ID:    "existing1",
			Name:  "Ana Souza",
			Email: "ana@example.com",
		}, nil)
		fixture.appointments.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(appointment *models.Appointment) bool {
			return appointment.CustomerID == "existing1"
		})).Return("appointment1", nil)

		_, err := fixture.usecase.Book(context.Background(), "barbearia-demo", newRequest(date))
		assert.NoError(t, err)
		fixture.customers.AssertNotCalled(t, "CreateCustomer")
	})

	t.Run("occupied slot is rejected", func(t *testing.T) {
		fixture := newBookingFixture()
		date := futureDate(t)

		fixture.companies.On("FindCompanyBySlug", mock.Anything, "barbearia-demo").Return(openCompany(), nil)
		fixture.configs.On("FindConfigByCompanyID", mock.Anything, "company1").Return(quietConfig(), nil)
		fixture.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		fixture.locker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		fixture.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "company1", date).Return([]models.Appointment{
			{Time: "09:00", DurationMinutes: 30},
		}, nil)

		_, err := fixture.usecase.Book(context.Background(), "barbearia-demo", newRequest(date))
		assertCustomError(t, err, exceptions.ErrBookingSlotTaken(nil))
		fixture.appointments.AssertNotCalled(t, "CreateAppointment")
	})

	t.Run("held lock means someone else is mid-booking", func(t *testing.T) {
		fixture := newBookingFixture()
		date := futureDate(t)

		fixture.companies.On("FindCompanyBySlug", mock.Anything, "barbearia-demo").Return(openCompany(), nil)
		fixture.configs.On("FindConfigByCompanyID", mock.Anything, "company1").Return(quietConfig(), nil)
		fixture.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

		_, err := fixture.usecase.Book(context.Background(), "barbearia-demo", newRequest(date))
		assertCustomError(t, err, exceptions.ErrBookingLockHeld(nil))
		fixture.appointments.AssertNotCalled(t, "CreateAppointment")
		fixture.locker.AssertNotCalled(t, "Unlock")
	})

	t.Run("slot outside opening hours is rejected", func(t *testing.T) {
		fixture := newBookingFixture()
		date := futureDate(t)

		fixture.companies.On("FindCompanyBySlug", mock.Anything, "barbearia-demo").Return(openCompany(), nil)
		fixture.configs.On("FindConfigByCompanyID", mock.Anything, "company1").Return(quietConfig(), nil)
		fixture.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		fixture.locker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		request := newRequest(date)
		request.Time = "18:00"
		_, err := fixture.usecase.Book(context.Background(), "barbearia-demo", request)
		assertCustomError(t, err, exceptions.ErrBookingSlotOutsideHours(nil))
	})

	t.Run("past date is rejected outright", func(t *testing.T) {
		fixture := newBookingFixture()

		fixture.companies.On("FindCompanyBySlug", mock.Anything, "barbearia-demo").Return(openCompany(), nil)
		fixture.configs.On("FindConfigByCompanyID", mock.Anything, "company1").Return(quietConfig(), nil)

		_, err := fixture.usecase.Book(context.Background(), "barbearia-demo", newRequest("2020-01-01"))
		assertCustomError(t, err, exceptions.ErrBookingDateInThePast(nil))
		fixture.locker.AssertNotCalled(t, "TryLock")
	})

	t.Run("notifications go out when enabled", func(t *testing.T) {
		fixture := newBookingFixture()
		date := futureDate(t)

		config := quietConfig()
		config.Notifications = models.NotificationFlags{
			EmailOnNewBooking:         true,
			EmailCustomerConfirmation: true,
		}

		fixture.companies.On("FindCompanyBySlug", mock.Anything, "barbearia-demo").Return(openCompany(), nil)
		fixture.configs.On("FindConfigByCompanyID", mock.Anything, "company1").Return(config, nil)
		fixture.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		fixture.locker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		fixture.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "company1", date).Return([]models.Appointment{}, nil)
		fixture.customers.On("FindCustomerByEmail", mock.Anything, "company1", "ana@example.com").Return(nil, nil)
		fixture.customers.On("CreateCustomer", mock.Anything, mock.Anything).Return("customer1", nil)
		fixture.appointments.On("CreateAppointment", mock.Anything, mock.Anything).Return("appointment1", nil)
		fixture.mailer.On("SendEmail", mock.Anything, mock.AnythingOfType("*requests.EmailPayload")).Return(nil).Twice()

		_, err := fixture.usecase.Book(context.Background(), "barbearia-demo", newRequest(date))
		assert.NoError(t, err)
		fixture.mailer.AssertNumberOfCalls(t, "SendEmail", 2)
	})
}
