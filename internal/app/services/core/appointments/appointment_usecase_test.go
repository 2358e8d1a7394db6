package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/dto/responses"
	"bizsuite-service/internal/pkg/exceptions"
)

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

func newAppointmentFixture() (*appointmentUsecase, *MockAppointmentRepository, *MockCustomerRepository) {
	appointments := new(MockAppointmentRepository)
	customers := new(MockCustomerRepository)
	usecase := &appointmentUsecase{
		Log:                   zap.NewNop(),
		AppointmentRepository: appointments,
		CustomerRepository:    customers,
	}
	return usecase, appointments, customers
}

func assertSlotTaken(t *testing.T, err error) {
	t.Helper()
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, exceptions.ErrBookingSlotTaken(nil).DevMessage, customErr.DevMessage)
}

func TestCreateAppointment(t *testing.T) {
	newRequest := func() *requests.CreateAppointment {
		return &requests.CreateAppointment{
			CustomerID:      "customer1",
			Date:            "2024-06-10",
			Time:            "10:00",
			DurationMinutes: 30,
			ServiceName:     "Corte",
			ServicePrice:    40,
		}
	}

	t.Run("confirmed on creation", func(t *testing.T) {
		usecase, appointments, customers := newAppointmentFixture()

		customers.On("FindCustomerByID", mock.Anything, "company1", "customer1").Return(&models.Customer{ID: "customer1"}, nil)
		appointments.On("FindActiveAppointmentsByDate", mock.Anything, "company1", "2024-06-10").Return([]models.Appointment{}, nil)
		appointments.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(appointment *models.Appointment) bool {
			return appointment.Status == constvars.AppointmentStatusConfirmed
		})).Return("appointment1", nil)

		result, err := usecase.CreateAppointment(context.Background(), "company1", newRequest())
		assert.NoError(t, err)
		assert.Equal(t, "appointment1", result.ID)
	})

	t.Run("unknown customer fails", func(t *testing.T) {
		usecase, appointments, customers := newAppointmentFixture()

		customers.On("FindCustomerByID", mock.Anything, "company1", "customer1").Return(nil, nil)

		_, err := usecase.CreateAppointment(context.Background(), "company1", newRequest())
		assert.Error(t, err)
		appointments.AssertNotCalled(t, "CreateAppointment")
	})

	t.Run("overlapping slot fails", func(t *testing.T) {
		usecase, appointments, customers := newAppointmentFixture()

		customers.On("FindCustomerByID", mock.Anything, "company1", "customer1").Return(&models.Customer{ID: "customer1"}, nil)
		appointments.On("FindActiveAppointmentsByDate", mock.Anything, "company1", "2024-06-10").Return([]models.Appointment{
			{ID: "other", Time: "10:15", DurationMinutes: 30},
		}, nil)

		_, err := usecase.CreateAppointment(context.Background(), "company1", newRequest())
		assertSlotTaken(t, err)
		appointments.AssertNotCalled(t, "CreateAppointment")
	})

	t.Run("back to back bookings do not collide", func(t *testing.T) {
		usecase, appointments, customers := newAppointmentFixture()

		customers.On("FindCustomerByID", mock.Anything, "company1", "customer1").Return(&models.Customer{ID: "customer1"}, nil)
		appointments.On("FindActiveAppointmentsByDate", mock.Anything, "company1", "2024-06-10").Return([]models.Appointment{
			{ID: "other", Time: "09:30", DurationMinutes: 30},
			{ID: "another", Time: "10:30", DurationMinutes: 30},
		}, nil)
		appointments.On("CreateAppointment", mock.Anything, mock.Anything).Return("appointment1", nil)

		_, err := usecase.CreateAppointment(context.Background(), "company1", newRequest())
		assert.NoError(t, err)
	})
}

func TestCheckAvailability(t *testing.T) {
	t.Run("busy intervals block their grid slots", func(t *testing.T) {
		usecase, appointments, _ := newAppointmentFixture()

		appointments.On("FindActiveAppointmentsByDate", mock.Anything, "company1", "2024-06-10").Return([]models.Appointment{
			{ID: "apt1", Time: "09:00", DurationMinutes: 60},
			{ID: "apt2", Time: "14:30", DurationMinutes: 30},
		}, nil)

		result, err := usecase.CheckAvailability(context.Background(), "company1", "2024-06-10")
		assert.NoError(t, err)
		assert.Equal(t, "2024-06-10", result.Date)
		assert.NotContains(t, result.AvailableSlots, "09:00")
		assert.NotContains(t, result.AvailableSlots, "09:30")
		assert.NotContains(t, result.AvailableSlots, "14:30")
		assert.Contains(t, result.AvailableSlots, "10:00")
		assert.Contains(t, result.AvailableSlots, "14:00")
		assert.Contains(t, result.AvailableSlots, "17:30")
		assert.Equal(t, []responses.BusySlot{
			{Start: "09:00", End: "10:00", AppointmentID: "apt1"},
			{Start: "14:30", End: "15:00", AppointmentID: "apt2"},
		}, result.BusySlots)
	})

	t.Run("empty day offers the full grid", func(t *testing.T) {
		usecase, appointments, _ := newAppointmentFixture()

		appointments.On("FindActiveAppointmentsByDate", mock.Anything, "company1", "2024-06-10").Return([]models.Appointment{}, nil)

		result, err := usecase.CheckAvailability(context.Background(), "company1", "2024-06-10")
		assert.NoError(t, err)
		assert.Len(t, result.AvailableSlots, 18)
		assert.Equal(t, "09:00", result.AvailableSlots[0])
		assert.Equal(t, "17:30", result.AvailableSlots[17])
	})

	t.Run("malformed date is rejected before the lookup", func(t *testing.T) {
		usecase, appointments, _ := newAppointmentFixture()

		_, err := usecase.CheckAvailability(context.Background(), "company1", "10/06/2024")
		assert.Error(t, err)
		appointments.AssertNotCalled(t, "FindActiveAppointmentsByDate")
	})
}

func TestUpdateAppointment(t *testing.T) {
	stored := func() *models.Appointment {
		return &models.Appointment{
			ID:              "appointment1",
			CompanyID:       "company1",
			CustomerID:      "customer1",
			Date:            "2024-06-10",
			Time:            "10:00",
			DurationMinutes: 30,
			Status:          constvars.AppointmentStatusConfirmed,
		}
	}

	t.Run("reschedule ignores its own old slot", func(t *testing.T) {
		usecase, appointments, _ := newAppointmentFixture()

		appointments.On("FindAppointmentByID", mock.Anything, "company1", "appointment1").Return(stored(), nil)
		appointments.On("FindActiveAppointmentsByDate", mock.Anything, "company1", "2024-06-10").Return([]models.Appointment{
			{ID: "appointment1", Time: "10:00", DurationMinutes: 30},
		}, nil)
		appointments.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

		result, err := usecase.UpdateAppointment(context.Background(), "company1", "appointment1", &requests.UpdateAppointment{
			Time: "10:15",
		})
		assert.NoError(t, err)
		assert.Equal(t, "10:15", result.Time)
	})

	t.Run("reschedule onto another booking fails", func(t *testing.T) {
		usecase, appointments, _ := newAppointmentFixture()

		appointments.On("FindAppointmentByID", mock.Anything, "company1", "appointment1").Return(stored(), nil)
		appointments.On("FindActiveAppointmentsByDate", mock.Anything, "company1", "2024-06-10").Return([]models.Appointment{
			{ID: "appointment1", Time: "10:00", DurationMinutes: 30},
			{ID: "other", Time: "11:00", DurationMinutes: 30},
		}, nil)

		_, err := usecase.UpdateAppointment(context.Background(), "company1", "appointment1", &requests.UpdateAppointment{
			Time: "11:00",
		})
		assertSlotTaken(t, err)
		appointments.AssertNotCalled(t, "UpdateAppointment")
	})

	t.Run("cancelling skips the slot check", func(t *testing.T) {
		usecase, appointments, _ := newAppointmentFixture()

		appointments.On("FindAppointmentByID", mock.Anything, "company1", "appointment1").Return(stored(), nil)
		appointments.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(appointment *models.Appointment) bool {
			return appointment.Status == constvars.AppointmentStatusCancelled
		})).Return(nil)

		_, err := usecase.UpdateAppointment(context.Background(), "company1", "appointment1", &requests.UpdateAppointment{
			Status: constvars.AppointmentStatusCancelled,
		})
		assert.NoError(t, err)
		appointments.AssertNotCalled(t, "FindActiveAppointmentsByDate")
	})
}
