package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bizsuite-service/internal/app/portal/gateway"
	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/dto/responses"
)

type MockBookingAPI struct {
	mock.Mock
}

func (m *MockBookingAPI) GetPublicCompany(ctx context.Context, companySlug string) (*responses.PublicCompanyResponse, error) {
	args := m.Called(ctx, companySlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PublicCompanyResponse), args.Error(1)
}

func (m *MockBookingAPI) GetAvailability(ctx context.Context, companySlug, date string, durationMinutes int) (*responses.AvailabilityResponse, error) {
	args := m.Called(ctx, companySlug, date, durationMinutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AvailabilityResponse), args.Error(1)
}

func (m *MockBookingAPI) CreateBooking(ctx context.Context, companySlug string, request *requests.PublicBooking) (*responses.BookingResponse, error) {
	args := m.Called(ctx, companySlug, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.BookingResponse), args.Error(1)
}

func barbershopCompany() *responses.PublicCompanyResponse {
	return &responses.PublicCompanyResponse{
		Name:         "Barbearia Demo",
		Slug:         "barbearia-demo",
		BusinessType: "barbershop",
		ShowPrices:   true,
		Services: []responses.PublicService{
			{Name: "Corte", Price: 40, DurationMinutes: 30},
			{Name: "Barba", Price: 25, DurationMinutes: 20},
		},
	}
}

func fixedClock() func() time.Time {
	at := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestWizard_HappyPath(t *testing.T) {
	api := new(MockBookingAPI)
	flow := NewWizard(api, "barbearia-demo", fixedClock())

	api.On("GetPublicCompany", mock.Anything, "barbearia-demo").Return(barbershopCompany(), nil)
	api.On("GetAvailability", mock.Anything, "barbearia-demo", "2024-06-10", 30).Return(&responses.AvailabilityResponse{
		Date:  "2024-06-10",
		Slots: []string{"09:00", "09:30", "10:00"},
	}, nil)
	api.On("CreateBooking", mock.Anything, "barbearia-demo", &requests.PublicBooking{
		Name:            "Ana Souza",
		Email:           "ana@example.com",
		Phone:           "11988880001",
		ServiceName:     "Corte",
		ServicePrice:    40,
		DurationMinutes: 30,
		Date:            "2024-06-10",
		Time:            "09:00",
	}).Return(&responses.BookingResponse{
		Appointment: responses.BookingAppointment{
			ID:      "abc123",
			Date:    "2024-06-10",
			Time:    "09:00",
			Service: "Corte",
			Status:  constvars.AppointmentStatusPending,
		},
	}, nil)

	assert.NoError(t, flow.Start(context.Background()))
	assert.Equal(t, StateHome, flow.State())

	assert.NoError(t, flow.Begin())
	assert.NoError(t, flow.SelectService(barbershopCompany().Services[0]))
	assert.Equal(t, StateDate, flow.State())

	assert.NoError(t, flow.SelectDate(context.Background(), "2024-06-10"))
	assert.Equal(t, StateTime, flow.State())
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, flow.Slots())

	assert.NoError(t, flow.SelectTime("09:00"))
	assert.NoError(t, flow.SetContact("Ana Souza", "ana@example.com", "11988880001", ""))
	assert.True(t, flow.CanSubmit())

	assert.NoError(t, flow.Submit(context.Background()))
	assert.Equal(t, StateSuccess, flow.State())
	assert.Equal(t, "abc123", flow.Result().Appointment.ID)
	api.AssertExpectations(t)
}

func TestWizard_IncompleteFormNeverReachesNetwork(t *testing.T) {
	api := new(MockBookingAPI)
	flow := NewWizard(api, "barbearia-demo", fixedClock())

	api.On("GetPublicCompany", mock.Anything, "barbearia-demo").Return(barbershopCompany(), nil)
	api.On("GetAvailability", mock.Anything, "barbearia-demo", "2024-06-10", 30).Return(&responses.AvailabilityResponse{
		Date:  "2024-06-10",
		Slots: []string{"09:00"},
	}, nil)

	assert.NoError(t, flow.Start(context.Background()))
	assert.NoError(t, flow.Begin())
	assert.NoError(t, flow.SelectService(barbershopCompany().Services[0]))
	assert.NoError(t, flow.SelectDate(context.Background(), "2024-06-10"))
	assert.NoError(t, flow.SelectTime("09:00"))
	assert.NoError(t, flow.SetContact("Ana Souza", "ana@example.com", "", ""))

	assert.False(t, flow.CanSubmit())
	assert.ErrorIs(t, flow.Submit(context.Background()), ErrIncompleteBooking)
	assert.Equal(t, StateForm, flow.State())
	api.AssertNotCalled(t, "CreateBooking")
}

func TestWizard_UnknownSlugFreezes(t *testing.T) {
	api := new(MockBookingAPI)
	flow := NewWizard(api, "nobody-here", fixedClock())

	api.On("GetPublicCompany", mock.Anything, "nobody-here").
		Return(nil, &gateway.APIError{StatusCode: 404, Message: "business not found"}).Once()

	assert.ErrorIs(t, flow.Start(context.Background()), ErrTenantUnavailable)
	assert.Equal(t, StateNotFound, flow.State())

	// Frozen: no action issues another call or changes the state.
	assert.ErrorIs(t, flow.Start(context.Background()), ErrTenantUnavailable)
	assert.ErrorIs(t, flow.Begin(), ErrInvalidTransition)
	assert.ErrorIs(t, flow.Reset(), ErrTenantUnavailable)
	assert.Equal(t, StateNotFound, flow.State())
	api.AssertNumberOfCalls(t, "GetPublicCompany", 1)
}

func TestWizard_StaleSlotResultIsDropped(t *testing.T) {
	api := new(MockBookingAPI)
	flow := NewWizard(api, "barbearia-demo", fixedClock())

	api.On("GetPublicCompany", mock.Anything, "barbearia-demo").Return(barbershopCompany(), nil)
	api.On("GetAvailability", mock.Anything, "barbearia-demo", mock.Anything, 30).Return(&responses.AvailabilityResponse{}, nil)

	assert.NoError(t, flow.Start(context.Background()))
	assert.NoError(t, flow.Begin())
	assert.NoError(t, flow.SelectService(barbershopCompany().Services[0]))
	assert.NoError(t, flow.SelectDate(context.Background(), "2024-06-10"))
	assert.NoError(t, flow.Back())
	assert.NoError(t, flow.SelectDate(context.Background(), "2024-06-11"))

	staleRequest := flow.BeginSlotFetch()
	freshRequest := flow.BeginSlotFetch()

	flow.ApplySlots(freshRequest, &responses.AvailabilityResponse{
		Date:  "2024-06-11",
		Slots: []string{"14:00"},
	}, nil)
	// The slow first fetch lands after the second already painted the screen.
	flow.ApplySlots(staleRequest, &responses.AvailabilityResponse{
		Date:  "2024-06-11",
		Slots: []string{"08:00", "08:30"},
	}, nil)

	assert.Equal(t, []string{"14:00"}, flow.Slots())
}

func TestWizard_SlotResultForAbandonedDateIsDropped(t *testing.T) {
	api := new(MockBookingAPI)
	flow := NewWizard(api, "barbearia-demo", fixedClock())

	api.On("GetPublicCompany", mock.Anything, "barbearia-demo").Return(barbershopCompany(), nil)
	api.On("GetAvailability", mock.Anything, "barbearia-demo", mock.Anything, 30).Return(&responses.AvailabilityResponse{}, nil)

	assert.NoError(t, flow.Start(context.Background()))
	assert.NoError(t, flow.Begin())
	assert.NoError(t, flow.SelectService(barbershopCompany().Services[0]))
	assert.NoError(t, flow.SelectDate(context.Background(), "2024-06-10"))

	request := flow.BeginSlotFetch()

	assert.NoError(t, flow.Back())
	assert.NoError(t, flow.SelectDate(context.Background(), "2024-06-12"))

	flow.ApplySlots(request, &responses.AvailabilityResponse{
		Date:  "2024-06-10",
		Slots: []string{"09:00"},
	}, nil)

	assert.NotEqual(t, []string{"09:00"}, flow.Slots())
	assert.Equal(t, "2024-06-12", flow.Draft().Date)
}

func TestWizard_DuplicateSubmissionIsRejected(t *testing.T) {
	api := new(MockBookingAPI)
	flow := NewWizard(api, "barbearia-demo", fixedClock())

	api.On("GetPublicCompany", mock.Anything, "barbearia-demo").Return(barbershopCompany(), nil)
	api.On("GetAvailability", mock.Anything, "barbearia-demo", "2024-06-10", 30).Return(&responses.AvailabilityResponse{
		Slots: []string{"09:00"},
	}, nil)

	var reentrantErr error
	api.On("CreateBooking", mock.Anything, "barbearia-demo", mock.Anything).
		Run(func(args mock.Arguments) {
			// A double click lands while the first request is still out.
			reentrantErr = flow.Submit(context.Background())
		}).
		Return(&responses.BookingResponse{}, nil).Once()

	assert.NoError(t, flow.Start(context.Background()))
	assert.NoError(t, flow.Begin())
	assert.NoError(t, flow.SelectService(barbershopCompany().Services[0]))
	assert.NoError(t, flow.SelectDate(context.Background(), "2024-06-10"))
	assert.NoError(t, flow.SelectTime("09:00"))
	assert.NoError(t, flow.SetContact("Ana Souza", "ana@example.com", "11988880001", ""))

	assert.NoError(t, flow.Submit(context.Background()))
	assert.ErrorIs(t, reentrantErr, ErrSubmissionInFlight)
	api.AssertNumberOfCalls(t, "CreateBooking", 1)
}

func TestWizard_BackDiscardsThePreviousPick(t *testing.T) {
	api := new(MockBookingAPI)
	flow := NewWizard(api, "barbearia-demo", fixedClock())

	api.On("GetPublicCompany", mock.Anything, "barbearia-demo").Return(barbershopCompany(), nil)
	api.On("GetAvailability", mock.Anything, "barbearia-demo", "2024-06-10", 30).Return(&responses.AvailabilityResponse{
		Slots: []string{"09:00"},
	}, nil)

	assert.NoError(t, flow.Start(context.Background()))
	assert.NoError(t, flow.Begin())
	assert.NoError(t, flow.SelectService(barbershopCompany().Services[0]))
	assert.NoError(t, flow.SelectDate(context.Background(), "2024-06-10"))
	assert.NoError(t, flow.SelectTime("09:00"))
	assert.NoError(t, flow.SetContact("Ana Souza", "ana@example.com", "11988880001", "sem notas"))

	assert.NoError(t, flow.Back())
	assert.Equal(t, StateTime, flow.State())
	assert.Empty(t, flow.Draft().Time)
	assert.Equal(t, "Ana Souza", flow.Draft().Name, "contact details survive going back")

	assert.NoError(t, flow.Back())
	assert.Equal(t, StateDate, flow.State())
	assert.Empty(t, flow.Draft().Date)
	assert.Empty(t, flow.Slots())

	assert.NoError(t, flow.Back())
	assert.Equal(t, StateService, flow.State())
	assert.Nil(t, flow.Draft().Service)

	assert.NoError(t, flow.Back())
	assert.Equal(t, StateHome, flow.State())
	assert.ErrorIs(t, flow.Back(), ErrInvalidTransition)
}

func TestWizard_Calendar(t *testing.T) {
	flow := NewWizard(new(MockBookingAPI), "barbearia-demo", fixedClock())

	t.Run("first page starts today", func(t *testing.T) {
		dates := flow.VisibleDates()
		assert.Len(t, dates, constvars.CalendarPageDays)
		assert.Equal(t, "2024-06-03", dates[0])
		assert.Equal(t, "2024-06-09", dates[6])
	})

	t.Run("paging clamps to the window", func(t *testing.T) {
		flow.PrevPage()
		assert.Equal(t, 0, flow.CalendarOffset(), "cannot page before today")

		for i := 0; i < 10; i++ {
			flow.NextPage()
		}
		assert.Equal(t, constvars.CalendarMaxOffset, flow.CalendarOffset())

		dates := flow.VisibleDates()
		last, err := time.Parse(constvars.CalendarDateLayout, dates[len(dates)-1])
		assert.NoError(t, err)
		windowEnd := fixedClock()().AddDate(0, 0, constvars.CalendarWindowDays-1)
		assert.Equal(t, windowEnd.Format(constvars.CalendarDateLayout), last.Format(constvars.CalendarDateLayout))

		flow.PrevPage()
		assert.Equal(t, constvars.CalendarMaxOffset-constvars.CalendarPageDays, flow.CalendarOffset())
	})
}

func TestWizard_DurationFallsBackForUntimedServices(t *testing.T) {
	api := new(MockBookingAPI)
	flow := NewWizard(api, "studio", fixedClock())

	company := &responses.PublicCompanyResponse{
		Name:     "Studio",
		Slug:     "studio",
		Services: []responses.PublicService{{Name: "Sessao", Price: 150}},
	}
	api.On("GetPublicCompany", mock.Anything, "studio").Return(company, nil)
	api.On("GetAvailability", mock.Anything, "studio", "2024-06-10", constvars.DefaultServiceDurationMinutes).
		Return(&responses.AvailabilityResponse{Slots: []string{"09:00"}}, nil)

	assert.NoError(t, flow.Start(context.Background()))
	assert.NoError(t, flow.Begin())
	assert.NoError(t, flow.SelectService(company.Services[0]))
	assert.NoError(t, flow.SelectDate(context.Background(), "2024-06-10"))
	api.AssertExpectations(t)
}
