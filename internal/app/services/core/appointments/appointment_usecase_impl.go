package appointments

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
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	Log                   *zap.Logger
	AppointmentRepository contracts.AppointmentRepository
	CustomerRepository    contracts.CustomerRepository
}

func NewAppointmentUsecase(
	logger *zap.Logger,
	appointmentRepository contracts.AppointmentRepository,
	customerRepository contracts.CustomerRepository,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			Log:                   logger,
			AppointmentRepository: appointmentRepository,
			CustomerRepository:    customerRepository,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, companyID string, request *requests.ListAppointments) ([]models.Appointment, int, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("appointmentUsecase.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)
	return uc.AppointmentRepository.FindAppointments(ctx, companyID, request)
}

func (uc *appointmentUsecase) ListTodayAppointments(ctx context.Context, companyID string) ([]models.Appointment, error) {
	today := time.Now().Format(constvars.CalendarDateLayout)
	return uc.AppointmentRepository.FindActiveAppointmentsByDate(ctx, companyID, today)
}

// CheckAvailability returns the owner's agenda for one date: the occupied
// intervals and the half-hour slots still free on the working-day grid.
func (uc *appointmentUsecase) CheckAvailability(ctx context.Context, companyID, date string) (*responses.OwnerAvailabilityResponse, error) {
	if _, err := utils.ParseDateYMD(date); err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentRepository.FindActiveAppointmentsByDate(ctx, companyID, date)
	if err != nil {
		return nil, err
	}

	busy := make([]responses.BusySlot, 0, len(appointments))
	type interval struct{ start, end int }
	occupied := make([]interval, 0, len(appointments))
	for _, appointment := range appointments {
		start, err := utils.ParseClockMinutes(appointment.Time)
		if err != nil {
			continue
		}
		duration := appointment.DurationMinutes
		if duration <= 0 {
			duration = constvars.DefaultServiceDurationMinutes
		}
		end := start + duration
		occupied = append(occupied, interval{start: start, end: end})
		busy = append(busy, responses.BusySlot{
			Start:         appointment.Time,
			End:           utils.FormatClockMinutes(end),
			AppointmentID: appointment.ID,
		})
	}

	available := make([]string, 0)
	for start := constvars.OwnerDayOpenMinutes; start < constvars.OwnerDayCloseMinutes; start += constvars.SlotStepMinutes {
		free := true
		for _, other := range occupied {
			if start >= other.start && start < other.end {
				free = false
				break
			}
		}
		if free {
			available = append(available, utils.FormatClockMinutes(start))
		}
	}

	return &responses.OwnerAvailabilityResponse{
		Date:           date,
		AvailableSlots: available,
		BusySlots:      busy,
	}, nil
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, companyID string, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	customer, err := uc.CustomerRepository.FindCustomerByID(ctx, companyID, request.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, exceptions.ErrCustomerNotFound(nil)
	}

	duration := request.DurationMinutes
	if duration <= 0 {
		duration = constvars.DefaultServiceDurationMinutes
	}

	if err := uc.ensureSlotFree(ctx, companyID, request.Date, request.Time, duration, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	appointment := &models.Appointment{
		CompanyID:       companyID,
		CustomerID:      request.CustomerID,
		Date:            request.Date,
		Time:            request.Time,
		DurationMinutes: duration,
		ServiceName:     request.ServiceName,
		ServicePrice:    request.ServicePrice,
		Status:          constvars.AppointmentStatusConfirmed,
		Notes:           request.Notes,
		TimeModel:       models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID
	return appointment, nil
}

func (uc *appointmentUsecase) GetAppointment(ctx context.Context, companyID, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, companyID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, companyID, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error) {
	appointment, err := uc.GetAppointment(ctx, companyID, appointmentID)
	if err != nil {
		return nil, err
	}

	if request.Date != "" {
		appointment.Date = request.Date
	}
	if request.Time != "" {
		appointment.Time = request.Time
	}
	if request.DurationMinutes > 0 {
		appointment.DurationMinutes = request.DurationMinutes
	}
	if request.ServiceName != "" {
		appointment.ServiceName = request.ServiceName
	}
	if request.ServicePrice > 0 {
		appointment.ServicePrice = request.ServicePrice
	}
	if request.Status != "" {
		appointment.Status = request.Status
	}
	if request.Notes != "" {
		appointment.Notes = request.Notes
	}

	// Rescheduling must not land on an occupied slot. Status-only edits on a
	// cancelled appointment skip the check since cancelled slots are free.
	if appointment.Status != constvars.AppointmentStatusCancelled && (request.Date != "" || request.Time != "" || request.DurationMinutes > 0) {
		if err := uc.ensureSlotFree(ctx, companyID, appointment.Date, appointment.Time, appointment.DurationMinutes, appointment.ID); err != nil {
			return nil, err
		}
	}

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, companyID, appointmentID string) error {
	if _, err := uc.GetAppointment(ctx, companyID, appointmentID); err != nil {
		return err
	}
	return uc.AppointmentRepository.DeleteAppointment(ctx, companyID, appointmentID)
}

// ensureSlotFree rejects the requested time when it overlaps any non-cancelled
// appointment on the same date. excludeID skips the appointment being moved.
func (uc *appointmentUsecase) ensureSlotFree(ctx context.Context, companyID, date, clock string, durationMinutes int, excludeID string) error {
	start, err := utils.ParseClockMinutes(clock)
	if err != nil {
		return err
	}
	end := start + durationMinutes

	existing, err := uc.AppointmentRepository.FindActiveAppointmentsByDate(ctx, companyID, date)
	if err != nil {
		return err
	}

	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}
		otherStart, err := utils.ParseClockMinutes(other.Time)
		if err != nil {
			continue
		}
		otherDuration := other.DurationMinutes
		if otherDuration <= 0 {
			otherDuration = constvars.DefaultServiceDurationMinutes
		}
		otherEnd := otherStart + otherDuration
		if start < otherEnd && end > otherStart {
			return exceptions.ErrBookingSlotTaken(nil)
		}
	}
	return nil
}
