package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	appconfig "bizsuite-service/internal/app/config"
	"bizsuite-service/internal/app/contracts"
	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/app/services/core/configs"
	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/dto/responses"
	"bizsuite-service/internal/pkg/exceptions"
	"bizsuite-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

type bookingUsecase struct {
	Log                   *zap.Logger
	CompanyRepository     contracts.CompanyRepository
	ConfigRepository      contracts.BusinessConfigRepository
	CustomerRepository    contracts.CustomerRepository
	AppointmentRepository contracts.AppointmentRepository
	ProductRepository     contracts.ProductRepository
	LockerService         contracts.LockerService
	MailerService         contracts.MailerService
	InternalConfig        *appconfig.InternalConfig
}

func NewBookingUsecase(
	logger *zap.Logger,
	companyRepository contracts.CompanyRepository,
	configRepository contracts.BusinessConfigRepository,
	customerRepository contracts.CustomerRepository,
	appointmentRepository contracts.AppointmentRepository,
	productRepository contracts.ProductRepository,
	lockerService contracts.LockerService,
	mailerService contracts.MailerService,
	internalConfig *appconfig.InternalConfig,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			Log:                   logger,
			CompanyRepository:     companyRepository,
			ConfigRepository:      configRepository,
			CustomerRepository:    customerRepository,
			AppointmentRepository: appointmentRepository,
			ProductRepository:     productRepository,
			LockerService:         lockerService,
			MailerService:         mailerService,
			InternalConfig:        internalConfig,
		}
	})
	return bookingUsecaseInstance
}

func (uc *bookingUsecase) GetPublicCompany(ctx context.Context, slug string) (*responses.PublicCompanyResponse, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("bookingUsecase.GetPublicCompany called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("slug", slug),
	)

	company, config, err := uc.resolveCompany(ctx, slug)
	if err != nil {
		return nil, err
	}

	response := &responses.PublicCompanyResponse{
		Name:           company.Name,
		Slug:           company.Slug,
		BusinessType:   company.BusinessType,
		Phone:          company.Phone,
		Address:        company.Address,
		PrimaryColor:   company.PrimaryColor,
		LogoURL:        company.LogoURL,
		WelcomeTitle:   config.PublicText.WelcomeTitle,
		WelcomeMessage: config.PublicText.WelcomeMessage,
		OpeningHours:   mapPublicOpeningHours(company.OpeningHours),
		Services:       mapPublicServices(config),
		ShowPrices:     config.Catalog.ShowPrices,
	}

	if config.Modules.Catalog {
		products, err := uc.ProductRepository.FindActiveProducts(ctx, company.ID)
		if err != nil {
			return nil, err
		}
		response.Products = mapPublicProducts(products, config.Catalog.ShowPrices)
	}
	return response, nil
}

// GetAvailability returns the free slots for a date. A past date or a closed
// day is not an error: the response carries an empty slot list plus a message
// so the wizard can render it inline.
func (uc *bookingUsecase) GetAvailability(ctx context.Context, slug, date string, durationMinutes int) (*responses.AvailabilityResponse, error) {
	company, config, err := uc.resolveCompany(ctx, slug)
	if err != nil {
		return nil, err
	}

	day, err := utils.ParseDateYMD(date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	response := &responses.AvailabilityResponse{Date: date, Slots: []string{}}

	if day.Before(utils.TruncateToDay(time.Now())) {
		response.Message = "this date has already passed"
		return response, nil
	}

	hours, ok := company.OpeningHours[utils.WeekdayKey(day)]
	if !ok || hours.Closed || hours.Open == "" || hours.Close == "" {
		response.Message = "closed on this day"
		return response, nil
	}

	openMinutes, err := utils.ParseClockMinutes(hours.Open)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	closeMinutes, err := utils.ParseClockMinutes(hours.Close)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	duration := durationMinutes
	if duration <= 0 {
		duration = config.Appointments.DefaultDurationMinutes
	}
	if duration <= 0 {
		duration = constvars.DefaultServiceDurationMinutes
	}

	step := config.Appointments.IntervalMinutes
	if step <= 0 {
		step = constvars.SlotStepMinutes
	}

	existing, err := uc.AppointmentRepository.FindActiveAppointmentsByDate(ctx, company.ID, date)
	if err != nil {
		return nil, err
	}

	for start := openMinutes; start+duration <= closeMinutes; start += step {
		if slotOverlaps(start, start+duration, existing) {
			continue
		}
		response.Slots = append(response.Slots, utils.FormatClockMinutes(start))
	}
	if len(response.Slots) == 0 {
		response.Message = "no available times on this day"
	}
	return response, nil
}

func (uc *bookingUsecase) Book(ctx context.Context, slug string, request *requests.PublicBooking) (*responses.BookingResponse, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("bookingUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("slug", slug),
	)

	company, config, err := uc.resolveCompany(ctx, slug)
	if err != nil {
		return nil, err
	}

	day, err := utils.ParseDateYMD(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if day.Before(utils.TruncateToDay(time.Now())) {
		return nil, exceptions.ErrBookingDateInThePast(nil)
	}

	duration := request.DurationMinutes
	if duration <= 0 {
		duration = config.Appointments.DefaultDurationMinutes
	}
	if duration <= 0 {
		duration = constvars.DefaultServiceDurationMinutes
	}

	// One booking per company/date/time proceeds at a time. The lock closes
	// the race window between the overlap check and the insert.
	lockKey := fmt.Sprintf(constvars.RedisBookingLockKeyFormat, company.ID, request.Date, request.Time)
	lockTTL := time.Duration(uc.InternalConfig.App.BookingLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingLockHeld(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.Background(), lockKey, lockValue); err != nil {
			uc.Log.Warn("bookingUsecase.Book failed to release lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	start, err := utils.ParseClockMinutes(request.Time)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	if hours, ok := company.OpeningHours[utils.WeekdayKey(day)]; ok && !hours.Closed && hours.Open != "" && hours.Close != "" {
		openMinutes, openErr := utils.ParseClockMinutes(hours.Open)
		closeMinutes, closeErr := utils.ParseClockMinutes(hours.Close)
		if openErr == nil && closeErr == nil && (start < openMinutes || start+duration > closeMinutes) {
			return nil, exceptions.ErrBookingSlotOutsideHours(nil)
		}
	} else {
		return nil, exceptions.ErrBookingSlotOutsideHours(nil)
	}

	existing, err := uc.AppointmentRepository.FindActiveAppointmentsByDate(ctx, company.ID, request.Date)
	if err != nil {
		return nil, err
	}
	if slotOverlaps(start, start+duration, existing) {
		return nil, exceptions.ErrBookingSlotTaken(nil)
	}

	customer, err := uc.findOrCreateCustomer(ctx, company.ID, request)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	appointment := &models.Appointment{
		CompanyID:       company.ID,
		CustomerID:      customer.ID,
		Date:            request.Date,
		Time:            request.Time,
		DurationMinutes: duration,
		ServiceName:     request.ServiceName,
		ServicePrice:    request.ServicePrice,
		Status:          constvars.AppointmentStatusPending,
		Notes:           request.Notes,
		TimeModel:       models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	uc.notifyBooking(ctx, company, config, customer, appointment)

	return &responses.BookingResponse{
		Appointment: responses.BookingAppointment{
			ID:      appointment.ID,
			Date:    appointment.Date,
			Time:    appointment.Time,
			Service: appointment.ServiceName,
			Status:  appointment.Status,
			Customer: responses.BookingCustomer{
				Name:  customer.Name,
				Email: customer.Email,
			},
		},
	}, nil
}

func (uc *bookingUsecase) resolveCompany(ctx context.Context, slug string) (*models.Company, *models.BusinessConfig, error) {
	company, err := uc.CompanyRepository.FindCompanyBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	if company == nil || !company.Active {
		return nil, nil, exceptions.ErrBusinessNotFound(nil)
	}

	config, err := uc.ConfigRepository.FindConfigByCompanyID(ctx, company.ID)
	if err != nil {
		return nil, nil, err
	}
	if config == nil {
		config = configs.DefaultBusinessConfig(company.ID, company.BusinessType)
	}
	return company, config, nil
}

func (uc *bookingUsecase) findOrCreateCustomer(ctx context.Context, companyID string, request *requests.PublicBooking) (*models.Customer, error) {
	customer, err := uc.CustomerRepository.FindCustomerByEmail(ctx, companyID, request.Email)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		return customer, nil
	}

	now := time.Now()
	customer = &models.Customer{
		CompanyID: companyID,
		Name:      request.Name,
		Email:     request.Email,
		Phone:     request.Phone,
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

// notifyBooking enqueues the confirmation emails. Failures are logged, never
// surfaced: the booking already exists and the response must say so.
func (uc *bookingUsecase) notifyBooking(ctx context.Context, company *models.Company, config *models.BusinessConfig, customer *models.Customer, appointment *models.Appointment) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)

	if config.Notifications.EmailCustomerConfirmation && customer.Email != "" {
		payload := &requests.EmailPayload{
			To:      customer.Email,
			Subject: fmt.Sprintf(constvars.EmailBookingConfirmationSubject, company.Name),
			Body: fmt.Sprintf(
				"Hi %s,\n\nYour booking for %s on %s at %s is confirmed as received. We will see you there!\n\n%s",
				customer.Name, appointment.ServiceName, appointment.Date, appointment.Time, company.Name,
			),
		}
		if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
			uc.Log.Warn("bookingUsecase.notifyBooking customer email enqueue failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	if config.Notifications.EmailOnNewBooking && company.Email != "" {
		payload := &requests.EmailPayload{
			To:      company.Email,
			Subject: fmt.Sprintf(constvars.EmailBookingNotifyOwnerSubject, appointment.ServiceName, appointment.Date, appointment.Time),
			Body: fmt.Sprintf(
				"New booking from %s (%s, %s):\n\nService: %s\nDate: %s\nTime: %s\nNotes: %s",
				customer.Name, customer.Email, customer.Phone,
				appointment.ServiceName, appointment.Date, appointment.Time, appointment.Notes,
			),
		}
		if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
			uc.Log.Warn("bookingUsecase.notifyBooking owner email enqueue failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}
}

func slotOverlaps(start, end int, existing []models.Appointment) bool {
	for _, other := range existing {
		otherStart, err := utils.ParseClockMinutes(other.Time)
		if err != nil {
			continue
		}
		otherDuration := other.DurationMinutes
		if otherDuration <= 0 {
			otherDuration = constvars.DefaultServiceDurationMinutes
		}
		if start < otherStart+otherDuration && end > otherStart {
			return true
		}
	}
	return false
}

func mapPublicOpeningHours(hours map[string]models.OpeningHours) map[string]responses.PublicOpeningHours {
	public := make(map[string]responses.PublicOpeningHours, len(hours))
	for day, value := range hours {
		public[day] = responses.PublicOpeningHours{
			Open:   value.Open,
			Close:  value.Close,
			Closed: value.Closed,
		}
	}
	return public
}

func mapPublicServices(config *models.BusinessConfig) []responses.PublicService {
	services := make([]responses.PublicService, 0, len(config.Services))
	for _, service := range config.Services {
		if !service.Active {
			continue
		}
		public := responses.PublicService{
			Name:            service.Name,
			DurationMinutes: service.DurationMinutes,
			Description:     service.Description,
		}
		if config.Catalog.ShowPrices {
			public.Price = service.Price
		}
		services = append(services, public)
	}
	return services
}

func mapPublicProducts(products []models.Product, showPrices bool) []responses.PublicProduct {
	public := make([]responses.PublicProduct, 0, len(products))
	for _, product := range products {
		item := responses.PublicProduct{
			Name:        product.Name,
			Description: product.Description,
			Category:    product.Category,
		}
		if showPrices {
			item.Price = product.Price
		}
		public = append(public, item)
	}
	return public
}
