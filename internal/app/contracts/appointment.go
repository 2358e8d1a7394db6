package contracts

import (
	"context"

	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, companyID string, request *requests.ListAppointments) ([]models.Appointment, int, error)
	ListTodayAppointments(ctx context.Context, companyID string) ([]models.Appointment, error)
	CheckAvailability(ctx context.Context, companyID, date string) (*responses.OwnerAvailabilityResponse, error)
	CreateAppointment(ctx context.Context, companyID string, request *requests.CreateAppointment) (*models.Appointment, error)
	GetAppointment(ctx context.Context, companyID, appointmentID string) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, companyID, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, companyID, appointmentID string) error
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindAppointmentByID(ctx context.Context, companyID, appointmentID string) (*models.Appointment, error)
	FindAppointments(ctx context.Context, companyID string, filter *requests.ListAppointments) ([]models.Appointment, int, error)
	FindActiveAppointmentsByDate(ctx context.Context, companyID, date string) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	DeleteAppointment(ctx context.Context, companyID, appointmentID string) error
}
