package routers

import (
	"bizsuite-service/internal/app/delivery/http/middlewares"
	"bizsuite-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.With(middlewares.Authenticate).Get("/", appointmentController.ListAppointments)
	router.With(middlewares.Authenticate).Post("/", appointmentController.CreateAppointment)
	router.With(middlewares.Authenticate).Get("/today", appointmentController.ListTodayAppointments)
	router.With(middlewares.Authenticate).Get("/availability", appointmentController.CheckAvailability)
	router.With(middlewares.Authenticate).Get("/{appointmentID}", appointmentController.GetAppointment)
	router.With(middlewares.Authenticate).Put("/{appointmentID}", appointmentController.UpdateAppointment)
	router.With(middlewares.Authenticate).Delete("/{appointmentID}", appointmentController.DeleteAppointment)
}
