package routers

import (
	"time"

	"bizsuite-service/internal/app/config"
	"bizsuite-service/internal/app/delivery/http/middlewares"
	"bizsuite-service/internal/app/services/core/appointments"
	"bizsuite-service/internal/app/services/core/auth"
	"bizsuite-service/internal/app/services/core/booking"
	"bizsuite-service/internal/app/services/core/configs"
	"bizsuite-service/internal/app/services/core/customers"
	"bizsuite-service/internal/app/services/core/financial"
	"bizsuite-service/internal/app/services/core/products"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	customerController *customers.CustomerController,
	productController *products.ProductController,
	appointmentController *appointments.AppointmentController,
	financialController *financial.FinancialController,
	configController *configs.ConfigController,
	bookingController *booking.BookingController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/customers", func(r chi.Router) {
			attachCustomerRoutes(r, middlewares, customerController)
		})

		r.Route("/products", func(r chi.Router) {
			attachProductRoutes(r, middlewares, productController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})

		r.Route("/financial", func(r chi.Router) {
			attachFinancialRoutes(r, middlewares, financialController)
		})

		r.Route("/config", func(r chi.Router) {
			attachConfigRoutes(r, middlewares, configController)
		})

		r.Route("/public/{companySlug}", func(r chi.Router) {
			attachPublicBookingRoutes(r, bookingController)
		})
	})
}
