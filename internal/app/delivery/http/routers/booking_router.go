package routers

import (
	"time"

	"bizsuite-service/internal/app/delivery/http/middlewares"
	"bizsuite-service/internal/app/services/core/booking"

	"github.com/go-chi/chi/v5"
)

func attachPublicBookingRoutes(router chi.Router, bookingController *booking.BookingController) {
	// Booking submissions are unauthenticated, so they get their own blocking
	// limiter on top of the global per-IP throttle.
	bookingLimiter := middlewares.NewRateLimiter(10, time.Minute, 5*time.Minute)

	router.Get("/", bookingController.GetPublicCompany)
	router.Get("/availability", bookingController.GetAvailability)
	router.With(bookingLimiter.Limit).Post("/bookings", bookingController.Book)
}
