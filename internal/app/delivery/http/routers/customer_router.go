package routers

import (
	"bizsuite-service/internal/app/delivery/http/middlewares"
	"bizsuite-service/internal/app/services/core/customers"

	"github.com/go-chi/chi/v5"
)

func attachCustomerRoutes(router chi.Router, middlewares *middlewares.Middlewares, customerController *customers.CustomerController) {
	router.With(middlewares.Authenticate).Get("/", customerController.ListCustomers)
	router.With(middlewares.Authenticate).Post("/", customerController.CreateCustomer)
	router.With(middlewares.Authenticate).Get("/{customerID}", customerController.GetCustomer)
	router.With(middlewares.Authenticate).Put("/{customerID}", customerController.UpdateCustomer)
	router.With(middlewares.Authenticate).Delete("/{customerID}", customerController.DeleteCustomer)
}
