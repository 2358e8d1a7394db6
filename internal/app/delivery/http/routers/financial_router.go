package routers

import (
	"bizsuite-service/internal/app/delivery/http/middlewares"
	"bizsuite-service/internal/app/services/core/financial"

	"github.com/go-chi/chi/v5"
)

func attachFinancialRoutes(router chi.Router, middlewares *middlewares.Middlewares, financialController *financial.FinancialController) {
	router.With(middlewares.Authenticate).Get("/categories", financialController.ListCategories)
	router.With(middlewares.Authenticate).Post("/categories", financialController.CreateCategory)
	router.With(middlewares.Authenticate).Delete("/categories/{categoryID}", financialController.DeleteCategory)

	router.With(middlewares.Authenticate).Get("/transactions", financialController.ListTransactions)
	router.With(middlewares.Authenticate).Post("/transactions", financialController.CreateTransaction)
	router.With(middlewares.Authenticate).Put("/transactions/{transactionID}", financialController.UpdateTransaction)
	router.With(middlewares.Authenticate).Delete("/transactions/{transactionID}", financialController.DeleteTransaction)

	router.With(middlewares.Authenticate).Get("/payables", financialController.ListPayables)
	router.With(middlewares.Authenticate).Post("/payables", financialController.CreatePayable)
	router.With(middlewares.Authenticate).Post("/payables/{payableID}/pay", financialController.PayPayable)
	router.With(middlewares.Authenticate).Delete("/payables/{payableID}", financialController.DeletePayable)

	router.With(middlewares.Authenticate).Get("/receivables", financialController.ListReceivables)
	router.With(middlewares.Authenticate).Post("/receivables", financialController.CreateReceivable)
	router.With(middlewares.Authenticate).Post("/receivables/{receivableID}/receive", financialController.ReceiveReceivable)
	router.With(middlewares.Authenticate).Delete("/receivables/{receivableID}", financialController.DeleteReceivable)

	router.With(middlewares.Authenticate).Get("/invoices", financialController.ListInvoices)
	router.With(middlewares.Authenticate).Post("/invoices", financialController.CreateInvoice)
	router.With(middlewares.Authenticate).Put("/invoices/{invoiceID}", financialController.UpdateInvoice)
	router.With(middlewares.Authenticate).Delete("/invoices/{invoiceID}", financialController.DeleteInvoice)

	router.With(middlewares.Authenticate).Get("/summary", financialController.GetSummary)
}
