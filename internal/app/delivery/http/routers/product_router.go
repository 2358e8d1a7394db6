package routers

import (
	"bizsuite-service/internal/app/delivery/http/middlewares"
	"bizsuite-service/internal/app/services/core/products"

	"github.com/go-chi/chi/v5"
)

func attachProductRoutes(router chi.Router, middlewares *middlewares.Middlewares, productController *products.ProductController) {
	router.With(middlewares.Authenticate).Get("/", productController.ListProducts)
	router.With(middlewares.Authenticate).Post("/", productController.CreateProduct)
	router.With(middlewares.Authenticate).Get("/low-stock", productController.ListLowStockProducts)
	router.With(middlewares.Authenticate).Get("/{productID}", productController.GetProduct)
	router.With(middlewares.Authenticate).Put("/{productID}", productController.UpdateProduct)
	router.With(middlewares.Authenticate).Delete("/{productID}", productController.DeleteProduct)
	router.With(middlewares.Authenticate).Post("/{productID}/stock", productController.CreateStockMovement)
	router.With(middlewares.Authenticate).Get("/{productID}/stock", productController.ListStockMovements)
}
