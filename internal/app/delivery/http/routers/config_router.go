package routers

import (
	"bizsuite-service/internal/app/delivery/http/middlewares"
	"bizsuite-service/internal/app/services/core/configs"

	"github.com/go-chi/chi/v5"
)

func attachConfigRoutes(router chi.Router, middlewares *middlewares.Middlewares, configController *configs.ConfigController) {
	router.With(middlewares.Authenticate).Get("/", configController.GetConfig)
	router.With(middlewares.Authenticate).Put("/", configController.UpdateConfig)
	router.With(middlewares.Authenticate).Get("/templates", configController.ListTemplates)
	router.With(middlewares.Authenticate).Post("/templates/apply", configController.ApplyTemplate)
	router.With(middlewares.Authenticate).Put("/opening-hours", configController.UpdateOpeningHours)
	router.With(middlewares.Authenticate).Post("/logo", configController.UploadLogo)
}
