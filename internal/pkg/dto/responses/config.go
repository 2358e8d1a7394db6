package responses

import "bizsuite-service/internal/app/models"

type BusinessConfigResponse struct {
	Modules         models.ModuleToggles       `json:"modules"`
	Appointments    models.AppointmentSettings `json:"appointments"`
	Catalog         models.CatalogSettings     `json:"catalog"`
	Services        []models.ServiceItem       `json:"services"`
	CustomerFields  []string                   `json:"customer_fields"`
	Notifications   models.NotificationFlags   `json:"notifications"`
	PublicText      models.PublicText          `json:"public_text"`
	AppliedTemplate string                     `json:"applied_template,omitempty"`
}

type TemplateSummary struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	ServiceCount int    `json:"service_count"`
}

type LogoUploadResponse struct {
	LogoURL string `json:"logo_url"`
}
