package configs

import (
	"time"

	"bizsuite-service/internal/app/models"
)

type businessTemplate struct {
	Label          string
	Modules        models.ModuleToggles
	Appointments   models.AppointmentSettings
	Catalog        models.CatalogSettings
	Services       []models.ServiceItem
	CustomerFields []string
	PublicText     models.PublicText
}

// templateOrder keeps template listings deterministic.
var templateOrder = []string{"barbershop", "restaurant", "tattoo", "distributor", "other"}

var businessTemplates = map[string]businessTemplate{
	"barbershop": {
		Label: "Barbearia",
		Modules: models.ModuleToggles{
			Appointments: true,
			Catalog:      true,
			Financial:    true,
		},
		Appointments: models.AppointmentSettings{
			DefaultDurationMinutes: 30,
			IntervalMinutes:        30,
			AdvanceBookingDays:     7,
		},
		Catalog: models.CatalogSettings{
			ShowPrices: true,
			ShowStock:  false,
		},
		Services: []models.ServiceItem{
			{Name: "Corte Masculino", Price: 40.0, DurationMinutes: 30, Active: true},
			{Name: "Barba", Price: 25.0, DurationMinutes: 20, Active: true},
			{Name: "Corte + Barba", Price: 60.0, DurationMinutes: 45, Active: true},
			{Name: "Corte Infantil", Price: 30.0, DurationMinutes: 25, Active: true},
		},
		CustomerFields: []string{"name", "email", "phone"},
		PublicText: models.PublicText{
			WelcomeTitle:   "Bem-vindo!",
			WelcomeMessage: "Agende seu horario online.",
		},
	},
	"restaurant": {
		Label: "Restaurante",
		Modules: models.ModuleToggles{
			Appointments: true,
			Catalog:      true,
			Financial:    true,
		},
		Appointments: models.AppointmentSettings{
			DefaultDurationMinutes: 90,
			IntervalMinutes:        30,
			AdvanceBookingDays:     14,
		},
		Catalog: models.CatalogSettings{
			ShowPrices: true,
			ShowStock:  false,
		},
		Services: []models.ServiceItem{
			{Name: "Mesa para 2", Price: 0, DurationMinutes: 90, Active: true},
			{Name: "Mesa para 4", Price: 0, DurationMinutes: 90, Active: true},
			{Name: "Mesa para 6+", Price: 0, DurationMinutes: 120, Active: true},
		},
		CustomerFields: []string{"name", "email", "phone"},
		PublicText: models.PublicText{
			WelcomeTitle:   "Reserve sua mesa",
			WelcomeMessage: "Escolha data e horario para sua reserva.",
		},
	},
	"tattoo": {
		Label: "Estudio de Tatuagem",
		Modules: models.ModuleToggles{
			Appointments: true,
			Catalog:      true,
			Financial:    true,
		},
		Appointments: models.AppointmentSettings{
			DefaultDurationMinutes: 120,
			IntervalMinutes:        60,
			AdvanceBookingDays:     30,
		},
		Catalog: models.CatalogSettings{
			ShowPrices: true,
			ShowStock:  false,
		},
		Services: []models.ServiceItem{
			{Name: "Tatuagem Pequena", Price: 200.0, DurationMinutes: 60, Active: true},
			{Name: "Tatuagem Media", Price: 400.0, DurationMinutes: 120, Active: true},
			{Name: "Tatuagem Grande", Price: 800.0, DurationMinutes: 240, Active: true},
			{Name: "Piercing", Price: 80.0, DurationMinutes: 30, Active: true},
			{Name: "Retoque", Price: 150.0, DurationMinutes: 60, Active: true},
		},
		CustomerFields: []string{"name", "email", "phone", "birth_date"},
		PublicText: models.PublicText{
			WelcomeTitle:   "Transforme sua arte em realidade",
			WelcomeMessage: "Veja nosso portfolio e agende sua sessao.",
		},
	},
	"distributor": {
		Label: "Distribuidora",
		Modules: models.ModuleToggles{
			Appointments: false,
			Catalog:      true,
			Financial:    true,
		},
		Appointments: models.AppointmentSettings{},
		Catalog: models.CatalogSettings{
			ShowPrices: true,
			ShowStock:  true,
		},
		Services:       []models.ServiceItem{},
		CustomerFields: []string{"name", "email", "phone", "company"},
		PublicText: models.PublicText{
			WelcomeTitle:   "Catalogo de produtos",
			WelcomeMessage: "Consulte precos e disponibilidade.",
		},
	},
	"other": {
		Label: "Outro Tipo de Negocio",
		Modules: models.ModuleToggles{
			Appointments: true,
			Catalog:      true,
			Financial:    true,
		},
		Appointments: models.AppointmentSettings{
			DefaultDurationMinutes: 60,
			IntervalMinutes:        30,
			AdvanceBookingDays:     15,
		},
		Catalog: models.CatalogSettings{
			ShowPrices: true,
			ShowStock:  false,
		},
		Services:       []models.ServiceItem{},
		CustomerFields: []string{"name", "email", "phone"},
		PublicText: models.PublicText{
			WelcomeTitle: "Bem-vindo!",
		},
	},
}

func templateFor(key string) (string, businessTemplate) {
	if template, ok := businessTemplates[key]; ok {
		return key, template
	}
	return "other", businessTemplates["other"]
}

// DefaultBusinessConfig builds the initial configuration for a company from
// the template matching its business type. Unknown types fall back to "other".
func DefaultBusinessConfig(companyID, businessType string) *models.BusinessConfig {
	key, template := templateFor(businessType)
	now := time.Now()
	return &models.BusinessConfig{
		CompanyID:      companyID,
		Modules:        template.Modules,
		Appointments:   template.Appointments,
		Catalog:        template.Catalog,
		Services:       template.Services,
		CustomerFields: template.CustomerFields,
		Notifications: models.NotificationFlags{
			EmailOnNewBooking:         true,
			EmailCustomerConfirmation: true,
		},
		PublicText:      template.PublicText,
		AppliedTemplate: key,
		TimeModel:       models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
}
