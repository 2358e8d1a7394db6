package requests

// UpdateBusinessConfig replaces the stored configuration wholesale. The
// schema is enumerated; fields absent from the payload reset to their zero
// value rather than surviving from the previous document.
type UpdateBusinessConfig struct {
	Modules        ModuleToggles       `json:"modules"`
	Appointments   AppointmentSettings `json:"appointments"`
	Catalog        CatalogSettings     `json:"catalog"`
	Services       []ServiceItem       `json:"services" validate:"dive"`
	CustomerFields []string            `json:"customer_fields" validate:"dive,max=60"`
	Notifications  NotificationFlags   `json:"notifications"`
	PublicText     PublicText          `json:"public_text"`
}

type ModuleToggles struct {
	Appointments bool `json:"appointments"`
	Catalog      bool `json:"catalog"`
	Financial    bool `json:"financial"`
}

type AppointmentSettings struct {
	DefaultDurationMinutes int `json:"default_duration_minutes" validate:"omitempty,gt=0,lte=480"`
	IntervalMinutes        int `json:"interval_minutes" validate:"omitempty,gt=0,lte=240"`
	AdvanceBookingDays     int `json:"advance_booking_days" validate:"omitempty,gt=0,lte=365"`
}

type CatalogSettings struct {
	ShowPrices bool `json:"show_prices"`
	ShowStock  bool `json:"show_stock"`
}

type ServiceItem struct {
	Name            string  `json:"name" validate:"required,max=120"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"omitempty,gt=0,lte=480"`
	Description     string  `json:"description" validate:"omitempty,max=500"`
	Active          bool    `json:"active"`
}

type NotificationFlags struct {
	EmailOnNewBooking         bool `json:"email_on_new_booking"`
	EmailCustomerConfirmation bool `json:"email_customer_confirmation"`
}

type PublicText struct {
	WelcomeTitle   string `json:"welcome_title" validate:"omitempty,max=120"`
	WelcomeMessage string `json:"welcome_message" validate:"omitempty,max=1000"`
}

type ApplyTemplate struct {
	Template string `json:"template" validate:"required,oneof=barbershop restaurant tattoo distributor other"`
}

type UpdateOpeningHours struct {
	OpeningHours map[string]OpeningHoursDay `json:"opening_hours" validate:"required,dive"`
}

type OpeningHoursDay struct {
	Open   string `json:"open" validate:"omitempty,clock_hhmm"`
	Close  string `json:"close" validate:"omitempty,clock_hhmm"`
	Closed bool   `json:"closed"`
}
