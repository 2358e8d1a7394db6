package models

// BusinessConfig is a fixed, enumerated schema. Every field the panel can
// edit is declared here; unknown keys sent by a client are dropped on decode
// instead of being stored.
type BusinessConfig struct {
	ID              string              `bson:"_id,omitempty"`
	CompanyID       string              `bson:"companyId"`
	Modules         ModuleToggles       `bson:"modules"`
	Appointments    AppointmentSettings `bson:"appointments"`
	Catalog         CatalogSettings     `bson:"catalog"`
	Services        []ServiceItem       `bson:"services"`
	CustomerFields  []string            `bson:"customerFields"`
	Notifications   NotificationFlags   `bson:"notifications"`
	PublicText      PublicText          `bson:"publicText"`
	AppliedTemplate string              `bson:"appliedTemplate"`
	TimeModel       `bson:",inline"`
}

type ModuleToggles struct {
	Appointments bool `json:"appointments" bson:"appointments"`
	Catalog      bool `json:"catalog" bson:"catalog"`
	Financial    bool `json:"financial" bson:"financial"`
}

type AppointmentSettings struct {
	DefaultDurationMinutes int `json:"default_duration_minutes" bson:"defaultDurationMinutes"`
	IntervalMinutes        int `json:"interval_minutes" bson:"intervalMinutes"`
	AdvanceBookingDays     int `json:"advance_booking_days" bson:"advanceBookingDays"`
}

type CatalogSettings struct {
	ShowPrices bool `json:"show_prices" bson:"showPrices"`
	ShowStock  bool `json:"show_stock" bson:"showStock"`
}

type ServiceItem struct {
	Name            string  `json:"name" bson:"name"`
	Price           float64 `json:"price" bson:"price"`
	DurationMinutes int     `json:"duration_minutes" bson:"durationMinutes"`
	Description     string  `json:"description,omitempty" bson:"description,omitempty"`
	Active          bool    `json:"active" bson:"active"`
}

type NotificationFlags struct {
	EmailOnNewBooking         bool `json:"email_on_new_booking" bson:"emailOnNewBooking"`
	EmailCustomerConfirmation bool `json:"email_customer_confirmation" bson:"emailCustomerConfirmation"`
}

type PublicText struct {
	WelcomeTitle   string `json:"welcome_title" bson:"welcomeTitle"`
	WelcomeMessage string `json:"welcome_message" bson:"welcomeMessage"`
}
