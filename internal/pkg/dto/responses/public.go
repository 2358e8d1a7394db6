package responses

type PublicService struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
	Description     string  `json:"description,omitempty"`
}

type PublicProduct struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

type PublicOpeningHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed"`
}

// PublicCompanyResponse is the wizard's tenant payload: everything the
// booking page needs in one round trip.
type PublicCompanyResponse struct {
	Name           string                        `json:"name"`
	Slug           string                        `json:"slug"`
	BusinessType   string                        `json:"business_type"`
	Phone          string                        `json:"phone,omitempty"`
	Address        string                        `json:"address,omitempty"`
	PrimaryColor   string                        `json:"primary_color,omitempty"`
	LogoURL        string                        `json:"logo_url,omitempty"`
	WelcomeTitle   string                        `json:"welcome_title,omitempty"`
	WelcomeMessage string                        `json:"welcome_message,omitempty"`
	OpeningHours   map[string]PublicOpeningHours `json:"opening_hours"`
	Services       []PublicService               `json:"services"`
	Products       []PublicProduct               `json:"products,omitempty"`
	ShowPrices     bool                          `json:"show_prices"`
}

type AvailabilityResponse struct {
	Date    string   `json:"date"`
	Slots   []string `json:"slots"`
	Message string   `json:"message,omitempty"`
}

type BookingCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingAppointment struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	Time     string          `json:"time"`
	Service  string          `json:"service"`
	Status   string          `json:"status"`
	Customer BookingCustomer `json:"customer"`
}

type BookingResponse struct {
	Appointment BookingAppointment `json:"appointment"`
}
