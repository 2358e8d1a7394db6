package requests

// PublicBooking is what the booking wizard submits. Name, email and phone
// identify (or create) the customer; the service fields come from the
// selected catalog entry.
type PublicBooking struct {
	Name            string  `json:"name" validate:"required,min=2,max=120"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           string  `json:"phone" validate:"required,phone"`
	Notes           string  `json:"notes" validate:"omitempty,max=1000"`
	ServiceName     string  `json:"service_name" validate:"required,max=120"`
	ServicePrice    float64 `json:"service_price" validate:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"omitempty,gt=0"`
	Date            string  `json:"date" validate:"required,date_ymd,not_past"`
	Time            string  `json:"time" validate:"required,clock_hhmm"`
}
