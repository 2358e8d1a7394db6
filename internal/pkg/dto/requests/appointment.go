package requests

type CreateAppointment struct {
	CustomerID      string  `json:"customer_id" validate:"required"`
	Date            string  `json:"date" validate:"required,date_ymd,not_past"`
	Time            string  `json:"time" validate:"required,clock_hhmm"`
	DurationMinutes int     `json:"duration_minutes" validate:"omitempty,gt=0"`
	ServiceName     string  `json:"service_name" validate:"required,max=120"`
	ServicePrice    float64 `json:"service_price" validate:"gte=0"`
	Notes           string  `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateAppointment struct {
	Date            string  `json:"date" validate:"omitempty,date_ymd"`
	Time            string  `json:"time" validate:"omitempty,clock_hhmm"`
	DurationMinutes int     `json:"duration_minutes" validate:"omitempty,gt=0"`
	ServiceName     string  `json:"service_name" validate:"omitempty,max=120"`
	ServicePrice    float64 `json:"service_price" validate:"omitempty,gte=0"`
	Status          string  `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Notes           string  `json:"notes" validate:"omitempty,max=1000"`
}

type ListAppointments struct {
	Date       string
	Status     string
	CustomerID string
	Page       int
	PageSize   int
}
