package requests

type CreateCustomer struct {
	Name  string `json:"name" validate:"required,min=2,max=120"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,phone"`
	Notes string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateCustomer struct {
	Name   string `json:"name" validate:"required,min=2,max=120"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone" validate:"omitempty,phone"`
	Notes  string `json:"notes" validate:"omitempty,max=1000"`
	Active *bool  `json:"active" validate:"omitempty"`
}

type ListCustomers struct {
	Search   string
	Page     int
	PageSize int
}
