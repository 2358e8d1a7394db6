package requests

type RegisterUser struct {
	Name         string `json:"name" validate:"required,min=2,max=120"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	CompanyName  string `json:"company_name" validate:"required,min=2,max=120"`
	BusinessType string `json:"business_type" validate:"required,oneof=barbershop restaurant tattoo distributor other"`
	Phone        string `json:"phone" validate:"omitempty,phone"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshToken struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
