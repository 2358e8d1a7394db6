package requests

type CreateProduct struct {
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Category    string  `json:"category" validate:"omitempty,max=60"`
	Price       float64 `json:"price" validate:"gte=0"`
	Cost        float64 `json:"cost" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	MinQuantity int     `json:"min_quantity" validate:"gte=0"`
	Unit        string  `json:"unit" validate:"omitempty,max=20"`
}

// UpdateProduct carries no quantity on purpose. Stock changes go through
// movements so the history stays consistent with the counter.
type UpdateProduct struct {
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Category    string  `json:"category" validate:"omitempty,max=60"`
	Price       float64 `json:"price" validate:"gte=0"`
	Cost        float64 `json:"cost" validate:"gte=0"`
	MinQuantity int     `json:"min_quantity" validate:"gte=0"`
	Unit        string  `json:"unit" validate:"omitempty,max=20"`
	Active      *bool   `json:"active" validate:"omitempty"`
}

type CreateStockMovement struct {
	Type     string `json:"type" validate:"required,oneof=in out"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Reason   string `json:"reason" validate:"omitempty,max=255"`
}

type ListProducts struct {
	Search   string
	Category string
	LowStock bool
	Page     int
	PageSize int
}
