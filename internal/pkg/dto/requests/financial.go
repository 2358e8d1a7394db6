package requests

type CreateCategory struct {
	Name  string `json:"name" validate:"required,min=2,max=60"`
	Type  string `json:"type" validate:"required,oneof=income expense"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type CreateTransaction struct {
	CategoryID  string  `json:"category_id" validate:"omitempty"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Description string  `json:"description" validate:"required,max=255"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required,date_ymd"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending paid received"`
}

type UpdateTransaction struct {
	CategoryID  string  `json:"category_id" validate:"omitempty"`
	Description string  `json:"description" validate:"omitempty,max=255"`
	Amount      float64 `json:"amount" validate:"omitempty,gt=0"`
	Date        string  `json:"date" validate:"omitempty,date_ymd"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending paid received"`
}

type CreatePayable struct {
	Description string  `json:"description" validate:"required,max=255"`
	Supplier    string  `json:"supplier" validate:"omitempty,max=120"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	DueDate     string  `json:"due_date" validate:"required,date_ymd"`
}

type CreateReceivable struct {
	Description  string  `json:"description" validate:"required,max=255"`
	CustomerName string  `json:"customer_name" validate:"omitempty,max=120"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	DueDate      string  `json:"due_date" validate:"required,date_ymd"`
}

type InvoiceItem struct {
	Description string  `json:"description" validate:"required,max=255"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

type CreateInvoice struct {
	CustomerName string        `json:"customer_name" validate:"required,max=120"`
	Items        []InvoiceItem `json:"items" validate:"required,min=1,dive"`
	IssueDate    string        `json:"issue_date" validate:"required,date_ymd"`
	DueDate      string        `json:"due_date" validate:"required,date_ymd"`
}

type UpdateInvoice struct {
	CustomerName string        `json:"customer_name" validate:"omitempty,max=120"`
	Items        []InvoiceItem `json:"items" validate:"omitempty,min=1,dive"`
	DueDate      string        `json:"due_date" validate:"omitempty,date_ymd"`
	Status       string        `json:"status" validate:"omitempty,oneof=pending paid cancelled"`
}

type ListTransactions struct {
	StartDate string
	EndDate   string
	Type      string
	Status    string
	Page      int
	PageSize  int
}
