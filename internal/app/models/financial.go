package models

type FinancialCategory struct {
	ID        string `bson:"_id,omitempty"`
	CompanyID string `bson:"companyId"`
	Name      string `bson:"name"`
	// Type is "income" or "expense".
	Type      string `bson:"type"`
	Color     string `bson:"color"`
	Active    bool   `bson:"active"`
	TimeModel `bson:",inline"`
}

type Transaction struct {
	ID          string  `bson:"_id,omitempty"`
	CompanyID   string  `bson:"companyId"`
	CategoryID  string  `bson:"categoryId,omitempty"`
	Type        string  `bson:"type"`
	Description string  `bson:"description"`
	Amount      float64 `bson:"amount"`
	Date        string  `bson:"date"`
	Status      string  `bson:"status"`
	TimeModel   `bson:",inline"`
}

type AccountPayable struct {
	ID          string  `bson:"_id,omitempty"`
	CompanyID   string  `bson:"companyId"`
	Description string  `bson:"description"`
	Supplier    string  `bson:"supplier"`
	Amount      float64 `bson:"amount"`
	DueDate     string  `bson:"dueDate"`
	PaidDate    string  `bson:"paidDate,omitempty"`
	Status      string  `bson:"status"`
	TimeModel   `bson:",inline"`
}

type AccountReceivable struct {
	ID           string  `bson:"_id,omitempty"`
	CompanyID    string  `bson:"companyId"`
	Description  string  `bson:"description"`
	CustomerName string  `bson:"customerName"`
	Amount       float64 `bson:"amount"`
	DueDate      string  `bson:"dueDate"`
	ReceivedDate string  `bson:"receivedDate,omitempty"`
	Status       string  `bson:"status"`
	TimeModel    `bson:",inline"`
}

type Invoice struct {
	ID           string        `bson:"_id,omitempty"`
	CompanyID    string        `bson:"companyId"`
	Number       string        `bson:"number"`
	CustomerName string        `bson:"customerName"`
	Items        []InvoiceItem `bson:"items"`
	Total        float64       `bson:"total"`
	IssueDate    string        `bson:"issueDate"`
	DueDate      string        `bson:"dueDate"`
	Status       string        `bson:"status"`
	TimeModel    `bson:",inline"`
}

type InvoiceItem struct {
	Description string  `bson:"description" json:"description"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	UnitPrice   float64 `bson:"unitPrice" json:"unit_price"`
}
