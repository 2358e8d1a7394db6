package models

type Product struct {
	ID          string  `bson:"_id,omitempty"`
	CompanyID   string  `bson:"companyId"`
	Name        string  `bson:"name"`
	Description string  `bson:"description"`
	Category    string  `bson:"category"`
	Price       float64 `bson:"price"`
	Cost        float64 `bson:"cost"`
	Quantity    int     `bson:"quantity"`
	MinQuantity int     `bson:"minQuantity"`
	Unit        string  `bson:"unit"`
	Active      bool    `bson:"active"`
	TimeModel   `bson:",inline"`
}

type StockMovement struct {
	ID        string `bson:"_id,omitempty"`
	CompanyID string `bson:"companyId"`
	ProductID string `bson:"productId"`
	// Type is "in" or "out".
	Type      string `bson:"type"`
	Quantity  int    `bson:"quantity"`
	Reason    string `bson:"reason"`
	UserID    string `bson:"userId"`
	TimeModel `bson:",inline"`
}
