package models

// OpeningHours describes one weekday. Closed days keep Open/Close empty.
type OpeningHours struct {
	Open   string `json:"open" bson:"open"`
	Close  string `json:"close" bson:"close"`
	Closed bool   `json:"closed" bson:"closed"`
}

type Company struct {
	ID           string                  `bson:"_id,omitempty"`
	Name         string                  `bson:"name"`
	Slug         string                  `bson:"slug"`
	BusinessType string                  `bson:"businessType"`
	Email        string                  `bson:"email"`
	Phone        string                  `bson:"phone"`
	Address      string                  `bson:"address"`
	PrimaryColor string                  `bson:"primaryColor"`
	LogoURL      string                  `bson:"logoUrl"`
	OpeningHours map[string]OpeningHours `bson:"openingHours"`
	Active       bool                    `bson:"active"`
	Subscription string                  `bson:"subscription"`
	TimeModel    `bson:",inline"`
}
