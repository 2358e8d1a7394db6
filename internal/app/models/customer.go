package models

type Customer struct {
	ID        string `bson:"_id,omitempty"`
	CompanyID string `bson:"companyId"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Phone     string `bson:"phone"`
	Notes     string `bson:"notes"`
	Active    bool   `bson:"active"`
	TimeModel `bson:",inline"`
}
