package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	CompanyID string `bson:"companyId"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	Role      string `bson:"role"`
	Active    bool   `bson:"active"`
	TimeModel `bson:",inline"`
}
