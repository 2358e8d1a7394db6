package models

type Appointment struct {
	ID         string `bson:"_id,omitempty"`
	CompanyID  string `bson:"companyId"`
	CustomerID string `bson:"customerId"`
	// Date is "YYYY-MM-DD", Time is "HH:MM" local to the business.
	Date            string  `bson:"date"`
	Time            string  `bson:"time"`
	DurationMinutes int     `bson:"durationMinutes"`
	ServiceName     string  `bson:"serviceName"`
	ServicePrice    float64 `bson:"servicePrice"`
	Status          string  `bson:"status"`
	Notes           string  `bson:"notes"`
	TimeModel       `bson:",inline"`
}
