package responses

type BusySlot struct {
	Start         string `json:"start"`
	End           string `json:"end"`
	AppointmentID string `json:"appointment_id"`
}

// OwnerAvailabilityResponse is the agenda view for the authenticated owner:
// free slots plus the bookings occupying the rest of the day.
type OwnerAvailabilityResponse struct {
	Date           string     `json:"date"`
	AvailableSlots []string   `json:"available_slots"`
	BusySlots      []BusySlot `json:"busy_slots"`
}
