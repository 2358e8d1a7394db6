package constvars

const (
	EmailBookingConfirmationSubject = "Your booking at %s"
	EmailBookingNotifyOwnerSubject  = "New booking: %s on %s at %s"
)

const (
	EmailSendBasicEmailFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
)
