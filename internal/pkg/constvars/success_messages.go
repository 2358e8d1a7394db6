package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess     = "account created successfully"
	LoginSuccess        = "successfully login"
	LogoutSuccess       = "successfully logout"
	TokenRefreshSuccess = "token refreshed successfully"
	ProfileGetSuccess   = "get profile successfully"

	// Resource messages
	CustomerCreatedSuccess    = "customer created successfully"
	CustomerUpdatedSuccess    = "customer updated successfully"
	CustomerDeletedSuccess    = "customer deleted successfully"
	ProductCreatedSuccess     = "product created successfully"
	ProductUpdatedSuccess     = "product updated successfully"
	ProductDeletedSuccess     = "product deleted successfully"
	StockMovementSuccess      = "stock movement recorded successfully"
	AppointmentCreatedSuccess = "appointment created successfully"
	AppointmentUpdatedSuccess = "appointment updated successfully"
	AppointmentDeletedSuccess = "appointment deleted successfully"
	EntryCreatedSuccess       = "entry created successfully"
	EntryUpdatedSuccess       = "entry updated successfully"
	EntryDeletedSuccess       = "entry deleted successfully"
	ConfigSavedSuccess        = "configuration saved successfully"
	TemplateAppliedSuccess    = "template applied successfully"
	LogoUploadedSuccess       = "logo uploaded successfully"

	// Public booking messages
	BookingCreatedSuccess = "booking created successfully"
)
