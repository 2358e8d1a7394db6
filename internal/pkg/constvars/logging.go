package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingSessionIDKey  = "session_id"
	LoggingCompanyIDKey  = "company_id"
	LoggingUserIDKey     = "user_id"
	LoggingMethodKey     = "method"
	LoggingPathKey       = "path"
	LoggingStatusKey     = "status"
	LoggingDurationKey   = "duration"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingErrorKey      = "error"
)
