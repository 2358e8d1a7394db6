package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"oneof":       "must be one of [%s]",
	"gt":          "must be greater than %s",
	"gte":         "must be greater than or equal to %s",
	"lt":          "must be less than %s",
	"lte":         "must be less than or equal to %s",
	"numeric":     "must be a number",
	"url":         "must be a valid URL",
	"hexcolor":    "must be a valid hex color code",
	"phone":       "must be a valid phone number",
	"date_ymd":    "must be a date in YYYY-MM-DD format",
	"clock_hhmm":  "must be a time in HH:MM format",
	"not_past":    "must not be in the past",
	"weekday_key": "must be a lowercase weekday name",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something wrong with the application"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientNotAuthorized                 = "not authorized"
	ErrClientNotLoggedIn                   = "you are not logged in"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientCompanySlugAlreadyExists      = "business address already taken"
	ErrClientBusinessNotFound              = "business not found"
	ErrClientCustomerNotFound              = "customer not found"
	ErrClientProductNotFound               = "product not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientCategoryNotFound              = "category not found"
	ErrClientEntryNotFound                 = "entry not found"
	ErrClientSlotAlreadyTaken              = "this time is no longer available"
	ErrClientSlotOutsideHours              = "selected time is outside business hours"
	ErrClientDateInThePast                 = "cannot book a date in the past"
	ErrClientInsufficientStock             = "insufficient stock"
	ErrClientInvalidImageFormat            = "invalid image format"
	ErrClientUnknownTemplate               = "unknown business template"
	ErrClientTooManyRequests               = "too many requests, slow down"
	ErrClientBookingInProgress             = "another booking for this slot is in progress"
)

// Error messages for developers
const (
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON         = "failed to marshal value to JSON"
	ErrDevCannotParseMultipartForm  = "failed to parse multipart form"
	ErrDevCannotParseDate           = "failed to parse date value"
	ErrDevCannotParseTime           = "failed to parse time value"
	ErrDevServerDeadlineExceeded    = "request deadline exceeded"
	ErrDevInvalidCredentials        = "credentials do not match any user"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevAuthTokenMissing          = "authorization token missing from request"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate signed token"
	ErrDevSessionNotFound           = "session not found in store"
	ErrDevEmailAlreadyExists        = "email already exists in users collection"
	ErrDevSlugAlreadyExists         = "slug already exists in companies collection"
	ErrDevURLParamIDValidation      = "url parameter %s failed validation"

	ErrDevDBFailedToFindDocument     = "mongodb failed to find document"
	ErrDevDBFailedToInsertDocument   = "mongodb failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "mongodb failed to update document"
	ErrDevDBFailedToDeleteDocument   = "mongodb failed to delete document"
	ErrDevDBFailedToIterateDocuments = "mongodb failed to iterate documents"
	ErrDevDBFailedToCountDocuments   = "mongodb failed to count documents"
	ErrDevDBStringNotObjectID        = "string is not a valid ObjectID"

	ErrDevRedisSetData        = "redis failed to set data"
	ErrDevRedisGetData        = "redis failed to get data"
	ErrDevRedisDeleteData     = "redis failed to delete data"
	ErrDevRedisGetNoData      = "redis has no data for key %s"
	ErrDevRedisAcquireLock    = "redis failed to acquire lock"
	ErrDevRedisReleaseLock    = "redis failed to release lock"
	ErrDevLockAlreadyHeld     = "lock already held by another caller"
	ErrDevMinioFailedToUpload = "minio failed to upload object to bucket %s"
	ErrDevMinioFailedToSign   = "minio failed to create presigned url for bucket %s"

	ErrDevRabbitMQPublish = "rabbitmq failed to publish message"
	ErrDevRabbitMQConsume = "rabbitmq failed to register consumer"
	ErrDevSMTPSend        = "smtp failed to send email"

	ErrDevBuildRequest    = "failed to build outbound HTTP request"
	ErrDevSendRequest     = "failed to send outbound HTTP request"
	ErrDevDecodeResponse  = "failed to decode outbound HTTP response"
	ErrDevUpstreamStatus  = "upstream returned non-success status %d"
	ErrDevSlotTaken       = "requested slot overlaps an existing appointment"
	ErrDevSlotOutsideOpen = "requested slot falls outside opening hours"
)
