package config

type InternalConfig struct {
	App      App
	JWT      JWT
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
	Portal   Portal
}

type App struct {
	Env                        string
	Port                       string
	Address                    string
	Version                    string
	EndpointPrefix             string
	PublicBaseUrl              string
	MaxRequests                int
	MaxTimeRequestsPerSeconds  int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	BookingLockTTLInSeconds    int
}

type JWT struct {
	Secret                    string
	AccessExpTimeInMinutes    int
	RefreshExpTimeInHours     int
	SessionExpiredTimeInHours int
}

type AppMinio struct {
	BucketName                 string
	LogoMaxUploadSizeInMB      int64
	PresignedExpiryTimeInHours int
}

type AppRabbitMQ struct {
	MailerQueue string
}

// Portal configures the booking portal client in cmd/portal.
type Portal struct {
	APIBaseUrl              string
	TokenFilePath           string
	RequestTimeoutInSeconds int
}
