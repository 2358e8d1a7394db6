package config

import (
	"bizsuite-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "bizsuite"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", ""),
			Password:   utils.GetEnvString("MINIO_PASSWORD", ""),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "bizsuite-assets"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "noreply@bizsuite.local"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			PublicBaseUrl:              utils.GetEnvString("APP_PUBLIC_BASE_URL", "http://localhost:8080"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			BookingLockTTLInSeconds:    utils.GetEnvInt("APP_BOOKING_LOCK_TTL_IN_SECONDS", 10),
		},
		JWT: JWT{
			Secret:                    utils.GetEnvString("JWT_SECRET", "anyjwt"),
			AccessExpTimeInMinutes:    utils.GetEnvInt("JWT_ACCESS_EXP_TIME_IN_MINUTES", 60),
			RefreshExpTimeInHours:     utils.GetEnvInt("JWT_REFRESH_EXP_TIME_IN_HOURS", 720),
			SessionExpiredTimeInHours: utils.GetEnvInt("JWT_SESSION_EXPIRED_TIME_IN_HOURS", 720),
		},
		Minio: AppMinio{
			BucketName:                 utils.GetEnvString("MINIO_BUCKET_NAME", "bizsuite-assets"),
			LogoMaxUploadSizeInMB:      int64(utils.GetEnvInt("APP_MINIO_LOGO_UPLOAD_MAX_SIZE_IN_MB", 2)),
			PresignedExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRESIGNED_EXPIRY_TIME_IN_HOURS", 24),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "bizsuite.mailer"),
		},
		Portal: Portal{
			APIBaseUrl:              utils.GetEnvString("PORTAL_API_BASE_URL", "http://localhost:8080/api/v1"),
			TokenFilePath:           utils.GetEnvString("PORTAL_TOKEN_FILE_PATH", ".bizsuite_tokens.json"),
			RequestTimeoutInSeconds: utils.GetEnvInt("PORTAL_REQUEST_TIMEOUT_IN_SECONDS", 15),
		},
	}
}
