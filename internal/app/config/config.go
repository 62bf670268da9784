package config

import (
	"wav-intake-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "intake-documents"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		WAV: WAV{
			UserBaseURL:    utils.GetEnvString("WAV_USER_BASE_URL", "http://localhost:5001/wavuser"),
			PatientBaseURL: utils.GetEnvString("WAV_PATIENT_BASE_URL", "http://localhost:5002/patient"),
			AdminBaseURL:   utils.GetEnvString("WAV_ADMIN_BASE_URL", "http://localhost:5003/admin"),
			RetryMax:       utils.GetEnvInt("WAV_RETRY_MAX", 2),
		},
		Intake: Intake{
			ColumnMapFile: utils.GetEnvString("INTAKE_COLUMN_MAP_FILE", ""),
			RunTTLMinutes: utils.GetEnvInt("INTAKE_RUN_TTL_MINUTES", 60),
			ArchiveOn:     utils.GetEnvBool("INTAKE_ARCHIVE_DOCUMENTS", false),
		},
	}
}
