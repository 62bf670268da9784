package config

type (
	InternalConfig struct {
		App    App
		WAV    WAV
		Intake Intake
	}

	DriverConfig struct {
		Redis  Redis
		Minio  Minio
		Logger Logger
	}

	App struct {
		Env             string
		Port            string
		Version         string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
	}

	// WAV holds the base URLs of the remote WAV services.
	WAV struct {
		UserBaseURL    string
		PatientBaseURL string
		AdminBaseURL   string
		RetryMax       int
	}

	Intake struct {
		ColumnMapFile string
		RunTTLMinutes int
		ArchiveOn     bool
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
