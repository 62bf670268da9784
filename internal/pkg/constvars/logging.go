package constvars

const (
	LoggingRunIDKey      = "run_id"
	LoggingRowKey        = "row"
	LoggingEmailKey      = "email"
	LoggingPatientIDKey  = "patient_id"
	LoggingOrderIDKey    = "order_id"
	LoggingDocumentIDKey = "document_id"
	LoggingStatusCodeKey = "status_code"
	LoggingFileNameKey   = "file_name"
	LoggingRowCountKey   = "row_count"
	LoggingDataKey       = "data"
)
