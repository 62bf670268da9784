package constvars

// Client-facing messages.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please try again"
	ErrClientSomethingWrongWithApplication = "Something is wrong with the application, please contact our admin"
	ErrClientUserNotFound                  = "We could not find a user for that email"
	ErrClientInvalidSpreadsheet            = "The uploaded spreadsheet could not be read"
	ErrClientRunNotFound                   = "We could not find that batch run"
	ErrClientPatientNotCreated             = "Patient could not be created"
	ErrClientDocumentNotUploaded           = "Document could not be uploaded"
)

// Developer messages.
const (
	ErrDevValidationFailed        = "Request validation failed"
	ErrDevCannotMarshalJSON       = "Cannot marshal JSON"
	ErrDevCannotParseJSON         = "Cannot parse JSON body"
	ErrDevBuildHTTPRequest        = "Failed to build HTTP request"
	ErrDevSendHTTPRequest         = "Failed to send HTTP request"
	ErrDevReadResponseBody        = "Failed to read response body"
	ErrDevUserLookupFailed        = "User lookup returned status %d"
	ErrDevUserLookupNoIdentifier  = "User lookup succeeded but no identifier field present"
	ErrDevPatientValidation       = "Remote rejected patient payload: %s"
	ErrDevPatientCreateFailed     = "Patient create failed with status %d"
	ErrDevPatientMissingID        = "Patient create succeeded but returned no identifier"
	ErrDevDocumentFetchFailed     = "Failed to fetch document from %s"
	ErrDevDocumentUploadFailed    = "Document upload failed with status %d"
	ErrDevParseSpreadsheetFailed  = "Failed to parse spreadsheet"
	ErrDevWriteSpreadsheetFailed  = "Failed to serialize spreadsheet"
	ErrDevRedisSet                = "Failed to set value in redis"
	ErrDevRedisGet                = "Failed to get value for key %s from redis"
	ErrDevMinioCreateObject       = "Failed to store object in bucket %s"
	ErrDevCannotParseMultipart    = "Cannot parse multipart form"
	ErrDevColumnMapFile           = "Cannot read column map override file %s"
	ErrDevRunNotFound             = "No run stored under id %s"
	ErrDevCannotParseStoredRun    = "Cannot decode stored run payload"
	ErrDevMissingUploadFile       = "No spreadsheet file present in form"
	ErrDevUnknown                 = "Unknown"
)
