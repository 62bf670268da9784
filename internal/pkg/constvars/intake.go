package constvars

// Audit columns injected into every output row.
const (
	ColumnPatientResponse = "PatientResponse"
	ColumnOrderResponse   = "OrderResponse"
)

const (
	DateLayoutMMDDYYYY = "01/02/2006"

	// Excel serial day 0 is 1899-12-30; serials are offset from the Unix
	// epoch by 25569 days.
	ExcelEpochOffsetDays = 25569
	SecondsPerDay        = 86400
)

const (
	PatientStatusActive    = "Active"
	CareManagementTypeCPO  = "CPO"
	OrderEntityType        = "ORDER"
	SchemaPlaceholderValue = "string"

	DefaultDocumentBaseName = "order"
	DocumentFileExtension   = ".pdf"
)

const (
	RegexStateZip          = `([A-Za-z]{2})\s*(\d{5}(?:-\d{4})?)?`
	RegexUnsafeFileNameChar = `[^A-Za-z0-9._-]`
)
