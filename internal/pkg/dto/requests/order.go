package requests

// CreateOrder is the remote order-creation body. Like CreatePatient, the
// schema requires presence of every field.
type CreateOrder struct {
	OrderNo          string `json:"orderNo"`
	OrderDate        string `json:"orderDate"`
	StartOfCare      string `json:"startOfCare"`
	EpisodeStartDate string `json:"episodeStartDate"`
	EpisodeEndDate   string `json:"episodeEndDate"`
	DocumentID       string `json:"documentID"`
	MRN              string `json:"mrn"`
	PatientName      string `json:"patientName"`

	SentToPhysicianDate       string `json:"sentToPhysicianDate"`
	SentToPhysicianStatus     bool   `json:"sentToPhysicianStatus"`
	SignedByPhysicianDate     string `json:"signedByPhysicianDate"`
	SignedByPhysicianStatus   bool   `json:"signedByPhysicianStatus"`
	UploadedSignedOrderDate   string `json:"uploadedSignedOrderDate"`
	UploadedSignedOrderStatus bool   `json:"uploadedSignedOrderStatus"`
	UploadedSignedPgOrderDate string `json:"uploadedSignedPgOrderDate"`
	UploadedSignedPgStatus    bool   `json:"uploadedSignedPgOrderStatus"`

	CPOMinutes   string `json:"cpoMinutes"`
	OrderURL     string `json:"orderUrl"`
	DocumentName string `json:"documentName"`
	EHR          string `json:"ehr"`
	Account      string `json:"account"`
	Location     string `json:"location"`
	Remarks      string `json:"remarks"`

	PatientID   string `json:"patientId"`
	CompanyID   string `json:"companyId"`
	PGCompanyID string `json:"pgCompanyId"`
	EntityType  string `json:"entityType"`

	ClinicalJustification  string `json:"clinicalJustification"`
	BillingProvider        string `json:"billingProvider"`
	BillingProviderNPI     string `json:"billingProviderNPI"`
	SupervisingProvider    string `json:"supervisingProvider"`
	SupervisingProviderNPI string `json:"supervisingProviderNPI"`
	Bit64URL               string `json:"bit64Url"`

	DAOrderType          string `json:"daOrderType"`
	DAUploadSuccess      bool   `json:"daUploadSuccess"`
	DAResponseStatusCode int    `json:"daResponseStatusCode"`
	DAResponseDetails    string `json:"daResponseDetails"`

	CreatedBy    string `json:"createdBy" validate:"required"`
	CreatedOn    string `json:"createdOn" validate:"required"`
	UpdatedBy    string `json:"updatedBy"`
	UpdatedOn    string `json:"updatedOn"`
	CPOUpdatedBy string `json:"cpoUpdatedBy"`
	CPOUpdatedOn string `json:"cpoUpdatedOn"`
}
