package requests

// CreatePatient is the remote patient-creation body. The remote schema
// requires every field to be present, so builders fill unavailable fields
// with neutral values instead of omitting them.
type CreatePatient struct {
	FilterStatus     string `json:"filterStatus"`
	PatientEHRRecID  string `json:"patientEHRRecId"`
	PatientEHRType   string `json:"patientEHRType"`
	PatientFName     string `json:"patientFName"`
	PatientMName     string `json:"patientMName"`
	PatientLName     string `json:"patientLName"`
	DOB              string `json:"dob"`
	Age              string `json:"age"`
	PatientSex       string `json:"patientSex"`
	PatientStatus    string `json:"patientStatus"`
	MaritalStatus    string `json:"maritalStatus"`
	SSN              string `json:"ssn"`
	StartOfCare      string `json:"startOfCare"`

	CareManagement []CareManagement `json:"careManagement"`

	MedicalRecordNo string `json:"medicalRecordNo"`
	ServiceLine     string `json:"serviceLine"`

	PatientAddress string `json:"patientAddress"`
	State          string `json:"state"`
	PatientCity    string `json:"patientCity"`
	PatientState   string `json:"patientState"`
	Zip            string `json:"zip"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	Fax            string `json:"fax"`

	PayorSource                   string `json:"payorSource"`
	BillingProvider               string `json:"billingProvider"`
	BillingProviderPhoneNo        string `json:"billingProviderPhoneNo"`
	BillingProviderAddress        string `json:"billingProviderAddress"`
	BillingProviderZip            string `json:"billingProviderZip"`
	NPI                           string `json:"npi"`
	Line1DOSFrom                  string `json:"line1DOSFrom"`
	Line1DOSTo                    string `json:"line1DOSTo"`
	Line1POS                      string `json:"line1POS"`
	PhysicianNPI                  string `json:"physicianNPI"`
	SupervisingProvider           string `json:"supervisingProvider"`
	SupervisingProviderNPI        string `json:"supervisingProviderNPI"`
	PhysicianGroup                string `json:"physicianGroup"`
	PhysicianGroupNPI             string `json:"physicianGroupNPI"`
	PhysicianGroupAddress         string `json:"physicianGroupAddress"`
	PhysicianPhone                string `json:"physicianPhone"`
	PhysicianAddress              string `json:"physicianAddress"`
	CityStateZip                  string `json:"cityStateZip"`
	PatientAccountNo              string `json:"patientAccountNo"`
	AgencyNPI                     string `json:"agencyNPI"`
	NameOfAgency                  string `json:"nameOfAgency"`
	InsuranceID                   string `json:"insuranceId"`
	PrimaryInsuranceName          string `json:"primaryInsuranceName"`
	SecondaryInsuranceName        string `json:"secondaryInsuranceName"`
	SecondaryInsuranceID          string `json:"secondaryInsuranceID"`
	TertiaryInsuranceName         string `json:"tertiaryInsuranceName"`
	TertiaryInsuranceID           string `json:"tertiaryInsuranceID"`
	NextOfKin                     string `json:"nextofKin"`
	PatientCaretaker              string `json:"patientCaretaker"`
	PatientCaretakerContactNumber string `json:"patientCaretakerContactNumber"`
	Remarks                       string `json:"remarks"`

	DABackOfficeID string `json:"daBackofficeID"`
	CompanyID      string `json:"companyId"`
	PGCompanyID    string `json:"pgcompanyID"`

	CreatedBy string `json:"createdBy" validate:"required"`
	CreatedOn string `json:"createdOn" validate:"required"`
	UpdatedBy string `json:"updatedBy"`
	UpdatedOn string `json:"updatedOn"`

	EpisodeDiagnoses []EpisodeDiagnosis `json:"episodeDiagnoses"`
}

type CareManagement struct {
	CareManagementType string `json:"careManagementType"`
}

type EpisodeDiagnosis struct {
	ID              string `json:"id"`
	StartOfCare     string `json:"startOfCare"`
	StartOfEpisode  string `json:"startOfEpisode"`
	EndOfEpisode    string `json:"endOfEpisode"`
	FirstDiagnosis  string `json:"firstDiagnosis"`
	SecondDiagnosis string `json:"secondDiagnosis"`
	ThirdDiagnosis  string `json:"thirdDiagnosis"`
	FourthDiagnosis string `json:"fourthDiagnosis"`
	FifthDiagnosis  string `json:"fifthDiagnosis"`
	SixthDiagnosis  string `json:"sixthDiagnosis"`
	UpdatedOn       string `json:"updatedOn"`
}
