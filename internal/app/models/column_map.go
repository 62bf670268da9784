package models

// ColumnMap maps the logical field names the pipeline works with to the
// physical column names of the source spreadsheet. Sheets with different
// headers are supported by overriding entries via a JSON file, no code
// change needed.
type ColumnMap struct {
	PatientID       string `json:"patientid"`
	PatientName     string `json:"patientName"`
	DOB             string `json:"dob"`
	MRN             string `json:"mrn"`
	Address         string `json:"address"`
	NPI             string `json:"NPI"`
	PatientSex      string `json:"patient_sex"`
	DABackOfficeID  string `json:"DABackOfficeID"`
	CompanyID       string `json:"companyId"`
	PGCompanyID     string `json:"Pgcompanyid"`
	StartOfCare     string `json:"soc"`
	EpisodeStart    string `json:"cert_period_soe"`
	EpisodeEnd      string `json:"cert_period_eoe"`
	FirstDiagnosis  string `json:"firstDiagnosis"`
	SecondDiagnosis string `json:"secondDiagnosis"`
	ThirdDiagnosis  string `json:"thirdDiagnosis"`
	FourthDiagnosis string `json:"fourthDiagnosis"`
	FifthDiagnosis  string `json:"fifthDiagnosis"`
	SixthDiagnosis  string `json:"sixthDiagnosis"`
	OrderNo         string `json:"orderno"`
	OrderDate       string `json:"orderdate"`
	SendDate        string `json:"sendDate"`
	DocumentID      string `json:"documentId"`
	DocumentName    string `json:"documentName"`
	PDFLink         string `json:"pdfLink"`
}

// DefaultColumnMap mirrors the headers of the standard intake sheet.
func DefaultColumnMap() ColumnMap {
	return ColumnMap{
		PatientID:       "patientid",
		PatientName:     "patientName",
		DOB:             "dob",
		MRN:             "mrn",
		Address:         "address",
		NPI:             "NPI",
		PatientSex:      "patient_sex",
		DABackOfficeID:  "DABackOfficeID",
		CompanyID:       "companyId",
		PGCompanyID:     "Pgcompanyid",
		StartOfCare:     "soc",
		EpisodeStart:    "cert_period_soe",
		EpisodeEnd:      "cert_period_eoe",
		FirstDiagnosis:  "firstDiagnosis",
		SecondDiagnosis: "secondDiagnosis",
		ThirdDiagnosis:  "thirdDiagnosis",
		FourthDiagnosis: "fourthDiagnosis",
		FifthDiagnosis:  "fifthDiagnosis",
		SixthDiagnosis:  "sixthDiagnosis",
		OrderNo:         "orderno",
		OrderDate:       "orderdate",
		SendDate:        "sendDate",
		DocumentID:      "Document ID",
		DocumentName:    "documentType",
		PDFLink:         "PDF_Drive_Link",
	}
}
