package models

// PatientSuccess records one row whose patient was newly created.
type PatientSuccess struct {
	RowNumber   int    `json:"row"`
	PatientName string `json:"patientName"`
}

// OrderSuccess records one row whose order was newly created.
type OrderSuccess struct {
	RowNumber  int    `json:"row"`
	DocumentID string `json:"documentId"`
}

// BatchResult accumulates the aggregate outcome of one batch run. Counters
// and success lists grow together: PatientsCreated always equals
// len(PatientSuccesses) and OrdersCreated always equals
// len(OrderSuccesses).
type BatchResult struct {
	PatientsCreated  int              `json:"patientsCreated"`
	OrdersCreated    int              `json:"ordersCreated"`
	PatientSuccesses []PatientSuccess `json:"patientSuccessList"`
	OrderSuccesses   []OrderSuccess   `json:"orderSuccessList"`
}

func NewBatchResult() *BatchResult {
	return &BatchResult{
		PatientSuccesses: []PatientSuccess{},
		OrderSuccesses:   []OrderSuccess{},
	}
}

func (r *BatchResult) AddPatientSuccess(rowNumber int, patientName string) {
	r.PatientsCreated++
	r.PatientSuccesses = append(r.PatientSuccesses, PatientSuccess{
		RowNumber:   rowNumber,
		PatientName: patientName,
	})
}

func (r *BatchResult) AddOrderSuccess(rowNumber int, documentID string) {
	r.OrdersCreated++
	r.OrderSuccesses = append(r.OrderSuccesses, OrderSuccess{
		RowNumber:  rowNumber,
		DocumentID: documentID,
	})
}
