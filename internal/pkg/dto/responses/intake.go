package responses

import "wav-intake-service/internal/app/models"

// Operator is the result of a user lookup: the identifier stamped onto
// created records plus the raw user document for display.
type Operator struct {
	ID   string                 `json:"id"`
	User map[string]interface{} `json:"user,omitempty"`
}

// RunSummary is the read-only view of one batch run exposed to callers.
type RunSummary struct {
	RunID            string                  `json:"runId"`
	FileName         string                  `json:"fileName"`
	RowCount         int                     `json:"rowCount"`
	PatientsCreated  int                     `json:"patientsCreated"`
	OrdersCreated    int                     `json:"ordersCreated"`
	PatientSuccesses []models.PatientSuccess `json:"patientSuccessList"`
	OrderSuccesses   []models.OrderSuccess   `json:"orderSuccessList"`
}

func NewRunSummary(runID, fileName string, rowCount int, result *models.BatchResult) *RunSummary {
	return &RunSummary{
		RunID:            runID,
		FileName:         fileName,
		RowCount:         rowCount,
		PatientsCreated:  result.PatientsCreated,
		OrdersCreated:    result.OrdersCreated,
		PatientSuccesses: result.PatientSuccesses,
		OrderSuccesses:   result.OrderSuccesses,
	}
}
