package requests

// LookupOperator asks the WAV user service for the operator identifier
// stamped onto created records.
type LookupOperator struct {
	Email string `json:"email" validate:"required,email"`
}

// StartRun carries the multipart fields of a batch-run request. The
// spreadsheet bytes travel alongside, read from the uploaded file part.
type StartRun struct {
	Email    string `json:"email" validate:"required,email"`
	FileName string `json:"fileName" validate:"required"`
}
