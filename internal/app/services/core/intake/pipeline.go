package intake

import (
	"context"
	"time"
	"wav-intake-service/internal/app/contracts"
	"wav-intake-service/internal/app/models"
	"wav-intake-service/internal/pkg/constvars"
	"wav-intake-service/internal/pkg/dto/responses"
	"wav-intake-service/internal/pkg/exceptions"
	"wav-intake-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// OrderOutcome is the tri-state result of the order step: created with an
// identifier, or not created (duplicate, validation failure, other
// non-success). The outcome, not an error, decides whether the document
// upload runs.
type OrderOutcome struct {
	Created bool
	OrderID string
}

// rowPipeline drives one row through patient-create, order-create and
// document-upload. It mutates only the row it is handed (response
// provenance, assigned identifiers) and the result accumulator.
type rowPipeline struct {
	PatientClient  contracts.PatientClient
	OrderClient    contracts.OrderClient
	DocumentClient contracts.DocumentClient
	Archive        contracts.DocumentArchive
	Columns        models.ColumnMap
	Log            *zap.Logger
	Now            func() time.Time
}

// ProcessRow runs the full state machine for one row. A returned error is
// row-halting; the caller isolates it and moves on to the next row.
func (p *rowPipeline) ProcessRow(ctx context.Context, row models.Row, rowNumber int, operatorID string, result *models.BatchResult) error {
	patientID, err := p.resolvePatient(ctx, row, rowNumber, operatorID, result)
	if err != nil {
		return err
	}

	// The order step runs even when the patient identifier came back
	// empty from a conflict; the remote decides what to do with it.
	outcome, err := p.resolveOrder(ctx, row, rowNumber, patientID, operatorID, result)
	if err != nil {
		return err
	}

	if outcome.Created && outcome.OrderID != "" {
		return p.uploadDocument(ctx, row, rowNumber, outcome.OrderID)
	}
	return nil
}

func (p *rowPipeline) resolvePatient(ctx context.Context, row models.Row, rowNumber int, operatorID string, result *models.BatchResult) (string, error) {
	if existing := row[p.Columns.PatientID]; existing != "" {
		p.Log.Info("Patient already exists, skipping create",
			zap.Int(constvars.LoggingRowKey, rowNumber),
			zap.String(constvars.LoggingPatientIDKey, existing),
		)
		return existing, nil
	}

	payload := BuildPatientPayload(row, p.Columns, operatorID, p.Now())
	response, err := p.PatientClient.CreatePatient(ctx, payload)
	if err != nil {
		return "", err
	}

	// Provenance is written before any branch can fail the row.
	row[constvars.ColumnPatientResponse] = response.ProvenanceCell()

	if response.StatusCode == constvars.StatusConflict {
		patientID := extractPatientID(response)
		p.Log.Warn("Duplicate patient found",
			zap.Int(constvars.LoggingRowKey, rowNumber),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		if patientID != "" {
			row[p.Columns.PatientID] = patientID
		}
		return patientID, nil
	}

	if response.StatusCode == constvars.StatusBadRequest {
		message := firstRemoteMessage(response)
		if fieldErrors := remoteFieldErrors(response); fieldErrors != "" {
			message = message + " | " + fieldErrors
		}
		p.Log.Error("Patient could not be created",
			zap.Int(constvars.LoggingRowKey, rowNumber),
			zap.String(constvars.LoggingDataKey, message),
		)
		return "", exceptions.ErrPatientValidation(message)
	}

	if !response.OK() {
		p.Log.Error("Patient create failed",
			zap.Int(constvars.LoggingRowKey, rowNumber),
			zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode),
		)
		return "", exceptions.ErrPatientCreateFailed(response.StatusCode)
	}

	patientID := extractPatientID(response)
	if patientID == "" {
		return "", exceptions.ErrPatientMissingID()
	}

	row[p.Columns.PatientID] = patientID
	p.Log.Info("Patient created",
		zap.Int(constvars.LoggingRowKey, rowNumber),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	result.AddPatientSuccess(rowNumber, row[p.Columns.PatientName])
	return patientID, nil
}

func (p *rowPipeline) resolveOrder(ctx context.Context, row models.Row, rowNumber int, patientID, operatorID string, result *models.BatchResult) (OrderOutcome, error) {
	payload := BuildOrderPayload(row, p.Columns, patientID, operatorID, p.Now())
	response, err := p.OrderClient.CreateOrder(ctx, payload)
	if err != nil {
		return OrderOutcome{}, err
	}

	row[constvars.ColumnOrderResponse] = response.ProvenanceCell()

	// Duplicate orders are a quiet non-event: not created, no log line,
	// and the upload step must not run.
	if response.StatusCode == constvars.StatusConflict {
		return OrderOutcome{Created: false, OrderID: response.StringField("orderId")}, nil
	}

	if response.StatusCode == constvars.StatusBadRequest {
		message := firstRemoteMessage(response)
		if fieldErrors := remoteFieldErrors(response); fieldErrors != "" {
			message = message + " | " + fieldErrors
		}
		p.Log.Error("Order could not be created",
			zap.Int(constvars.LoggingRowKey, rowNumber),
			zap.String(constvars.LoggingDataKey, message),
		)
		return OrderOutcome{}, nil
	}

	if !response.OK() {
		p.Log.Error("Order create failed",
			zap.Int(constvars.LoggingRowKey, rowNumber),
			zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode),
		)
		return OrderOutcome{}, nil
	}

	orderID := response.StringField("id")
	if orderID == "" {
		orderID = response.StringField("orderId")
	}
	p.Log.Info("Order created",
		zap.Int(constvars.LoggingRowKey, rowNumber),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)
	result.AddOrderSuccess(rowNumber, row[p.Columns.DocumentID])
	return OrderOutcome{Created: true, OrderID: orderID}, nil
}

func (p *rowPipeline) uploadDocument(ctx context.Context, row models.Row, rowNumber int, orderID string) error {
	link := row[p.Columns.PDFLink]
	if link == "" {
		p.Log.Info("No document link, skipping upload",
			zap.Int(constvars.LoggingRowKey, rowNumber),
			zap.String(constvars.LoggingOrderIDKey, orderID),
		)
		return nil
	}

	contents, err := p.DocumentClient.FetchDocument(ctx, link)
	if err != nil {
		return exceptions.ErrDocumentFetch(err, link)
	}

	fileName := utils.SanitizeDocumentFileName(row[p.Columns.DocumentName])

	if p.Archive != nil {
		if err := p.Archive.ArchiveOrderDocument(ctx, orderID, fileName, contents); err != nil {
			// Archiving is best effort; the upload still decides the row.
			p.Log.Warn("Document archive failed",
				zap.Int(constvars.LoggingRowKey, rowNumber),
				zap.String(constvars.LoggingOrderIDKey, orderID),
				zap.Error(err),
			)
		}
	}

	response, err := p.DocumentClient.UploadOrderDocument(ctx, orderID, fileName, contents)
	if err != nil {
		return err
	}
	if !response.OK() {
		return exceptions.ErrDocumentUpload(response.StatusCode)
	}

	p.Log.Info("Document uploaded",
		zap.Int(constvars.LoggingRowKey, rowNumber),
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.String(constvars.LoggingFileNameKey, fileName),
	)
	return nil
}

// extractPatientID tries the identifier fields the remote is known to use.
func extractPatientID(response *responses.RemoteResponse) string {
	if id := response.StringField("id"); id != "" {
		return id
	}
	if id := response.StringField("patientId"); id != "" {
		return id
	}
	return response.StringField("agencyInfo", "patientWAVId")
}

func firstRemoteMessage(response *responses.RemoteResponse) string {
	if message := response.StringField("title"); message != "" {
		return message
	}
	if message := response.StringField("message"); message != "" {
		return message
	}
	return "Invalid data"
}

func remoteFieldErrors(response *responses.RemoteResponse) string {
	if response.JSON == nil {
		return ""
	}
	fieldErrors, ok := response.JSON["errors"].(map[string]interface{})
	if !ok {
		return ""
	}
	return exceptions.FormatRemoteFieldErrors(fieldErrors)
}
