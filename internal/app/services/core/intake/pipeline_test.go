package intake

import (
	"context"
	"errors"
	"testing"
	"time"
	"wav-intake-service/internal/app/models"
	"wav-intake-service/internal/pkg/constvars"
	"wav-intake-service/internal/pkg/dto/requests"
	"wav-intake-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePatientClient struct {
	calls    int
	lastBody *requests.CreatePatient
	response *responses.RemoteResponse
	err      error
}

func (f *fakePatientClient) CreatePatient(_ context.Context, request *requests.CreatePatient) (*responses.RemoteResponse, error) {
	f.calls++
	f.lastBody = request
	return f.response, f.err
}

type fakeOrderClient struct {
	calls    int
	lastBody *requests.CreateOrder
	response *responses.RemoteResponse
	err      error
}

func (f *fakeOrderClient) CreateOrder(_ context.Context, request *requests.CreateOrder) (*responses.RemoteResponse, error) {
	f.calls++
	f.lastBody = request
	return f.response, f.err
}

type fakeDocumentClient struct {
	fetchCalls     int
	uploadCalls    int
	contents       []byte
	fetchErr       error
	uploadResponse *responses.RemoteResponse
	uploadErr      error
	lastOrderID    string
	lastFileName   string
}

func (f *fakeDocumentClient) FetchDocument(_ context.Context, _ string) ([]byte, error) {
	f.fetchCalls++
	return f.contents, f.fetchErr
}

func (f *fakeDocumentClient) UploadOrderDocument(_ context.Context, orderID, fileName string, _ []byte) (*responses.RemoteResponse, error) {
	f.uploadCalls++
	f.lastOrderID = orderID
	f.lastFileName = fileName
	return f.uploadResponse, f.uploadErr
}

type fakeArchive struct {
	calls int
	err   error
}

func (f *fakeArchive) ArchiveOrderDocument(_ context.Context, _, _ string, _ []byte) error {
	f.calls++
	return f.err
}

func jsonResponse(statusCode int, body map[string]interface{}) *responses.RemoteResponse {
	return &responses.RemoteResponse{StatusCode: statusCode, JSON: body}
}

func newTestPipeline(patient *fakePatientClient, order *fakeOrderClient, document *fakeDocumentClient, archive *fakeArchive) *rowPipeline {
	pipeline := &rowPipeline{
		PatientClient:  patient,
		OrderClient:    order,
		DocumentClient: document,
		Columns:        models.DefaultColumnMap(),
		Log:            zap.NewNop(),
		Now: func() time.Time {
			return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
		},
	}
	if archive != nil {
		pipeline.Archive = archive
	}
	return pipeline
}

func TestProcessRow_PatientResolution(t *testing.T) {
	columns := models.DefaultColumnMap()

	t.Run("Existing Patient Skips Create", func(t *testing.T) {
		patient := &fakePatientClient{}
		order := &fakeOrderClient{response: jsonResponse(201, map[string]interface{}{"id": "order-1"})}
		pipeline := newTestPipeline(patient, order, &fakeDocumentClient{}, nil)

		row := models.Row{columns.PatientID: "patient-77"}
		result := models.NewBatchResult()
		err := pipeline.ProcessRow(context.Background(), row, 1, "op", result)

		require.NoError(t, err)
		assert.Equal(t, 0, patient.calls)
		require.Equal(t, 1, order.calls)
		assert.Equal(t, "patient-77", order.lastBody.PatientID)
		assert.Equal(t, 0, result.PatientsCreated)
	})

	t.Run("Conflict With Identifier Reuses Patient", func(t *testing.T) {
		patient := &fakePatientClient{response: jsonResponse(409, map[string]interface{}{"patientId": "patient-9"})}
		order := &fakeOrderClient{response: jsonResponse(409, map[string]interface{}{})}
		pipeline := newTestPipeline(patient, order, &fakeDocumentClient{}, nil)

		row := models.Row{columns.PatientName: "Jane Public"}
		result := models.NewBatchResult()
		err := pipeline.ProcessRow(context.Background(), row, 1, "op", result)

		require.NoError(t, err)
		assert.Equal(t, "patient-9", row[columns.PatientID])
		assert.NotEmpty(t, row[constvars.ColumnPatientResponse])
		require.Equal(t, 1, order.calls)
		assert.Equal(t, "patient-9", order.lastBody.PatientID)
		assert.Equal(t, 0, result.PatientsCreated)
	})

	t.Run("Conflict Without Identifier Still Attempts Order", func(t *testing.T) {
		patient := &fakePatientClient{response: jsonResponse(409, map[string]interface{}{"message": "duplicate"})}
		order := &fakeOrderClient{response: jsonResponse(201, map[string]interface{}{"id": "order-3"})}
		pipeline := newTestPipeline(patient, order, &fakeDocumentClient{}, nil)

		row := models.Row{columns.PatientName: "Jane Public"}
		err := pipeline.ProcessRow(context.Background(), row, 1, "op", models.NewBatchResult())

		require.NoError(t, err)
		assert.Empty(t, row[columns.PatientID])
		require.Equal(t, 1, order.calls)
		assert.Equal(t, "", order.lastBody.PatientID)
	})

	t.Run("Validation Failure Halts Row After Provenance", func(t *testing.T) {
		patient := &fakePatientClient{response: jsonResponse(400, map[string]interface{}{
			"title": "One or more validation errors occurred.",
			"errors": map[string]interface{}{
				"dob": []interface{}{"The dob field is required."},
			},
		})}
		order := &fakeOrderClient{}
		pipeline := newTestPipeline(patient, order, &fakeDocumentClient{}, nil)

		row := models.Row{columns.PatientName: "Jane Public"}
		err := pipeline.ProcessRow(context.Background(), row, 1, "op", models.NewBatchResult())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "dob")
		assert.NotEmpty(t, row[constvars.ColumnPatientResponse])
		assert.Equal(t, 0, order.calls)
	})

	t.Run("Success Without Identifier Is An Error", func(t *testing.T) {
		patient := &fakePatientClient{response: jsonResponse(201, map[string]interface{}{"status": "ok"})}
		order := &fakeOrderClient{}
		pipeline := newTestPipeline(patient, order, &fakeDocumentClient{}, nil)

		row := models.Row{columns.PatientName: "Jane Public"}
		err := pipeline.ProcessRow(context.Background(), row, 1, "op", models.NewBatchResult())

		require.Error(t, err)
		assert.Equal(t, 0, order.calls)
	})

	t.Run("Success Records Identifier And Counter", func(t *testing.T) {
		patient := &fakePatientClient{response: jsonResponse(201, map[string]interface{}{
			"agencyInfo": map[string]interface{}{"patientWAVId": "wav-12"},
		})}
		order := &fakeOrderClient{response: jsonResponse(409, map[string]interface{}{})}
		pipeline := newTestPipeline(patient, order, &fakeDocumentClient{}, nil)

		row := models.Row{columns.PatientName: "Jane Public"}
		result := models.NewBatchResult()
		err := pipeline.ProcessRow(context.Background(), row, 1, "op", result)

		require.NoError(t, err)
		assert.Equal(t, "wav-12", row[columns.PatientID])
		assert.Equal(t, 1, result.PatientsCreated)
		require.Len(t, result.PatientSuccesses, 1)
		assert.Equal(t, "Jane Public", result.PatientSuccesses[0].PatientName)
	})

	t.Run("Transport Error Halts Row", func(t *testing.T) {
		patient := &fakePatientClient{err: errors.New("connection refused")}
		order := &fakeOrderClient{}
		pipeline := newTestPipeline(patient, order, &fakeDocumentClient{}, nil)

		row := models.Row{columns.PatientName: "Jane Public"}
		err := pipeline.ProcessRow(context.Background(), row, 1, "op", models.NewBatchResult())

		require.Error(t, err)
		assert.Empty(t, row[constvars.ColumnPatientResponse])
		assert.Equal(t, 0, order.calls)
	})
}

func TestProcessRow_OrderResolution(t *testing.T) {
	columns := models.DefaultColumnMap()

	t.Run("Duplicate Order Skips Upload", func(t *testing.T) {
		patient := &fakePatientClient{}
		order := &fakeOrderClient{response: jsonResponse(409, map[string]interface{}{"orderId": "order-8"})}
		document := &fakeDocumentClient{}
		pipeline := newTestPipeline(patient, order, document, nil)

		row := models.Row{
			columns.PatientID: "patient-1",
			columns.PDFLink:   "https://drive.example.com/doc",
		}
		result := models.NewBatchResult()
		err := pipeline.ProcessRow(context.Background(), row, 1, "op", result)

		require.NoError(t, err)
		assert.NotEmpty(t, row[constvars.ColumnOrderResponse])
		assert.Equal(t, 0, document.fetchCalls)
		assert.Equal(t, 0, document.uploadCalls)
		assert.Equal(t, 0, result.OrdersCreated)
	})

	t.Run("Validation Failure Is Not Row Halting", func(t *testing.T) {
		patient := &fakePatientClient{}
		order := &fakeOrderClient{response: jsonResponse(400, map[string]interface{}{"title": "bad order"})}
		document := &fakeDocumentClient{}
		pipeline := newTestPipeline(patient, order, document, nil)

		row := models.Row{columns.PatientID: "patient-1"}
		result := models.NewBatchResult()
		err := pipeline.ProcessRow(context.Background(), row, 1, "op", result)

		require.NoError(t, err)
		assert.Equal(t, 0, result.OrdersCreated)
		assert.Equal(t, 0, document.uploadCalls)
	})

	t.Run("Created Without Identifier Skips Upload", func(t *testing.T) {
		patient := &fakePatientClient{}
		order := &fakeOrderClient{response: jsonResponse(201, map[string]interface{}{"status": "created"})}
		document := &fakeDocumentClient{}
		pipeline := newTestPipeline(patient, order, document, nil)

		row := models.Row{
			columns.PatientID:  "patient-1",
			columns.PDFLink:    "https://drive.example.com/doc",
			columns.DocumentID: "DOC-1",
		}
		result := models.NewBatchResult()
		err := pipeline.ProcessRow(context.Background(), row, 1, "op", result)

		require.NoError(t, err)
		assert.Equal(t, 1, result.OrdersCreated)
		assert.Equal(t, 0, document.uploadCalls)
	})

	t.Run("Created Records Document Identifier", func(t *testing.T) {
		patient := &fakePatientClient{}
		order := &fakeOrderClient{response: jsonResponse(201, map[string]interface{}{"id": "order-5"})}
		pipeline := newTestPipeline(patient, order, &fakeDocumentClient{}, nil)

		row := models.Row{
			columns.PatientID:  "patient-1",
			columns.DocumentID: "DOC-1",
		}
		result := models.NewBatchResult()
		err := pipeline.ProcessRow(context.Background(), row, 1, "op", result)

		require.NoError(t, err)
		require.Len(t, result.OrderSuccesses, 1)
		assert.Equal(t, "DOC-1", result.OrderSuccesses[0].DocumentID)
		assert.Equal(t, result.OrdersCreated, len(result.OrderSuccesses))
	})
}

func TestProcessRow_DocumentUpload(t *testing.T) {
	columns := models.DefaultColumnMap()

	baseRow := func() models.Row {
		return models.Row{
			columns.PatientID:    "patient-1",
			columns.PDFLink:      "https://drive.example.com/doc",
			columns.DocumentName: "Plan of Care",
		}
	}
	createdOrder := func() *fakeOrderClient {
		return &fakeOrderClient{response: jsonResponse(201, map[string]interface{}{"id": "order-5"})}
	}

	t.Run("Uploads With Sanitized File Name", func(t *testing.T) {
		document := &fakeDocumentClient{
			contents:       []byte("%PDF-1.4"),
			uploadResponse: jsonResponse(200, map[string]interface{}{}),
		}
		pipeline := newTestPipeline(&fakePatientClient{}, createdOrder(), document, nil)

		err := pipeline.ProcessRow(context.Background(), baseRow(), 1, "op", models.NewBatchResult())

		require.NoError(t, err)
		assert.Equal(t, 1, document.fetchCalls)
		require.Equal(t, 1, document.uploadCalls)
		assert.Equal(t, "order-5", document.lastOrderID)
		assert.Equal(t, "Plan_of_Care.pdf", document.lastFileName)
	})

	t.Run("No Link Skips Upload", func(t *testing.T) {
		document := &fakeDocumentClient{}
		pipeline := newTestPipeline(&fakePatientClient{}, createdOrder(), document, nil)

		row := baseRow()
		delete(row, columns.PDFLink)
		err := pipeline.ProcessRow(context.Background(), row, 1, "op", models.NewBatchResult())

		require.NoError(t, err)
		assert.Equal(t, 0, document.fetchCalls)
	})

	t.Run("Fetch Failure Halts Row", func(t *testing.T) {
		document := &fakeDocumentClient{fetchErr: errors.New("timeout")}
		pipeline := newTestPipeline(&fakePatientClient{}, createdOrder(), document, nil)

		err := pipeline.ProcessRow(context.Background(), baseRow(), 1, "op", models.NewBatchResult())

		require.Error(t, err)
		assert.Equal(t, 0, document.uploadCalls)
	})

	t.Run("Upload Failure Status Halts Row", func(t *testing.T) {
		document := &fakeDocumentClient{
			contents:       []byte("%PDF-1.4"),
			uploadResponse: &responses.RemoteResponse{StatusCode: 500, Text: "boom"},
		}
		pipeline := newTestPipeline(&fakePatientClient{}, createdOrder(), document, nil)

		err := pipeline.ProcessRow(context.Background(), baseRow(), 1, "op", models.NewBatchResult())

		require.Error(t, err)
	})

	t.Run("Archive Failure Does Not Halt Row", func(t *testing.T) {
		document := &fakeDocumentClient{
			contents:       []byte("%PDF-1.4"),
			uploadResponse: jsonResponse(200, map[string]interface{}{}),
		}
		archive := &fakeArchive{err: errors.New("bucket unavailable")}
		pipeline := newTestPipeline(&fakePatientClient{}, createdOrder(), document, archive)

		err := pipeline.ProcessRow(context.Background(), baseRow(), 1, "op", models.NewBatchResult())

		require.NoError(t, err)
		assert.Equal(t, 1, archive.calls)
		assert.Equal(t, 1, document.uploadCalls)
	})
}
