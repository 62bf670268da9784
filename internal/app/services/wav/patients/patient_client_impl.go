package patients

import (
	"context"
	"net/http"
	"sync"
	"wav-intake-service/internal/app/contracts"
	"wav-intake-service/internal/app/services/wav/transport"
	"wav-intake-service/internal/pkg/constvars"
	"wav-intake-service/internal/pkg/dto/requests"
	"wav-intake-service/internal/pkg/dto/responses"
	"wav-intake-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

var (
	patientClientInstance contracts.PatientClient
	oncePatientClient     sync.Once
)

type patientClient struct {
	CreateURL string
	Client    *retryablehttp.Client
	Log       *zap.Logger
}

func NewPatientClient(baseURL string, client *retryablehttp.Client, logger *zap.Logger) contracts.PatientClient {
	oncePatientClient.Do(func() {
		patientClientInstance = &patientClient{
			CreateURL: baseURL + "/api/Patient/create",
			Client:    client,
			Log:       logger,
		}
	})
	return patientClientInstance
}

// CreatePatient posts the payload and hands the status back untouched; the
// pipeline owns the conflict/validation/success branching.
func (c *patientClient) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.RemoteResponse, error) {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("patientClient.CreatePatient error marshaling JSON",
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	header := http.Header{}
	header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	header.Set(constvars.HeaderAccept, "*/*")

	response, err := transport.Execute(ctx, c.Client, constvars.MethodPost, c.CreateURL, requestJSON, header)
	if err != nil {
		c.Log.Error("patientClient.CreatePatient error sending HTTP request",
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Debug("patientClient.CreatePatient response received",
		zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode),
	)
	return response, nil
}
