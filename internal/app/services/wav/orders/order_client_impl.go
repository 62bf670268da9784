package orders

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
	orderClientInstance contracts.OrderClient
	onceOrderClient     sync.Once
)

type orderClient struct {
	CreateURL string
	Client    *retryablehttp.Client
	Log       *zap.Logger
}

func NewOrderClient(baseURL string, client *retryablehttp.Client, logger *zap.Logger) contracts.OrderClient {
	onceOrderClient.Do(func() {
		orderClientInstance = &orderClient{
			CreateURL: baseURL + "/api/Order",
			Client:    client,
			Log:       logger,
		}
	})
	return orderClientInstance
}

func (c *orderClient) CreateOrder(ctx context.Context, request *requests.CreateOrder) (*responses.RemoteResponse, error) {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("orderClient.CreateOrder error marshaling JSON",
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	header := http.Header{}
	header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	header.Set(constvars.HeaderAccept, "*/*")

	response, err := transport.Execute(ctx, c.Client, constvars.MethodPost, c.CreateURL, requestJSON, header)
	if err != nil {
		c.Log.Error("orderClient.CreateOrder error sending HTTP request",
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Debug("orderClient.CreateOrder response received",
		zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode),
	)
	return response, nil
}
