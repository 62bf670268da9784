package users

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"wav-intake-service/internal/app/contracts"
	"wav-intake-service/internal/app/services/wav/transport"
	"wav-intake-service/internal/pkg/constvars"
	"wav-intake-service/internal/pkg/dto/responses"
	"wav-intake-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

var (
	userClientInstance contracts.UserClient
	onceUserClient     sync.Once
)

type userClient struct {
	BaseURL string
	Client  *retryablehttp.Client
	Log     *zap.Logger
}

func NewUserClient(baseURL string, client *retryablehttp.Client, logger *zap.Logger) contracts.UserClient {
	onceUserClient.Do(func() {
		userClientInstance = &userClient{
			BaseURL: baseURL,
			Client:  client,
			Log:     logger,
		}
	})
	return userClientInstance
}

func (c *userClient) FindByEmail(ctx context.Context, email string) (*responses.Operator, error) {
	lookupURL := fmt.Sprintf("%s/api/WAVInternalUser/byEmail/%s", c.BaseURL, url.PathEscape(email))

	response, err := transport.Execute(ctx, c.Client, constvars.MethodGet, lookupURL, nil, nil)
	if err != nil {
		c.Log.Error("userClient.FindByEmail error sending HTTP request",
			zap.String(constvars.LoggingEmailKey, email),
			zap.Error(err),
		)
		return nil, err
	}

	if !response.OK() {
		c.Log.Error("userClient.FindByEmail lookup failed",
			zap.String(constvars.LoggingEmailKey, email),
			zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode),
		)
		return nil, exceptions.ErrUserLookupFailed(response.StatusCode)
	}

	// The endpoint returns either a single user document or an array of
	// candidates; the first candidate wins.
	candidate := response.JSON
	if candidate == nil && response.Text != "" {
		var list []map[string]interface{}
		if err := json.Unmarshal([]byte(response.Text), &list); err == nil && len(list) > 0 {
			candidate = list[0]
		}
	}
	if candidate == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	operatorID := stringValue(candidate, "id")
	if operatorID == "" {
		operatorID = stringValue(candidate, "Id")
	}
	if operatorID == "" {
		operatorID = stringValue(candidate, "userId")
	}
	if operatorID == "" {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	c.Log.Info("userClient.FindByEmail succeeded",
		zap.String(constvars.LoggingEmailKey, email),
	)
	return &responses.Operator{ID: operatorID, User: candidate}, nil
}

func stringValue(document map[string]interface{}, key string) string {
	value, _ := document[key].(string)
	return value
}
