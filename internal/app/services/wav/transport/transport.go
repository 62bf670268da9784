package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
	"wav-intake-service/internal/pkg/dto/responses"
	"wav-intake-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"
)

// NewHTTPClient builds the retrying client shared by the WAV collaborators.
// Request-level timeout policy lives here, not in the pipeline.
func NewHTTPClient(retryMax int) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	client.HTTPClient.Timeout = 60 * time.Second
	client.Logger = nil
	return client
}

// Execute sends one request and folds the reply into a RemoteResponse:
// status code, JSON-decoded body when decodable, raw text otherwise. A
// non-2xx status is a result, not an error; only transport failures error.
func Execute(ctx context.Context, client *retryablehttp.Client, method, url string, body []byte, header http.Header) (*responses.RemoteResponse, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	request, err := retryablehttp.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, exceptions.ErrBuildHTTPRequest(err)
	}
	for key, values := range header {
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}

	response, err := client.Do(request)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer response.Body.Close()

	bodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, exceptions.ErrReadResponseBody(err)
	}

	remote := &responses.RemoteResponse{
		StatusCode: response.StatusCode,
		Text:       string(bodyBytes),
	}
	if len(bodyBytes) > 0 {
		var decoded map[string]interface{}
		if err := json.Unmarshal(bodyBytes, &decoded); err == nil {
			remote.JSON = decoded
		}
	}
	return remote, nil
}
