package documents

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"sync"
	"wav-intake-service/internal/app/contracts"
	"wav-intake-service/internal/app/services/wav/transport"
	"wav-intake-service/internal/pkg/constvars"
	"wav-intake-service/internal/pkg/dto/responses"
	"wav-intake-service/internal/pkg/exceptions"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

var (
	documentClientInstance contracts.DocumentClient
	onceDocumentClient     sync.Once
)

type documentClient struct {
	UploadBaseURL string
	Client        *retryablehttp.Client
	Log           *zap.Logger
}

func NewDocumentClient(baseURL string, client *retryablehttp.Client, logger *zap.Logger) contracts.DocumentClient {
	onceDocumentClient.Do(func() {
		documentClientInstance = &documentClient{
			UploadBaseURL: baseURL + "/api/OrderPdfUpload/upload",
			Client:        client,
			Log:           logger,
		}
	})
	return documentClientInstance
}

// FetchDocument downloads the linked document bytes. The link points at
// whatever drive or CDN the sheet references; any non-2xx is a failure.
func (c *documentClient) FetchDocument(ctx context.Context, link string) ([]byte, error) {
	response, err := transport.Execute(ctx, c.Client, constvars.MethodGet, link, nil, nil)
	if err != nil {
		c.Log.Error("documentClient.FetchDocument error sending HTTP request",
			zap.Error(err),
		)
		return nil, err
	}
	if !response.OK() {
		return nil, fmt.Errorf("failed to download document: %d", response.StatusCode)
	}
	return []byte(response.Text), nil
}

func (c *documentClient) UploadOrderDocument(ctx context.Context, orderID, fileName string, contents []byte) (*responses.RemoteResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, exceptions.ErrBuildHTTPRequest(err)
	}
	if _, err := part.Write(contents); err != nil {
		return nil, exceptions.ErrBuildHTTPRequest(err)
	}
	if err := writer.Close(); err != nil {
		return nil, exceptions.ErrBuildHTTPRequest(err)
	}

	uploadURL := fmt.Sprintf("%s/%s", c.UploadBaseURL, url.PathEscape(orderID))
	header := http.Header{}
	header.Set(constvars.HeaderContentType, writer.FormDataContentType())

	response, err := transport.Execute(ctx, c.Client, constvars.MethodPost, uploadURL, body.Bytes(), header)
	if err != nil {
		c.Log.Error("documentClient.UploadOrderDocument error sending HTTP request",
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Debug("documentClient.UploadOrderDocument response received",
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode),
	)
	return response, nil
}
