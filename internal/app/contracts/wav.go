package contracts

import (
	"context"
	"wav-intake-service/internal/pkg/dto/requests"
	"wav-intake-service/internal/pkg/dto/responses"
)

// UserClient resolves the operator identifier stamped onto created records.
type UserClient interface {
	FindByEmail(ctx context.Context, email string) (*responses.Operator, error)
}

// PatientClient creates patients on the remote WAV patient service. Non-2xx
// statuses come back inside the RemoteResponse; only transport failures
// return an error.
type PatientClient interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.RemoteResponse, error)
}

// OrderClient creates orders on the remote WAV patient service.
type OrderClient interface {
	CreateOrder(ctx context.Context, request *requests.CreateOrder) (*responses.RemoteResponse, error)
}

// DocumentClient fetches a linked document and uploads it against an order.
type DocumentClient interface {
	FetchDocument(ctx context.Context, link string) ([]byte, error)
	UploadOrderDocument(ctx context.Context, orderID, fileName string, contents []byte) (*responses.RemoteResponse, error)
}
