package storage

import (
	"bytes"
	"context"
	"fmt"
	"wav-intake-service/internal/app/contracts"
	"wav-intake-service/internal/pkg/constvars"
	"wav-intake-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioArchive struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioArchive(minioClient *minio.Client, bucketName string) contracts.DocumentArchive {
	return &minioArchive{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

// ArchiveOrderDocument keeps a copy of the fetched document under
// orders/<orderID>/<fileName> before it is pushed to the remote service.
func (m *minioArchive) ArchiveOrderDocument(ctx context.Context, orderID, fileName string, contents []byte) error {
	objectName := fmt.Sprintf("orders/%s/%s", orderID, fileName)
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(contents),
		int64(len(contents)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEApplicationPDF,
		},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return nil
}
