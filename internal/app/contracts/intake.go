package contracts

import (
	"context"
	"time"
	"wav-intake-service/internal/app/models"
	"wav-intake-service/internal/pkg/dto/responses"
)

// SpreadsheetService parses and serializes xlsx workbooks. Parsing reads
// the first sheet only; blank cells become empty strings.
type SpreadsheetService interface {
	Parse(fileBytes []byte) (*models.Sheet, error)
	Serialize(sheet *models.Sheet) ([]byte, error)
}

// IntakeUsecase runs one batch over a parsed sheet: every row processed in
// order, per-row failures isolated, output sheet carrying response
// provenance and assigned identifiers.
type IntakeUsecase interface {
	LookupOperator(ctx context.Context, email string) (*responses.Operator, error)
	ProcessSheet(ctx context.Context, operatorID string, sheet *models.Sheet) (*models.Sheet, *models.BatchResult, error)
}

// RunStore keeps finished run summaries and their updated workbooks for
// later retrieval.
type RunStore interface {
	SaveRun(ctx context.Context, summary *responses.RunSummary, workbook []byte, ttl time.Duration) error
	GetSummary(ctx context.Context, runID string) (*responses.RunSummary, error)
	GetWorkbook(ctx context.Context, runID string) ([]byte, string, error)
}

// DocumentArchive keeps a copy of every fetched document, keyed by order.
type DocumentArchive interface {
	ArchiveOrderDocument(ctx context.Context, orderID, fileName string, contents []byte) error
}
