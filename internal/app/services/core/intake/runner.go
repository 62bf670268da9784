package intake

import (
	"context"
	"time"
	"wav-intake-service/internal/app/contracts"
	"wav-intake-service/internal/app/models"
	"wav-intake-service/internal/pkg/constvars"
	"wav-intake-service/internal/pkg/dto/responses"
	"wav-intake-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type intakeUsecase struct {
	UserClient contracts.UserClient
	Pipeline   *rowPipeline
	Log        *zap.Logger
}

func NewIntakeUsecase(
	userClient contracts.UserClient,
	patientClient contracts.PatientClient,
	orderClient contracts.OrderClient,
	documentClient contracts.DocumentClient,
	archive contracts.DocumentArchive,
	columns models.ColumnMap,
	logger *zap.Logger,
) contracts.IntakeUsecase {
	return &intakeUsecase{
		UserClient: userClient,
		Pipeline: &rowPipeline{
			PatientClient:  patientClient,
			OrderClient:    orderClient,
			DocumentClient: documentClient,
			Archive:        archive,
			Columns:        columns,
			Log:            logger,
			Now:            time.Now,
		},
		Log: logger,
	}
}

func (uc *intakeUsecase) LookupOperator(ctx context.Context, email string) (*responses.Operator, error) {
	cleanEmail := utils.SanitizeEmail(email)
	uc.Log.Info("Looking up operator",
		zap.String(constvars.LoggingEmailKey, cleanEmail),
	)
	return uc.UserClient.FindByEmail(ctx, cleanEmail)
}

// ProcessSheet runs the batch strictly in row order. The input sheet is
// never written to: every row is cloned before the pipeline touches it,
// and the output sheet carries the clones plus the injected audit columns.
// A failing row is logged and skipped; later rows still run.
func (uc *intakeUsecase) ProcessSheet(ctx context.Context, operatorID string, sheet *models.Sheet) (*models.Sheet, *models.BatchResult, error) {
	result := models.NewBatchResult()

	output := &models.Sheet{
		Headers: append([]string{}, sheet.Headers...),
		Rows:    make([]models.Row, 0, len(sheet.Rows)),
	}
	output.EnsureHeader(uc.Pipeline.Columns.PatientID)
	output.EnsureHeader(constvars.ColumnPatientResponse)
	output.EnsureHeader(constvars.ColumnOrderResponse)

	for i, sourceRow := range sheet.Rows {
		rowNumber := i + 1
		row := sourceRow.Clone()
		output.Rows = append(output.Rows, row)

		if err := uc.Pipeline.ProcessRow(ctx, row, rowNumber, operatorID, result); err != nil {
			uc.Log.Error("Row failed",
				zap.Int(constvars.LoggingRowKey, rowNumber),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("Finished processing",
		zap.Int(constvars.LoggingRowCountKey, len(output.Rows)),
		zap.Int("patients_created", result.PatientsCreated),
		zap.Int("orders_created", result.OrdersCreated),
	)
	return output, result, nil
}
