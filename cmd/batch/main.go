package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"wav-intake-service/internal/app/config"
	"wav-intake-service/internal/app/contracts"
	"wav-intake-service/internal/app/drivers/logger"
	miniodriver "wav-intake-service/internal/app/drivers/storage"
	"wav-intake-service/internal/app/services/core/intake"
	"wav-intake-service/internal/app/services/shared/spreadsheet"
	"wav-intake-service/internal/app/services/shared/storage"
	"wav-intake-service/internal/app/services/wav/documents"
	"wav-intake-service/internal/app/services/wav/orders"
	"wav-intake-service/internal/app/services/wav/patients"
	"wav-intake-service/internal/app/services/wav/transport"
	"wav-intake-service/internal/app/services/wav/users"
)

// One-shot batch run against a spreadsheet on disk: lookup the operator,
// process every row, write the updated workbook next to the input.
func main() {
	inputPath := flag.String("in", "", "path to the input xlsx file")
	outputPath := flag.String("out", "", "path for the updated xlsx file (default: updated_<in>)")
	email := flag.String("email", "", "operator email for user lookup")
	flag.Parse()

	if *inputPath == "" || *email == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *outputPath == "" {
		*outputPath = fmt.Sprintf("updated_%s", *inputPath)
	}

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	columnMap, err := config.LoadColumnMap(internalConfig)
	if err != nil {
		log.Fatalf("Error loading column map: %v", err)
	}

	httpClient := transport.NewHTTPClient(internalConfig.WAV.RetryMax)
	userClient := users.NewUserClient(internalConfig.WAV.UserBaseURL, httpClient, zapLogger)
	patientClient := patients.NewPatientClient(internalConfig.WAV.PatientBaseURL, httpClient, zapLogger)
	orderClient := orders.NewOrderClient(internalConfig.WAV.PatientBaseURL, httpClient, zapLogger)
	documentClient := documents.NewDocumentClient(internalConfig.WAV.AdminBaseURL, httpClient, zapLogger)

	var archive contracts.DocumentArchive
	if internalConfig.Intake.ArchiveOn {
		minioClient := miniodriver.NewMinio(driverConfig)
		archive = storage.NewMinioArchive(minioClient, driverConfig.Minio.BucketName)
	}

	intakeUsecase := intake.NewIntakeUsecase(
		userClient,
		patientClient,
		orderClient,
		documentClient,
		archive,
		columnMap,
		zapLogger,
	)
	spreadsheetService := spreadsheet.NewSpreadsheetService()

	ctx := context.Background()

	operator, err := intakeUsecase.LookupOperator(ctx, *email)
	if err != nil {
		log.Fatalf("Operator lookup failed: %v", err)
	}

	fileBytes, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("Cannot read %s: %v", *inputPath, err)
	}

	sheet, err := spreadsheetService.Parse(fileBytes)
	if err != nil {
		log.Fatalf("Cannot parse %s: %v", *inputPath, err)
	}

	outputSheet, result, err := intakeUsecase.ProcessSheet(ctx, operator.ID, sheet)
	if err != nil {
		log.Fatalf("Batch run failed: %v", err)
	}

	workbook, err := spreadsheetService.Serialize(outputSheet)
	if err != nil {
		log.Fatalf("Cannot serialize updated workbook: %v", err)
	}
	if err := os.WriteFile(*outputPath, workbook, 0o644); err != nil {
		log.Fatalf("Cannot write %s: %v", *outputPath, err)
	}

	fmt.Printf("Processed %d rows: %d patients created, %d orders created\n",
		len(outputSheet.Rows), result.PatientsCreated, result.OrdersCreated)
	fmt.Printf("Updated workbook written to %s\n", *outputPath)
}
