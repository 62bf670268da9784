package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"wav-intake-service/internal/app/config"
	"wav-intake-service/internal/app/contracts"
	"wav-intake-service/internal/app/delivery/http/controllers"
	"wav-intake-service/internal/app/delivery/http/routers"
	"wav-intake-service/internal/app/drivers/database"
	"wav-intake-service/internal/app/drivers/logger"
	miniodriver "wav-intake-service/internal/app/drivers/storage"
	"wav-intake-service/internal/app/services/core/intake"
	"wav-intake-service/internal/app/services/shared/runstore"
	"wav-intake-service/internal/app/services/shared/spreadsheet"
	"wav-intake-service/internal/app/services/shared/storage"
	"wav-intake-service/internal/app/services/wav/documents"
	"wav-intake-service/internal/app/services/wav/orders"
	"wav-intake-service/internal/app/services/wav/patients"
	"wav-intake-service/internal/app/services/wav/transport"
	"wav-intake-service/internal/app/services/wav/users"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	columnMap, err := config.LoadColumnMap(internalConfig)
	if err != nil {
		log.Fatalf("Error loading column map: %v", err)
	}

	redisClient := database.NewRedisClient(driverConfig)

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
	runStore := runstore.NewRedisRunStore(redisClient)
	runTTL := time.Duration(internalConfig.Intake.RunTTLMinutes) * time.Minute

	intakeController := controllers.NewIntakeController(
		zapLogger,
		intakeUsecase,
		spreadsheetService,
		runStore,
		runTTL,
	)

	chiRouter := chi.NewRouter()
	routers.SetupRoutes(chiRouter, internalConfig, intakeController)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(internalConfig.App.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis: %v", err)
	}

	log.Println("Server gracefully stopped")
}
