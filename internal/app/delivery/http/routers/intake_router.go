package routers

import (
	"wav-intake-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachIntakeRoutes(router chi.Router, intakeController *controllers.IntakeController) {
	router.Post("/lookup", intakeController.LookupOperator)
	router.Post("/runs", intakeController.StartRun)
	router.Get("/runs/{runID}", intakeController.GetRunSummary)
	router.Get("/runs/{runID}/workbook", intakeController.DownloadWorkbook)
}
