package controllers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"wav-intake-service/internal/app/contracts"
	"wav-intake-service/internal/pkg/constvars"
	"wav-intake-service/internal/pkg/dto/requests"
	"wav-intake-service/internal/pkg/dto/responses"
	"wav-intake-service/internal/pkg/exceptions"
	"wav-intake-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxUploadBytes = 32 << 20

type IntakeController struct {
	Log                *zap.Logger
	IntakeUsecase      contracts.IntakeUsecase
	SpreadsheetService contracts.SpreadsheetService
	RunStore           contracts.RunStore
	RunTTL             time.Duration
}

func NewIntakeController(
	logger *zap.Logger,
	intakeUsecase contracts.IntakeUsecase,
	spreadsheetService contracts.SpreadsheetService,
	runStore contracts.RunStore,
	runTTL time.Duration,
) *IntakeController {
	return &IntakeController{
		Log:                logger,
		IntakeUsecase:      intakeUsecase,
		SpreadsheetService: spreadsheetService,
		RunStore:           runStore,
		RunTTL:             runTTL,
	}
}

func (ctrl *IntakeController) LookupOperator(w http.ResponseWriter, r *http.Request) {
	request := new(requests.LookupOperator)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	operator, err := ctrl.IntakeUsecase.LookupOperator(ctx, request.Email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "Operator found", operator)
}

// StartRun accepts the spreadsheet and operator email as multipart form
// fields, runs the whole batch synchronously and stores the outcome under
// a fresh run id.
func (ctrl *IntakeController) StartRun(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingUploadFile(err))
		return
	}
	defer file.Close()

	request := &requests.StartRun{
		Email:    r.FormValue("email"),
		FileName: fileHeader.Filename,
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingUploadFile(err))
		return
	}

	sheet, err := ctrl.SpreadsheetService.Parse(fileBytes)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	operator, err := ctrl.IntakeUsecase.LookupOperator(r.Context(), request.Email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	runID := uuid.NewString()
	log := ctrl.Log.With(zap.String(constvars.LoggingRunIDKey, runID))
	log.Info("Starting batch run",
		zap.String(constvars.LoggingFileNameKey, request.FileName),
		zap.Int(constvars.LoggingRowCountKey, len(sheet.Rows)),
	)

	outputSheet, result, err := ctrl.IntakeUsecase.ProcessSheet(r.Context(), operator.ID, sheet)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	workbook, err := ctrl.SpreadsheetService.Serialize(outputSheet)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	summary := responses.NewRunSummary(runID, request.FileName, len(outputSheet.Rows), result)
	if err := ctrl.RunStore.SaveRun(r.Context(), summary, workbook, ctrl.RunTTL); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, "Batch run finished", summary)
}

func (ctrl *IntakeController) GetRunSummary(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")

	summary, err := ctrl.RunStore.GetSummary(r.Context(), runID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "Run found", summary)
}

func (ctrl *IntakeController) DownloadWorkbook(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")

	workbook, fileName, err := ctrl.RunStore.GetWorkbook(r.Context(), runID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMESpreadsheetXLSX)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="updated_%s"`, fileName))
	w.WriteHeader(constvars.StatusOK)
	w.Write(workbook)
}
