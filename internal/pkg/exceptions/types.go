package exceptions

import (
	"fmt"
	"wav-intake-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipart)
	}
	ErrMissingUploadFile = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevMissingUploadFile)
	}
	ErrBuildHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBuildHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadResponseBody = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevReadResponseBody)
	}

	// User lookup: without an operator identifier no batch can start.
	ErrUserLookupFailed = func(statusCode int) *CustomError {
		return WrapWithoutError(constvars.StatusBadGateway, constvars.ErrClientUserNotFound, fmt.Sprintf(constvars.ErrDevUserLookupFailed, statusCode))
	}
	ErrUserNotFound = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientUserNotFound, constvars.ErrDevUserLookupNoIdentifier)
	}

	// Patient creation: all three halt the row.
	ErrPatientValidation = func(message string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientPatientNotCreated, fmt.Sprintf(constvars.ErrDevPatientValidation, message))
	}
	ErrPatientCreateFailed = func(statusCode int) *CustomError {
		return WrapWithoutError(constvars.StatusBadGateway, constvars.ErrClientPatientNotCreated, fmt.Sprintf(constvars.ErrDevPatientCreateFailed, statusCode))
	}
	ErrPatientMissingID = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadGateway, constvars.ErrClientPatientNotCreated, constvars.ErrDevPatientMissingID)
	}

	// Document upload: halts the row after the order was created.
	ErrDocumentFetch = func(err error, link string) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientDocumentNotUploaded, fmt.Sprintf(constvars.ErrDevDocumentFetchFailed, link))
	}
	ErrDocumentUpload = func(statusCode int) *CustomError {
		return WrapWithoutError(constvars.StatusBadGateway, constvars.ErrClientDocumentNotUploaded, fmt.Sprintf(constvars.ErrDevDocumentUploadFailed, statusCode))
	}

	// Spreadsheet I/O: a parse failure is the only batch-fatal error.
	ErrParseSpreadsheet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidSpreadsheet, constvars.ErrDevParseSpreadsheetFailed)
	}
	ErrWriteSpreadsheet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevWriteSpreadsheetFailed)
	}

	ErrColumnMapFile = func(err error, path string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevColumnMapFile, path))
	}

	ErrRedisSet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error, key string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
	ErrRunNotFound = func(runID string) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientRunNotFound, fmt.Sprintf(constvars.ErrDevRunNotFound, runID))
	}
	ErrDecodeStoredRun = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotParseStoredRun)
	}

	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioCreateObject, bucketName))
	}
)
