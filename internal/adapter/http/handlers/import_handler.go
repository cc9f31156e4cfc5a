package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "painel_entregas/internal/adapter/http/dto/request"
	response "painel_entregas/internal/adapter/http/dto/response"
	"painel_entregas/internal/adapter/spreadsheet"
	"painel_entregas/internal/usecase"
	"painel_entregas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMissingUpload = pkg.NewDomainErrorSimple("INVALID_UPLOAD", "Missing or unreadable file upload", http.StatusBadRequest)
)

// DeliveryImportHandler handles the spreadsheet upload endpoint.

type DeliveryImportHandler struct {
	usecase usecase.IDeliveryImportUseCase
}

func NewDeliveryImportHandler(uc usecase.IDeliveryImportUseCase) *DeliveryImportHandler {
	return &DeliveryImportHandler{usecase: uc}
}

// ImportSpreadsheet receives a multipart upload (field "file"), runs the
// ingestion pipeline and responds with the run summary. Storage-layer
// failures never fail the request; they are reflected in the tally.
func (h *DeliveryImportHandler) ImportSpreadsheet(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Printf("[import][handler] missing upload err=%v", err)
		c.JSON(errMissingUpload.HTTPStatus, errMissingUpload.ToHTTPError())
		return
	}

	var opts request.ImportOptionsRequest
	if err := c.ShouldBind(&opts); err != nil {
		log.Printf("[import][handler] invalid options err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[import][handler] open upload failed file=%s err=%v", fileHeader.Filename, err)
		c.JSON(errMissingUpload.HTTPStatus, errMissingUpload.ToHTTPError())
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[import][handler] read upload failed file=%s err=%v", fileHeader.Filename, err)
		c.JSON(errMissingUpload.HTTPStatus, errMissingUpload.ToHTTPError())
		return
	}

	log.Printf("[import][handler] import start file=%s bytes=%d", fileHeader.Filename, len(data))
	importOpts := usecase.ImportOptions{RejectInvalidDates: opts.ResolveRejectInvalidDates()}
	summary, err := h.usecase.ImportFile(c.Request.Context(), data, fileHeader.Filename, importOpts, logProgress)
	if err != nil {
		log.Printf("[import][handler] import failed file=%s err=%v", fileHeader.Filename, err)
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[import][handler] import done file=%s success=%d errors=%d",
		fileHeader.Filename, summary.Result.Success, summary.Result.Errors)

	c.JSON(http.StatusOK, response.FromBatchResult(summary.TotalRows, summary.ValidRows, summary.Result))
}

// logProgress keeps the chunk-by-chunk progress visible in the server log;
// the HTTP response only carries the final tally.
func logProgress(percent, processed, total int) {
	log.Printf("[import][handler] progress %d%% (%d/%d)", percent, processed, total)
}

func mapImportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, spreadsheet.ErrUnreadableFile), errors.Is(err, spreadsheet.ErrNoDataRows):
		return pkg.NewDomainErrorSimple("INVALID_FILE", "Could not read file", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoValidRows):
		return pkg.NewDomainErrorSimple("NO_VALID_DATA", "No valid data found", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
