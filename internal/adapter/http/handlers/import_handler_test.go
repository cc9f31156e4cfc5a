package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"painel_entregas/internal/adapter/http/handlers/mocks"
	"painel_entregas/internal/adapter/spreadsheet"
	"painel_entregas/internal/domain/entities"
	"painel_entregas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newUploadRequest(t *testing.T, target, field, filename string, content []byte, extraFields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	for k, v := range extraFields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestDeliveryImportHandler_ImportSpreadsheet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryImportUseCase(ctrl)
		h := NewDeliveryImportHandler(uc)

		r := gin.New()
		r.POST("/v1/deliveries/import", h.ImportSpreadsheet)

		req := newUploadRequest(t, "/v1/deliveries/import", "", "", nil, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryImportUseCase(ctrl)
		h := NewDeliveryImportHandler(uc)

		summary := usecase.ImportSummary{
			TotalRows: 3,
			ValidRows: 2,
			Result:    entities.BatchResult{Success: 2, ErrorDetails: []string{}},
		}
		uc.EXPECT().
			ImportFile(gomock.Any(), []byte("conteudo"), "planilha.xlsx", usecase.ImportOptions{}, gomock.Any()).
			Return(summary, nil)

		r := gin.New()
		r.POST("/v1/deliveries/import", h.ImportSpreadsheet)

		req := newUploadRequest(t, "/v1/deliveries/import", "file", "planilha.xlsx", []byte("conteudo"), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["success"].(float64) != 2 || body["total_rows"].(float64) != 3 || body["valid_rows"].(float64) != 2 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("reject_invalid_dates forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryImportUseCase(ctrl)
		h := NewDeliveryImportHandler(uc)

		strict := true
		uc.EXPECT().
			ImportFile(gomock.Any(), gomock.Any(), "planilha.xlsx", usecase.ImportOptions{RejectInvalidDates: &strict}, gomock.Any()).
			Return(usecase.ImportSummary{Result: entities.BatchResult{ErrorDetails: []string{}}}, nil)

		r := gin.New()
		r.POST("/v1/deliveries/import", h.ImportSpreadsheet)

		req := newUploadRequest(t, "/v1/deliveries/import", "file", "planilha.xlsx", []byte("x"),
			map[string]string{"reject_invalid_dates": "true"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("unreadable file maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryImportUseCase(ctrl)
		h := NewDeliveryImportHandler(uc)

		uc.EXPECT().
			ImportFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ImportSummary{}, spreadsheet.ErrUnreadableFile)

		r := gin.New()
		r.POST("/v1/deliveries/import", h.ImportSpreadsheet)

		req := newUploadRequest(t, "/v1/deliveries/import", "file", "nota.pdf", []byte("%PDF"), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["code"] != "INVALID_FILE" {
			t.Fatalf("expected INVALID_FILE, got %v", body["code"])
		}
	})

	t.Run("no valid rows maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryImportUseCase(ctrl)
		h := NewDeliveryImportHandler(uc)

		uc.EXPECT().
			ImportFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ImportSummary{}, usecase.ErrNoValidRows)

		r := gin.New()
		r.POST("/v1/deliveries/import", h.ImportSpreadsheet)

		req := newUploadRequest(t, "/v1/deliveries/import", "file", "planilha.xlsx", []byte("x"), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryImportUseCase(ctrl)
		h := NewDeliveryImportHandler(uc)

		uc.EXPECT().
			ImportFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ImportSummary{}, errors.New("boom"))

		r := gin.New()
		r.POST("/v1/deliveries/import", h.ImportSpreadsheet)

		req := newUploadRequest(t, "/v1/deliveries/import", "file", "planilha.xlsx", []byte("x"), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
