package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"painel_entregas/internal/adapter/http/handlers/mocks"
	"painel_entregas/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDeliveryTableHandler_CheckTable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("table exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryTableUseCase(ctrl)
		h := NewDeliveryTableHandler(uc)

		uc.EXPECT().CheckTable(gomock.Any()).Return(nil)

		r := gin.New()
		r.GET("/v1/deliveries/table", h.CheckTable)

		req := httptest.NewRequest(http.MethodGet, "/v1/deliveries/table", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["exists"] != true {
			t.Fatalf("expected exists=true, got %v", body)
		}
	})

	t.Run("probe failure still responds 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryTableUseCase(ctrl)
		h := NewDeliveryTableHandler(uc)

		uc.EXPECT().CheckTable(gomock.Any()).Return(errors.New("ResourceNotFoundException"))

		r := gin.New()
		r.GET("/v1/deliveries/table", h.CheckTable)

		req := httptest.NewRequest(http.MethodGet, "/v1/deliveries/table", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["exists"] != false || body["error"] == "" {
			t.Fatalf("expected exists=false with error, got %v", body)
		}
	})
}

func TestDeliveryTableHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryTableUseCase(ctrl)
		h := NewDeliveryTableHandler(uc)

		uc.EXPECT().GetStats(gomock.Any()).Return(entities.DeliveryStats{
			TotalOffered:   120,
			TotalAccepted:  100,
			TotalRejected:  20,
			TotalCompleted: 95,
			TotalRecords:   40,
		}, nil)

		r := gin.New()
		r.GET("/v1/deliveries/stats", h.GetStats)

		req := httptest.NewRequest(http.MethodGet, "/v1/deliveries/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["total_ofertadas"].(float64) != 120 || body["total_registros"].(float64) != 40 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("repository failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryTableUseCase(ctrl)
		h := NewDeliveryTableHandler(uc)

		uc.EXPECT().GetStats(gomock.Any()).Return(entities.DeliveryStats{}, errors.New("scan failed"))

		r := gin.New()
		r.GET("/v1/deliveries/stats", h.GetStats)

		req := httptest.NewRequest(http.MethodGet, "/v1/deliveries/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestDeliveryTableHandler_ClearAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryTableUseCase(ctrl)
		h := NewDeliveryTableHandler(uc)

		uc.EXPECT().ClearAll(gomock.Any()).Return(37, nil)

		r := gin.New()
		r.DELETE("/v1/deliveries", h.ClearAll)

		req := httptest.NewRequest(http.MethodDelete, "/v1/deliveries", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["removed"].(float64) != 37 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryTableUseCase(ctrl)
		h := NewDeliveryTableHandler(uc)

		uc.EXPECT().ClearAll(gomock.Any()).Return(0, errors.New("delete failed"))

		r := gin.New()
		r.DELETE("/v1/deliveries", h.ClearAll)

		req := httptest.NewRequest(http.MethodDelete, "/v1/deliveries", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
