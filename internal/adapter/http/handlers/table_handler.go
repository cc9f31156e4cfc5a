package handlers

import (
	"fmt"
	"log"
	"net/http"

	response "painel_entregas/internal/adapter/http/dto/response"
	"painel_entregas/internal/usecase"
	"painel_entregas/pkg"

	"github.com/gin-gonic/gin"
)

// DeliveryTableHandler handles the delivery_data maintenance endpoints.

type DeliveryTableHandler struct {
	usecase usecase.IDeliveryTableUseCase
}

func NewDeliveryTableHandler(uc usecase.IDeliveryTableUseCase) *DeliveryTableHandler {
	return &DeliveryTableHandler{usecase: uc}
}

// CheckTable probes the table and always responds 200; an unreachable table
// is a payload condition, not an HTTP failure (the frontend renders it).
func (h *DeliveryTableHandler) CheckTable(c *gin.Context) {
	if err := h.usecase.CheckTable(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, response.TableCheckResponse{Exists: false, Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.TableCheckResponse{Exists: true})
}

// GetStats returns the aggregate ride counters over the whole table.
func (h *DeliveryTableHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.GetStats(c.Request.Context())
	if err != nil {
		log.Printf("[table][handler] stats failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDeliveryStats(stats))
}

// ClearAll wipes the table so a corrected export can be re-imported from
// scratch.
func (h *DeliveryTableHandler) ClearAll(c *gin.Context) {
	removed, err := h.usecase.ClearAll(c.Request.Context())
	if err != nil {
		log.Printf("[table][handler] clear failed removed=%d err=%v", removed, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ClearTableResponse{
		Removed: removed,
		Message: fmt.Sprintf("%d registros removidos com sucesso", removed),
	})
}
