package response

import "painel_entregas/internal/domain/entities"

// TableCheckResponse mirrors the frontend's table checker widget: either the
// table is reachable or the probe error is echoed back.
type TableCheckResponse struct {
	Exists bool   `json:"exists"`
	Error  string `json:"error,omitempty"`
}

type DeliveryStatsResponse struct {
	TotalOffered   int `json:"total_ofertadas"`
	TotalAccepted  int `json:"total_aceitas"`
	TotalRejected  int `json:"total_rejeitadas"`
	TotalCompleted int `json:"total_completadas"`
	TotalRecords   int `json:"total_registros"`
}

func FromDeliveryStats(s entities.DeliveryStats) DeliveryStatsResponse {
	return DeliveryStatsResponse{
		TotalOffered:   s.TotalOffered,
		TotalAccepted:  s.TotalAccepted,
		TotalRejected:  s.TotalRejected,
		TotalCompleted: s.TotalCompleted,
		TotalRecords:   s.TotalRecords,
	}
}

type ClearTableResponse struct {
	Removed int    `json:"removed"`
	Message string `json:"message"`
}
