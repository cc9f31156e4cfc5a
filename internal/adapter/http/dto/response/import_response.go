package response

import (
	"painel_entregas/internal/domain/entities"
)

// ImportResultResponse is the summary returned after an import run. Success
// and errors always add up to the number of records that reached the
// committer; rows dropped during validation show up as the difference from
// total_rows.
type ImportResultResponse struct {
	Success      int      `json:"success"`
	Errors       int      `json:"errors"`
	ErrorDetails []string `json:"error_details"`
	TotalRows    int      `json:"total_rows"`
	ValidRows    int      `json:"valid_rows"`
}

func FromBatchResult(totalRows, validRows int, r entities.BatchResult) ImportResultResponse {
	details := r.ErrorDetails
	if details == nil {
		details = []string{}
	}
	return ImportResultResponse{
		Success:      r.Success,
		Errors:       r.Errors,
		ErrorDetails: details,
		TotalRows:    totalRows,
		ValidRows:    validRows,
	}
}
