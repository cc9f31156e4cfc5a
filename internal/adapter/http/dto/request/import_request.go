package request

import "strings"

// ImportOptionsRequest carries the optional form fields accepted next to the
// spreadsheet upload.
type ImportOptionsRequest struct {
	// reject_invalid_dates switches the importer from "misfile rows with an
	// unparseable data_do_periodo under today" (historical behavior) to
	// rejecting them. Empty keeps the server-side default.
	RejectInvalidDates string `form:"reject_invalid_dates"`
}

// ResolveRejectInvalidDates returns nil when the field was not sent, so the
// server default applies.
func (r ImportOptionsRequest) ResolveRejectInvalidDates() *bool {
	v := strings.ToLower(strings.TrimSpace(r.RejectInvalidDates))
	switch v {
	case "":
		return nil
	case "1", "true", "yes", "on":
		b := true
		return &b
	default:
		b := false
		return &b
	}
}
