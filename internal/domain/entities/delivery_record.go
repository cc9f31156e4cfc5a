package entities

// RawRow is one spreadsheet row keyed by the header-row cell text.
//
// Values are either float64 (numeric cells: Excel date serials, day
// fractions, plain numbers) or string. Blank cells are absent from the map.
// RawRow only exists between parsing and validation; it is never persisted.
type RawRow map[string]any

// Column names of the upload layout (exact, case-sensitive). These match the
// delivery_data table columns 1:1.
const (
	ColPeriodDate           = "data_do_periodo"
	ColPeriod               = "periodo"
	ColPeriodDuration       = "duracao_do_periodo"
	ColMinScheduledCouriers = "numero_minimo_de_entregadores_regulares_na_escala"
	ColTag                  = "tag"
	ColCourierID            = "id_da_pessoa_entregadora"
	ColCourierName          = "pessoa_entregadora"
	ColCity                 = "praca"
	ColSubCity              = "sub_praca"
	ColOrigin               = "origem"
	ColScheduledTime        = "tempo_disponivel_escalado"
	ColAbsoluteTime         = "tempo_disponivel_absoluto"
	ColOfferedRides         = "numero_de_corridas_ofertadas"
	ColAcceptedRides        = "numero_de_corridas_aceitas"
	ColRejectedRides        = "numero_de_corridas_rejeitadas"
	ColCompletedRides       = "numero_de_corridas_completadas"
	ColCanceledByCourier    = "numero_de_corridas_canceladas_pela_pessoa_entregadora"
	ColAcceptedConcluded    = "numero_de_pedidos_aceitos_e_concluidos"
	ColAcceptedRidesFees    = "soma_das_taxas_das_corridas_aceitas"
)

// DeliveryRecord is one courier's (pessoa entregadora) activity in one
// period/sub-region, normalized from a spreadsheet row.
//
// Normalization invariants:
//   - PeriodDate is always YYYY-MM-DD.
//   - PeriodDuration and AbsoluteAvailableTime are always HH:MM:SS
//     (blank/unparseable cells normalize to 00:00:00).
//   - Counters are never negative; blank or garbage cells coerce to 0.
//
// Storage model (DynamoDB):
//   - PK: id (server-assigned uuid, stamped by the repository)
//   - created_at stamped at insert time
//
// A record is immutable after construction: it is either persisted or
// discarded and counted, never edited.
type DeliveryRecord struct {
	PeriodDate              string  `json:"data_do_periodo"`
	Period                  string  `json:"periodo"`
	PeriodDuration          string  `json:"duracao_do_periodo"`
	MinScheduledCouriers    int     `json:"numero_minimo_de_entregadores_regulares_na_escala"`
	Tag                     string  `json:"tag"`
	CourierID               string  `json:"id_da_pessoa_entregadora"`
	CourierName             string  `json:"pessoa_entregadora"`
	City                    string  `json:"praca"`
	SubCity                 string  `json:"sub_praca"`
	Origin                  string  `json:"origem"`
	ScheduledAvailableTime  string  `json:"tempo_disponivel_escalado"`
	AbsoluteAvailableTime   string  `json:"tempo_disponivel_absoluto"`
	OfferedRides            int     `json:"numero_de_corridas_ofertadas"`
	AcceptedRides           int     `json:"numero_de_corridas_aceitas"`
	RejectedRides           int     `json:"numero_de_corridas_rejeitadas"`
	CompletedRides          int     `json:"numero_de_corridas_completadas"`
	CanceledByCourier       int     `json:"numero_de_corridas_canceladas_pela_pessoa_entregadora"`
	AcceptedConcludedOrders int     `json:"numero_de_pedidos_aceitos_e_concluidos"`
	AcceptedRidesFees       float64 `json:"soma_das_taxas_das_corridas_aceitas"`
}

// BatchResult is the aggregate outcome of one import run. It is returned to
// the caller and never persisted.
type BatchResult struct {
	Success      int      `json:"success"`
	Errors       int      `json:"errors"`
	ErrorDetails []string `json:"error_details"`
}

// DeliveryStats mirrors the dashboard summary the frontend renders after an
// import: totals of the four main ride counters across the whole table.
type DeliveryStats struct {
	TotalOffered   int `json:"total_ofertadas"`
	TotalAccepted  int `json:"total_aceitas"`
	TotalRejected  int `json:"total_rejeitadas"`
	TotalCompleted int `json:"total_completadas"`
	TotalRecords   int `json:"total_registros"`
}
