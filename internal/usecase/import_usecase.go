package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"painel_entregas/internal/adapter/spreadsheet"
	"painel_entregas/internal/domain/entities"
	"painel_entregas/internal/domain/normalize"
	"painel_entregas/internal/usecase/interfaces"
)

var (
	// ErrNoValidRows means the file parsed fine but zero rows survived
	// validation. Surfaced to the user as "no valid data found", distinct
	// from an unreadable file.
	ErrNoValidRows = errors.New("no valid rows in spreadsheet")
)

const (
	defaultBatchSize    = 1000
	defaultBatchPauseMS = 100
)

// ProgressFunc is invoked once per committed chunk with the running import
// progress. Percent is 0..100 and processed is monotonically increasing.
type ProgressFunc func(percent, processed, total int)

// ImportSummary is what one import run reports back to the caller.
type ImportSummary struct {
	TotalRows int
	ValidRows int
	Result    entities.BatchResult
}

// ImportOptions are per-run overrides supplied by the import endpoint.
type ImportOptions struct {
	// RejectInvalidDates overrides the IMPORT_REJECT_INVALID_DATES default
	// when non-nil.
	RejectInvalidDates *bool
}

// IDeliveryImportUseCase encapsulates the spreadsheet ingestion pipeline:
// parse the upload, validate/normalize each row, commit in bounded batches
// with per-record fallback on batch failure.

type IDeliveryImportUseCase interface {
	ImportFile(ctx context.Context, data []byte, filename string, opts ImportOptions, onProgress ProgressFunc) (ImportSummary, error)
	Ingest(data []byte, filename string) ([]entities.DeliveryRecord, int, error)
	CommitInBatches(ctx context.Context, records []entities.DeliveryRecord, onProgress ProgressFunc) entities.BatchResult
}

type DeliveryImportUseCase struct {
	repo interfaces.IDeliveryRecordRepository

	batchSize  int
	batchPause time.Duration
	// Rows whose data_do_periodo cannot be parsed default to the processing
	// date (the dashboard's historical behavior). Setting
	// IMPORT_REJECT_INVALID_DATES rejects those rows instead of misfiling
	// them under today.
	rejectInvalidDates bool

	logf func(format string, v ...any)
	now  func() time.Time
}

var _ IDeliveryImportUseCase = (*DeliveryImportUseCase)(nil)

func NewDeliveryImportUseCase(repo interfaces.IDeliveryRecordRepository) *DeliveryImportUseCase {
	return &DeliveryImportUseCase{
		repo:               repo,
		batchSize:          getenvInt("IMPORT_BATCH_SIZE", defaultBatchSize),
		batchPause:         time.Duration(getenvInt("IMPORT_BATCH_PAUSE_MS", defaultBatchPauseMS)) * time.Millisecond,
		rejectInvalidDates: getenvBool("IMPORT_REJECT_INVALID_DATES"),
		logf:               log.Printf,
		now:                time.Now,
	}
}

// ImportFile runs the full pipeline: parse, validate, commit.
func (u *DeliveryImportUseCase) ImportFile(ctx context.Context, data []byte, filename string, opts ImportOptions, onProgress ProgressFunc) (ImportSummary, error) {
	rejectInvalidDates := u.rejectInvalidDates
	if opts.RejectInvalidDates != nil {
		rejectInvalidDates = *opts.RejectInvalidDates
	}
	records, totalRows, err := u.ingest(data, filename, rejectInvalidDates)
	if err != nil {
		return ImportSummary{TotalRows: totalRows}, err
	}
	result := u.CommitInBatches(ctx, records, onProgress)
	u.logf("[import][usecase] import finished rows=%d valid=%d success=%d errors=%d",
		totalRows, len(records), result.Success, result.Errors)
	return ImportSummary{TotalRows: totalRows, ValidRows: len(records), Result: result}, nil
}

// Ingest parses the upload and validates every row, preserving row order.
// Invalid rows are dropped with a diagnostic log entry; they are never an
// error by themselves. Returns the valid records and the number of raw rows
// read.
func (u *DeliveryImportUseCase) Ingest(data []byte, filename string) ([]entities.DeliveryRecord, int, error) {
	return u.ingest(data, filename, u.rejectInvalidDates)
}

func (u *DeliveryImportUseCase) ingest(data []byte, filename string, rejectInvalidDates bool) ([]entities.DeliveryRecord, int, error) {
	rows, err := spreadsheet.Parse(data, filename)
	if err != nil {
		return nil, 0, err
	}

	records := make([]entities.DeliveryRecord, 0, len(rows))
	for _, raw := range rows {
		if rec := u.convertRow(raw, rejectInvalidDates); rec != nil {
			records = append(records, *rec)
		}
	}
	if len(records) == 0 {
		return nil, len(rows), ErrNoValidRows
	}
	return records, len(rows), nil
}

// convertRow validates one raw row and coerces it field by field. Returns nil
// when the mandatory fields (period date, courier name) are missing — checked
// before any coercion — or when the date policy rejects the row. Never
// panics: an unexpected coercion failure is logged and treated as a
// rejection.
func (u *DeliveryImportUseCase) convertRow(raw entities.RawRow, rejectInvalidDates bool) (rec *entities.DeliveryRecord) {
	defer func() {
		if r := recover(); r != nil {
			u.logf("[import][usecase] erro ao converter linha: %v dados=%v", r, raw)
			rec = nil
		}
	}()

	if normalize.String(raw[entities.ColPeriodDate]) == "" || normalize.String(raw[entities.ColCourierName]) == "" {
		u.logf("[import][usecase] linha inválida: faltam campos obrigatórios")
		return nil
	}

	periodDate, dateOK := normalize.Date(raw[entities.ColPeriodDate], u.now())
	if !dateOK && rejectInvalidDates {
		u.logf("[import][usecase] linha rejeitada: data_do_periodo inválida valor=%q",
			normalize.String(raw[entities.ColPeriodDate]))
		return nil
	}

	return &entities.DeliveryRecord{
		PeriodDate:              periodDate,
		Period:                  normalize.String(raw[entities.ColPeriod]),
		PeriodDuration:          u.timeField(raw, entities.ColPeriodDuration),
		MinScheduledCouriers:    counter(raw[entities.ColMinScheduledCouriers]),
		Tag:                     normalize.String(raw[entities.ColTag]),
		CourierID:               normalize.String(raw[entities.ColCourierID]),
		CourierName:             normalize.String(raw[entities.ColCourierName]),
		City:                    normalize.String(raw[entities.ColCity]),
		SubCity:                 normalize.String(raw[entities.ColSubCity]),
		Origin:                  normalize.String(raw[entities.ColOrigin]),
		ScheduledAvailableTime:  normalize.String(raw[entities.ColScheduledTime]),
		AbsoluteAvailableTime:   u.timeField(raw, entities.ColAbsoluteTime),
		OfferedRides:            counter(raw[entities.ColOfferedRides]),
		AcceptedRides:           counter(raw[entities.ColAcceptedRides]),
		RejectedRides:           counter(raw[entities.ColRejectedRides]),
		CompletedRides:          counter(raw[entities.ColCompletedRides]),
		CanceledByCourier:       counter(raw[entities.ColCanceledByCourier]),
		AcceptedConcludedOrders: counter(raw[entities.ColAcceptedConcluded]),
		AcceptedRidesFees:       math.Max(0, normalize.Float(raw[entities.ColAcceptedRidesFees])),
	}
}

// timeField normalizes a time-of-day column, logging the fallback cases so a
// bad export can be debugged after the import.
func (u *DeliveryImportUseCase) timeField(raw entities.RawRow, col string) string {
	value, present := raw[col]
	if !present {
		u.logf("[import][usecase] %s vazio, usando 00:00:00", col)
		return "00:00:00"
	}
	s, ok := normalize.TimeOfDay(value)
	if !ok {
		u.logf("[import][usecase] valor de tempo não reconhecido em %s: %q, usando 00:00:00",
			col, normalize.String(value))
	}
	return s
}

// Counters are non-negative by contract; garbage coerces to 0.
func counter(value any) int {
	if n := normalize.Int(value); n > 0 {
		return n
	}
	return 0
}

// CommitInBatches partitions records into chunks and bulk-inserts each one.
// A failed chunk is retried one record at a time so a single malformed record
// does not sink its batch-mates. Storage errors never abort the run; the
// returned tally always accounts for every record. Chunks are committed
// strictly sequentially — concurrent bulk inserts would fight the storage
// capability's per-request limits and break the monotonic progress signal.
func (u *DeliveryImportUseCase) CommitInBatches(ctx context.Context, records []entities.DeliveryRecord, onProgress ProgressFunc) entities.BatchResult {
	result := entities.BatchResult{ErrorDetails: []string{}}
	total := len(records)
	if total == 0 {
		return result
	}

	batchSize := u.batchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	for start := 0; start < total; start += batchSize {
		if err := ctx.Err(); err != nil {
			remaining := total - start
			result.Errors += remaining
			result.ErrorDetails = append(result.ErrorDetails,
				fmt.Sprintf("importação cancelada: %d registros não enviados", remaining))
			u.logf("[import][usecase] commit canceled: %v", err)
			break
		}

		end := min(start+batchSize, total)
		chunk := records[start:end]
		chunkNum := start/batchSize + 1
		u.logf("[import][usecase] inserindo lote %d com %d registros", chunkNum, len(chunk))

		if err := u.repo.InsertMany(ctx, chunk); err != nil {
			// Fall back to per-record inserts to isolate the offending
			// record(s). A record that fails even in isolation is a
			// permanent error for this run.
			u.logf("[import][usecase] erro no lote %d, tentando inserção individual: %v", chunkNum, err)
			chunkSuccess, chunkErrors := 0, 0
			for i := range chunk {
				if err := u.repo.InsertOne(ctx, chunk[i]); err != nil {
					chunkErrors++
					u.logf("[import][usecase] erro no registro %d do lote %d: %v", i+1, chunkNum, err)
				} else {
					chunkSuccess++
				}
			}
			result.Success += chunkSuccess
			result.Errors += chunkErrors
			result.ErrorDetails = append(result.ErrorDetails,
				fmt.Sprintf("lote %d: %d sucessos, %d erros", chunkNum, chunkSuccess, chunkErrors))
		} else {
			result.Success += len(chunk)
			u.logf("[import][usecase] lote %d inserido com sucesso (%d registros)", chunkNum, len(chunk))
		}

		if onProgress != nil {
			onProgress(int(math.Round(float64(end)/float64(total)*100)), end, total)
		}

		// Courtesy pause so large imports do not hammer the table.
		if u.batchPause > 0 && end < total {
			time.Sleep(u.batchPause)
		}
	}
	return result
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
