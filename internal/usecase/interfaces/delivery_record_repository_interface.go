package interfaces

import (
	"context"

	"painel_entregas/internal/domain/entities"
)

// IDeliveryRecordRepository abstracts DynamoDB persistence for the
// delivery_data table. InsertMany/InsertOne are the two granularities the
// batch committer needs for its bulk-then-per-record fallback; the rest back
// the table maintenance endpoints.

type IDeliveryRecordRepository interface {
	InsertMany(ctx context.Context, records []entities.DeliveryRecord) error
	InsertOne(ctx context.Context, record entities.DeliveryRecord) error
	CheckTable(ctx context.Context) error
	Stats(ctx context.Context) (entities.DeliveryStats, error)
	DeleteAll(ctx context.Context) (int, error)
}
