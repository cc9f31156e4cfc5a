package repository

import (
	"context"
	"fmt"
	"time"

	"painel_entregas/internal/domain/entities"
	"painel_entregas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultDeliveryDataTableName = "delivery_data"

	// DynamoDB caps BatchWriteItem at 25 items per request; larger chunks
	// from the committer are paged down to this size here.
	maxBatchWriteItems = 25
	// Bounded retries for UnprocessedItems before the page counts as failed.
	maxUnprocessedRetries = 3
)

type deliveryRecordItem struct {
	ID                      string  `dynamodbav:"id"`
	CreatedAt               string  `dynamodbav:"created_at"`
	PeriodDate              string  `dynamodbav:"data_do_periodo"`
	Period                  string  `dynamodbav:"periodo"`
	PeriodDuration          string  `dynamodbav:"duracao_do_periodo"`
	MinScheduledCouriers    int     `dynamodbav:"numero_minimo_de_entregadores_regulares_na_escala"`
	Tag                     string  `dynamodbav:"tag"`
	CourierID               string  `dynamodbav:"id_da_pessoa_entregadora"`
	CourierName             string  `dynamodbav:"pessoa_entregadora"`
	City                    string  `dynamodbav:"praca"`
	SubCity                 string  `dynamodbav:"sub_praca"`
	Origin                  string  `dynamodbav:"origem"`
	ScheduledAvailableTime  string  `dynamodbav:"tempo_disponivel_escalado"`
	AbsoluteAvailableTime   string  `dynamodbav:"tempo_disponivel_absoluto"`
	OfferedRides            int     `dynamodbav:"numero_de_corridas_ofertadas"`
	AcceptedRides           int     `dynamodbav:"numero_de_corridas_aceitas"`
	RejectedRides           int     `dynamodbav:"numero_de_corridas_rejeitadas"`
	CompletedRides          int     `dynamodbav:"numero_de_corridas_completadas"`
	CanceledByCourier       int     `dynamodbav:"numero_de_corridas_canceladas_pela_pessoa_entregadora"`
	AcceptedConcludedOrders int     `dynamodbav:"numero_de_pedidos_aceitos_e_concluidos"`
	AcceptedRidesFees       float64 `dynamodbav:"soma_das_taxas_das_corridas_aceitas"`
}

// DeliveryRecordDynamoRepository persists DeliveryRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The id and created_at attributes are server-assigned here at insert time;
// the ingestion pipeline enforces no natural key, so re-importing a file
// produces new ids (duplication is the caller's problem by design).

type DeliveryRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDeliveryRecordRepository = (*DeliveryRecordDynamoRepository)(nil)

func NewDeliveryRecordDynamoRepository(ddb *dynamodb.Client) *DeliveryRecordDynamoRepository {
	return &DeliveryRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DELIVERY_DATA_TABLE", defaultDeliveryDataTableName),
	}
}

func (r *DeliveryRecordDynamoRepository) InsertMany(ctx context.Context, records []entities.DeliveryRecord) error {
	for start := 0; start < len(records); start += maxBatchWriteItems {
		end := min(start+maxBatchWriteItems, len(records))
		writes := make([]types.WriteRequest, 0, end-start)
		for _, rec := range records[start:end] {
			av, err := attributevalue.MarshalMap(toDeliveryRecordItem(rec))
			if err != nil {
				return fmt.Errorf("marshal record: %w", err)
			}
			writes = append(writes, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: av},
			})
		}
		if err := r.batchWrite(ctx, writes); err != nil {
			return err
		}
	}
	return nil
}

func (r *DeliveryRecordDynamoRepository) InsertOne(ctx context.Context, record entities.DeliveryRecord) error {
	av, err := attributevalue.MarshalMap(toDeliveryRecordItem(record))
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *DeliveryRecordDynamoRepository) CheckTable(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})
	return err
}

func (r *DeliveryRecordDynamoRepository) Stats(ctx context.Context) (entities.DeliveryStats, error) {
	var stats entities.DeliveryStats
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			ProjectionExpression: aws.String("#ofertadas, #aceitas, #rejeitadas, #completadas"),
			ExpressionAttributeNames: map[string]string{
				"#ofertadas":   "numero_de_corridas_ofertadas",
				"#aceitas":     "numero_de_corridas_aceitas",
				"#rejeitadas":  "numero_de_corridas_rejeitadas",
				"#completadas": "numero_de_corridas_completadas",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return entities.DeliveryStats{}, err
		}

		var items []deliveryRecordItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return entities.DeliveryStats{}, err
		}
		for _, it := range items {
			stats.TotalOffered += it.OfferedRides
			stats.TotalAccepted += it.AcceptedRides
			stats.TotalRejected += it.RejectedRides
			stats.TotalCompleted += it.CompletedRides
		}
		stats.TotalRecords += len(out.Items)

		if out.LastEvaluatedKey == nil {
			return stats, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *DeliveryRecordDynamoRepository) DeleteAll(ctx context.Context) (int, error) {
	removed := 0
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			ProjectionExpression: aws.String("id"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return removed, err
		}

		for start := 0; start < len(out.Items); start += maxBatchWriteItems {
			end := min(start+maxBatchWriteItems, len(out.Items))
			writes := make([]types.WriteRequest, 0, end-start)
			for _, item := range out.Items[start:end] {
				writes = append(writes, types.WriteRequest{
					DeleteRequest: &types.DeleteRequest{Key: map[string]types.AttributeValue{
						"id": item["id"],
					}},
				})
			}
			if err := r.batchWrite(ctx, writes); err != nil {
				return removed, err
			}
			removed += end - start
		}

		if out.LastEvaluatedKey == nil {
			return removed, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// batchWrite issues one BatchWriteItem page and retries UnprocessedItems a
// bounded number of times. Anything still unprocessed after that is an error
// for the whole page; the committer's per-record fallback takes over.
func (r *DeliveryRecordDynamoRepository) batchWrite(ctx context.Context, writes []types.WriteRequest) error {
	pending := writes
	for attempt := 0; len(pending) > 0; attempt++ {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{r.tableName: pending},
		})
		if err != nil {
			return err
		}
		pending = out.UnprocessedItems[r.tableName]
		if len(pending) == 0 {
			return nil
		}
		if attempt >= maxUnprocessedRetries {
			return fmt.Errorf("%d items unprocessed after %d retries", len(pending), attempt)
		}
		// Brief backoff before re-sending throttled items.
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 100 * time.Millisecond):
		}
	}
	return nil
}

func toDeliveryRecordItem(rec entities.DeliveryRecord) deliveryRecordItem {
	return deliveryRecordItem{
		ID:                      uuid.NewString(),
		CreatedAt:               time.Now().UTC().Format(time.RFC3339Nano),
		PeriodDate:              rec.PeriodDate,
		Period:                  rec.Period,
		PeriodDuration:          rec.PeriodDuration,
		MinScheduledCouriers:    rec.MinScheduledCouriers,
		Tag:                     rec.Tag,
		CourierID:               rec.CourierID,
		CourierName:             rec.CourierName,
		City:                    rec.City,
		SubCity:                 rec.SubCity,
		Origin:                  rec.Origin,
		ScheduledAvailableTime:  rec.ScheduledAvailableTime,
		AbsoluteAvailableTime:   rec.AbsoluteAvailableTime,
		OfferedRides:            rec.OfferedRides,
		AcceptedRides:           rec.AcceptedRides,
		RejectedRides:           rec.RejectedRides,
		CompletedRides:          rec.CompletedRides,
		CanceledByCourier:       rec.CanceledByCourier,
		AcceptedConcludedOrders: rec.AcceptedConcludedOrders,
		AcceptedRidesFees:       rec.AcceptedRidesFees,
	}
}
