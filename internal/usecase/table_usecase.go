package usecase

import (
	"context"
	"log"

	"painel_entregas/internal/domain/entities"
	"painel_entregas/internal/usecase/interfaces"
)

// IDeliveryTableUseCase covers the table maintenance operations the frontend
// exposes next to the importer: check the table is reachable, show aggregate
// totals, and wipe the table before a full re-import.

type IDeliveryTableUseCase interface {
	CheckTable(ctx context.Context) error
	GetStats(ctx context.Context) (entities.DeliveryStats, error)
	ClearAll(ctx context.Context) (int, error)
}

type DeliveryTableUseCase struct {
	repo interfaces.IDeliveryRecordRepository
}

var _ IDeliveryTableUseCase = (*DeliveryTableUseCase)(nil)

func NewDeliveryTableUseCase(repo interfaces.IDeliveryRecordRepository) *DeliveryTableUseCase {
	return &DeliveryTableUseCase{repo: repo}
}

func (u *DeliveryTableUseCase) CheckTable(ctx context.Context) error {
	if err := u.repo.CheckTable(ctx); err != nil {
		log.Printf("[table][usecase] check failed err=%v", err)
		return err
	}
	return nil
}

func (u *DeliveryTableUseCase) GetStats(ctx context.Context) (entities.DeliveryStats, error) {
	stats, err := u.repo.Stats(ctx)
	if err != nil {
		log.Printf("[table][usecase] stats failed err=%v", err)
		return entities.DeliveryStats{}, err
	}
	return stats, nil
}

func (u *DeliveryTableUseCase) ClearAll(ctx context.Context) (int, error) {
	removed, err := u.repo.DeleteAll(ctx)
	if err != nil {
		log.Printf("[table][usecase] clear failed removed=%d err=%v", removed, err)
		return removed, err
	}
	log.Printf("[table][usecase] cleared %d records", removed)
	return removed, nil
}
