package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"painel_entregas/internal/domain/entities"
	mock_interfaces "painel_entregas/internal/usecase/interfaces/mocks"
)

func TestDeliveryTableUseCase(t *testing.T) {
	t.Run("check table passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryRecordRepository(ctrl)
		uc := NewDeliveryTableUseCase(repo)

		repo.EXPECT().CheckTable(gomock.Any()).Return(nil)
		if err := uc.CheckTable(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.EXPECT().CheckTable(gomock.Any()).Return(errors.New("table missing"))
		if err := uc.CheckTable(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryRecordRepository(ctrl)
		uc := NewDeliveryTableUseCase(repo)

		want := entities.DeliveryStats{TotalOffered: 10, TotalAccepted: 8, TotalRejected: 2, TotalCompleted: 7, TotalRecords: 3}
		repo.EXPECT().Stats(gomock.Any()).Return(want, nil)

		got, err := uc.GetStats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("unexpected stats: %+v", got)
		}
	})

	t.Run("clear all reports removed count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryRecordRepository(ctrl)
		uc := NewDeliveryTableUseCase(repo)

		repo.EXPECT().DeleteAll(gomock.Any()).Return(42, nil)
		removed, err := uc.ClearAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if removed != 42 {
			t.Fatalf("expected 42 removed, got %d", removed)
		}
	})
}
