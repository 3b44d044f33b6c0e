package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/domain/errs"
	mock_interfaces "lavanderia_rfid/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReaderUseCase_Scan(t *testing.T) {
	ctx := context.Background()

	t.Run("single", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reader := mock_interfaces.NewMockITagReader(ctrl)
		uc := NewReaderUseCase(reader)

		reader.EXPECT().ScanSingle(gomock.Any()).Return(entities.TagObservation{TagID: "E2001"}, nil)

		res, err := uc.Scan(ctx, ScanModeSingle, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Mode != ScanModeSingle || len(res.Tags) != 1 || res.Tags[0].TagID != "E2001" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reader := mock_interfaces.NewMockITagReader(ctrl)
		uc := NewReaderUseCase(reader)

		reader.EXPECT().ScanBatch(gomock.Any(), gomock.Any()).Return(tags(4), nil)

		res, err := uc.Scan(ctx, ScanModeBatch, func([]entities.TagObservation) {})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Tags) != 4 || res.Partial {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("batch cut by disconnect keeps flushed tags", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reader := mock_interfaces.NewMockITagReader(ctrl)
		uc := NewReaderUseCase(reader)

		cut := fmt.Errorf("batch scan interrupted: %w", errs.ErrNotConnected)
		reader.EXPECT().ScanBatch(gomock.Any(), gomock.Any()).Return(tags(2), cut)

		res, err := uc.Scan(ctx, ScanModeBatch, nil)
		if !errors.Is(err, errs.ErrNotConnected) {
			t.Fatalf("expected ErrNotConnected, got %v", err)
		}
		if !res.Partial || len(res.Tags) != 2 {
			t.Fatalf("expected partial result with 2 tags, got %+v", res)
		}
	})

	t.Run("not connected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reader := mock_interfaces.NewMockITagReader(ctrl)
		uc := NewReaderUseCase(reader)

		reader.EXPECT().ScanBatch(gomock.Any(), gomock.Any()).Return(nil, errs.ErrNotConnected)

		res, err := uc.Scan(ctx, ScanModeBatch, nil)
		if !errors.Is(err, errs.ErrNotConnected) || res.Partial {
			t.Fatalf("expected plain ErrNotConnected, got %+v err=%v", res, err)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewReaderUseCase(mock_interfaces.NewMockITagReader(ctrl))

		if _, err := uc.Scan(ctx, "continuous", nil); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestReaderUseCase_Connection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	reader := mock_interfaces.NewMockITagReader(ctrl)
	uc := NewReaderUseCase(reader)

	gomock.InOrder(
		reader.EXPECT().Connect().Return(nil),
		reader.EXPECT().IsConnected().Return(true),
		reader.EXPECT().Disconnect().Return(nil),
		reader.EXPECT().IsConnected().Return(false),
	)

	if err := uc.Connect(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !uc.IsConnected() {
		t.Fatalf("expected connected")
	}
	if err := uc.Disconnect(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uc.IsConnected() {
		t.Fatalf("expected disconnected")
	}
}
