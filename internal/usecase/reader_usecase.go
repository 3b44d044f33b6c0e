package usecase

import (
	"context"
	"errors"
	"fmt"

	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/domain/errs"
	"lavanderia_rfid/internal/infrastructure/metrics"
	"lavanderia_rfid/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

type ScanMode string

const (
	ScanModeSingle ScanMode = "single"
	ScanModeBatch  ScanMode = "batch"
)

// ScanResult is what the reader returned. Partial is set when a batch scan
// was cut by a disconnect and Tags holds only the flushed rounds.
type ScanResult struct {
	Mode    ScanMode                  `json:"mode"`
	Tags    []entities.TagObservation `json:"tags"`
	Partial bool                      `json:"partial"`
}

type IReaderUseCase interface {
	Connect() error
	Disconnect() error
	IsConnected() bool
	Scan(ctx context.Context, mode ScanMode, onRound func([]entities.TagObservation)) (ScanResult, error)
}

type ReaderUseCase struct {
	reader interfaces.ITagReader
}

var _ IReaderUseCase = (*ReaderUseCase)(nil)

func NewReaderUseCase(reader interfaces.ITagReader) *ReaderUseCase {
	return &ReaderUseCase{reader: reader}
}

func (u *ReaderUseCase) Connect() error {
	if err := u.reader.Connect(); err != nil {
		return err
	}
	log.Info().Msg("[reader][usecase] reader connected")
	return nil
}

func (u *ReaderUseCase) Disconnect() error {
	if err := u.reader.Disconnect(); err != nil {
		return err
	}
	log.Info().Msg("[reader][usecase] reader disconnected")
	return nil
}

func (u *ReaderUseCase) IsConnected() bool {
	return u.reader.IsConnected()
}

func (u *ReaderUseCase) Scan(ctx context.Context, mode ScanMode, onRound func([]entities.TagObservation)) (ScanResult, error) {
	switch mode {
	case ScanModeSingle:
		tag, err := u.reader.ScanSingle(ctx)
		if err != nil {
			return ScanResult{}, err
		}
		metrics.TagsScannedTotal.WithLabelValues(string(mode)).Inc()
		return ScanResult{Mode: mode, Tags: []entities.TagObservation{tag}}, nil
	case ScanModeBatch:
		tags, err := u.reader.ScanBatch(ctx, onRound)
		metrics.TagsScannedTotal.WithLabelValues(string(mode)).Add(float64(len(tags)))
		if err != nil {
			if errors.Is(err, errs.ErrNotConnected) && len(tags) > 0 {
				log.Warn().Int("tags", len(tags)).Msg("[reader][usecase] batch scan interrupted by disconnect")
				return ScanResult{Mode: mode, Tags: tags, Partial: true}, err
			}
			return ScanResult{}, err
		}
		log.Info().Int("tags", len(tags)).Msg("[reader][usecase] batch scan finished")
		return ScanResult{Mode: mode, Tags: tags}, nil
	}
	return ScanResult{}, fmt.Errorf("%w: unknown scan mode %q", errs.ErrValidation, mode)
}
