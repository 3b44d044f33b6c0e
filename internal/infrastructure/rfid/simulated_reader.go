package rfid

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/domain/errs"
	"lavanderia_rfid/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// Config paces the simulated reader.
type Config struct {
	// Latency is the delay before a single scan answers.
	Latency time.Duration
	// RoundPauseMin and RoundPauseMax bound the random pause between rounds.
	RoundPauseMin time.Duration
	RoundPauseMax time.Duration
	// StopProbability is checked after every round; the scan ends when hit.
	StopProbability float64
	// MaxDuration bounds a batch scan in wall-clock time.
	MaxDuration time.Duration
	// MaxTags ends a batch scan once this many unique tags were read (0 = no cap).
	MaxTags int
	Antennas int
	Seed     uint64
}

func DefaultConfig() Config {
	return Config{
		Latency:         300 * time.Millisecond,
		RoundPauseMin:   200 * time.Millisecond,
		RoundPauseMax:   600 * time.Millisecond,
		StopProbability: 0.15,
		MaxDuration:     10 * time.Second,
		Antennas:        4,
	}
}

// tagSerial counts tag ids handed out in this process. Ids derive from it, so
// they never repeat and nothing has to remember the ones already issued.
var tagSerial atomic.Uint64

// SimulatedReader is an in-process RFID reader that invents EPC-like tags.
type SimulatedReader struct {
	cfg Config

	mu        sync.Mutex
	connected bool
	rng       *rand.Rand
	// cancelScan stops the batch scan in flight, if any.
	cancelScan context.CancelFunc
	// session collects the unique tags read since the last Connect.
	session map[string]struct{}
}

var _ interfaces.ITagReader = (*SimulatedReader)(nil)

func NewSimulatedReader(cfg Config) *SimulatedReader {
	def := DefaultConfig()
	if cfg.RoundPauseMax < cfg.RoundPauseMin {
		cfg.RoundPauseMax = cfg.RoundPauseMin
	}
	if cfg.MaxDuration <= 0 {
		cfg.MaxDuration = def.MaxDuration
	}
	if cfg.Antennas <= 0 {
		cfg.Antennas = def.Antennas
	}
	if cfg.StopProbability < 0 {
		cfg.StopProbability = 0
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &SimulatedReader{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (r *SimulatedReader) Connect() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connected = true
	r.session = map[string]struct{}{}
	log.Debug().Msg("[rfid][reader] connected")
	return nil
}

// Disconnect also halts a running batch scan.
func (r *SimulatedReader) Disconnect() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connected = false
	if r.cancelScan != nil {
		r.cancelScan()
		r.cancelScan = nil
	}
	log.Debug().Msg("[rfid][reader] disconnected")
	return nil
}

func (r *SimulatedReader) IsConnected() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.connected
}

// SessionTags returns how many unique tags were read since the last Connect.
func (r *SimulatedReader) SessionTags() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.session)
}

func (r *SimulatedReader) ScanSingle(ctx context.Context) (entities.TagObservation, error) {
	if !r.IsConnected() {
		return entities.TagObservation{}, errs.ErrNotConnected
	}
	if err := sleep(ctx, r.cfg.Latency); err != nil {
		return entities.TagObservation{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.connected {
		return entities.TagObservation{}, errs.ErrNotConnected
	}
	tag := r.observeLocked()
	r.session[tag.TagID] = struct{}{}
	return tag, nil
}

// ScanBatch emits rounds of 1 to 3 tags until the stop probability hits, the
// duration or tag cap is reached, or ctx ends. A Disconnect in the middle
// drops the round being assembled and returns the flushed tags together with
// an error wrapping errs.ErrNotConnected.
func (r *SimulatedReader) ScanBatch(ctx context.Context, onRound func([]entities.TagObservation)) ([]entities.TagObservation, error) {
	r.mu.Lock()
	if !r.connected {
		r.mu.Unlock()
		return nil, errs.ErrNotConnected
	}
	scanCtx, cancel := context.WithTimeout(ctx, r.cfg.MaxDuration)
	r.cancelScan = cancel
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.cancelScan = nil
		r.mu.Unlock()
		cancel()
	}()

	flushed := make([]entities.TagObservation, 0)
	for {
		r.mu.Lock()
		size := 1 + r.rng.IntN(3)
		pause := r.pauseLocked()
		r.mu.Unlock()

		round := make([]entities.TagObservation, 0, size)
		for i := 0; i < size; i++ {
			r.mu.Lock()
			if !r.connected {
				r.mu.Unlock()
				return flushed, fmt.Errorf("batch scan interrupted: %w", errs.ErrNotConnected)
			}
			round = append(round, r.observeLocked())
			r.mu.Unlock()
		}

		if err := sleep(scanCtx, pause); err != nil {
			if !r.IsConnected() {
				return flushed, fmt.Errorf("batch scan interrupted: %w", errs.ErrNotConnected)
			}
			if ctx.Err() != nil {
				return flushed, ctx.Err()
			}
			// MaxDuration elapsed; the round was read in time.
			return r.flush(flushed, round, onRound), nil
		}

		r.mu.Lock()
		if !r.connected {
			r.mu.Unlock()
			return flushed, fmt.Errorf("batch scan interrupted: %w", errs.ErrNotConnected)
		}
		stop := r.rng.Float64() < r.cfg.StopProbability
		r.mu.Unlock()

		flushed = r.flush(flushed, round, onRound)
		if stop || (r.cfg.MaxTags > 0 && len(flushed) >= r.cfg.MaxTags) {
			if r.cfg.MaxTags > 0 && len(flushed) > r.cfg.MaxTags {
				flushed = flushed[:r.cfg.MaxTags]
			}
			return flushed, nil
		}
	}
}

func (r *SimulatedReader) flush(flushed, round []entities.TagObservation, onRound func([]entities.TagObservation)) []entities.TagObservation {
	r.mu.Lock()
	for _, t := range round {
		r.session[t.TagID] = struct{}{}
	}
	r.mu.Unlock()

	flushed = append(flushed, round...)
	if onRound != nil {
		onRound(append([]entities.TagObservation(nil), round...))
	}
	return flushed
}

func (r *SimulatedReader) observeLocked() entities.TagObservation {
	return entities.TagObservation{
		TagID:          r.newTagIDLocked(),
		SignalStrength: -30 - r.rng.IntN(50),
		Antenna:        1 + r.rng.IntN(r.cfg.Antennas),
		Timestamp:      time.Now().UTC(),
	}
}

// newTagIDLocked returns a 24-hex-digit EPC-like id never issued before.
// The last 16 digits are the serial times an odd constant, a bijection on
// uint64, so ids look scattered yet stay unique.
func (r *SimulatedReader) newTagIDLocked() string {
	serial := tagSerial.Add(1) * 0x9e3779b97f4a7c15
	return fmt.Sprintf("E200%04X%016X", r.rng.Uint32()&0xFFFF, serial)
}

func (r *SimulatedReader) pauseLocked() time.Duration {
	span := r.cfg.RoundPauseMax - r.cfg.RoundPauseMin
	if span <= 0 {
		return r.cfg.RoundPauseMin
	}
	return r.cfg.RoundPauseMin + time.Duration(r.rng.Int64N(int64(span)))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
