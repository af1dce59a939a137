package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/connectflx/discovery-service/internal/worker"
)

// Sweeper - хранилище, которое умеет удалять просроченные сессии
type Sweeper interface {
	Sweep(now time.Time) int
}

// Janitor периодически вычищает просроченные сессии из памяти.
// Для Redis не нужен: там истечение по TTL ключа.
type Janitor struct {
	*worker.BaseWorker
	store    Sweeper
	interval time.Duration
	now      func() time.Time
}

func NewJanitor(store Sweeper, interval time.Duration, logger *zap.Logger) *Janitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Janitor{
		BaseWorker: worker.NewBaseWorker("session-janitor", logger),
		store:      store,
		interval:   interval,
		now:        time.Now,
	}
}

// Start блокирует до Stop или отмены ctx
func (j *Janitor) Start(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.Logger().Info("Session janitor started", zap.Duration("interval", j.interval))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.StopChan():
			return nil
		case <-ticker.C:
			j.SweepOnce()
		}
	}
}

// SweepOnce выполняет один проход очистки
func (j *Janitor) SweepOnce() int {
	removed := j.store.Sweep(j.now())
	if removed > 0 {
		j.Logger().Debug("Expired sessions removed", zap.Int("count", removed))
	}
	return removed
}
