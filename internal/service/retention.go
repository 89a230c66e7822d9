package service

import (
	"context"
	"time"

	"github.com/lthibault/jitterbug/v2"
	"go.uber.org/zap"

	"github.com/fleetforge/migration-compass/internal/store"
)

// Janitor sweeps expired plans out of the store on a jittered interval
// so replicas do not all hit the database at the same instant.
type Janitor struct {
	store    store.Store
	interval time.Duration
}

func NewJanitor(store store.Store, interval time.Duration) *Janitor {
	return &Janitor{
		store:    store,
		interval: interval,
	}
}

func (j *Janitor) Run(ctx context.Context) {
	sweepTicker := jitterbug.New(j.interval, &jitterbug.Norm{Stdev: 30 * time.Second, Mean: 0})
	defer sweepTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.S().Named("janitor").Info("retention janitor stopped")
			return
		case <-sweepTicker.C:
			deleted, err := j.store.Plan().DeleteExpired(ctx, time.Now())
			if err != nil {
				zap.S().Named("janitor").Errorw("failed to sweep expired plans", "error", err)
				continue
			}
			if deleted > 0 {
				zap.S().Named("janitor").Infow("swept expired plans", "deleted", deleted)
			}
		}
	}
}
