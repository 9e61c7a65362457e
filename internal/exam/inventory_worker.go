package exam

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/exam-assembler/internal/selection"
)

// InventoryGauge receives periodic inventory snapshots.
type InventoryGauge interface {
	SetInventory(inventory []selection.Question)
}

// InventoryWorker periodically publishes inventory statistics.
type InventoryWorker struct {
	source   Inventory
	gauge    InventoryGauge
	logger   zerolog.Logger
	interval time.Duration
}

func NewInventoryWorker(source Inventory, gauge InventoryGauge, interval time.Duration, logger zerolog.Logger) *InventoryWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &InventoryWorker{
		source:   source,
		gauge:    gauge,
		logger:   logger.With().Str("component", "inventory_worker").Logger(),
		interval: interval,
	}
}

// Run blocks until context cancellation.
func (w *InventoryWorker) Run(ctx context.Context) error {
	if w.source == nil || w.gauge == nil {
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// run immediately
	w.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *InventoryWorker) tick(ctx context.Context) {
	inventory, err := w.source.ListInventory(ctx)
	if err != nil {
		w.logger.Warn().Err(err).Msg("inventory snapshot failed")
		return
	}
	w.gauge.SetInventory(inventory)
	w.logger.Debug().Int("questions", len(inventory)).Msg("inventory snapshot published")
}
