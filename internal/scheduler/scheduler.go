package scheduler

import (
	"context"
	"time"

	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type stockAlerter interface {
	AlertLowStock(ctx context.Context) ([]*domain.Insumo, error)
}

// Scheduler scans the inventory on a fixed interval and lets the service push
// a grouped alert when items fall under their minimum.
type Scheduler struct {
	inventoryService stockAlerter
	interval         time.Duration
	logger           logger.Logger
}

func New(
	inventoryService stockAlerter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		inventoryService: inventoryService,
		interval:         interval,
		logger:           logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	items, err := s.inventoryService.AlertLowStock(ctx)
	if err != nil {
		s.logger.Error("failed to scan low stock",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, i := range items {
		s.logger.Info("low stock item",
			logger.String("insumo_id", i.ID),
			logger.String("nombre", i.Nombre),
			logger.Int("cantidad", i.CantidadDisponible),
		)
	}
}
