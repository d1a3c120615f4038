package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/scheduler/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ReportsLowStock(t *testing.T) {
	alerter := mocks.NewMockStockAlerter(t)
	log := newTestLogger(t)

	s := New(alerter, 50*time.Millisecond, log)

	items := []*domain.Insumo{
		{ID: "i1", Nombre: "Cuerdas de guitarra", CantidadDisponible: 1, CantidadMinima: 5},
	}
	alerter.EXPECT().AlertLowStock(mock.Anything).Return(items, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(alerter.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	alerter := mocks.NewMockStockAlerter(t)
	log := newTestLogger(t)

	s := New(alerter, 50*time.Millisecond, log)

	alerter.EXPECT().AlertLowStock(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(alerter.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	alerter := mocks.NewMockStockAlerter(t)
	log := newTestLogger(t)

	s := New(alerter, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	alerter := mocks.NewMockStockAlerter(t)
	log := newTestLogger(t)

	s := New(alerter, 30*time.Millisecond, log)

	alerter.EXPECT().AlertLowStock(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(alerter.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
