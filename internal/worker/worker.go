package worker

import (
	"context"
	"time"

	"github.com/shopmart/shopmart/internal/models"
	"go.uber.org/zap"
)

type OrderService interface {
	TrackShipments(ctx context.Context, orderCh <-chan models.Order)
	GetShipmentsForTracking(ctx context.Context, orderCh chan<- models.Order) error
}

// ShipmentTracker is worker that polls the shipping partner for shipped
// orders and confirms deliveries.
type ShipmentTracker struct {
	svc      OrderService
	interval time.Duration
	logger   *zap.Logger
}

// NewShipmentTracker creates new shipment tracker
func NewShipmentTracker(svc OrderService, interval time.Duration, logger *zap.Logger) *ShipmentTracker {
	return &ShipmentTracker{
		svc:      svc,
		interval: interval,
		logger:   logger,
	}
}

// Run polls shipped orders on a ticker until the context is cancelled.
func (st *ShipmentTracker) Run(ctx context.Context) {
	orders := make(chan models.Order, 10)

	go st.svc.TrackShipments(ctx, orders)

	ticker := time.NewTicker(st.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			st.logger.Debug("shipment tracker is done")
			return
		case <-ticker.C:
			if err := st.svc.GetShipmentsForTracking(ctx, orders); err != nil {
				st.logger.Error("error getting shipments for tracking", zap.Error(err))
			}
		}
	}
}
