package product

import (
	"context"

	"villagemart/internal/domain/notification"
)

// ShopkeeperGate answers whether a shopkeeper may list products.
// Implemented by the shopkeeper repository.
type ShopkeeperGate interface {
	VerificationStatus(ctx context.Context, shopkeeperID int64) (string, error)
}

// RestockNotifier runs the subscriber fan-out after a product's stock
// returns from zero. Implemented by notification.Fanout.
type RestockNotifier interface {
	OnStockReplenished(ctx context.Context, productID int64, productName string, price float64, newStock int) (*notification.FanoutResult, error)
}

// ViewRecorder tracks product detail views for shopkeeper analytics.
// Implemented by the analytics repository.
type ViewRecorder interface {
	RecordView(ctx context.Context, productID, shopkeeperID int64) error
}
