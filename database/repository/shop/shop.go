package shopRepo

import (
	"trimly/models"
)

// ShopRepository defines read access to shops plus the queue-ledger mutations.
// The two counters on Shop are a derived cache over active bookings; only the
// booking lifecycle may move them, through the methods below.
type ShopRepository interface {
	GetByID(shopID string) (*models.Shop, error)
	IncrementQueue(shopID string, estimatedWaitTime int) error
	DecrementQueue(shopID string) error
}
