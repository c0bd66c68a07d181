// Package snapshotrepo persists analytics snapshots with GORM. Every snapshot
// recorded for an order is kept, so the table is a full history of the status
// changes each restaurant has seen.
package snapshotrepo

import (
	"slices"
	"time"

	"deliverytracking/internal/core/domain/model/analytics"
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// SnapshotDTO is one row of analytics_snapshots. Item names and quantities
// are parallel postgres arrays.
type SnapshotDTO struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantID   uuid.UUID       `gorm:"type:uuid;index"`
	CustomerID     uuid.UUID       `gorm:"type:uuid"`
	ItemNames      pq.StringArray  `gorm:"type:text[]"`
	ItemQuantities pq.Int64Array   `gorm:"type:bigint[]"`
	Total          decimal.Decimal `gorm:"type:numeric(12,2)"`
	RecordedAt     time.Time       `gorm:"index"`
	OrderStatus    string
	DeliveryStatus string
	EstimatedAt    *time.Time
	DeliveredAt    *time.Time
}

// TableName overrides GORM's default naming.
func (SnapshotDTO) TableName() string {
	return "analytics_snapshots"
}

func fromDomain(s analytics.Snapshot) SnapshotDTO {
	dto := SnapshotDTO{
		OrderID:      s.OrderID.Bytes(),
		RestaurantID: s.RestaurantID.Bytes(),
		CustomerID:   s.CustomerID.Bytes(),
		Total:        s.Total,
		RecordedAt:   s.RecordedAt,
		OrderStatus:  s.OrderStatus,
		EstimatedAt:  s.EstimatedAt,
		DeliveredAt:  s.DeliveredAt,
	}
	if s.HasDelivery() {
		dto.DeliveryStatus = s.DeliveryStatus.Code()
	}

	names := make([]string, 0, len(s.Items))
	for name := range s.Items {
		names = append(names, name)
	}
	slices.Sort(names)
	dto.ItemNames = names
	dto.ItemQuantities = make(pq.Int64Array, len(names))
	for i, name := range names {
		dto.ItemQuantities[i] = int64(s.Items[name])
	}
	return dto
}

func toDomain(dto SnapshotDTO) (analytics.Snapshot, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return analytics.Snapshot{}, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return analytics.Snapshot{}, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return analytics.Snapshot{}, err
	}

	s := analytics.Snapshot{
		OrderID:      orderID,
		RestaurantID: restaurantID,
		CustomerID:   customerID,
		Items:        make(map[string]int, len(dto.ItemNames)),
		Total:        dto.Total,
		RecordedAt:   dto.RecordedAt,
		OrderStatus:  dto.OrderStatus,
		EstimatedAt:  dto.EstimatedAt,
		DeliveredAt:  dto.DeliveredAt,
	}
	for i, name := range dto.ItemNames {
		if i < len(dto.ItemQuantities) {
			s.Items[name] = int(dto.ItemQuantities[i])
		}
	}
	if dto.DeliveryStatus != "" {
		status, parseErr := delivery.ParseStatus(dto.DeliveryStatus)
		if parseErr != nil {
			return analytics.Snapshot{}, parseErr
		}
		s.DeliveryStatus = status
	}
	return s, nil
}
