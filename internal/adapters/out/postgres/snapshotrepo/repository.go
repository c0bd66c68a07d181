package snapshotrepo

import (
	"context"

	"deliverytracking/internal/core/domain/model/analytics"
	"deliverytracking/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormSnapshotRepository implements analytics.SnapshotStore using GORM.
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewGormSnapshotRepository creates a repository on the given connection.
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// Migrate creates or updates the analytics_snapshots table.
func (r *GormSnapshotRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&SnapshotDTO{})
}

// Save appends a snapshot row.
func (r *GormSnapshotRepository) Save(ctx context.Context, snapshot analytics.Snapshot) error {
	if err := snapshot.OrderID.Validate(); err != nil {
		return err
	}

	dto := fromDomain(snapshot)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByOrder returns every snapshot of the order, oldest first.
func (r *GormSnapshotRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]analytics.Snapshot, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SnapshotDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("recorded_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetByRestaurant returns the restaurant's snapshots, oldest first.
func (r *GormSnapshotRepository) GetByRestaurant(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]analytics.Snapshot, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SnapshotDTO
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Order("recorded_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []SnapshotDTO) ([]analytics.Snapshot, error) {
	out := make([]analytics.Snapshot, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
