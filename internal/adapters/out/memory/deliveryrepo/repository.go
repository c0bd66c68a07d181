// Package deliveryrepo keeps live Delivery aggregates in process memory.
// Delivery state does not survive a restart.
package deliveryrepo

import (
	"context"
	"fmt"
	"sync"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrDeliveryAlreadyExists is returned when adding an ID twice.
var ErrDeliveryAlreadyExists = errs.NewValueIsInvalidError("delivery already exists")

// Repository implements ports.DeliveryRepository.
type Repository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*delivery.Delivery
	order []*delivery.Delivery
}

func NewRepository() *Repository {
	return &Repository{byID: make(map[uuid.UUID]*delivery.Delivery)}
}

// Add stores a new delivery.
func (r *Repository) Add(_ context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := d.ID().Bytes()
	if _, exists := r.byID[key]; exists {
		return fmt.Errorf("%w: %s", ErrDeliveryAlreadyExists, d.ID())
	}
	r.byID[key] = d
	r.order = append(r.order, d)
	return nil
}

// Get retrieves a delivery by ID.
func (r *Repository) Get(_ context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id.Bytes()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("delivery", id.String())
	}
	return d, nil
}

// GetAll returns every delivery in insertion order.
func (r *Repository) GetAll(_ context.Context) ([]*delivery.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*delivery.Delivery, len(r.order))
	copy(out, r.order)
	return out, nil
}

// GetAllActive returns deliveries that are neither Delivered nor Cancelled.
func (r *Repository) GetAllActive(ctx context.Context) ([]*delivery.Delivery, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]*delivery.Delivery, 0, len(all))
	for _, d := range all {
		if !d.Status().IsTerminal() {
			active = append(active, d)
		}
	}
	return active, nil
}
