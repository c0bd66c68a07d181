// Package partydirectory registers customers and restaurants by name in
// process memory.
package partydirectory

import (
	"context"
	"strings"
	"sync"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/order"
	"deliverytracking/internal/pkg/errs"
)

// Directory implements ports.PartyDirectory. Names are matched case-insensitively.
type Directory struct {
	mu          sync.Mutex
	customers   map[string]*order.Customer
	restaurants map[string]*order.Restaurant
}

func NewDirectory() *Directory {
	return &Directory{
		customers:   make(map[string]*order.Customer),
		restaurants: make(map[string]*order.Restaurant),
	}
}

func (d *Directory) Customer(_ context.Context, name string) (*order.Customer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := normalize(name)
	if c, ok := d.customers[key]; ok {
		return c, nil
	}
	c, err := order.NewCustomer(kernel.NewUUID(), name)
	if err != nil {
		return nil, err
	}
	d.customers[key] = c
	return c, nil
}

func (d *Directory) Restaurant(_ context.Context, name string) (*order.Restaurant, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := normalize(name)
	if r, ok := d.restaurants[key]; ok {
		return r, nil
	}
	r, err := order.NewRestaurant(kernel.NewUUID(), name)
	if err != nil {
		return nil, err
	}
	d.restaurants[key] = r
	return r, nil
}

func (d *Directory) FindRestaurant(_ context.Context, name string) (*order.Restaurant, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if r, ok := d.restaurants[normalize(name)]; ok {
		return r, nil
	}
	return nil, errs.NewObjectNotFoundError("restaurant", name)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
