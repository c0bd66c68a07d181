package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/order"
	"deliverytracking/internal/pkg/guard"
)

const (
	// etaMinMinutes and etaMaxMinutes bound the estimate drawn on the first
	// transition into OnTheWay.
	etaMinMinutes = 20
	etaMaxMinutes = 40
	// proximityThreshold is compared against RandomSource.Float64; rolls above
	// it move an OnTheWay delivery to Near (about 30% of the time).
	proximityThreshold = 0.7

	trackingBaseURL = "https://fooddelivery.example.com/track/"
)

// Notes recorded by the state machine itself.
const (
	noteAssigned = "Entregador %s designado"
	noteNear     = "Entregador está próximo ao seu endereço"
)

// Delivery is the aggregate root tracking one order from preparation to
// drop-off and propagating every status change to its observers.
//
// Key responsibilities:
//   - Validating and recording status transitions in an append-only history
//   - Estimating the delivery time on the first departure
//   - Tracking the courier's last known location
//   - Fanning out a Snapshot to attached observers after each transition
//
// Business rules:
//   - Status is always one of the nine valid values, starting at Preparing
//   - The initial status is the first history entry
//   - The estimate is set once on the first OnTheWay and only
//     UpdateEstimatedTime overrides it afterwards
//   - An invalid status leaves the delivery untouched
//
// Every mutating method holds the delivery's lock through the history append,
// the field changes and the fan-out, so observers always see a consistent
// state. Observers must not call mutating methods on the same delivery.
//
// Example usage:
//
//	d, err := delivery.NewDelivery(kernel.NewUUID(), o, kernel.SystemClock(), kernel.NewSystemRandom(), logger)
//	if err != nil {
//	    // Handle construction error
//	}
//	d.Attach(customerNotifier)
//	_ = d.AssignDeliveryPerson(ctx, "Ana")
type Delivery struct {
	mu sync.Mutex

	id             kernel.UUID
	order          *order.Order
	status         Status
	history        []StatusUpdate
	deliveryPerson string
	estimatedAt    *time.Time
	deliveredAt    *time.Time
	location       *LocationTracker
	notes          []Note

	subject *Subject
	clock   kernel.Clock
	random  kernel.RandomSource
	logger  *slog.Logger
	guard   guard.ConstructorGuard
}

// NewDelivery starts tracking the order in Preparing status. Nil clock,
// random source or logger fall back to the wall clock, math/rand/v2 and a
// discarding logger.
func NewDelivery(
	id kernel.UUID,
	o *order.Order,
	clock kernel.Clock,
	random kernel.RandomSource,
	logger *slog.Logger,
) (*Delivery, error) {
	if err := errors.Join(id.Validate(), validateOrder(o)); err != nil {
		return nil, err
	}

	if clock == nil {
		clock = kernel.SystemClock()
	}
	if random == nil {
		random = kernel.NewSystemRandom()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("component", "Delivery", "delivery_id", id.String())

	now := clock.Now()
	d := &Delivery{
		id:       id,
		order:    o,
		status:   Preparing,
		history:  []StatusUpdate{{Status: Preparing, Timestamp: now}},
		location: NewLocationTracker(now),
		notes:    make([]Note, 0),
		subject:  NewSubject(logger),
		clock:    clock,
		random:   random,
		logger:   logger,
		guard:    guard.NewConstructorGuard(),
	}
	return d, nil
}

func validateOrder(o *order.Order) error {
	if o == nil {
		return ErrOrderIsRequired
	}
	return o.Validate()
}

// Validate ensures the Delivery was created through NewDelivery.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// UpdateStatus records a transition and notifies every observer.
//
// An invalid status returns *InvalidStatusError and changes nothing. Observer
// failures are logged and reported to the failure listener; they never fail
// the transition.
func (d *Delivery) UpdateStatus(ctx context.Context, status Status, notes string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateStatus(ctx, status, notes)
}

// UpdateStatusFromText parses a label or code and applies it with UpdateStatus.
func (d *Delivery) UpdateStatusFromText(ctx context.Context, status string, notes string) error {
	parsed, err := ParseStatus(status)
	if err != nil {
		return err
	}
	return d.UpdateStatus(ctx, parsed, notes)
}

// AssignDeliveryPerson sets the courier and moves to Assigned.
func (d *Delivery) AssignDeliveryPerson(ctx context.Context, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.assignDeliveryPerson(ctx, name)
}

// UpdateLocation replaces the tracked position. While OnTheWay, a roll above
// the proximity threshold moves the delivery to Near.
func (d *Delivery) UpdateLocation(ctx context.Context, latitude, longitude float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateLocation(ctx, latitude, longitude, true)
}

// UpdateEstimatedTime sets the estimate to now plus minutes, whatever the status.
func (d *Delivery) UpdateEstimatedTime(minutes int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	eta := d.clock.Now().Add(time.Duration(minutes) * time.Minute)
	d.estimatedAt = &eta
}

// AddDeliveryNote appends a timestamped note.
func (d *Delivery) AddDeliveryNote(note string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notes = append(d.notes, Note{Timestamp: d.clock.Now(), Text: note})
}

// Attach registers an observer; attaching it twice keeps a single entry.
func (d *Delivery) Attach(observer Observer) {
	d.subject.Attach(observer)
}

// Detach removes an observer; detaching an absent one is a no-op.
func (d *Delivery) Detach(observer Observer) {
	d.subject.Detach(observer)
}

// Observers returns the attached observers in attachment order.
func (d *Delivery) Observers() []Observer {
	return d.subject.Observers()
}

// SetFailureListener registers the listener told about failing observers.
func (d *Delivery) SetFailureListener(l FailureListener) {
	d.subject.SetFailureListener(l)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) Order() *order.Order {
	return d.order
}

func (d *Delivery) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// History returns a copy of the status history, oldest first.
func (d *Delivery) History() []StatusUpdate {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.history)
}

// DeliveryPerson returns the assigned courier, if any.
func (d *Delivery) DeliveryPerson() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deliveryPerson, d.deliveryPerson != ""
}

// EstimatedDeliveryTime returns the current estimate, if any.
func (d *Delivery) EstimatedDeliveryTime() (time.Time, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.estimatedAt == nil {
		return time.Time{}, false
	}
	return *d.estimatedAt, true
}

// DeliveredAt returns when the delivery first reached Delivered, if it did.
func (d *Delivery) DeliveredAt() (time.Time, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.deliveredAt == nil {
		return time.Time{}, false
	}
	return *d.deliveredAt, true
}

func (d *Delivery) Location() LocationInfo {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.location.Info()
}

// Notes returns a copy of the delivery notes.
func (d *Delivery) Notes() []Note {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.notes)
}

// DeliveryNotes renders every note as a "[HH:MM:SS] text" line.
func (d *Delivery) DeliveryNotes() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var b strings.Builder
	for _, n := range d.notes {
		b.WriteString(n.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// TrackingLink is derived from the order's identifier.
func (d *Delivery) TrackingLink() string {
	return trackingBaseURL + d.order.ID().String()
}

// Snapshot returns the state observers would receive right now.
func (d *Delivery) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot()
}

func (d *Delivery) updateStatus(ctx context.Context, status Status, notes string) error {
	if err := status.Validate(); err != nil {
		return err
	}

	now := d.clock.Now()
	d.history = append(d.history, StatusUpdate{Status: status, Timestamp: now, Notes: notes})
	d.status = status

	if status == OnTheWay && d.estimatedAt == nil {
		minutes := kernel.RandomIntBetween(d.random, etaMinMinutes, etaMaxMinutes)
		eta := now.Add(time.Duration(minutes) * time.Minute)
		d.estimatedAt = &eta
	}
	if status == Delivered && d.deliveredAt == nil {
		deliveredAt := now
		d.deliveredAt = &deliveredAt
	}

	d.logger.DebugContext(ctx, "status updated, notifying observers",
		"status", status.Code(),
		"observers", d.subject.Len(),
	)

	// Failures are already logged per observer by the subject.
	_ = d.subject.NotifyAll(ctx, d.snapshot())
	return nil
}

func (d *Delivery) assignDeliveryPerson(ctx context.Context, name string) error {
	d.deliveryPerson = name
	return d.updateStatus(ctx, Assigned, fmt.Sprintf(noteAssigned, name))
}

func (d *Delivery) updateLocation(ctx context.Context, latitude, longitude float64, proximityRule bool) error {
	d.location.Update(latitude, longitude, d.clock.Now())
	if proximityRule && d.status == OnTheWay && d.random.Float64() > proximityThreshold {
		return d.updateStatus(ctx, Near, noteNear)
	}
	return nil
}

func (d *Delivery) snapshot() Snapshot {
	s := Snapshot{
		DeliveryID:     d.id,
		Order:          d.order,
		Status:         d.status,
		DeliveryPerson: d.deliveryPerson,
		LastUpdate:     d.history[len(d.history)-1],
		Location:       d.location.Info(),
	}
	if d.estimatedAt != nil {
		eta := *d.estimatedAt
		s.EstimatedAt = &eta
	}
	if d.deliveredAt != nil {
		at := *d.deliveredAt
		s.DeliveredAt = &at
	}
	return s
}
