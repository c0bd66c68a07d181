package delivery_test

import (
	"testing"
	"time"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelivery(t *testing.T) {
	t.Run("should start in preparing with one history entry", func(t *testing.T) {
		clock := testutil.NewFakeClock(baseTime)
		o := newOrder(t)
		id := kernel.NewUUID()

		d, err := delivery.NewDelivery(id, o, clock, testutil.AlwaysRandom(0), nil)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.Same(t, o, d.Order())
		assert.Equal(t, delivery.Preparing, d.Status())
		assert.Equal(t, []delivery.StatusUpdate{{Status: delivery.Preparing, Timestamp: baseTime}}, d.History())
		_, assigned := d.DeliveryPerson()
		assert.False(t, assigned)
		_, hasETA := d.EstimatedDeliveryTime()
		assert.False(t, hasETA)
		assert.Equal(t, baseTime, d.Location().Timestamp)
		assert.Empty(t, d.DeliveryNotes())
	})

	t.Run("should reject missing order and id", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.UUID{}, nil, nil, nil, nil)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, delivery.ErrOrderIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var d delivery.Delivery

		assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, d.Validate())
	})
}

func TestDelivery_UpdateStatus(t *testing.T) {
	t.Run("should reach every valid status from a fresh delivery", func(t *testing.T) {
		for _, status := range delivery.AllStatuses() {
			t.Run(status.Code(), func(t *testing.T) {
				d := newDelivery(t, testutil.NewFakeClock(baseTime), testutil.AlwaysRandom(0))

				err := d.UpdateStatus(t.Context(), status, "nota "+status.Code())

				require.NoError(t, err)
				assert.Equal(t, status, d.Status())
				history := d.History()
				require.Len(t, history, 2)
				assert.Equal(t, status, history[1].Status)
				assert.Equal(t, "nota "+status.Code(), history[1].Notes)
			})
		}
	})

	t.Run("should reject invalid status and leave state unchanged", func(t *testing.T) {
		d := newDelivery(t, testutil.NewFakeClock(baseTime), testutil.AlwaysRandom(0))
		observer := &recordingObserver{}
		d.Attach(observer)

		for _, status := range []delivery.Status{delivery.Unknown, delivery.Status(42)} {
			err := d.UpdateStatus(t.Context(), status, "")

			var invalid *delivery.InvalidStatusError
			require.ErrorAs(t, err, &invalid)
		}

		assert.Equal(t, delivery.Preparing, d.Status())
		assert.Len(t, d.History(), 1)
		assert.Equal(t, 0, observer.count())
	})

	t.Run("should reject unknown status text", func(t *testing.T) {
		d := newDelivery(t, testutil.NewFakeClock(baseTime), testutil.AlwaysRandom(0))
		require.NoError(t, d.AssignDeliveryPerson(t.Context(), "Ana"))
		before := len(d.History())

		err := d.UpdateStatusFromText(t.Context(), "Estado Inexistente", "")

		var invalid *delivery.InvalidStatusError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "Estado Inexistente", invalid.Value)
		assert.Len(t, d.History(), before)
		assert.Equal(t, delivery.Assigned, d.Status())
	})

	t.Run("should notify observers with the new snapshot", func(t *testing.T) {
		clock := testutil.NewFakeClock(baseTime)
		d := newDelivery(t, clock, testutil.AlwaysRandom(0))
		observer := &recordingObserver{}
		d.Attach(observer)
		clock.Advance(time.Minute)

		require.NoError(t, d.UpdateStatus(t.Context(), delivery.Ready, "pronto"))

		require.Equal(t, 1, observer.count())
		snap := observer.snapshots[0]
		assert.True(t, snap.DeliveryID.IsEqual(d.ID()))
		assert.Equal(t, delivery.Ready, snap.Status)
		assert.Equal(t, "pronto", snap.LastUpdate.Notes)
		assert.Equal(t, baseTime.Add(time.Minute), snap.LastUpdate.Timestamp)
	})

	t.Run("should not fail when an observer fails", func(t *testing.T) {
		d := newDelivery(t, testutil.NewFakeClock(baseTime), testutil.AlwaysRandom(0))
		healthy := &recordingObserver{}
		d.Attach(&recordingObserver{err: errObserver})
		d.Attach(panickingObserver{})
		d.Attach(healthy)

		require.NoError(t, d.UpdateStatus(t.Context(), delivery.Ready, ""))

		assert.Equal(t, 1, healthy.count())
		assert.Equal(t, delivery.Ready, d.Status())
	})
}

func TestDelivery_EstimatedDeliveryTime(t *testing.T) {
	t.Run("should set the estimate once on the first departure", func(t *testing.T) {
		clock := testutil.NewFakeClock(baseTime)
		random := testutil.NewScriptedRandom().QueueInts(5, 20)
		d := newDelivery(t, clock, random)

		require.NoError(t, d.UpdateStatus(t.Context(), delivery.OnTheWay, ""))
		eta, ok := d.EstimatedDeliveryTime()
		require.True(t, ok)
		assert.Equal(t, baseTime.Add(25*time.Minute), eta)

		clock.Advance(time.Hour)
		require.NoError(t, d.UpdateStatus(t.Context(), delivery.Near, ""))
		require.NoError(t, d.UpdateStatus(t.Context(), delivery.OnTheWay, ""))

		again, _ := d.EstimatedDeliveryTime()
		assert.Equal(t, eta, again)
	})

	t.Run("should stay within twenty to forty minutes", func(t *testing.T) {
		for _, roll := range []int{0, 20} {
			clock := testutil.NewFakeClock(baseTime)
			d := newDelivery(t, clock, testutil.NewScriptedRandom().QueueInts(roll))

			require.NoError(t, d.UpdateStatus(t.Context(), delivery.OnTheWay, ""))

			eta, _ := d.EstimatedDeliveryTime()
			assert.Equal(t, baseTime.Add(time.Duration(20+roll)*time.Minute), eta)
		}
	})

	t.Run("explicit update overrides the estimate in any status", func(t *testing.T) {
		clock := testutil.NewFakeClock(baseTime)
		d := newDelivery(t, clock, testutil.AlwaysRandom(0))
		require.NoError(t, d.UpdateStatus(t.Context(), delivery.OnTheWay, ""))
		require.NoError(t, d.UpdateStatus(t.Context(), delivery.Delivered, ""))

		clock.Advance(2 * time.Minute)
		d.UpdateEstimatedTime(15)

		eta, ok := d.EstimatedDeliveryTime()
		require.True(t, ok)
		assert.Equal(t, baseTime.Add(17*time.Minute), eta)
	})

	t.Run("explicit update works before departure", func(t *testing.T) {
		d := newDelivery(t, testutil.NewFakeClock(baseTime), testutil.AlwaysRandom(0))

		d.UpdateEstimatedTime(10)

		eta, ok := d.EstimatedDeliveryTime()
		require.True(t, ok)
		assert.Equal(t, baseTime.Add(10*time.Minute), eta)
	})
}

func TestDelivery_DeliveredAt(t *testing.T) {
	clock := testutil.NewFakeClock(baseTime)
	d := newDelivery(t, clock, testutil.AlwaysRandom(0))

	clock.Advance(30 * time.Minute)
	require.NoError(t, d.UpdateStatus(t.Context(), delivery.Delivered, ""))
	clock.Advance(5 * time.Minute)
	require.NoError(t, d.UpdateStatus(t.Context(), delivery.Delivered, "de novo"))

	at, ok := d.DeliveredAt()
	require.True(t, ok)
	assert.Equal(t, baseTime.Add(30*time.Minute), at)
	require.NotNil(t, d.Snapshot().DeliveredAt)
}

func TestDelivery_AssignDeliveryPerson(t *testing.T) {
	d := newDelivery(t, testutil.NewFakeClock(baseTime), testutil.AlwaysRandom(0))

	require.NoError(t, d.AssignDeliveryPerson(t.Context(), "Ana"))

	name, ok := d.DeliveryPerson()
	assert.True(t, ok)
	assert.Equal(t, "Ana", name)
	assert.Equal(t, delivery.Assigned, d.Status())
	history := d.History()
	require.Len(t, history, 2)
	assert.Equal(t, "Entregador Ana designado", history[1].Notes)
}

func TestDelivery_UpdateLocation(t *testing.T) {
	t.Run("should move to near on a winning roll while on the way", func(t *testing.T) {
		d := newDelivery(t, testutil.NewFakeClock(baseTime), testutil.AlwaysRandom(0.9))
		require.NoError(t, d.UpdateStatus(t.Context(), delivery.OnTheWay, ""))

		require.NoError(t, d.UpdateLocation(t.Context(), -9.65, -35.71))

		assert.Equal(t, delivery.Near, d.Status())
		history := d.History()
		assert.Equal(t, "Entregador está próximo ao seu endereço", history[len(history)-1].Notes)
		assert.Equal(t, "Lat: -9.650000, Long: -35.710000", d.Location().Formatted)
	})

	t.Run("should stay on the way on a losing roll", func(t *testing.T) {
		d := newDelivery(t, testutil.NewFakeClock(baseTime), testutil.AlwaysRandom(0.7))
		require.NoError(t, d.UpdateStatus(t.Context(), delivery.OnTheWay, ""))

		require.NoError(t, d.UpdateLocation(t.Context(), 1, 2))

		assert.Equal(t, delivery.OnTheWay, d.Status())
		assert.Len(t, d.History(), 2)
	})

	t.Run("should only move outside on the way", func(t *testing.T) {
		clock := testutil.NewFakeClock(baseTime)
		d := newDelivery(t, clock, testutil.AlwaysRandom(0.99))
		clock.Advance(time.Second)

		require.NoError(t, d.UpdateLocation(t.Context(), 1, 2))

		assert.Equal(t, delivery.Preparing, d.Status())
		assert.Equal(t, baseTime.Add(time.Second), d.Location().Timestamp)
	})
}

func TestDelivery_AddDeliveryNote(t *testing.T) {
	clock := testutil.NewFakeClock(baseTime)
	d := newDelivery(t, clock, testutil.AlwaysRandom(0))

	d.AddDeliveryNote("Cliente pediu para tocar a campainha")
	clock.Advance(90 * time.Second)
	d.AddDeliveryNote("Portão fechado")

	assert.Equal(t, "[20:00:00] Cliente pediu para tocar a campainha\n[20:01:30] Portão fechado\n", d.DeliveryNotes())
	assert.Len(t, d.Notes(), 2)
}

func TestDelivery_TrackingLink(t *testing.T) {
	d := newDelivery(t, testutil.NewFakeClock(baseTime), testutil.AlwaysRandom(0))

	assert.Equal(t, "https://fooddelivery.example.com/track/"+d.Order().ID().String(), d.TrackingLink())
}

func TestDelivery_Scenario(t *testing.T) {
	clock := testutil.NewFakeClock(baseTime)
	d := newDelivery(t, clock, testutil.NewScriptedRandom().QueueInts(10))
	require.Len(t, d.History(), 1)

	require.NoError(t, d.AssignDeliveryPerson(t.Context(), "Ana"))
	name, _ := d.DeliveryPerson()
	assert.Equal(t, "Ana", name)
	assert.Equal(t, delivery.Assigned, d.Status())
	assert.Len(t, d.History(), 2)

	require.NoError(t, d.UpdateStatusFromText(t.Context(), "A caminho", ""))
	eta, ok := d.EstimatedDeliveryTime()
	require.True(t, ok)
	assert.WithinRange(t, eta, baseTime.Add(20*time.Minute), baseTime.Add(40*time.Minute))
	assert.Len(t, d.History(), 3)

	observer := &recordingObserver{}
	d.Attach(observer)
	require.NoError(t, d.UpdateStatusFromText(t.Context(), "Entregue", ""))

	assert.Equal(t, []delivery.Status{delivery.Delivered}, observer.statuses())
	assert.NotContains(t, d.RenderStatusView(), "Link para rastreamento")
}
