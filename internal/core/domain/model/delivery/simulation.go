package delivery

import (
	"context"
	"fmt"

	"deliverytracking/internal/core/domain/model/kernel"
)

// Reference point for the simulated pickup (the restaurant district) and the
// jitter applied around it and between moves.
const (
	pickupLatitude  = -9.6498
	pickupLongitude = -35.7089
	pickupJitter    = 0.01
	moveJitter      = 0.005

	courierNumberMin = 1000
	courierNumberMax = 9999
)

const (
	noteReady     = "Seu pedido está pronto para ser coletado"
	notePickedUp  = "Entregador pegou seu pedido no restaurante"
	noteOnTheWay  = "Entregador está a caminho do seu endereço"
	noteArrived   = "Entregador chegou ao seu endereço"
	noteDelivered = "Pedido entregue com sucesso!"
)

// AdvanceProgress performs one simulated step along the forward path:
//
//	Preparing -> Ready
//	Ready     -> Assigned to "Entregador #NNNN"
//	Assigned  -> PickedUp, courier placed near the pickup point
//	PickedUp  -> OnTheWay, courier moves (proximity rule applies)
//	OnTheWay  -> courier moves; about 30% of the time also -> Near
//	Near      -> Arrived
//	Arrived   -> Delivered
//
// Delivered and Cancelled are left untouched: no history entry and no
// notification. From Preparing, Delivered is reached in at most seven calls
// whenever the OnTheWay roll succeeds.
func (d *Delivery) AdvanceProgress(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.status {
	case Preparing:
		return d.updateStatus(ctx, Ready, noteReady)
	case Ready:
		number := kernel.RandomIntBetween(d.random, courierNumberMin, courierNumberMax)
		return d.assignDeliveryPerson(ctx, fmt.Sprintf("Entregador #%d", number))
	case Assigned:
		if err := d.updateStatus(ctx, PickedUp, notePickedUp); err != nil {
			return err
		}
		return d.updateLocation(ctx,
			pickupLatitude+d.jitter(pickupJitter),
			pickupLongitude+d.jitter(pickupJitter),
			true,
		)
	case PickedUp:
		if err := d.updateStatus(ctx, OnTheWay, noteOnTheWay); err != nil {
			return err
		}
		return d.move(ctx, true)
	case OnTheWay:
		if err := d.move(ctx, false); err != nil {
			return err
		}
		if d.random.Float64() > proximityThreshold {
			return d.updateStatus(ctx, Near, noteNear)
		}
		return nil
	case Near:
		return d.updateStatus(ctx, Arrived, noteArrived)
	case Arrived:
		return d.updateStatus(ctx, Delivered, noteDelivered)
	default:
		d.logger.DebugContext(ctx, "no progress from terminal status", "status", d.status.Code())
		return nil
	}
}

func (d *Delivery) move(ctx context.Context, proximityRule bool) error {
	current := d.location.Point()
	return d.updateLocation(ctx,
		current.Latitude()+d.jitter(moveJitter),
		current.Longitude()+d.jitter(moveJitter),
		proximityRule,
	)
}

func (d *Delivery) jitter(amplitude float64) float64 {
	return kernel.RandomFloatBetween(d.random, -amplitude, amplitude)
}
