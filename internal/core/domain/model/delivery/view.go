package delivery

import (
	"fmt"
	"strings"
	"time"
)

// RenderStatusView builds the customer-facing status summary:
//
//	Status do pedido: A caminho
//	Entregador: Ana
//	Tempo estimado de entrega: 25 minutos
//	Link para rastreamento: https://fooddelivery.example.com/track/<order id>
//	Localização atual: Lat: -9.649800, Long: -35.708900
//
//	Histórico de status:
//	• 20:00:00 - Em preparo
//	• 20:05:00 - Entregador designado: Entregador Ana designado
func (d *Delivery) RenderStatusView() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Status do pedido: %s\n", d.status.Label())

	if d.deliveryPerson != "" {
		fmt.Fprintf(&b, "Entregador: %s\n", d.deliveryPerson)
	}

	if d.estimatedAt != nil && !d.status.IsTerminal() {
		now := d.clock.Now()
		if now.Before(*d.estimatedAt) {
			remaining := int(d.estimatedAt.Sub(now) / time.Minute)
			fmt.Fprintf(&b, "Tempo estimado de entrega: %d minutos\n", remaining)
		} else {
			b.WriteString("Seu pedido está atrasado, mas está a caminho!\n")
		}
	}

	if d.status.showsTrackingLink() {
		fmt.Fprintf(&b, "Link para rastreamento: %s\n", d.TrackingLink())
	}

	if d.status.showsLocation() {
		fmt.Fprintf(&b, "Localização atual: %s\n", d.location.Formatted())
	}

	b.WriteString("\nHistórico de status:\n")
	for _, update := range d.history {
		fmt.Fprintf(&b, "• %s - %s", update.Timestamp.Format(time.TimeOnly), update.Status.Label())
		if update.Notes != "" {
			fmt.Fprintf(&b, ": %s", update.Notes)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
