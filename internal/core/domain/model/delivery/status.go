package delivery

import (
	"strconv"
	"strings"
)

// Status is the delivery's position in its lifecycle.
type Status int

const (
	// Unknown catches uninitialized values and is never a valid target.
	Unknown Status = iota
	Preparing
	Ready
	Assigned
	PickedUp
	OnTheWay
	Near
	Arrived
	Delivered
	Cancelled
)

type statusNames struct {
	label string
	code  string
}

func getStatusNames() map[Status]statusNames {
	return map[Status]statusNames{
		Preparing: {label: "Em preparo", code: "preparing"},
		Ready:     {label: "Pronto para entrega", code: "ready"},
		Assigned:  {label: "Entregador designado", code: "assigned"},
		PickedUp:  {label: "Pedido coletado", code: "picked_up"},
		OnTheWay:  {label: "A caminho", code: "on_the_way"},
		Near:      {label: "Próximo ao destino", code: "near"},
		Arrived:   {label: "Chegou ao destino", code: "arrived"},
		Delivered: {label: "Entregue", code: "delivered"},
		Cancelled: {label: "Cancelado", code: "cancelled"},
	}
}

// AllStatuses returns the nine valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Preparing, Ready, Assigned, PickedUp, OnTheWay, Near, Arrived, Delivered, Cancelled}
}

// ParseStatus accepts either the display label ("A caminho") or the machine
// code ("on_the_way"). Anything else yields an *InvalidStatusError carrying
// the rejected text.
func ParseStatus(s string) (Status, error) {
	trimmed := strings.TrimSpace(s)
	for status, names := range getStatusNames() {
		if trimmed == names.label || strings.EqualFold(trimmed, names.code) {
			return status, nil
		}
	}
	return Unknown, NewInvalidStatusError(s)
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusNames()[s]; !ok {
		return NewInvalidStatusError(s.String())
	}
	return nil
}

// String returns the display label, or "Unknown(n)" for invalid values.
func (s Status) String() string {
	if names, ok := getStatusNames()[s]; ok {
		return names.label
	}
	return "Unknown(" + strconv.Itoa(int(s)) + ")"
}

// Label is the customer-facing name used in messages and the status view.
func (s Status) Label() string {
	return s.String()
}

// Code is the stable machine identifier used on the wire and in metrics.
func (s Status) Code() string {
	if names, ok := getStatusNames()[s]; ok {
		return names.code
	}
	return "unknown"
}

// IsTerminal reports Delivered or Cancelled.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// showsTrackingLink is true from Assigned up to, but not including, the terminal states.
func (s Status) showsTrackingLink() bool {
	switch s {
	case Preparing, Ready, Delivered, Cancelled:
		return false
	default:
		return true
	}
}

// showsLocation is true while the courier is travelling to the customer.
func (s Status) showsLocation() bool {
	return s == OnTheWay || s == Near || s == Arrived
}
