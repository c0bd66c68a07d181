// Package order models the collaborators a delivery is built from: the Order
// handed off for fulfillment, the Customer who placed it and the Restaurant
// that prepares it.
//
// Menu pricing, promotions and payment belong elsewhere; by the time an Order
// reaches this package its line items already carry unit prices, so Total is
// a plain sum. Orders are identified by an externally assigned kernel.UUID.
//
// Order lifecycle: Created -> Finalized. Finalize is called once, when the
// order is handed to a delivery.
package order
