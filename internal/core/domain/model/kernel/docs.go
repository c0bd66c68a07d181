// Package kernel provides the shared domain primitives of the delivery
// tracking system.
//
// The package includes:
//   - UUID: a validated identifier for deliveries, orders, customers and restaurants
//   - GeoPoint: a latitude/longitude pair used by the courier location tracker
//   - Clock: the source of "now" for timestamps and estimates
//   - RandomSource: the source of randomness for the progress simulation
//
// Clock and RandomSource are interfaces so tests can pin time and replay
// exact random sequences.
package kernel
