// Package analytics aggregates per-restaurant order data recorded as
// deliveries progress: revenue, popular items, peak hours, customer retention
// and on-time delivery performance.
//
// Each RestaurantAnalytics keeps the latest Snapshot per order. Every recorded
// snapshot is also handed to an optional SnapshotStore, which keeps the full
// history (see adapters/out/postgres/snapshotrepo).
package analytics
