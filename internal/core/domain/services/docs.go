// Package services provides the notification channels attached to deliveries
// and the factory that wires them.
//
// The package includes:
//   - CustomerNotifier: tells the customer about each status change and keeps
//     a record in the customer's notification log
//   - RestaurantNotifier: tells the restaurant about each status change
//   - AnalyticsRecorder: forwards the order and delivery state to the
//     restaurant's analytics collector
//   - LogSender: a MessageSender that writes payloads to the structured log
//   - ChannelFactory: builds the observers attached to every new delivery
//
// Every channel implements delivery.Observer.
package services
