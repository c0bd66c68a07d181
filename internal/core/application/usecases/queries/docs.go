// Package queries contains read operations over deliveries and restaurant
// analytics. Queries never mutate state and return read models shaped for
// the HTTP edge.
package queries
