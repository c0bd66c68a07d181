package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

type ItemRequest struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type CreateDeliveryRequest struct {
	Customer     string        `json:"customer"`
	Restaurant   string        `json:"restaurant"`
	Items        []ItemRequest `json:"items"`
	Instructions string        `json:"instructions"`
}

type CreateDeliveryResponse struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type AssignCourierRequest struct {
	Name string `json:"name"`
}

// UpdateLocationRequest uses pointers so a missing coordinate is told apart
// from a zero one.
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type UpdateEstimateRequest struct {
	Minutes *int `json:"minutes"`
}

type AddNoteRequest struct {
	Note string `json:"note"`
}

type Delivery struct {
	ID             string     `json:"id"`
	OrderID        string     `json:"order_id"`
	Customer       string     `json:"customer"`
	Restaurant     string     `json:"restaurant"`
	Status         string     `json:"status"`
	StatusCode     string     `json:"status_code"`
	DeliveryPerson string     `json:"delivery_person,omitempty"`
	EstimatedAt    *time.Time `json:"estimated_at,omitempty"`
	TrackingLink   string     `json:"tracking_link"`
}

type AdvanceResponse struct {
	Advanced int `json:"advanced"`
}

type StatusCount struct {
	Status     string `json:"status"`
	StatusCode string `json:"status_code"`
	Count      int64  `json:"count"`
}
