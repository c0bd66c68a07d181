// Package http exposes delivery tracking over a JSON HTTP API built on echo.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"deliverytracking/internal/core/application/usecases/commands"
	"deliverytracking/internal/core/application/usecases/queries"
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// HourlyStatusCounter reports per-status transition counts for one hour.
type HourlyStatusCounter interface {
	HourlyCounts(ctx context.Context, at time.Time) (map[string]int64, error)
}

// Handlers groups the use cases served over HTTP. GetStatusCounts and
// HourlyCounter are optional; their routes answer 404 when unset.
type Handlers struct {
	CreateDelivery       commands.CreateDeliveryCommandHandler
	UpdateDeliveryStatus commands.UpdateDeliveryStatusCommandHandler
	AssignDeliveryPerson commands.AssignDeliveryPersonCommandHandler
	UpdateLocation       commands.UpdateDeliveryLocationCommandHandler
	UpdateEstimatedTime  commands.UpdateEstimatedTimeCommandHandler
	AddDeliveryNote      commands.AddDeliveryNoteCommandHandler
	AdvanceDeliveries    commands.AdvanceDeliveriesCommandHandler

	GetStatusView   queries.GetDeliveryStatusViewQueryHandler
	GetActive       queries.GetActiveDeliveriesQueryHandler
	GetAnalytics    queries.GetAnalyticsSummaryQueryHandler
	GetStatusCounts *queries.GetRestaurantStatusCountsQueryHandler
	HourlyCounter   HourlyStatusCounter
	Parties         ports.PartyDirectory
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	metrics  http.Handler
	clock    kernel.Clock
	logger   *slog.Logger
}

// NewServer builds the server. metrics may be nil to disable /metrics.
func NewServer(handlers Handlers, metrics http.Handler, clock kernel.Clock, logger *slog.Logger) *Server {
	if clock == nil {
		clock = kernel.SystemClock()
	}
	return &Server{
		handlers: handlers,
		metrics:  metrics,
		clock:    clock,
		logger:   logger.With("component", "HTTPServer"),
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)
	if s.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(s.metrics))
	}

	api := e.Group("/api/v1")
	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries", s.GetActiveDeliveries)
	api.GET("/deliveries/:id", s.GetDeliveryStatusView)
	api.POST("/deliveries/:id/status", s.UpdateStatus)
	api.POST("/deliveries/:id/courier", s.AssignCourier)
	api.POST("/deliveries/:id/location", s.UpdateLocation)
	api.POST("/deliveries/:id/estimate", s.UpdateEstimate)
	api.POST("/deliveries/:id/notes", s.AddNote)
	api.POST("/deliveries/:id/advance", s.Advance)
	api.GET("/restaurants/:name/analytics", s.GetAnalyticsSummary)
	api.GET("/restaurants/:name/status-counts", s.GetStatusCounts)
	api.GET("/stats/hourly", s.GetHourlyCounts)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(c echo.Context) error {
	var req CreateDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	items := make([]commands.Item, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.Item{Name: item.Name, Quantity: item.Quantity, UnitPrice: item.UnitPrice})
	}

	deliveryID, orderID := kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, orderID, req.Customer, req.Restaurant, items, req.Instructions)
	if err != nil {
		return badRequest(c, "Invalid delivery data: "+err.Error())
	}

	if err = s.handlers.CreateDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateDeliveryResponse{
		ID:      deliveryID.String(),
		OrderID: orderID.String(),
		Status:  delivery.Preparing.Label(),
	})
}

// GetActiveDeliveries handles GET /api/v1/deliveries.
func (s *Server) GetActiveDeliveries(c echo.Context) error {
	rows, err := s.handlers.GetActive.Handle(c.Request().Context(), queries.NewGetActiveDeliveriesQuery())
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]Delivery, len(rows))
	for i, row := range rows {
		response[i] = Delivery{
			ID:             row.ID.String(),
			OrderID:        row.OrderID.String(),
			Customer:       row.CustomerName,
			Restaurant:     row.RestaurantName,
			Status:         row.Status,
			StatusCode:     row.StatusCode,
			DeliveryPerson: row.DeliveryPerson,
			EstimatedAt:    row.EstimatedAt,
			TrackingLink:   row.TrackingLink,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetDeliveryStatusView handles GET /api/v1/deliveries/:id.
func (s *Server) GetDeliveryStatusView(c echo.Context) error {
	id, err := deliveryID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetDeliveryStatusViewQuery(id)
	if err != nil {
		return badRequest(c, err.Error())
	}

	view, err := s.handlers.GetStatusView.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.String(http.StatusOK, view.Text)
}

// UpdateStatus handles POST /api/v1/deliveries/:id/status.
func (s *Server) UpdateStatus(c echo.Context) error {
	id, err := deliveryID(c)
	if err != nil {
		return err
	}
	var req UpdateStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(id, req.Status, req.Notes)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err = s.handlers.UpdateDeliveryStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignCourier handles POST /api/v1/deliveries/:id/courier.
func (s *Server) AssignCourier(c echo.Context) error {
	id, err := deliveryID(c)
	if err != nil {
		return err
	}
	var req AssignCourierRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewAssignDeliveryPersonCommand(id, req.Name)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err = s.handlers.AssignDeliveryPerson.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateLocation handles POST /api/v1/deliveries/:id/location.
func (s *Server) UpdateLocation(c echo.Context) error {
	id, err := deliveryID(c)
	if err != nil {
		return err
	}
	var req UpdateLocationRequest
	if err = c.Bind(&req); err != nil || req.Latitude == nil || req.Longitude == nil {
		return badRequest(c, "latitude and longitude are required")
	}

	cmd, err := commands.NewUpdateDeliveryLocationCommand(id, *req.Latitude, *req.Longitude)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err = s.handlers.UpdateLocation.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateEstimate handles POST /api/v1/deliveries/:id/estimate.
func (s *Server) UpdateEstimate(c echo.Context) error {
	id, err := deliveryID(c)
	if err != nil {
		return err
	}
	var req UpdateEstimateRequest
	if err = c.Bind(&req); err != nil || req.Minutes == nil {
		return badRequest(c, "minutes is required")
	}

	cmd, err := commands.NewUpdateEstimatedTimeCommand(id, *req.Minutes)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err = s.handlers.UpdateEstimatedTime.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddNote handles POST /api/v1/deliveries/:id/notes.
func (s *Server) AddNote(c echo.Context) error {
	id, err := deliveryID(c)
	if err != nil {
		return err
	}
	var req AddNoteRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewAddDeliveryNoteCommand(id, req.Note)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err = s.handlers.AddDeliveryNote.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Advance handles POST /api/v1/deliveries/:id/advance.
func (s *Server) Advance(c echo.Context) error {
	id, err := deliveryID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAdvanceOneDeliveryCommand(id)
	if err != nil {
		return badRequest(c, err.Error())
	}

	advanced, err := s.handlers.AdvanceDeliveries.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, AdvanceResponse{Advanced: advanced})
}

// GetAnalyticsSummary handles GET /api/v1/restaurants/:name/analytics. The
// dashboard is JSON unless the client asks for text/plain.
func (s *Server) GetAnalyticsSummary(c echo.Context) error {
	query, err := queries.NewGetAnalyticsSummaryQuery(c.Param("name"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	summary, err := s.handlers.GetAnalytics.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	if c.Request().Header.Get(echo.HeaderAccept) == echo.MIMETextPlain {
		return c.String(http.StatusOK, summary.Text)
	}
	return c.JSON(http.StatusOK, summary.Dashboard)
}

// GetStatusCounts handles GET /api/v1/restaurants/:name/status-counts.
func (s *Server) GetStatusCounts(c echo.Context) error {
	if s.handlers.GetStatusCounts == nil || s.handlers.Parties == nil {
		return echo.ErrNotFound
	}

	ctx := c.Request().Context()
	restaurant, err := s.handlers.Parties.FindRestaurant(ctx, c.Param("name"))
	if err != nil {
		return s.writeError(c, err)
	}
	query, err := queries.NewGetRestaurantStatusCountsQuery(restaurant.ID())
	if err != nil {
		return badRequest(c, err.Error())
	}

	counts, err := s.handlers.GetStatusCounts.Handle(ctx, query)
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]StatusCount, len(counts))
	for i, count := range counts {
		response[i] = StatusCount{
			Status:     count.Status.Label(),
			StatusCode: count.Status.Code(),
			Count:      count.Count,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetHourlyCounts handles GET /api/v1/stats/hourly?at=RFC3339. Without "at"
// the current hour is reported.
func (s *Server) GetHourlyCounts(c echo.Context) error {
	if s.handlers.HourlyCounter == nil {
		return echo.ErrNotFound
	}

	at := s.clock.Now()
	if raw := c.QueryParam("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(c, "at must be an RFC3339 timestamp")
		}
		at = parsed
	}

	counts, err := s.handlers.HourlyCounter.HourlyCounts(c.Request().Context(), at)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, counts)
}

// deliveryID parses the :id path parameter. The returned error is an
// *echo.HTTPError rendered by echo as a 400 Error body.
func deliveryID(c echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery id",
		})
	}
	return id, nil
}
