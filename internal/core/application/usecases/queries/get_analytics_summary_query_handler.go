package queries

import (
	"context"

	"deliverytracking/internal/core/domain/model/analytics"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/ports"
)

// AnalyticsLookup finds the analytics of a restaurant without creating them.
// *analytics.Registry implements it.
type AnalyticsLookup interface {
	Lookup(restaurantID kernel.UUID) (*analytics.RestaurantAnalytics, bool)
}

type GetAnalyticsSummaryQueryHandler struct {
	parties   ports.PartyDirectory
	analytics AnalyticsLookup
}

func NewGetAnalyticsSummaryQueryHandler(
	parties ports.PartyDirectory,
	analytics AnalyticsLookup,
) GetAnalyticsSummaryQueryHandler {
	return GetAnalyticsSummaryQueryHandler{parties: parties, analytics: analytics}
}

// Handle returns an *errs.ObjectNotFoundError for restaurants that never
// took an order. A restaurant whose deliveries have not changed status yet
// gets an empty dashboard.
func (h GetAnalyticsSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetAnalyticsSummaryQuery,
) (GetAnalyticsSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAnalyticsSummaryQueryResponse{}, err
	}

	restaurant, err := h.parties.FindRestaurant(ctx, query.RestaurantName())
	if err != nil {
		return GetAnalyticsSummaryQueryResponse{}, err
	}

	dashboard := analytics.Dashboard{RestaurantName: restaurant.Name()}
	if a, ok := h.analytics.Lookup(restaurant.ID()); ok {
		dashboard = a.DashboardSummary(restaurant.Name())
	}

	return GetAnalyticsSummaryQueryResponse{Dashboard: dashboard, Text: dashboard.Text()}, nil
}
