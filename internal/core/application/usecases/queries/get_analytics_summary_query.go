package queries

import (
	"errors"
	"strings"

	"deliverytracking/internal/core/domain/model/analytics"
	"deliverytracking/internal/pkg/guard"
)

var (
	ErrGetAnalyticsSummaryQueryIsNotConstructed = errors.New(
		"GetAnalyticsSummaryQuery must be created via NewGetAnalyticsSummaryQuery constructor",
	)
	ErrRestaurantNameIsRequired = errors.New("restaurant name is required")
)

// GetAnalyticsSummaryQuery builds the dashboard of a restaurant looked up by name.
type GetAnalyticsSummaryQuery struct {
	restaurantName string

	guard guard.ConstructorGuard
}

func NewGetAnalyticsSummaryQuery(restaurantName string) (GetAnalyticsSummaryQuery, error) {
	if strings.TrimSpace(restaurantName) == "" {
		return GetAnalyticsSummaryQuery{}, ErrRestaurantNameIsRequired
	}
	return GetAnalyticsSummaryQuery{restaurantName: restaurantName, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAnalyticsSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetAnalyticsSummaryQueryIsNotConstructed)
}

func (q GetAnalyticsSummaryQuery) RestaurantName() string {
	return q.restaurantName
}

// GetAnalyticsSummaryQueryResponse pairs the dashboard with its text rendering.
type GetAnalyticsSummaryQueryResponse struct {
	Dashboard analytics.Dashboard
	Text      string
}
