package queries

import (
	"context"
	"slices"

	"deliverytracking/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetRestaurantStatusCountsQueryHandler reads analytics_snapshots directly
// with SQL rather than going through the snapshot repository.
type GetRestaurantStatusCountsQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantStatusCountsQueryHandler(db *gorm.DB) GetRestaurantStatusCountsQueryHandler {
	return GetRestaurantStatusCountsQueryHandler{db: db}
}

// Handle returns the counts in lifecycle order. Statuses never recorded are
// left out.
func (h GetRestaurantStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantStatusCountsQuery,
) ([]GetRestaurantStatusCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			delivery_status,
			COUNT(*)
		FROM analytics_snapshots
		WHERE restaurant_id = ? AND delivery_status <> ''
		GROUP BY delivery_status
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]GetRestaurantStatusCountsQueryResponse, 0)
	for rows.Next() {
		var code string
		var count int64
		if err = rows.Scan(&code, &count); err != nil {
			return nil, err
		}

		status, parseErr := delivery.ParseStatus(code)
		if parseErr != nil {
			return nil, parseErr
		}
		counts = append(counts, GetRestaurantStatusCountsQueryResponse{Status: status, Count: count})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(counts, func(a, b GetRestaurantStatusCountsQueryResponse) int {
		return int(a.Status) - int(b.Status)
	})
	return counts, nil
}
