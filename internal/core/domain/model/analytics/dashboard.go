package analytics

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	dashboardTopItems = 3
	noDataSummary     = "Não há dados suficientes para gerar o resumo."
)

// Dashboard is the headline view of one restaurant's analytics.
type Dashboard struct {
	RestaurantName    string          `json:"restaurant_name"`
	TotalOrders       int             `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	TopItems          []ItemCount     `json:"top_items"`
	Retention         Retention       `json:"retention"`
	Performance       Performance     `json:"performance"`
}

// DashboardSummary gathers the headline numbers.
func (a *RestaurantAnalytics) DashboardSummary(restaurantName string) Dashboard {
	return Dashboard{
		RestaurantName:    restaurantName,
		TotalOrders:       a.TotalOrders(),
		TotalRevenue:      a.TotalRevenue(),
		AverageOrderValue: a.AverageOrderValue(),
		TopItems:          a.MostPopularItems(dashboardTopItems),
		Retention:         a.CustomerRetention(),
		Performance:       a.DeliveryPerformance(),
	}
}

// Text renders the dashboard for a terminal.
func (d Dashboard) Text() string {
	if d.TotalOrders == 0 {
		return noDataSummary
	}

	var b strings.Builder
	fmt.Fprintf(&b, "RESUMO DE DESEMPENHO - %s\n", d.RestaurantName)
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	b.WriteString("MÉTRICAS PRINCIPAIS:\n")
	fmt.Fprintf(&b, "- Total de pedidos: %d\n", d.TotalOrders)
	fmt.Fprintf(&b, "- Receita total: R$ %s\n", d.TotalRevenue.StringFixed(2))
	fmt.Fprintf(&b, "- Valor médio por pedido: R$ %s\n\n", d.AverageOrderValue.StringFixed(2))

	b.WriteString("TOP 3 ITENS MAIS VENDIDOS:\n")
	if len(d.TopItems) == 0 {
		b.WriteString("  Nenhum item vendido ainda\n")
	}
	for _, item := range d.TopItems {
		fmt.Fprintf(&b, "  - %s: %d unidades\n", item.Name, item.Quantity)
	}

	b.WriteString("\nCLIENTES:\n")
	fmt.Fprintf(&b, "- Taxa de retenção: %.2f%%\n", d.Retention.RetentionRate)
	fmt.Fprintf(&b, "  (%d de %d clientes retornaram)\n",
		d.Retention.ReturningCustomers, d.Retention.UniqueCustomers)

	return b.String()
}
