package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
)

type TopProduct struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Sales   int             `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
	Stock   int             `json:"stock"`
}

type StoreAnalytics struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalSales     int             `json:"totalSales"`
	AvgOrderValue  decimal.Decimal `json:"avgOrderValue"`
	RevenueGrowth  float64         `json:"revenueGrowth"`
	TopProducts    []TopProduct    `json:"topProducts"`
	ActiveProducts int             `json:"activeProducts"`
	TotalOrders    int             `json:"totalOrders"`
}

const topProductCount = 5

// BuildStoreAnalytics counts revenue from paid orders only while sales
// count every ordered unit. Items whose product was deleted are left out
// of the top products.
func BuildStoreAnalytics(products []domain.Product, orders []domain.Order, now time.Time, loc *time.Location) StoreAnalytics {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)
	thisMonth := monthStart(now, 0)
	lastMonth := monthStart(now, -1)

	stock := make(map[string]int, len(products))
	out := StoreAnalytics{TotalOrders: len(orders), TopProducts: []TopProduct{}}
	for _, p := range products {
		stock[p.ID] = p.Stock
		if p.InStock() {
			out.ActiveProducts++
		}
	}

	var paidOrders int
	var revenueThis, revenueLast decimal.Decimal
	top := make(map[string]*TopProduct)
	for _, o := range orders {
		if o.PaymentStatus == domain.PaymentPaid {
			paidOrders++
			out.TotalRevenue = out.TotalRevenue.Add(o.TotalAmount)
			switch {
			case !o.CreatedAt.Before(thisMonth):
				revenueThis = revenueThis.Add(o.TotalAmount)
			case !o.CreatedAt.Before(lastMonth):
				revenueLast = revenueLast.Add(o.TotalAmount)
			}
		}
		for _, it := range o.Items {
			out.TotalSales += it.Quantity
			if it.ProductID == "" {
				continue
			}
			tp, ok := top[it.ProductID]
			if !ok {
				tp = &TopProduct{ID: it.ProductID, Name: it.ProductName, Stock: stock[it.ProductID]}
				top[it.ProductID] = tp
			}
			tp.Sales += it.Quantity
			tp.Revenue = tp.Revenue.Add(it.LineTotal())
		}
	}

	if paidOrders > 0 {
		out.AvgOrderValue = out.TotalRevenue.Div(decimal.NewFromInt(int64(paidOrders))).Round(2)
	}
	out.RevenueGrowth = growth(revenueThis, revenueLast)

	for _, tp := range top {
		out.TopProducts = append(out.TopProducts, *tp)
	}
	sort.Slice(out.TopProducts, func(i, j int) bool {
		a, b := out.TopProducts[i], out.TopProducts[j]
		if a.Sales != b.Sales {
			return a.Sales > b.Sales
		}
		return a.Name < b.Name
	})
	if len(out.TopProducts) > topProductCount {
		out.TopProducts = out.TopProducts[:topProductCount]
	}
	return out
}
