package adapters

import (
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/shopspring/decimal"
)

// MaxRankingEntries bounds every product ranking handed to callers.
const MaxRankingEntries = 10

// float and count treat a NULL aggregate as zero.
func float(d decimal.NullDecimal) float64 {
	if !d.Valid {
		return 0
	}
	return d.Decimal.InexactFloat64()
}

func count(d decimal.NullDecimal) int64 {
	if !d.Valid || d.Decimal.IsNegative() {
		return 0
	}
	return d.Decimal.IntPart()
}

func MapStoreRevenueToDomain(row store.RevenueRow) domain.RevenueSummary {
	return domain.RevenueSummary{
		Revenue:    float(row.Revenue),
		TotalOrder: count(row.TotalOrder),
	}
}

func MapStoreCountToDomain(row store.CountRow) int64 {
	return count(row.Total)
}

func MapStoreRankingsToDomain(rows []store.ProductRankingRow, metric domain.RankingMetric) []domain.ProductRanking {
	if len(rows) > MaxRankingEntries {
		rows = rows[:MaxRankingEntries]
	}
	rankings := make([]domain.ProductRanking, 0, len(rows))
	for _, row := range rows {
		rankings = append(rankings, domain.ProductRanking{
			ProductName:         row.ProductName.String,
			ProductCategoryName: row.ProductCategoryName.String,
			Total:               float(row.Total),
			Metric:              metric,
		})
	}
	return rankings
}

func MapRevenueDomainToApi(s domain.RevenueSummary) api.RevenueSummary {
	return api.RevenueSummary{
		Revenue:    s.Revenue,
		TotalOrder: s.TotalOrder,
	}
}

func MapLast7DaysDomainToApi(r domain.Last7DaysRevenue) api.Last7DaysRevenue {
	return api.Last7DaysRevenue{
		FirstDay:   MapRevenueDomainToApi(r.Days[0]),
		SecondDay:  MapRevenueDomainToApi(r.Days[1]),
		ThirdDay:   MapRevenueDomainToApi(r.Days[2]),
		FourthDay:  MapRevenueDomainToApi(r.Days[3]),
		FifthDay:   MapRevenueDomainToApi(r.Days[4]),
		SixthDay:   MapRevenueDomainToApi(r.Days[5]),
		SeventhDay: MapRevenueDomainToApi(r.Days[6]),
	}
}

func MapMonthlyRevenueDomainToApi(months []domain.MonthlyRevenue) []api.MonthlyRevenue {
	res := make([]api.MonthlyRevenue, 0, len(months))
	for _, m := range months {
		res = append(res, api.MonthlyRevenue{
			Month:      m.Month,
			Revenue:    m.Revenue,
			TotalOrder: m.TotalOrder,
		})
	}
	return res
}

func MapSalesRankingDomainToApi(rankings []domain.ProductRanking) []api.ProductSalesRanking {
	res := make([]api.ProductSalesRanking, 0, len(rankings))
	for _, r := range rankings {
		res = append(res, api.ProductSalesRanking{
			ProductName:         r.ProductName,
			ProductCategoryName: r.ProductCategoryName,
			TotalSales:          r.Total,
		})
	}
	return res
}

func MapQuantityRankingDomainToApi(rankings []domain.ProductRanking) []api.ProductQuantityRanking {
	res := make([]api.ProductQuantityRanking, 0, len(rankings))
	for _, r := range rankings {
		res = append(res, api.ProductQuantityRanking{
			ProductName:         r.ProductName,
			ProductCategoryName: r.ProductCategoryName,
			TotalQty:            r.Total,
		})
	}
	return res
}

func MapQueueDomainToApi(q domain.QueueSummary) api.QueueSummary {
	return api.QueueSummary{TotalQueue: q.TotalQueue}
}

func MapOrderPaymentDomainToApi(s domain.OrderPaymentSummary) api.OrderPaymentSummary {
	return api.OrderPaymentSummary{
		TotalOrder:   s.TotalOrder,
		TotalPayment: s.TotalPayment,
	}
}
