package adapters

import (
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRevenueToReport(t *testing.T) {
	period := domain.DateWindow{Start: "20240101", End: "20240131"}
	report := MapRevenueToReport("Revenue by Date", period, domain.RevenueSummary{Revenue: 150000, TotalOrder: 2})

	assert.Equal(t, "Revenue by Date", report.Title)
	assert.Equal(t, period, report.Period)
	require.Len(t, report.Sections, 1)
	assert.Equal(t, []domain.ReportDetail{
		{Name: "Revenue", Value: "150000.00", Description: "Net line-item revenue"},
		{Name: "Total Orders", Value: int64(2), Unit: "orders", Description: "Distinct POS transactions"},
	}, report.Sections[0].Details)
}

func TestMapLast7DaysToReport(t *testing.T) {
	days := []string{"20240229", "20240301", "20240302", "20240303", "20240304", "20240305", "20240306"}
	var r domain.Last7DaysRevenue
	r.Days[0] = domain.RevenueSummary{Revenue: 10, TotalOrder: 1}
	r.Days[6] = domain.RevenueSummary{Revenue: 5.5, TotalOrder: 2}

	report := MapLast7DaysToReport(days, r)

	assert.Equal(t, domain.DateWindow{Start: "20240229", End: "20240306"}, report.Period)
	require.Len(t, report.Sections, 1)
	details := report.Sections[0].Details
	require.Len(t, details, 7)
	assert.Equal(t, "20240229", details[0].Name)
	assert.Equal(t, "10.00", details[0].Value)
	assert.Equal(t, "20240306", details[6].Name)
	assert.Equal(t, "2 orders", details[6].Unit)
	assert.Equal(t, "15.50", report.Sections[0].Summary["Total Revenue"])
	assert.Equal(t, int64(3), report.Sections[0].Summary["Total Orders"])
}

func TestMapLast7DaysToReport_WithoutDays(t *testing.T) {
	report := MapLast7DaysToReport(nil, domain.Last7DaysRevenue{})

	assert.Equal(t, domain.DateWindow{}, report.Period)
	assert.Equal(t, "Day 1", report.Sections[0].Details[0].Name)
}

func TestMapMonthlyRevenueToReport_FlagsJuly(t *testing.T) {
	months := []domain.MonthlyRevenue{
		{Month: "Jun", RevenueSummary: domain.RevenueSummary{Revenue: 100, TotalOrder: 1}},
		{Month: "Jul", RevenueSummary: domain.RevenueSummary{Revenue: 200, TotalOrder: 4}},
	}

	report := MapMonthlyRevenueToReport("2024", months)

	assert.Equal(t, "Revenue by Month 2024", report.Title)
	assert.Equal(t, domain.DateWindow{Start: "20240101", End: "20241231"}, report.Period)
	details := report.Sections[0].Details
	assert.Equal(t, "Line-item revenue", details[0].Description)
	assert.Equal(t, "Payment ledger total", details[1].Description)
	assert.Equal(t, "300.00", report.Sections[0].Summary["Total Revenue"])
}

func TestMapRankingsToReport(t *testing.T) {
	rankings := []domain.ProductRanking{
		{ProductName: "Vitamin C", ProductCategoryName: "Supplements", Total: 12},
		{ProductName: "Omega 3", ProductCategoryName: "Supplements", Total: 7},
	}

	t.Run("quantity", func(t *testing.T) {
		report := MapRankingsToReport("Top Products", domain.DateWindow{}, domain.RankingByQuantity, rankings)

		section := report.Sections[0]
		assert.Equal(t, "Top 10 Products by quantity", section.Title)
		assert.Equal(t, 2, section.Summary["Products"])
		assert.Equal(t, domain.ReportDetail{
			Name: "1. Vitamin C", Value: "12", Unit: "qty", Description: "Supplements",
		}, section.Details[0])
	})

	t.Run("sales", func(t *testing.T) {
		report := MapRankingsToReport("Top Products", domain.DateWindow{}, domain.RankingBySales, rankings)

		assert.Equal(t, domain.ReportDetail{
			Name: "2. Omega 3", Value: "7.00", Description: "Supplements",
		}, report.Sections[0].Details[1])
	})
}

func TestMapOrderPaymentToReport(t *testing.T) {
	report := MapOrderPaymentToReport("20240306", domain.OrderPaymentSummary{TotalOrder: 20, TotalPayment: 18})

	assert.Equal(t, domain.DateWindow{Start: "20240306", End: "20240306"}, report.Period)
	assert.Equal(t, int64(2), report.Sections[0].Summary["Orders Without Payment"])
	assert.Equal(t, int64(18), report.Sections[0].Details[1].Value)
}

func TestMapQueueToReport(t *testing.T) {
	report := MapQueueToReport("20240306", domain.QueueSummary{TotalQueue: 14})

	assert.Equal(t, int64(14), report.Sections[0].Details[0].Value)
}
