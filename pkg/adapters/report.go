package adapters

import (
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

const (
	unitOrders   = "orders"
	unitPayments = "payments"
	unitQueue    = "patients"
	unitQty      = "qty"
)

func amount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func MapRevenueToReport(title string, period domain.DateWindow, s domain.RevenueSummary) *domain.Report {
	return &domain.Report{
		Title:  title,
		Period: period,
		Sections: []domain.ReportSection{{
			Title: "Revenue",
			Details: []domain.ReportDetail{
				{Name: "Revenue", Value: amount(s.Revenue), Description: "Net line-item revenue"},
				{Name: "Total Orders", Value: s.TotalOrder, Unit: unitOrders, Description: "Distinct POS transactions"},
			},
		}},
	}
}

// MapLast7DaysToReport pairs days (oldest first) with the matching revenue slots.
func MapLast7DaysToReport(days []string, r domain.Last7DaysRevenue) *domain.Report {
	report := &domain.Report{Title: "Last 7 Days Revenue"}
	if len(days) == len(r.Days) {
		report.Period = domain.DateWindow{Start: days[0], End: days[len(days)-1]}
	}

	var revenue float64
	var orders int64
	section := domain.ReportSection{Title: "Daily Revenue"}
	for i, day := range r.Days {
		name := fmt.Sprintf("Day %d", i+1)
		if i < len(days) {
			name = days[i]
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        name,
			Value:       amount(day.Revenue),
			Unit:        fmt.Sprintf("%d %s", day.TotalOrder, unitOrders),
			Description: "Line-item revenue",
		})
		revenue += day.Revenue
		orders += day.TotalOrder
	}
	section.Summary = map[string]interface{}{
		"Total Revenue": amount(revenue),
		"Total Orders":  orders,
	}

	report.Sections = append(report.Sections, section)
	return report
}

// MapMonthlyRevenueToReport renders the 12-month breakdown. July is flagged
// because it is read from the payment ledger rather than line items.
func MapMonthlyRevenueToReport(year string, months []domain.MonthlyRevenue) *domain.Report {
	report := &domain.Report{
		Title:  fmt.Sprintf("Revenue by Month %s", year),
		Period: domain.DateWindow{Start: year + "0101", End: year + "1231"},
	}

	var revenue float64
	var orders int64
	section := domain.ReportSection{Title: "Monthly Revenue"}
	for _, m := range months {
		desc := "Line-item revenue"
		if m.Month == "Jul" {
			desc = "Payment ledger total"
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        m.Month,
			Value:       amount(m.Revenue),
			Unit:        fmt.Sprintf("%d %s", m.TotalOrder, unitOrders),
			Description: desc,
		})
		revenue += m.Revenue
		orders += m.TotalOrder
	}
	section.Summary = map[string]interface{}{
		"Total Revenue": amount(revenue),
		"Total Orders":  orders,
	}

	report.Sections = append(report.Sections, section)
	return report
}

func MapRankingsToReport(
	title string,
	period domain.DateWindow,
	metric domain.RankingMetric,
	rankings []domain.ProductRanking,
) *domain.Report {
	unit := ""
	if metric == domain.RankingByQuantity {
		unit = unitQty
	}

	section := domain.ReportSection{
		Title:   fmt.Sprintf("Top %d Products by %s", MaxRankingEntries, metric),
		Summary: map[string]interface{}{"Products": len(rankings)},
	}
	for i, r := range rankings {
		value := amount(r.Total)
		if metric == domain.RankingByQuantity {
			value = fmt.Sprintf("%g", r.Total)
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        fmt.Sprintf("%d. %s", i+1, r.ProductName),
			Value:       value,
			Unit:        unit,
			Description: r.ProductCategoryName,
		})
	}

	return &domain.Report{
		Title:    title,
		Period:   period,
		Sections: []domain.ReportSection{section},
	}
}

func MapQueueToReport(day string, q domain.QueueSummary) *domain.Report {
	return &domain.Report{
		Title:  "Consultation Queue",
		Period: domain.DateWindow{Start: day, End: day},
		Sections: []domain.ReportSection{{
			Title: "Queue",
			Details: []domain.ReportDetail{
				{Name: "Total Queue", Value: q.TotalQueue, Unit: unitQueue, Description: "Queue entries registered today"},
			},
		}},
	}
}

func MapOrderPaymentToReport(day string, s domain.OrderPaymentSummary) *domain.Report {
	return &domain.Report{
		Title:  "Orders vs Payments",
		Period: domain.DateWindow{Start: day, End: day},
		Sections: []domain.ReportSection{{
			Title: "Orders vs Payments",
			Summary: map[string]interface{}{
				"Orders Without Payment": s.TotalOrder - s.TotalPayment,
			},
			Details: []domain.ReportDetail{
				{Name: "Total Orders", Value: s.TotalOrder, Unit: unitOrders, Description: "POS transactions dated today"},
				{Name: "Total Payments", Value: s.TotalPayment, Unit: unitPayments, Description: "Payments created today"},
			},
		}},
	}
}
