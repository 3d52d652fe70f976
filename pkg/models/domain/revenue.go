package domain

// DateWindow is an inclusive range of YYYYMMDD strings.
// The store compares them lexicographically; they are never normalized,
// so a window may name days that do not exist (e.g. 20240231).
type DateWindow struct {
	Start string
	End   string
}

type RevenueSummary struct {
	Revenue    float64
	TotalOrder int64
}

type MonthlyRevenue struct {
	Month string // Jan..Dec
	RevenueSummary
}

// Last7DaysRevenue holds one summary per calendar day, oldest first:
// Days[0] is six days ago, Days[6] is today.
type Last7DaysRevenue struct {
	Days [7]RevenueSummary
}

type RankingMetric string

const (
	RankingBySales    RankingMetric = "sales"
	RankingByQuantity RankingMetric = "quantity"
)

type ProductRanking struct {
	ProductName         string
	ProductCategoryName string
	Total               float64 // sum of unit_sell_price or qty, depending on Metric
	Metric              RankingMetric
}

type QueueSummary struct {
	TotalQueue int64
}

type OrderPaymentSummary struct {
	TotalOrder   int64
	TotalPayment int64
}
