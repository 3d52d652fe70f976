package api

type RevenueSummary struct {
	Revenue    float64 `json:"revenue"`
	TotalOrder int64   `json:"total_order"`
}

type Last7DaysRevenue struct {
	FirstDay   RevenueSummary `json:"firstDay"`
	SecondDay  RevenueSummary `json:"secondDay"`
	ThirdDay   RevenueSummary `json:"thirdDay"`
	FourthDay  RevenueSummary `json:"fourthDay"`
	FifthDay   RevenueSummary `json:"fifthDay"`
	SixthDay   RevenueSummary `json:"sixthDay"`
	SeventhDay RevenueSummary `json:"seventhDay"`
}

type MonthlyRevenue struct {
	Month      string  `json:"month"`
	Revenue    float64 `json:"revenue"`
	TotalOrder int64   `json:"total_order"`
}

type ProductSalesRanking struct {
	ProductName         string  `json:"product_name"`
	ProductCategoryName string  `json:"product_category_name"`
	TotalSales          float64 `json:"total_sales"`
}

type ProductQuantityRanking struct {
	ProductName         string  `json:"product_name"`
	ProductCategoryName string  `json:"product_category_name"`
	TotalQty            float64 `json:"total_qty"`
}

type QueueSummary struct {
	TotalQueue int64 `json:"total_queue"`
}

type OrderPaymentSummary struct {
	TotalOrder   int64 `json:"total_order"`
	TotalPayment int64 `json:"total_payment"`
}

type RevenueByDateRequest struct {
	StartDate string `json:"start_date" validate:"required,len=8,numeric"`
	EndDate   string `json:"end_date" validate:"required,len=8,numeric"`
}

type Error struct {
	Error string `json:"error"`
}
