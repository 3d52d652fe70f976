package store

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Aggregate columns arrive as numeric text from the driver and are NULL
// when no row matched, so every aggregate is scanned into a NullDecimal.
// Product and category names are nullable in master data.

type RevenueRow struct {
	Revenue    decimal.NullDecimal `db:"revenue"`
	TotalOrder decimal.NullDecimal `db:"total_order"`
}

type ProductRankingRow struct {
	ProductName         sql.NullString      `db:"product_name"`
	ProductCategoryName sql.NullString      `db:"product_category_name"`
	Total               decimal.NullDecimal `db:"total"`
}

type CountRow struct {
	Total decimal.NullDecimal `db:"total"`
}
