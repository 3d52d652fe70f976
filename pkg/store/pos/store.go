package pos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// Querier executes a parameterized query and scans the result into dest.
// *sqlx.DB and *sqlx.Tx satisfy it.
type Querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Store runs the dashboard aggregates against the point-of-sale schema.
type Store interface {
	RevenueByYear(ctx context.Context, year string) (store.RevenueRow, error)
	RevenueByDay(ctx context.Context, day string) (store.RevenueRow, error)
	RevenueByRange(ctx context.Context, window domain.DateWindow) (store.RevenueRow, error)
	PaymentLedgerRevenue(ctx context.Context, window domain.DateWindow) (store.RevenueRow, error)
	TopProductsByYear(ctx context.Context, metric domain.RankingMetric, year string) ([]store.ProductRankingRow, error)
	TopProductsByRange(ctx context.Context, metric domain.RankingMetric, window domain.DateWindow) ([]store.ProductRankingRow, error)
	QueueCount(ctx context.Context, day string) (store.CountRow, error)
	OrderCount(ctx context.Context, day string) (store.CountRow, error)
	PaymentCount(ctx context.Context, day string) (store.CountRow, error)
}

type posStore struct {
	db         Querier
	productIDs pq.Int64Array
}

// NewStore binds the store to db. productIDs is the Relia inclusion set;
// when empty the built-in set is used.
func NewStore(db Querier, productIDs []int64) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if len(productIDs) == 0 {
		productIDs = ReliaProductIDs()
	} else {
		productIDs = append([]int64(nil), productIDs...)
	}
	return &posStore{
		db:         db,
		productIDs: pq.Int64Array(productIDs),
	}, nil
}

func (s *posStore) RevenueByYear(ctx context.Context, year string) (store.RevenueRow, error) {
	return s.itemRevenue(ctx, "revenue_by_year", yearPrefix, year)
}

func (s *posStore) RevenueByDay(ctx context.Context, day string) (store.RevenueRow, error) {
	return s.itemRevenue(ctx, "revenue_by_day", singleDay, day)
}

func (s *posStore) RevenueByRange(ctx context.Context, window domain.DateWindow) (store.RevenueRow, error) {
	return s.itemRevenue(ctx, "revenue_by_range", dateRange, window.Start, window.End)
}

func (s *posStore) PaymentLedgerRevenue(ctx context.Context, window domain.DateWindow) (store.RevenueRow, error) {
	var row store.RevenueRow
	err := s.get(ctx, "payment_ledger_revenue", &row, paymentLedgerRevenueQuery, window.Start, window.End)
	return row, err
}

func (s *posStore) TopProductsByYear(
	ctx context.Context,
	metric domain.RankingMetric,
	year string,
) ([]store.ProductRankingRow, error) {
	return s.topProducts(ctx, metric, yearPrefix, year)
}

func (s *posStore) TopProductsByRange(
	ctx context.Context,
	metric domain.RankingMetric,
	window domain.DateWindow,
) ([]store.ProductRankingRow, error) {
	return s.topProducts(ctx, metric, dateRange, window.Start, window.End)
}

func (s *posStore) QueueCount(ctx context.Context, day string) (store.CountRow, error) {
	var row store.CountRow
	err := s.get(ctx, "queue_count", &row, queueCountQuery, day)
	return row, err
}

func (s *posStore) OrderCount(ctx context.Context, day string) (store.CountRow, error) {
	var row store.CountRow
	err := s.get(ctx, "order_count", &row, orderCountQuery, day)
	return row, err
}

func (s *posStore) PaymentCount(ctx context.Context, day string) (store.CountRow, error) {
	var row store.CountRow
	err := s.get(ctx, "payment_count", &row, paymentCountQuery, day)
	return row, err
}

func (s *posStore) itemRevenue(ctx context.Context, name string, p predicate, args ...interface{}) (store.RevenueRow, error) {
	var row store.RevenueRow
	err := s.get(ctx, name, &row, itemRevenueQuery(p), append(args, s.productIDs)...)
	return row, err
}

func (s *posStore) topProducts(
	ctx context.Context,
	metric domain.RankingMetric,
	p predicate,
	args ...interface{},
) ([]store.ProductRankingRow, error) {
	query, err := topProductsQuery(metric, p)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	started := time.Now()

	rows := make([]store.ProductRankingRow, 0, RankingLimit)
	if err := s.db.SelectContext(ctx, &rows, query, append(args, s.productIDs)...); err != nil {
		return nil, fmt.Errorf("top products by %s query failed: %w", metric, err)
	}

	logger.Debug().
		Str("query", "top_products_by_"+string(metric)).
		Int("rows", len(rows)).
		Dur("took", time.Since(started)).
		Msg("query executed")
	return rows, nil
}

// get scans a single aggregate row. An empty result is not an error: the
// zero value of dest already reads as NULL aggregates.
func (s *posStore) get(ctx context.Context, name string, dest interface{}, query string, args ...interface{}) error {
	logger := zerolog.Ctx(ctx)
	started := time.Now()

	err := s.db.GetContext(ctx, dest, query, args...)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s query failed: %w", name, err)
	}

	logger.Debug().
		Str("query", name).
		Dur("took", time.Since(started)).
		Msg("query executed")
	return nil
}
