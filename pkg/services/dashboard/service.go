package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/window"
	"github.com/de-tools/sales-atlas/pkg/store/pos"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const defaultMaxParallelQueries = 4

// Service exposes one operation per dashboard report.
type Service interface {
	GetCurrentYearRevenue(ctx context.Context) (domain.RevenueSummary, error)
	GetCurrentMonthRevenue(ctx context.Context) (domain.RevenueSummary, error)
	GetCurrentWeekRevenue(ctx context.Context) (domain.RevenueSummary, error)
	GetCurrentDayRevenue(ctx context.Context) (domain.RevenueSummary, error)
	GetLast7DaysRevenue(ctx context.Context) (domain.Last7DaysRevenue, error)
	GetRevenueByDate(ctx context.Context, startDate, endDate string) (domain.RevenueSummary, error)
	GetCurrentYearDetailedRevenue(ctx context.Context) ([]domain.MonthlyRevenue, error)
	GetCurrentYearMostSoldProductBySales(ctx context.Context) ([]domain.ProductRanking, error)
	GetCurrentYearMostSoldProductByQuantity(ctx context.Context) ([]domain.ProductRanking, error)
	GetCurrentMonthMostSoldProductBySales(ctx context.Context) ([]domain.ProductRanking, error)
	GetCurrentMonthMostSoldProductByQuantity(ctx context.Context) ([]domain.ProductRanking, error)
	GetCurrentDayQueue(ctx context.Context) (domain.QueueSummary, error)
	GetCurrentDayTotalOrderVsTotalPayment(ctx context.Context) (domain.OrderPaymentSummary, error)
}

type Options struct {
	// Windows, when set, is used as is and Clock and Location are ignored.
	Windows  *window.Calculator
	Clock    window.Clock
	Location *time.Location
	// MaxParallelQueries bounds the sub-queries a composite report runs at once.
	MaxParallelQueries int
}

type service struct {
	store       pos.Store
	windows     *window.Calculator
	parallelism int
}

func NewService(store pos.Store, opts Options) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("pos store is nil")
	}
	parallelism := opts.MaxParallelQueries
	if parallelism <= 0 {
		parallelism = defaultMaxParallelQueries
	}
	windows := opts.Windows
	if windows == nil {
		windows = window.NewCalculator(opts.Clock, opts.Location)
	}
	return &service{
		store:       store,
		windows:     windows,
		parallelism: parallelism,
	}, nil
}

func (s *service) GetCurrentYearRevenue(ctx context.Context) (domain.RevenueSummary, error) {
	row, err := s.store.RevenueByYear(ctx, s.windows.CurrentYear())
	if err != nil {
		return domain.RevenueSummary{}, err
	}
	return adapters.MapStoreRevenueToDomain(row), nil
}

func (s *service) GetCurrentMonthRevenue(ctx context.Context) (domain.RevenueSummary, error) {
	return s.revenueByRange(ctx, s.windows.CurrentMonth())
}

func (s *service) GetCurrentWeekRevenue(ctx context.Context) (domain.RevenueSummary, error) {
	return s.revenueByRange(ctx, s.windows.CurrentWeek())
}

func (s *service) GetCurrentDayRevenue(ctx context.Context) (domain.RevenueSummary, error) {
	return s.revenueByDay(ctx, s.windows.Today())
}

func (s *service) GetLast7DaysRevenue(ctx context.Context) (domain.Last7DaysRevenue, error) {
	var res domain.Last7DaysRevenue
	days := s.windows.Last7Days()

	g, gctx := s.group(ctx)
	for i, day := range days {
		i, day := i, day
		g.Go(func() error {
			summary, err := s.revenueByDay(gctx, day)
			if err != nil {
				return fmt.Errorf("revenue for %s: %w", day, err)
			}
			res.Days[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Last7DaysRevenue{}, err
	}
	return res, nil
}

func (s *service) GetRevenueByDate(ctx context.Context, startDate, endDate string) (domain.RevenueSummary, error) {
	return s.revenueByRange(ctx, s.windows.Custom(startDate, endDate))
}

// GetCurrentYearDetailedRevenue returns Jan..Dec of the current year. July is
// read from the payment ledger, every other month from line items.
func (s *service) GetCurrentYearDetailedRevenue(ctx context.Context) ([]domain.MonthlyRevenue, error) {
	months := s.windows.YearMonths()
	res := make([]domain.MonthlyRevenue, len(months))

	g, gctx := s.group(ctx)
	for i, m := range months {
		i, m := i, m
		g.Go(func() error {
			summary, err := s.monthRevenue(gctx, m)
			if err != nil {
				return fmt.Errorf("revenue for %s: %w", m.Label, err)
			}
			res[i] = domain.MonthlyRevenue{Month: m.Label, RevenueSummary: summary}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) GetCurrentYearMostSoldProductBySales(ctx context.Context) ([]domain.ProductRanking, error) {
	return s.topProductsByYear(ctx, domain.RankingBySales)
}

func (s *service) GetCurrentYearMostSoldProductByQuantity(ctx context.Context) ([]domain.ProductRanking, error) {
	return s.topProductsByYear(ctx, domain.RankingByQuantity)
}

func (s *service) GetCurrentMonthMostSoldProductBySales(ctx context.Context) ([]domain.ProductRanking, error) {
	return s.topProductsByMonth(ctx, domain.RankingBySales)
}

func (s *service) GetCurrentMonthMostSoldProductByQuantity(ctx context.Context) ([]domain.ProductRanking, error) {
	return s.topProductsByMonth(ctx, domain.RankingByQuantity)
}

func (s *service) GetCurrentDayQueue(ctx context.Context) (domain.QueueSummary, error) {
	row, err := s.store.QueueCount(ctx, s.windows.Today())
	if err != nil {
		return domain.QueueSummary{}, err
	}
	return domain.QueueSummary{TotalQueue: adapters.MapStoreCountToDomain(row)}, nil
}

func (s *service) GetCurrentDayTotalOrderVsTotalPayment(ctx context.Context) (domain.OrderPaymentSummary, error) {
	var res domain.OrderPaymentSummary
	today := s.windows.Today()

	g, gctx := s.group(ctx)
	g.Go(func() error {
		row, err := s.store.OrderCount(gctx, today)
		if err != nil {
			return err
		}
		res.TotalOrder = adapters.MapStoreCountToDomain(row)
		return nil
	})
	g.Go(func() error {
		row, err := s.store.PaymentCount(gctx, today)
		if err != nil {
			return err
		}
		res.TotalPayment = adapters.MapStoreCountToDomain(row)
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.OrderPaymentSummary{}, err
	}
	return res, nil
}

func (s *service) monthRevenue(ctx context.Context, m window.MonthWindow) (domain.RevenueSummary, error) {
	if m.Month != time.July {
		return s.revenueByRange(ctx, m.Window)
	}

	zerolog.Ctx(ctx).Debug().
		Str("month", m.Label).
		Msg("reading month revenue from payment ledger")
	row, err := s.store.PaymentLedgerRevenue(ctx, m.Window)
	if err != nil {
		return domain.RevenueSummary{}, err
	}
	return adapters.MapStoreRevenueToDomain(row), nil
}

func (s *service) revenueByRange(ctx context.Context, w domain.DateWindow) (domain.RevenueSummary, error) {
	row, err := s.store.RevenueByRange(ctx, w)
	if err != nil {
		return domain.RevenueSummary{}, err
	}
	return adapters.MapStoreRevenueToDomain(row), nil
}

func (s *service) revenueByDay(ctx context.Context, day string) (domain.RevenueSummary, error) {
	row, err := s.store.RevenueByDay(ctx, day)
	if err != nil {
		return domain.RevenueSummary{}, err
	}
	return adapters.MapStoreRevenueToDomain(row), nil
}

func (s *service) topProductsByYear(ctx context.Context, metric domain.RankingMetric) ([]domain.ProductRanking, error) {
	rows, err := s.store.TopProductsByYear(ctx, metric, s.windows.CurrentYear())
	if err != nil {
		return nil, err
	}
	return adapters.MapStoreRankingsToDomain(rows, metric), nil
}

func (s *service) topProductsByMonth(ctx context.Context, metric domain.RankingMetric) ([]domain.ProductRanking, error) {
	rows, err := s.store.TopProductsByRange(ctx, metric, s.windows.CurrentMonth())
	if err != nil {
		return nil, err
	}
	return adapters.MapStoreRankingsToDomain(rows, metric), nil
}

func (s *service) group(ctx context.Context) (*errgroup.Group, context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	return g, gctx
}
