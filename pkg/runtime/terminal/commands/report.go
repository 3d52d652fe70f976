package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/runtime/app"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

const (
	scopeYear  = "year"
	scopeMonth = "month"
)

// Kinds lists the reports the report command can print, in help order.
var Kinds = []string{
	"year",
	"month",
	"week",
	"day",
	"last-7-days",
	"detailed-year",
	"by-date",
	"top-products",
	"queue",
	"orders-vs-payments",
}

type Reporter interface {
	Handle(report *domain.Report) error
}

// Opener builds the application from a settings file.
type Opener func(ctx context.Context, configPath string) (*app.App, error)

type ReportCmd struct {
	configPath string
	format     string
	start      string
	end        string
	scope      string
	by         string
	timeout    time.Duration
	open       Opener
	reporters  map[string]Reporter
	validate   *validator.Validate
}

func NewReportCmd(open Opener, reporters map[string]Reporter) *cobra.Command {
	rc := &ReportCmd{
		open:      open,
		reporters: reporters,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
	cmd := &cobra.Command{
		Use:       "report <kind>",
		Short:     "Print a dashboard report",
		Long:      "Print a dashboard report. Supported kinds: " + strings.Join(Kinds, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: Kinds,
		RunE:      rc.run,
	}

	cmd.Flags().StringVarP(&rc.configPath, "config", "c", "dashboard.yaml", "Path to the settings file")
	cmd.Flags().StringVar(&rc.format, "format", "table", "Output format (table or text)")
	cmd.Flags().StringVar(&rc.start, "start", "", "Range start as YYYYMMDD (by-date)")
	cmd.Flags().StringVar(&rc.end, "end", "", "Range end as YYYYMMDD (by-date)")
	cmd.Flags().StringVar(&rc.scope, "scope", scopeYear, "Ranking scope: year or month (top-products)")
	cmd.Flags().StringVar(&rc.by, "by", string(domain.RankingBySales), "Ranking metric: sales or quantity (top-products)")
	cmd.Flags().DurationVar(&rc.timeout, "timeout", 60*time.Second, "Time limit for the report queries")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	kind := args[0]
	if !slices.Contains(Kinds, kind) {
		return fmt.Errorf("unsupported report %q. Supported kinds: %v", kind, Kinds)
	}

	reporter, ok := rc.reporters[rc.format]
	if !ok {
		return fmt.Errorf("unsupported format %q", rc.format)
	}

	if err := rc.validateFlags(kind); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), rc.timeout)
	defer cancel()

	a, err := rc.open(ctx, rc.configPath)
	if err != nil {
		return fmt.Errorf("failed to open dashboard: %w", err)
	}
	defer a.Close()

	report, err := rc.build(ctx, kind, a)
	if err != nil {
		return fmt.Errorf("failed to compute %s report: %w", kind, err)
	}

	return reporter.Handle(report)
}

func (rc *ReportCmd) validateFlags(kind string) error {
	switch kind {
	case "by-date":
		req := api.RevenueByDateRequest{StartDate: rc.start, EndDate: rc.end}
		if err := rc.validate.Struct(req); err != nil {
			return fmt.Errorf("--start and --end must be YYYYMMDD")
		}
	case "top-products":
		if rc.scope != scopeYear && rc.scope != scopeMonth {
			return fmt.Errorf("unsupported scope %q, expected year or month", rc.scope)
		}
		metric := domain.RankingMetric(rc.by)
		if metric != domain.RankingBySales && metric != domain.RankingByQuantity {
			return fmt.Errorf("unsupported ranking %q, expected sales or quantity", rc.by)
		}
	}
	return nil
}

func (rc *ReportCmd) build(ctx context.Context, kind string, a *app.App) (*domain.Report, error) {
	svc, w := a.Service, a.Windows

	switch kind {
	case "year":
		s, err := svc.GetCurrentYearRevenue(ctx)
		if err != nil {
			return nil, err
		}
		year := w.CurrentYear()
		return adapters.MapRevenueToReport("Current Year Revenue",
			domain.DateWindow{Start: year + "0101", End: year + "1231"}, s), nil
	case "month":
		s, err := svc.GetCurrentMonthRevenue(ctx)
		if err != nil {
			return nil, err
		}
		return adapters.MapRevenueToReport("Current Month Revenue", w.CurrentMonth(), s), nil
	case "week":
		s, err := svc.GetCurrentWeekRevenue(ctx)
		if err != nil {
			return nil, err
		}
		return adapters.MapRevenueToReport("Current Week Revenue", w.CurrentWeek(), s), nil
	case "day":
		s, err := svc.GetCurrentDayRevenue(ctx)
		if err != nil {
			return nil, err
		}
		today := w.Today()
		return adapters.MapRevenueToReport("Today's Revenue", domain.DateWindow{Start: today, End: today}, s), nil
	case "last-7-days":
		r, err := svc.GetLast7DaysRevenue(ctx)
		if err != nil {
			return nil, err
		}
		return adapters.MapLast7DaysToReport(w.Last7Days(), r), nil
	case "detailed-year":
		months, err := svc.GetCurrentYearDetailedRevenue(ctx)
		if err != nil {
			return nil, err
		}
		return adapters.MapMonthlyRevenueToReport(w.CurrentYear(), months), nil
	case "by-date":
		s, err := svc.GetRevenueByDate(ctx, rc.start, rc.end)
		if err != nil {
			return nil, err
		}
		return adapters.MapRevenueToReport("Revenue by Date", w.Custom(rc.start, rc.end), s), nil
	case "top-products":
		return rc.topProducts(ctx, a)
	case "queue":
		q, err := svc.GetCurrentDayQueue(ctx)
		if err != nil {
			return nil, err
		}
		return adapters.MapQueueToReport(w.Today(), q), nil
	case "orders-vs-payments":
		s, err := svc.GetCurrentDayTotalOrderVsTotalPayment(ctx)
		if err != nil {
			return nil, err
		}
		return adapters.MapOrderPaymentToReport(w.Today(), s), nil
	}
	return nil, fmt.Errorf("unsupported report %q", kind)
}

func (rc *ReportCmd) topProducts(ctx context.Context, a *app.App) (*domain.Report, error) {
	svc, w := a.Service, a.Windows
	metric := domain.RankingMetric(rc.by)

	var (
		rankings []domain.ProductRanking
		period   domain.DateWindow
		err      error
	)
	switch {
	case rc.scope == scopeMonth && metric == domain.RankingByQuantity:
		rankings, err = svc.GetCurrentMonthMostSoldProductByQuantity(ctx)
		period = w.CurrentMonth()
	case rc.scope == scopeMonth:
		rankings, err = svc.GetCurrentMonthMostSoldProductBySales(ctx)
		period = w.CurrentMonth()
	case metric == domain.RankingByQuantity:
		rankings, err = svc.GetCurrentYearMostSoldProductByQuantity(ctx)
	default:
		rankings, err = svc.GetCurrentYearMostSoldProductBySales(ctx)
	}
	if err != nil {
		return nil, err
	}
	if rc.scope == scopeYear {
		year := w.CurrentYear()
		period = domain.DateWindow{Start: year + "0101", End: year + "1231"}
	}

	title := "Most Sold Products This Year"
	if rc.scope == scopeMonth {
		title = "Most Sold Products This Month"
	}
	return adapters.MapRankingsToReport(title, period, metric, rankings), nil
}
