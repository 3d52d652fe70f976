package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/dashboard"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type Handler struct {
	svc      dashboard.Service
	validate *validator.Validate
}

func NewHandler(svc dashboard.Service) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) GetCurrentYearRevenue(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetCurrentYearRevenue(r.Context())
	h.respond(w, r, "current year revenue", err, func() interface{} {
		return adapters.MapRevenueDomainToApi(summary)
	})
}

func (h *Handler) GetCurrentMonthRevenue(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetCurrentMonthRevenue(r.Context())
	h.respond(w, r, "current month revenue", err, func() interface{} {
		return adapters.MapRevenueDomainToApi(summary)
	})
}

func (h *Handler) GetCurrentWeekRevenue(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetCurrentWeekRevenue(r.Context())
	h.respond(w, r, "current week revenue", err, func() interface{} {
		return adapters.MapRevenueDomainToApi(summary)
	})
}

func (h *Handler) GetCurrentDayRevenue(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetCurrentDayRevenue(r.Context())
	h.respond(w, r, "current day revenue", err, func() interface{} {
		return adapters.MapRevenueDomainToApi(summary)
	})
}

func (h *Handler) GetLast7DaysRevenue(w http.ResponseWriter, r *http.Request) {
	days, err := h.svc.GetLast7DaysRevenue(r.Context())
	h.respond(w, r, "last 7 days revenue", err, func() interface{} {
		return adapters.MapLast7DaysDomainToApi(days)
	})
}

func (h *Handler) GetRevenueByDate(w http.ResponseWriter, r *http.Request) {
	req := api.RevenueByDateRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "start_date and end_date must be YYYYMMDD")
		return
	}

	summary, err := h.svc.GetRevenueByDate(r.Context(), req.StartDate, req.EndDate)
	h.respond(w, r, "revenue by date", err, func() interface{} {
		return adapters.MapRevenueDomainToApi(summary)
	})
}

func (h *Handler) GetCurrentYearDetailedRevenue(w http.ResponseWriter, r *http.Request) {
	months, err := h.svc.GetCurrentYearDetailedRevenue(r.Context())
	h.respond(w, r, "current year detailed revenue", err, func() interface{} {
		return adapters.MapMonthlyRevenueDomainToApi(months)
	})
}

func (h *Handler) GetCurrentYearMostSoldProductBySales(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.svc.GetCurrentYearMostSoldProductBySales(r.Context())
	h.respondRankings(w, r, "current year top products by sales", domain.RankingBySales, rankings, err)
}

func (h *Handler) GetCurrentYearMostSoldProductByQuantity(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.svc.GetCurrentYearMostSoldProductByQuantity(r.Context())
	h.respondRankings(w, r, "current year top products by quantity", domain.RankingByQuantity, rankings, err)
}

func (h *Handler) GetCurrentMonthMostSoldProductBySales(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.svc.GetCurrentMonthMostSoldProductBySales(r.Context())
	h.respondRankings(w, r, "current month top products by sales", domain.RankingBySales, rankings, err)
}

func (h *Handler) GetCurrentMonthMostSoldProductByQuantity(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.svc.GetCurrentMonthMostSoldProductByQuantity(r.Context())
	h.respondRankings(w, r, "current month top products by quantity", domain.RankingByQuantity, rankings, err)
}

func (h *Handler) GetCurrentDayQueue(w http.ResponseWriter, r *http.Request) {
	queue, err := h.svc.GetCurrentDayQueue(r.Context())
	h.respond(w, r, "current day queue", err, func() interface{} {
		return adapters.MapQueueDomainToApi(queue)
	})
}

func (h *Handler) GetCurrentDayTotalOrderVsTotalPayment(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetCurrentDayTotalOrderVsTotalPayment(r.Context())
	h.respond(w, r, "current day orders vs payments", err, func() interface{} {
		return adapters.MapOrderPaymentDomainToApi(summary)
	})
}

func (h *Handler) respondRankings(
	w http.ResponseWriter,
	r *http.Request,
	report string,
	metric domain.RankingMetric,
	rankings []domain.ProductRanking,
	err error,
) {
	h.respond(w, r, report, err, func() interface{} {
		if metric == domain.RankingByQuantity {
			return adapters.MapQuantityRankingDomainToApi(rankings)
		}
		return adapters.MapSalesRankingDomainToApi(rankings)
	})
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, report string, err error, body func() interface{}) {
	if err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("report", report).
			Msg("failed to compute report")
		writeError(w, r, http.StatusInternalServerError, "failed to compute "+report)
		return
	}
	writeJSON(w, r, http.StatusOK, body())
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, api.Error{Error: msg})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
