package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/sales-atlas/pkg/handlers/dashboard"
	"github.com/de-tools/sales-atlas/pkg/services/dashboard"

	salesatlasmiddleware "github.com/de-tools/sales-atlas/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          http.Handler
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Dashboard dashboard.Service
	Logger    zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	// AllowedOrigins lists the browser origins allowed to read the API. Empty allows any.
	AllowedOrigins []string
	Dependencies   Dependencies
}

func ConfigureRouter(config Config) http.Handler {
	h := handlers.NewHandler(config.Dependencies.Dashboard)
	logger := config.Dependencies.Logger

	allowedOrigins := config.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodHead, http.MethodGet, http.MethodOptions},
		MaxAge:         300,
	}))
	router.Use(middleware.RequestID)
	router.Use(salesatlasmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1/dashboard", func(r chi.Router) {
		r.Route("/revenue", func(r chi.Router) {
			r.Get("/year", h.GetCurrentYearRevenue)
			r.Get("/month", h.GetCurrentMonthRevenue)
			r.Get("/week", h.GetCurrentWeekRevenue)
			r.Get("/day", h.GetCurrentDayRevenue)
			r.Get("/last-7-days", h.GetLast7DaysRevenue)
			r.Get("/detailed-year", h.GetCurrentYearDetailedRevenue)
			r.Get("/by-date", h.GetRevenueByDate)
		})
		r.Route("/products", func(r chi.Router) {
			r.Get("/year/by-sales", h.GetCurrentYearMostSoldProductBySales)
			r.Get("/year/by-quantity", h.GetCurrentYearMostSoldProductByQuantity)
			r.Get("/month/by-sales", h.GetCurrentMonthMostSoldProductBySales)
			r.Get("/month/by-quantity", h.GetCurrentMonthMostSoldProductByQuantity)
		})
		r.Get("/queue/day", h.GetCurrentDayQueue)
		r.Get("/orders-vs-payments/day", h.GetCurrentDayTotalOrderVsTotalPayment)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: shutdownTimeout,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
