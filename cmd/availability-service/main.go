package main

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/salonsched/salonsched/internal/availability"
	"github.com/salonsched/salonsched/internal/blocking"
	"github.com/salonsched/salonsched/internal/booking"
	"github.com/salonsched/salonsched/internal/handlers"
	"github.com/salonsched/salonsched/internal/observability/metrics"
	"github.com/salonsched/salonsched/internal/outbox"
	"github.com/salonsched/salonsched/internal/rules"
	"github.com/salonsched/salonsched/internal/storage"
	"github.com/salonsched/salonsched/libs/config"
	"github.com/salonsched/salonsched/libs/db"
	"github.com/salonsched/salonsched/libs/httpx"
	"github.com/salonsched/salonsched/libs/kafkax"
	otelx "github.com/salonsched/salonsched/libs/otel"
	"github.com/salonsched/salonsched/libs/runtime"
)

func main() {
	_ = godotenv.Load()

	service := config.String("SERVICE_NAME", "availability-service")
	port, err := config.Port("PORT", "8080")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}
	pool, err := db.Open(ctx, dbURL)
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	bookingMetrics := metrics.NewBooking(registry)

	calendarRepo := rules.NewRepository(pool)
	var rulesProvider rules.Provider = calendarRepo
	if addr := config.String("CALENDAR_GRPC_ADDR", ""); addr != "" {
		remote, err := rules.NewRemoteProvider(addr)
		if err != nil {
			logger.Error("remote calendar provider init failed; using local rules", "err", err)
		} else if remote != nil {
			rulesProvider = remote
		}
	}

	outboxRepo := outbox.NewRepository(pool)
	store := storage.NewStore(pool, outboxRepo, config.Duration("LOCK_TIMEOUT", 3*time.Second))
	resolver := blocking.NewResolver(rulesProvider)
	engine := availability.NewEngine(resolver, store)
	coordinator := booking.NewCoordinator(store, resolver, logger)

	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, bookingMetrics, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: config.Duration("OUTBOX_POLL_EVERY", 2*time.Second),
		BatchSize: config.Int("OUTBOX_BATCH_SIZE", 50),
	})
	go outboxPublisher.Run(ctx)

	slotsHandler := handlers.NewSlotsHandler(engine, calendarRepo, logger, bookingMetrics)
	bookingHandler := handlers.NewBookingHandler(coordinator, store, logger, bookingMetrics)
	calendarHandler := handlers.NewCalendarHandler(calendarRepo, logger)

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
	)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	mux.HandleFunc("/api/v1/slots", slotsHandler.List)
	mux.HandleFunc("/api/v1/bookings", bookingHandler.Create)
	mux.HandleFunc("/api/v1/appointments", bookingHandler.List)
	mux.HandleFunc("/api/v1/appointments/cancel", bookingHandler.Cancel)
	mux.HandleFunc("/api/v1/appointments/no-show", bookingHandler.NoShow)

	mux.HandleFunc("/api/v1/admin/salons", calendarHandler.CreateSalon)
	mux.HandleFunc("/api/v1/admin/staff", calendarHandler.CreateStaff)
	mux.HandleFunc("/api/v1/admin/working-hours", calendarHandler.UpsertWorkingHours)
	mux.HandleFunc("/api/v1/admin/breaks", calendarHandler.CreateBreak)
	mux.HandleFunc("/api/v1/admin/breaks/deactivate", calendarHandler.DeactivateBreak)
	mux.HandleFunc("/api/v1/admin/vacations", calendarHandler.CreateVacation)
	mux.HandleFunc("/api/v1/admin/services", servicesDispatch(calendarHandler))

	httpHandler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
		httpx.WithBodyLimit(1<<20),
		httpx.WithTimeout(15*time.Second),
		httpx.WithCORS(httpx.CORSPolicy{
			AllowedOrigins: strings.Split(config.String("CORS_ALLOWED_ORIGINS", ""), ","),
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
			AllowedHeaders: []string{"Content-Type", httpx.RequestIDHeader},
			MaxAge:         10 * time.Minute,
		}),
		rateLimitMiddleware(logger),
	)
	httpHandler = otelhttp.NewHandler(httpHandler, service)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}

// rateLimitMiddleware prefers the shared Redis limiter so limits hold across
// replicas; without REDIS_ADDR it falls back to the per-process one.
func rateLimitMiddleware(logger *slog.Logger) httpx.Middleware {
	limit := config.Int("RATE_LIMIT", 120)
	window := config.Duration("RATE_LIMIT_WINDOW", time.Minute)

	if addr := config.String("REDIS_ADDR", ""); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		return httpx.NewRedisRateLimiter(rdb, limit, window, "availability").Middleware(logger, true)
	}
	return httpx.NewRateLimiter(limit, window).Middleware()
}

func servicesDispatch(h *handlers.CalendarHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.ListServices(w, r)
			return
		}
		h.CreateService(w, r)
	}
}
