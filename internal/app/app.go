package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/xenking/spud-shack/internal/domain/cart"
	"github.com/xenking/spud-shack/internal/domain/loyalty"
	"github.com/xenking/spud-shack/internal/domain/order"
	"github.com/xenking/spud-shack/internal/domain/pricing"
	"github.com/xenking/spud-shack/internal/domain/promo"
	"github.com/xenking/spud-shack/internal/domain/reservation"
	"github.com/xenking/spud-shack/internal/domain/user"
	"github.com/xenking/spud-shack/internal/handler"
	"github.com/xenking/spud-shack/internal/repository"
	"github.com/xenking/spud-shack/internal/seed"
	"github.com/xenking/spud-shack/internal/storage/kv"
	"github.com/xenking/spud-shack/internal/storage/memkv"
	"github.com/xenking/spud-shack/internal/storage/postgres"
	"github.com/xenking/spud-shack/pkg/health"
	"github.com/xenking/spud-shack/pkg/httpmiddleware"
)

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr))

	healthSvc := health.New()

	// Storage: PostgreSQL when a URL is configured, in-memory otherwise.
	var store kv.Store
	if cfg.DatabaseURL != "" {
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return errors.Wrap(err, "create db pool")
		}
		defer pool.Close()

		if err := postgres.RunMigrations(ctx, pool); err != nil {
			return errors.Wrap(err, "run migrations")
		}
		healthSvc.AddReadinessCheck("postgres", 5*time.Second, func(ctx context.Context) error {
			return pool.Ping(ctx)
		})
		store = postgres.NewStore(pool)
	} else {
		lg.Info("No database URL configured, using in-memory store")
		store = memkv.New()
	}

	// Repositories.
	menuRepo := repository.NewCatalogRepository(store)
	userRepo := repository.NewUserRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	promoRepo := repository.NewPromoRepository(store)
	cartRepo := repository.NewCartRepository(store)
	reservationRepo := repository.NewReservationRepository(store)

	// Bootstrap data: menu, promo codes, and the administrator account are
	// seeded only when their collections are empty.
	adminHash := user.HashCredential([]byte(cfg.CredentialPepper), cfg.AdminPassword)
	if err := seed.Ensure(ctx, seed.Stores{
		Catalog: menuRepo,
		Promos:  promoRepo,
		Users:   userRepo,
	}, cfg.AdminEmail, adminHash); err != nil {
		return errors.Wrap(err, "seed data")
	}

	// Domain services.
	userSvc := user.NewService(userRepo, []byte(cfg.CredentialPepper), cfg.SignupBonus, cfg.AdminEmail)
	loyaltySvc := loyalty.NewService(userRepo)
	orderSvc := order.NewService(orderRepo, loyaltySvc)
	tracker := order.NewTracker(orderSvc, cfg.AdvanceInterval)
	defer tracker.Stop()
	cartSvc := cart.NewService(cartRepo)
	reservationSvc := reservation.NewService(reservationRepo)
	calc := pricing.NewCalculator(
		decimal.NewFromFloat(cfg.TaxRate),
		decimal.NewFromFloat(cfg.DeliveryFee),
	)

	promoValidator := promo.NewValidator(promoRepo)
	if err := promoValidator.Rebuild(ctx); err != nil {
		return errors.Wrap(err, "build promo filter")
	}

	// HTTP handlers.
	h := handler.New(handler.Deps{
		Menu:         menuRepo,
		Carts:        cartSvc,
		Calc:         calc,
		Promos:       promoValidator,
		PromoRepo:    promoRepo,
		Orders:       orderSvc,
		Tracker:      tracker,
		Users:        userSvc,
		Reservations: reservationSvc,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("/readyz", healthSvc.ReadyEndpoint)
	h.Register(mux)
	healthSvc.SetReady(true)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins:     cfg.CORS.Origins,
				AllowHeaders:     []string{"Content-Type", "Authorization", "X-User-ID", "X-Admin-Email"},
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           86400,
			}),
			httpmiddleware.RateLimitWithCleanup(ctx, httpmiddleware.RateLimitConfig{
				Max:    cfg.RateLimit.Max,
				Window: cfg.RateLimit.Window,
			}),
			httpmiddleware.RequestID(),
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.Instrument("spud-api",
				otelhttp.WithTracerProvider(m.TracerProvider()),
				otelhttp.WithMeterProvider(m.MeterProvider()),
			),
			httpmiddleware.LogRequests(),
		),
	}

	// Graceful shutdown: wait for context cancellation, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}
