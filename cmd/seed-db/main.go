package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-faster/errors"

	"github.com/xenking/spud-shack/internal/domain/user"
	"github.com/xenking/spud-shack/internal/repository"
	"github.com/xenking/spud-shack/internal/seed"
	"github.com/xenking/spud-shack/internal/storage/postgres"
)

func main() {
	var (
		databaseURL   string
		adminEmail    string
		adminPassword string
		pepper        string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&adminEmail, "admin-email", "admin@potato.com", "email of the back-office administrator account")
	flag.StringVar(&adminPassword, "admin-password", "", "bootstrap administrator password (or SPUD_ADMIN_PASSWORD env)")
	flag.StringVar(&pepper, "credential-pepper", "", "HMAC pepper for credential hashing (or SPUD_CREDENTIAL_PEPPER env)")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}
	if adminPassword == "" {
		adminPassword = os.Getenv("SPUD_ADMIN_PASSWORD")
	}
	if adminPassword == "" {
		slog.Error("admin password is required: set --admin-password or SPUD_ADMIN_PASSWORD")
		os.Exit(1)
	}
	if pepper == "" {
		pepper = os.Getenv("SPUD_CREDENTIAL_PEPPER")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, adminEmail, adminPassword, pepper); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL, adminEmail, adminPassword, pepper string) error {
	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	store := postgres.NewStore(pool)
	st := seed.Stores{
		Catalog: repository.NewCatalogRepository(store),
		Promos:  repository.NewPromoRepository(store),
		Users:   repository.NewUserRepository(store),
	}

	adminHash := user.HashCredential([]byte(pepper), adminPassword)
	if err := seed.Ensure(ctx, st, adminEmail, adminHash); err != nil {
		return errors.Wrap(err, "seed collections")
	}

	slog.Info("seeded collections",
		slog.Int("menu_items", len(seed.Menu())),
		slog.Int("promo_codes", len(seed.Promos())),
		slog.String("admin_email", adminEmail),
	)

	return nil
}
