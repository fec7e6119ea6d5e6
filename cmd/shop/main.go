package main

import (
	"database/sql"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"

	"SkiShop/internal/auth"
	"SkiShop/internal/cart"
	"SkiShop/internal/catalog"
	"SkiShop/internal/web"
	"SkiShop/pkg/kit"
)

const sessionTTL = 24 * time.Hour

func main() {
	service := "shop"
	log := kit.NewLogger(service, getenv("LOG_LEVEL", "info"))
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")
	sessionSecret := getenv("SESSION_SECRET", "dev-secret")

	cat, err := catalog.Load()
	if err != nil {
		log.Fatal("load catalog failed", zap.Error(err))
	}
	log.Info("catalog loaded", zap.Int("products", len(cat.All())))

	users, carts := buildStores(log)

	srv, err := web.NewServer(web.Deps{
		Log:      log,
		Catalog:  cat,
		Cart:     carts,
		Users:    users,
		Sessions: auth.NewSessions(sessionSecret, sessionTTL),
	})
	if err != nil {
		log.Fatal("init server failed", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	h := web.NewHandler(srv, web.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: os.Getenv("METRICS_ENABLED") == "1",
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

// buildStores picks Postgres-backed user/cart stores when DATABASE_URL is
// set, in-memory stores otherwise.
func buildStores(log *zap.Logger) (auth.Store, cart.Store) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Info("using in-memory stores")
		return auth.NewMemStore(), cart.NewMemStore()
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatal("open database failed", zap.Error(err))
	}

	log.Info("using postgres stores")
	return auth.NewPostgresStore(db), cart.NewPostgresStore(db)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
