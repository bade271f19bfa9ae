package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"cotacao_moedas/internal/app/di"
	"cotacao_moedas/internal/app/router"
	"cotacao_moedas/internal/feature/chart/adapters/prefstore"
	"cotacao_moedas/internal/feature/chart/adapters/render"
	charthandler "cotacao_moedas/internal/feature/chart/transport/handler"
	chartusecase "cotacao_moedas/internal/feature/chart/usecase"
	"cotacao_moedas/internal/platform/config"
	httphandler "cotacao_moedas/internal/platform/http/handler"
)

func main() {
	config.LoadDotEnv()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	logger := di.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Preference store: Redis when reachable, otherwise the database
	var db *gorm.DB
	rdb := di.OpenRedis(ctx, cfg)
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	} else {
		db, err = di.OpenDatabase(cfg, &prefstore.PreferenceModel{})
		if err != nil {
			log.Fatalf("[FATAL] open database: %v", err)
		}
	}
	store := di.NewPreferenceStore(rdb, db)

	state := chartusecase.NewAppState()
	container := render.NewContainer()
	sink := di.NewChartSink(cfg, container)
	theme := chartusecase.NewThemeManager(store, sink, state)
	ctrl := chartusecase.NewQuoteChartController(di.NewQuoteClient(cfg), sink, theme, state)

	// page load: theme, default range, first chart
	out := chartusecase.Start(ctx, theme, ctrl, time.Now().In(cfg.DashboardLocation()))
	log.Printf("[INFO] initial chart: %s", out.Kind)

	dashboardH := charthandler.NewDashboardHandler(ctrl, theme, state, container)
	health := httphandler.Health(di.HealthChecks(db, rdb))
	r := router.NewDashboardRouter(dashboardH, health, logger)

	srv := &http.Server{Addr: cfg.Dashboard.Addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] dashboard listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.Println("[ERROR] shutdown:", err)
		}
	}
}
