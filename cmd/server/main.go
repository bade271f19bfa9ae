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

	"cotacao_moedas/internal/app/di"
	"cotacao_moedas/internal/app/router"
	quoteadapters "cotacao_moedas/internal/feature/quotes/adapters"
	quotehandler "cotacao_moedas/internal/feature/quotes/transport/handler"
	quoteusecase "cotacao_moedas/internal/feature/quotes/usecase"
	"cotacao_moedas/internal/platform/config"
	httphandler "cotacao_moedas/internal/platform/http/handler"
)

func main() {
	// .envを読み込む
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

	// db
	db, err := di.OpenDatabase(cfg, &quoteadapters.QuoteModel{})
	if err != nil {
		log.Fatalf("[FATAL] open database: %v", err)
	}

	// Redis（無くても動作する）
	rdb := di.OpenRedis(ctx, cfg)
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository（Redisキャッシュでラップ）
	quoteRepo := di.NewQuoteRepository(cfg, db, rdb)

	// Usecase
	quotesUC := quoteusecase.NewQuotesUsecase(di.NewVatComply(cfg), quoteRepo, di.NewRateLimiter(cfg), cfg.Quotes.MaxPeriodDays)

	// Handler
	quotesH := quotehandler.NewQuoteHandler(quotesUC)
	health := httphandler.Health(di.HealthChecks(db, rdb))

	// ルータ生成
	r := router.NewAPIRouter(quotesH, health, cfg.Server.AllowOrigins, logger)

	serve(ctx, &http.Server{Addr: cfg.Server.Addr, Handler: r, ReadHeaderTimeout: 10 * time.Second})
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server) {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("[INFO] shutdown signal received, stopping...")
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.Println("[ERROR] shutdown:", err)
		}
	}
}
