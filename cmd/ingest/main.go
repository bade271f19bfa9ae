package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cotacao_moedas/internal/app/di"
	quoteadapters "cotacao_moedas/internal/feature/quotes/adapters"
	"cotacao_moedas/internal/feature/quotes/usecase"
	"cotacao_moedas/internal/platform/config"
	"cotacao_moedas/internal/platform/scheduler"
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
	di.NewLogger(cfg)

	db, err := di.OpenDatabase(cfg, &quoteadapters.QuoteModel{})
	if err != nil {
		log.Fatalf("[FATAL] open database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 書き込み時にキャッシュを無効化するため、Redisがあればキャッシュ経由で保存する
	rdb := di.OpenRedis(ctx, cfg)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}
	uc := usecase.NewIngestUsecase(di.NewVatComply(cfg), di.NewQuoteRepository(cfg, db, rdb), di.NewRateLimiter(cfg))

	run := func(ctx context.Context) error {
		rctx, cancel := context.WithTimeout(ctx, cfg.Ingest.Timeout)
		defer cancel()
		_, err := uc.IngestRecent(rctx, time.Now().In(cfg.CacheLocation()), cfg.Ingest.Days)
		return err
	}

	if cfg.Ingest.Cron == "" {
		if err := run(ctx); err != nil {
			log.Fatal(err)
		}
		log.Println("ingest ok")
		return
	}

	sched := scheduler.New(ctx)
	if err := sched.Register("ingest", cfg.Ingest.Cron, run); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	sched.Start()
	log.Printf("[INFO] ingest scheduled with %q. Press Ctrl+C to stop.", cfg.Ingest.Cron)

	<-ctx.Done()
	sched.Stop()
}
