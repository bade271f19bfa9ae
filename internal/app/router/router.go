package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	charthandler "cotacao_moedas/internal/feature/chart/transport/handler"
	quotehandler "cotacao_moedas/internal/feature/quotes/transport/handler"
	"cotacao_moedas/internal/platform/middleware"
)

// NewAPIRouter はクォートAPIのルーターを生成します。
// allowOrigins が空の場合はすべてのオリジンを許可します。
func NewAPIRouter(quotes *quotehandler.QuoteHandler, health gin.HandlerFunc, allowOrigins []string, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(logger))

	// ダッシュボードは別オリジンから呼び出すためCORSを有効化
	cc := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeaderKey},
		ExposeHeaders: []string{middleware.RequestIDHeaderKey},
		MaxAge:        12 * time.Hour,
	}
	if len(allowOrigins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = allowOrigins
	}
	r.Use(cors.New(cc))

	// 導通確認用
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)

	api := r.Group("/api/cotacoes")
	{
		// 外部APIから取得（取得結果はDBに保存）
		api.GET("/", quotes.GetLive)
		// DBに保存済みのデータ
		api.GET("/db/", quotes.GetStored)
	}
	return r
}

// NewDashboardRouter はダッシュボード画面のルーターを生成します。
func NewDashboardRouter(dashboard *charthandler.DashboardHandler, health gin.HandlerFunc, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(logger))
	r.SetHTMLTemplate(charthandler.Template())

	r.GET("/healthz", health)
	r.HEAD("/healthz", health)

	r.GET("/", dashboard.Page)
	r.POST("/fetch", dashboard.Fetch)
	r.POST("/theme", dashboard.Theme)
	r.GET("/chart", dashboard.Chart)
	r.GET("/api/state", dashboard.State)
	return r
}
