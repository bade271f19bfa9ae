// Package handler はquotesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cotacao_moedas/internal/feature/quotes/domain/entity"
	"cotacao_moedas/internal/feature/quotes/transport/http/dto"
	"cotacao_moedas/internal/feature/quotes/usecase"
)

const (
	msgNoLiveData   = "Nenhum dado de cotação encontrado da API externa para o período."
	msgNoStoredData = "Nenhum dado de cotação encontrado no banco de dados para o período especificado."
	msgInternal     = "Erro interno ao buscar cotações."
)

// QuotesUsecase はクォート取得のユースケースインターフェースです。
// インターフェースは利用者（handler）側で定義します。
type QuotesUsecase interface {
	GetLive(ctx context.Context, startDate, endDate string) ([]entity.Quote, error)
	GetStored(ctx context.Context, startDate, endDate string) ([]entity.Quote, error)
}

// QuoteHandler はクォートAPIのHTTPリクエストを処理します。
type QuoteHandler struct {
	uc QuotesUsecase
}

// NewQuoteHandler は指定されたusecaseでQuoteHandlerを生成します。
func NewQuoteHandler(uc QuotesUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetLive は外部APIから取得した期間内のクォートを返します。
//
// エンドポイント例:
// GET /api/cotacoes/?start_date=2024-01-08&end_date=2024-01-12
func (h *QuoteHandler) GetLive(c *gin.Context) {
	qs, err := h.uc.GetLive(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	h.respond(c, qs, err, msgNoLiveData)
}

// GetStored はデータベースに保存されたクォートを返します。期間省略時は直近30件です。
//
// エンドポイント例:
// GET /api/cotacoes/db/?start_date=2024-01-01&end_date=2024-01-31
func (h *QuoteHandler) GetStored(c *gin.Context) {
	qs, err := h.uc.GetStored(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	h.respond(c, qs, err, msgNoStoredData)
}

func (h *QuoteHandler) respond(c *gin.Context, qs []entity.Quote, err error, emptyMsg string) {
	if err != nil {
		if isValidation(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("failed to get quotes", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgInternal})
		return
	}
	if len(qs) == 0 {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: emptyMsg})
		return
	}
	c.JSON(http.StatusOK, toSeries(qs))
}

func isValidation(err error) bool {
	return errors.Is(err, usecase.ErrMissingDates) ||
		errors.Is(err, usecase.ErrInvalidDate) ||
		errors.Is(err, usecase.ErrStartAfterEnd) ||
		errors.Is(err, usecase.ErrPeriodTooLong)
}

// toSeries は日付ごとのクォートを通貨ごとの系列に並べ替えます。
func toSeries(qs []entity.Quote) dto.QuoteSeriesResponse {
	out := dto.QuoteSeriesResponse{
		Dates: make([]string, 0, len(qs)),
		BRL:   make([]*float64, 0, len(qs)),
		EUR:   make([]*float64, 0, len(qs)),
		JPY:   make([]*float64, 0, len(qs)),
	}
	for _, q := range qs {
		out.Dates = append(out.Dates, q.Date.Format(usecase.DateLayout))
		out.BRL = append(out.BRL, q.Rate("BRL"))
		out.EUR = append(out.EUR, q.Rate("EUR"))
		out.JPY = append(out.JPY, q.Rate("JPY"))
	}
	return out
}
