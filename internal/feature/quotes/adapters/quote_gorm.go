package adapters

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cotacao_moedas/internal/feature/quotes/domain/entity"
	"cotacao_moedas/internal/feature/quotes/usecase"
)

// quoteScale is the number of decimal places stored per rate.
const quoteScale = 4

type quoteGorm struct {
	db *gorm.DB
}

var _ usecase.QuoteRepository = (*quoteGorm)(nil)

func NewQuoteRepository(db *gorm.DB) *quoteGorm {
	return &quoteGorm{db: db}
}

// QuoteModel is one row of the cotacoes table.
type QuoteModel struct {
	ID           uint                `gorm:"primaryKey"`
	Date         time.Time           `gorm:"column:data;type:date;not null;uniqueIndex"`
	ValorBRL     decimal.NullDecimal `gorm:"column:valor_brl;type:numeric(10,4)"`
	ValorEUR     decimal.NullDecimal `gorm:"column:valor_eur;type:numeric(10,4)"`
	ValorJPY     decimal.NullDecimal `gorm:"column:valor_jpy;type:numeric(10,4)"`
	DataRegistro time.Time           `gorm:"column:data_registro;autoCreateTime"`
	UpdatedAt    time.Time
}

func (QuoteModel) TableName() string {
	return "cotacoes"
}

func toNullDecimal(v *float64) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(*v).Round(quoteScale))
}

func toModel(q entity.Quote) QuoteModel {
	return QuoteModel{
		Date:     dateOnly(q.Date),
		ValorBRL: toNullDecimal(q.Rate("BRL")),
		ValorEUR: toNullDecimal(q.Rate("EUR")),
		ValorJPY: toNullDecimal(q.Rate("JPY")),
	}
}

func toEntity(m QuoteModel) entity.Quote {
	rates := make(map[string]float64, len(entity.TargetCurrencies))
	for code, v := range map[string]decimal.NullDecimal{"BRL": m.ValorBRL, "EUR": m.ValorEUR, "JPY": m.ValorJPY} {
		if v.Valid {
			rates[code] = v.Decimal.InexactFloat64()
		}
	}
	return entity.Quote{Date: dateOnly(m.Date), Rates: rates, RecordedAt: m.DataRegistro}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// UpsertBatch inserts quotes, overwriting the rates of days already stored.
func (r *quoteGorm) UpsertBatch(ctx context.Context, quotes []entity.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	ms := make([]QuoteModel, 0, len(quotes))
	for _, q := range quotes {
		ms = append(ms, toModel(q))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "data"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor_brl", "valor_eur", "valor_jpy", "updated_at"}),
	}).Create(&ms).Error
}

func (r *quoteGorm) FindRange(ctx context.Context, start, end time.Time) ([]entity.Quote, error) {
	var rows []QuoteModel
	err := r.db.WithContext(ctx).
		Where("data BETWEEN ? AND ?", dateOnly(start), dateOnly(end)).
		Order("data ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *quoteGorm) FindLatest(ctx context.Context, limit int) ([]entity.Quote, error) {
	var rows []QuoteModel
	q := r.db.WithContext(ctx).Order("data DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func toEntities(rows []QuoteModel) []entity.Quote {
	out := make([]entity.Quote, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out
}
