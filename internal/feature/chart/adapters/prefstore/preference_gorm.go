package prefstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cotacao_moedas/internal/feature/chart/usecase"
)

// PreferenceModel is one key/value row of the preferences table.
type PreferenceModel struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"size:255;not null"`
	UpdatedAt time.Time
}

func (PreferenceModel) TableName() string { return "preferencias" }

// PreferenceGorm is the database-backed store used when Redis is unavailable.
type PreferenceGorm struct {
	db *gorm.DB
}

var _ usecase.PreferenceStore = (*PreferenceGorm)(nil)

func NewPreferenceGorm(db *gorm.DB) *PreferenceGorm {
	return &PreferenceGorm{db: db}
}

func (r *PreferenceGorm) Get(ctx context.Context, key string) (string, error) {
	var m PreferenceModel
	err := r.db.WithContext(ctx).Where("key = ?", key).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", usecase.ErrPreferenceNotFound
		}
		return "", fmt.Errorf("select preference %s: %w", key, err)
	}
	return m.Value, nil
}

// Set upserts the row for key.
func (r *PreferenceGorm) Set(ctx context.Context, key, value string) error {
	m := PreferenceModel{Key: key, Value: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return fmt.Errorf("upsert preference %s: %w", key, err)
	}
	return nil
}
