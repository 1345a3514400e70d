package repository

import (
	"github.com/AndersonMairnck/frontFynanceo/entity"

	"gorm.io/gorm"
)

type SaleJournalRepository struct {
	DB *gorm.DB
}

func NewSaleJournalRepository(db *gorm.DB) *SaleJournalRepository {
	return &SaleJournalRepository{DB: db}
}

func (r *SaleJournalRepository) Append(tx *gorm.DB, rec *entity.SaleRecord) error {
	return tx.Create(rec).Error
}

// Recent returns the newest records first, optionally only those of one
// PDV session.
func (r *SaleJournalRepository) Recent(sessionID string, limit int) ([]entity.SaleRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	q := r.DB.Model(&entity.SaleRecord{})
	if sessionID != "" {
		q = q.Where("session_id = ?", sessionID)
	}
	var out []entity.SaleRecord
	err := q.Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

type JournalTotals struct {
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

// TotalsByPayment sums submitted sales per payment method.
func (r *SaleJournalRepository) TotalsByPayment() (map[string]JournalTotals, error) {
	var rows []struct {
		PaymentMethod string
		Count         int64
		Total         float64
	}
	err := r.DB.Model(&entity.SaleRecord{}).
		Select("payment_method, COUNT(*) AS count, COALESCE(SUM(total), 0) AS total").
		Group("payment_method").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]JournalTotals, len(rows))
	for _, r := range rows {
		out[r.PaymentMethod] = JournalTotals{Count: r.Count, Total: r.Total}
	}
	return out, nil
}
