package services

import (
	"github.com/AndersonMairnck/frontFynanceo/entity"
	"github.com/AndersonMairnck/frontFynanceo/repository"

	"gorm.io/gorm"
)

type JournalService struct {
	DB   *gorm.DB
	Repo *repository.SaleJournalRepository
}

func NewJournalService(db *gorm.DB, r *repository.SaleJournalRepository) *JournalService {
	return &JournalService{DB: db, Repo: r}
}

func (s *JournalService) Record(rec *entity.SaleRecord) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Append(tx, rec)
	})
}

func (s *JournalService) Recent(sessionID string, limit int) ([]entity.SaleRecord, error) {
	return s.Repo.Recent(sessionID, limit)
}

func (s *JournalService) Totals() (map[string]repository.JournalTotals, error) {
	return s.Repo.TotalsByPayment()
}
