package fraudcase

import (
	"fmt"
	"strings"
	"time"

	"github.com/HackerKing5128/voicecart/internal/domains/fraudcase"
	"gorm.io/gorm"
)

// GormCaseRepo implements fraudcase.Repository backed by GORM.
type GormCaseRepo struct {
	db *gorm.DB
}

// NewGormCaseRepo creates a new GORM-backed fraud case repository
func NewGormCaseRepo(db *gorm.DB) *GormCaseRepo {
	return &GormCaseRepo{db: db}
}

// GetPendingByUser finds the open case for a cardholder, matching the
// name case-insensitively.
func (r *GormCaseRepo) GetPendingByUser(userName string) (*fraudcase.Case, error) {
	var entity CaseEntity

	err := r.db.
		Where("LOWER(user_name) = ? AND status = ?", strings.ToLower(userName), string(fraudcase.StatusPendingReview)).
		First(&entity).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fraudcase.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to look up fraud case: %w", err)
	}

	return entity.ToDomain(), nil
}

// GetByID fetches a case by primary key.
func (r *GormCaseRepo) GetByID(caseID uint) (*fraudcase.Case, error) {
	var entity CaseEntity

	err := r.db.First(&entity, caseID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fraudcase.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to get fraud case: %w", err)
	}

	return entity.ToDomain(), nil
}

// ListAll returns every case, oldest first.
func (r *GormCaseRepo) ListAll() ([]fraudcase.Case, error) {
	var entities []CaseEntity

	if err := r.db.Order("id ASC").Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list fraud cases: %w", err)
	}

	cases := make([]fraudcase.Case, len(entities))
	for i := range entities {
		cases[i] = *entities[i].ToDomain()
	}
	return cases, nil
}

// Resolve writes the outcome status and note, bumping updated_at.
func (r *GormCaseRepo) Resolve(caseID uint, status fraudcase.Status, note string) (*fraudcase.Case, error) {
	result := r.db.
		Model(&CaseEntity{}).
		Where("id = ?", caseID).
		Updates(map[string]interface{}{
			"status":       string(status),
			"outcome_note": note,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to resolve fraud case: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fraudcase.ErrCaseNotFound
	}

	return r.GetByID(caseID)
}
