package fraudcase

import (
	"time"

	"github.com/HackerKing5128/voicecart/internal/domains/fraudcase"
)

// CaseEntity represents the fraud_cases table row with GORM tags
type CaseEntity struct {
	ID                  uint      `gorm:"primaryKey;autoIncrement"`
	UserName            string    `gorm:"column:user_name;type:varchar(120);not null;index"`
	SecurityQuestion    string    `gorm:"column:security_question;type:varchar(255);not null"`
	SecurityAnswerHash  string    `gorm:"column:security_answer_hash;type:varchar(80);not null"`
	CardEnding          string    `gorm:"column:card_ending;type:varchar(4)"`
	TransactionAmount   float64   `gorm:"column:transaction_amount"`
	TransactionName     string    `gorm:"column:transaction_name;type:varchar(120)"`
	TransactionTime     string    `gorm:"column:transaction_time;type:varchar(64)"`
	TransactionCategory string    `gorm:"column:transaction_category;type:varchar(64)"`
	TransactionSource   string    `gorm:"column:transaction_source;type:varchar(64)"`
	TransactionLocation string    `gorm:"column:transaction_location;type:varchar(120)"`
	Status              string    `gorm:"column:status;type:varchar(20);not null;index;default:pending_review"`
	OutcomeNote         string    `gorm:"column:outcome_note;type:text"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (CaseEntity) TableName() string {
	return "fraud_cases"
}

// ToDomain converts CaseEntity to a domain Case
func (e *CaseEntity) ToDomain() *fraudcase.Case {
	return &fraudcase.Case{
		ID:                  e.ID,
		UserName:            e.UserName,
		SecurityQuestion:    e.SecurityQuestion,
		SecurityAnswerHash:  e.SecurityAnswerHash,
		CardEnding:          e.CardEnding,
		TransactionAmount:   e.TransactionAmount,
		TransactionName:     e.TransactionName,
		TransactionTime:     e.TransactionTime,
		TransactionCategory: e.TransactionCategory,
		TransactionSource:   e.TransactionSource,
		TransactionLocation: e.TransactionLocation,
		Status:              fraudcase.Status(e.Status),
		OutcomeNote:         e.OutcomeNote,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

// FromDomain converts a domain Case to CaseEntity
func (e *CaseEntity) FromDomain(c *fraudcase.Case) {
	e.ID = c.ID
	e.UserName = c.UserName
	e.SecurityQuestion = c.SecurityQuestion
	e.SecurityAnswerHash = c.SecurityAnswerHash
	e.CardEnding = c.CardEnding
	e.TransactionAmount = c.TransactionAmount
	e.TransactionName = c.TransactionName
	e.TransactionTime = c.TransactionTime
	e.TransactionCategory = c.TransactionCategory
	e.TransactionSource = c.TransactionSource
	e.TransactionLocation = c.TransactionLocation
	e.Status = string(c.Status)
	e.OutcomeNote = c.OutcomeNote
	e.CreatedAt = c.CreatedAt
	e.UpdatedAt = c.UpdatedAt
}
