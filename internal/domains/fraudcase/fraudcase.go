package fraudcase

import "time"

// Status is the review state of a flagged transaction.
type Status string

const (
	StatusPendingReview Status = "pending_review"
	StatusConfirmedSafe Status = "confirmed_safe"
	StatusFraudReported Status = "fraud_reported"
)

// Closed reports whether the case has been resolved either way.
func (s Status) Closed() bool {
	return s == StatusConfirmedSafe || s == StatusFraudReported
}

// Case is a flagged card transaction awaiting identity verification
// and a safe/fraud decision from the cardholder.
type Case struct {
	ID                  uint      `json:"case_id"`
	UserName            string    `json:"user_name"`
	SecurityQuestion    string    `json:"security_question"`
	SecurityAnswerHash  string    `json:"-"`
	CardEnding          string    `json:"card_ending"`
	TransactionAmount   float64   `json:"transaction_amount"`
	TransactionName     string    `json:"transaction_name"`
	TransactionTime     string    `json:"transaction_time"`
	TransactionCategory string    `json:"transaction_category"`
	TransactionSource   string    `json:"transaction_source"`
	TransactionLocation string    `json:"transaction_location"`
	Status              Status    `json:"status"`
	OutcomeNote         string    `json:"outcome_note,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Repository defines the interface for fraud case persistence.
type Repository interface {
	// GetPendingByUser returns the open case for the named cardholder.
	// The lookup is case-insensitive. Returns ErrCaseNotFound when the
	// user has no case in pending_review.
	GetPendingByUser(userName string) (*Case, error)

	// GetByID returns the case or ErrCaseNotFound.
	GetByID(caseID uint) (*Case, error)

	// ListAll returns every case, oldest first.
	ListAll() ([]Case, error)

	// Resolve writes the outcome status and note, bumping updated_at.
	Resolve(caseID uint, status Status, note string) (*Case, error)
}
