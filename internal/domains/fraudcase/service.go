package fraudcase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HackerKing5128/voicecart/pkg/Logger"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrCaseNotFound   = errors.New("fraud case not found")
	ErrCaseClosed     = errors.New("fraud case already resolved")
	ErrAnswerMismatch = errors.New("security answer does not match")
	ErrBadOutcome     = errors.New("outcome must be confirmed_safe or fraud_reported")
)

// Service handles fraud case lookup, identity checks and resolution.
type Service interface {
	// LookupPending finds the open case for a cardholder by name,
	// case-insensitively.
	LookupPending(ctx context.Context, userName string) (*Case, error)

	// VerifyIdentity checks the caller's security answer against the
	// stored hash. Answers are compared after trimming and lowercasing.
	VerifyIdentity(ctx context.Context, caseID uint, answer string) error

	// Resolve closes a pending case as confirmed_safe or fraud_reported.
	Resolve(ctx context.Context, caseID uint, outcome Status, note string) (*Case, error)

	// GetCase returns a case by id.
	GetCase(ctx context.Context, caseID uint) (*Case, error)
}

type service struct {
	repository Repository
	logger     *Logger.Logger
}

// NewService creates a new fraud case service
func NewService(repository Repository, logger *Logger.Logger) Service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

func (s *service) LookupPending(ctx context.Context, userName string) (*Case, error) {
	name := strings.TrimSpace(userName)
	if name == "" {
		return nil, ErrCaseNotFound
	}

	c, err := s.repository.GetPendingByUser(name)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("fraud case %d looked up for %q", c.ID, name)
	return c, nil
}

func (s *service) VerifyIdentity(ctx context.Context, caseID uint, answer string) error {
	c, err := s.repository.GetByID(caseID)
	if err != nil {
		return err
	}

	normalized := NormalizeAnswer(answer)
	err = bcrypt.CompareHashAndPassword([]byte(c.SecurityAnswerHash), []byte(normalized))
	if err != nil {
		s.logger.Warnf("identity check failed for case %d", caseID)
		return ErrAnswerMismatch
	}

	return nil
}

func (s *service) Resolve(ctx context.Context, caseID uint, outcome Status, note string) (*Case, error) {
	if outcome != StatusConfirmedSafe && outcome != StatusFraudReported {
		return nil, fmt.Errorf("%w: got %q", ErrBadOutcome, outcome)
	}

	c, err := s.repository.GetByID(caseID)
	if err != nil {
		return nil, err
	}
	if c.Status.Closed() {
		return nil, ErrCaseClosed
	}

	resolved, err := s.repository.Resolve(caseID, outcome, note)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("fraud case %d resolved as %s", caseID, outcome)
	return resolved, nil
}

func (s *service) GetCase(ctx context.Context, caseID uint) (*Case, error) {
	return s.repository.GetByID(caseID)
}

// NormalizeAnswer lowercases and trims a security answer so hashing and
// comparison tolerate casing and stray whitespace.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
