package fraudcase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/HackerKing5128/voicecart/pkg/Logger"
	"golang.org/x/crypto/bcrypt"
)

type stubRepo struct {
	cases map[uint]*Case
}

func (s *stubRepo) GetPendingByUser(userName string) (*Case, error) {
	for _, c := range s.cases {
		if strings.EqualFold(c.UserName, userName) && c.Status == StatusPendingReview {
			clone := *c
			return &clone, nil
		}
	}
	return nil, ErrCaseNotFound
}

func (s *stubRepo) GetByID(caseID uint) (*Case, error) {
	c, ok := s.cases[caseID]
	if !ok {
		return nil, ErrCaseNotFound
	}
	clone := *c
	return &clone, nil
}

func (s *stubRepo) ListAll() ([]Case, error) {
	out := make([]Case, 0, len(s.cases))
	for _, c := range s.cases {
		out = append(out, *c)
	}
	return out, nil
}

func (s *stubRepo) Resolve(caseID uint, status Status, note string) (*Case, error) {
	c, ok := s.cases[caseID]
	if !ok {
		return nil, ErrCaseNotFound
	}
	c.Status = status
	c.OutcomeNote = note
	c.UpdatedAt = time.Now()
	clone := *c
	return &clone, nil
}

func newTestCase(t *testing.T, answer string) *stubRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(NormalizeAnswer(answer)), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash answer: %v", err)
	}
	return &stubRepo{cases: map[uint]*Case{
		1: {
			ID:                 1,
			UserName:           "John",
			SecurityQuestion:   "What is the name of your first pet?",
			SecurityAnswerHash: string(hash),
			CardEnding:         "4242",
			TransactionAmount:  899.99,
			TransactionName:    "TechZone Electronics",
			Status:             StatusPendingReview,
		},
	}}
}

func testService(t *testing.T) Service {
	t.Helper()
	return NewService(newTestCase(t, "Perry"), Logger.New(false))
}

func TestLookupPendingCaseInsensitive(t *testing.T) {
	svc := testService(t)

	c, err := svc.LookupPending(context.Background(), "john")
	if err != nil {
		t.Fatalf("LookupPending failed: %v", err)
	}
	if c.ID != 1 {
		t.Errorf("Expected case 1, got %d", c.ID)
	}

	if _, err := svc.LookupPending(context.Background(), "Nobody"); err != ErrCaseNotFound {
		t.Errorf("Expected ErrCaseNotFound, got %v", err)
	}
	if _, err := svc.LookupPending(context.Background(), "  "); err != ErrCaseNotFound {
		t.Errorf("Expected ErrCaseNotFound for blank name, got %v", err)
	}
}

func TestVerifyIdentityNormalizesAnswer(t *testing.T) {
	svc := testService(t)

	// stored answer was "Perry"; spoken answers vary in case and spacing
	for _, answer := range []string{"perry", "PERRY", "  Perry  "} {
		if err := svc.VerifyIdentity(context.Background(), 1, answer); err != nil {
			t.Errorf("Expected %q to verify, got %v", answer, err)
		}
	}

	if err := svc.VerifyIdentity(context.Background(), 1, "rex"); err != ErrAnswerMismatch {
		t.Errorf("Expected ErrAnswerMismatch, got %v", err)
	}
}

func TestResolveCase(t *testing.T) {
	repo := newTestCase(t, "Perry")
	svc := NewService(repo, Logger.New(false))

	c, err := svc.Resolve(context.Background(), 1, StatusFraudReported, "Customer disputed the charge")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if c.Status != StatusFraudReported {
		t.Errorf("Expected %s, got %s", StatusFraudReported, c.Status)
	}
	if c.OutcomeNote != "Customer disputed the charge" {
		t.Errorf("Unexpected note %q", c.OutcomeNote)
	}

	// a closed case cannot be resolved again
	if _, err := svc.Resolve(context.Background(), 1, StatusConfirmedSafe, ""); err != ErrCaseClosed {
		t.Errorf("Expected ErrCaseClosed, got %v", err)
	}
}

func TestResolveRejectsBadOutcome(t *testing.T) {
	svc := testService(t)

	if _, err := svc.Resolve(context.Background(), 1, Status("maybe_fine"), ""); err == nil {
		t.Error("Expected error for invalid outcome")
	}

	// the case must stay pending after the rejected resolve
	c, err := svc.GetCase(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetCase failed: %v", err)
	}
	if c.Status != StatusPendingReview {
		t.Errorf("Case status should be untouched, got %s", c.Status)
	}
}
