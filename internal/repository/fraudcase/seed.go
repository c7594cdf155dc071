package fraudcase

import (
	"fmt"

	"github.com/HackerKing5128/voicecart/internal/domains/fraudcase"
	"golang.org/x/crypto/bcrypt"
)

type seedCase struct {
	UserName            string
	SecurityQuestion    string
	SecurityAnswer      string
	CardEnding          string
	TransactionAmount   float64
	TransactionName     string
	TransactionTime     string
	TransactionCategory string
	TransactionSource   string
	TransactionLocation string
}

var seedCases = []seedCase{
	{
		UserName:            "John",
		SecurityQuestion:    "What is the name of your first pet?",
		SecurityAnswer:      "perry",
		CardEnding:          "4242",
		TransactionAmount:   899.99,
		TransactionName:     "TechZone Electronics",
		TransactionTime:     "today at 3:42 AM",
		TransactionCategory: "electronics",
		TransactionSource:   "online",
		TransactionLocation: "Austin, TX",
	},
	{
		UserName:            "Sarah",
		SecurityQuestion:    "What is the name of your childhood best friend?",
		SecurityAnswer:      "Buddy",
		CardEnding:          "8891",
		TransactionAmount:   2450.00,
		TransactionName:     "LuxuryWatch Boutique",
		TransactionTime:     "yesterday at 11:17 PM",
		TransactionCategory: "jewelry",
		TransactionSource:   "in-store",
		TransactionLocation: "Miami, FL",
	},
	{
		UserName:            "Mike",
		SecurityQuestion:    "What is your favorite movie?",
		SecurityAnswer:      "Inception",
		CardEnding:          "3456",
		TransactionAmount:   1280.50,
		TransactionName:     "GlobalTravel Bookings",
		TransactionTime:     "today at 6:05 AM",
		TransactionCategory: "travel",
		TransactionSource:   "online",
		TransactionLocation: "unknown",
	},
}

// Seed inserts the demo fraud cases when the table is empty. Security
// answers are normalized before hashing so spoken answers survive
// transcription casing.
func (r *GormCaseRepo) Seed() error {
	var count int64
	if err := r.db.Model(&CaseEntity{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count fraud cases: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, sc := range seedCases {
		normalized := fraudcase.NormalizeAnswer(sc.SecurityAnswer)
		hash, err := bcrypt.GenerateFromPassword([]byte(normalized), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash security answer for %s: %w", sc.UserName, err)
		}

		entity := CaseEntity{
			UserName:            sc.UserName,
			SecurityQuestion:    sc.SecurityQuestion,
			SecurityAnswerHash:  string(hash),
			CardEnding:          sc.CardEnding,
			TransactionAmount:   sc.TransactionAmount,
			TransactionName:     sc.TransactionName,
			TransactionTime:     sc.TransactionTime,
			TransactionCategory: sc.TransactionCategory,
			TransactionSource:   sc.TransactionSource,
			TransactionLocation: sc.TransactionLocation,
			Status:              string(fraudcase.StatusPendingReview),
		}
		if err := r.db.Create(&entity).Error; err != nil {
			return fmt.Errorf("failed to seed fraud case for %s: %w", sc.UserName, err)
		}
	}

	return nil
}
