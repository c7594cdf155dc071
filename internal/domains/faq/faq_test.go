package faq

import "testing"

func testSearcher() *Searcher {
	return NewSearcher([]FAQ{
		{
			Question: "What are your delivery hours?",
			Answer:   "We deliver every day from 8am to 10pm.",
			Category: "delivery",
			Keywords: []string{"delivery", "hours"},
		},
		{
			Question: "Is there a delivery fee?",
			Answer:   "Delivery is free on orders over $35.",
			Category: "pricing",
			Keywords: []string{"delivery fee", "fee"},
		},
		{
			Question: "What payment methods do you accept?",
			Answer:   "We accept all major credit and debit cards.",
			Category: "payment",
			Keywords: []string{"payment", "card"},
		},
	})
}

func TestSearchKeywordHitsOutrankWordOverlap(t *testing.T) {
	s := testSearcher()

	results := s.Search("how much is the delivery fee", 3)
	if len(results) == 0 {
		t.Fatal("Expected results for delivery fee query")
	}
	if results[0].Category != "pricing" {
		t.Errorf("Expected the fee entry first, got %q", results[0].Question)
	}
}

func TestSearchFullQuestionContainmentWins(t *testing.T) {
	s := testSearcher()

	results := s.Search("delivery hours", 3)
	if len(results) == 0 {
		t.Fatal("Expected results for delivery hours query")
	}
	if results[0].Question != "What are your delivery hours?" {
		t.Errorf("Expected the hours entry first, got %q", results[0].Question)
	}
}

func TestSearchNoMatchReturnsEmpty(t *testing.T) {
	s := testSearcher()

	for _, q := range []string{"selling gift wrap", "", "   "} {
		results := s.Search(q, 3)
		if len(results) != 0 {
			t.Errorf("Search(%q) expected no results, got %d", q, len(results))
		}
	}
}

func TestSearchCapsResults(t *testing.T) {
	s := testSearcher()

	results := s.Search("what delivery payment fee hours do you", 1)
	if len(results) != 1 {
		t.Fatalf("Expected capped single result, got %d", len(results))
	}
}

func TestSearchDefaultLimit(t *testing.T) {
	s := testSearcher()

	results := s.Search("what do you accept for delivery", 0)
	if len(results) > DefaultMaxResults {
		t.Errorf("Expected at most %d results, got %d", DefaultMaxResults, len(results))
	}
	if len(results) == 0 {
		t.Fatal("Expected at least one result")
	}
}

func TestSeededSearcherLoads(t *testing.T) {
	s, err := NewSeededSearcher()
	if err != nil {
		t.Fatalf("Failed to load seeded searcher: %v", err)
	}
	if len(s.All()) == 0 {
		t.Fatal("Expected seeded FAQ entries")
	}

	results := s.Search("is delivery free", 3)
	if len(results) == 0 {
		t.Fatal("Expected a hit for the delivery fee question")
	}
}
