package faq

import (
	"sort"
	"strings"

	"github.com/HackerKing5128/voicecart/internal/data"
)

// FAQ pairs a stored question with its answer plus the keywords and category
// the search scores against.
type FAQ struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// Searcher ranks FAQ entries against free-text questions. Entries are static
// and never mutated at runtime.
type Searcher struct {
	entries []FAQ
}

// DefaultMaxResults caps Search when the caller passes a non-positive limit.
const DefaultMaxResults = 3

// Scoring weights. Keyword hits dominate, whole-query containment in the
// stored question or answer outranks word overlap, and a small category bonus
// nudges pricing and delivery questions toward their own entries.
const (
	keywordWeight    = 10
	wordWeight       = 5
	questionContains = 20
	answerContains   = 15
	categoryBonus    = 8
)

type scored struct {
	faq   FAQ
	score int
}

// Search returns up to maxResults entries with a positive relevance score,
// best first. Entries that match nothing are never returned, so an empty
// result means the question is outside the knowledge base.
func (s *Searcher) Search(query string, maxResults int) []FAQ {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []FAQ{}
	}
	queryWords := wordSet(q)

	hits := make([]scored, 0, len(s.entries))
	for _, entry := range s.entries {
		score := 0

		for _, keyword := range entry.Keywords {
			if strings.Contains(q, strings.ToLower(keyword)) {
				score += keywordWeight
			}
		}

		question := strings.ToLower(entry.Question)
		for word := range wordSet(question) {
			if queryWords[word] {
				score += wordWeight
			}
		}

		if strings.Contains(question, q) {
			score += questionContains
		}
		if strings.Contains(strings.ToLower(entry.Answer), q) {
			score += answerContains
		}

		score += s.categoryBonus(entry.Category, q)

		if score > 0 {
			hits = append(hits, scored{faq: entry, score: score})
		}
	}

	// Stable keeps declaration order between equal scores.
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}
	results := make([]FAQ, len(hits))
	for i, h := range hits {
		results[i] = h.faq
	}
	return results
}

func (s *Searcher) categoryBonus(category, q string) int {
	switch category {
	case "pricing":
		for _, w := range []string{"price", "pricing", "cost", "fee"} {
			if strings.Contains(q, w) {
				return categoryBonus
			}
		}
	case "delivery":
		for _, w := range []string{"deliver", "delivery", "shipping"} {
			if strings.Contains(q, w) {
				return categoryBonus
			}
		}
	}
	return 0
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}

// All returns every FAQ in declaration order.
func (s *Searcher) All() []FAQ {
	out := make([]FAQ, len(s.entries))
	copy(out, s.entries)
	return out
}

// NewSearcher builds a searcher over explicit entries, kept in order.
func NewSearcher(entries []FAQ) *Searcher {
	return &Searcher{entries: entries}
}

// NewSeededSearcher builds a searcher from the embedded FAQ table.
func NewSeededSearcher() (*Searcher, error) {
	seed, err := data.FAQs()
	if err != nil {
		return nil, err
	}
	entries := make([]FAQ, len(seed))
	for i, s := range seed {
		entries[i] = FAQ{
			Question: s.Question,
			Answer:   s.Answer,
			Category: s.Category,
			Keywords: s.Keywords,
		}
	}
	return NewSearcher(entries), nil
}
