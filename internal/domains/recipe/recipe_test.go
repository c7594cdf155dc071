package recipe

import "testing"

func testResolver() *Resolver {
	return NewResolver([]Recipe{
		{Name: "pasta night", Description: "Classic spaghetti dinner", Items: []string{"pasta-001", "sauce-001"}},
		{Name: "taco night", Description: "Build-your-own tacos", Items: []string{"tortilla-001", "beef-001"}},
		{Name: "garden salad", Description: "Fresh side salad", Items: []string{"lettuce-001"}},
	})
}

func TestResolveExactMatch(t *testing.T) {
	r := testResolver()

	got := r.Resolve("Taco Night")
	if got == nil {
		t.Fatal("Expected a match for exact name")
	}
	if got.Name != "taco night" {
		t.Errorf("Expected 'taco night', got %q", got.Name)
	}
}

func TestResolveQueryInsideName(t *testing.T) {
	r := testResolver()

	got := r.Resolve("taco")
	if got == nil {
		t.Fatal("Expected a match for partial name")
	}
	if got.Name != "taco night" {
		t.Errorf("Expected 'taco night', got %q", got.Name)
	}
}

func TestResolveNameInsideQuery(t *testing.T) {
	r := testResolver()

	got := r.Resolve("let's do pasta night tonight")
	if got == nil {
		t.Fatal("Expected a match when the query contains the name")
	}
	if got.Name != "pasta night" {
		t.Errorf("Expected 'pasta night', got %q", got.Name)
	}
}

func TestResolveFirstDeclaredWinsOnTie(t *testing.T) {
	r := testResolver()

	// "night" is contained in both pasta night and taco night, the first
	// declared entry must win every time.
	for i := 0; i < 10; i++ {
		got := r.Resolve("night")
		if got == nil {
			t.Fatal("Expected a match for ambiguous query")
		}
		if got.Name != "pasta night" {
			t.Errorf("Expected first declared 'pasta night', got %q", got.Name)
		}
	}
}

func TestResolveExactBeatsContainment(t *testing.T) {
	r := NewResolver([]Recipe{
		{Name: "salad bowl deluxe", Items: []string{"a"}},
		{Name: "salad", Items: []string{"b"}},
	})

	got := r.Resolve("salad")
	if got == nil {
		t.Fatal("Expected a match")
	}
	if got.Name != "salad" {
		t.Errorf("Exact match should beat substring match, got %q", got.Name)
	}
}

func TestResolveNoMatch(t *testing.T) {
	r := testResolver()

	if got := r.Resolve("sushi platter"); got != nil {
		t.Errorf("Expected nil for unknown dish, got %q", got.Name)
	}
	if got := r.Resolve("   "); got != nil {
		t.Errorf("Expected nil for blank query, got %q", got.Name)
	}
}

func TestSeededResolverLoads(t *testing.T) {
	r, err := NewSeededResolver()
	if err != nil {
		t.Fatalf("Failed to load seeded resolver: %v", err)
	}

	all := r.All()
	if len(all) == 0 {
		t.Fatal("Expected seeded recipes")
	}

	got := r.Resolve("pasta night")
	if got == nil {
		t.Fatal("Expected seeded 'pasta night' recipe")
	}
	if len(got.Items) == 0 {
		t.Error("Seeded recipe should reference catalog items")
	}
}
