package catalog

import "testing"

func TestParseCategory(t *testing.T) {
	cases := map[string]Category{
		"farming":       CategoryFarming,
		"FARMING":       CategoryFarming,
		" Landscaping ": CategoryLandscaping,
		"construction":  CategoryConstruction,
	}
	for input, want := range cases {
		got, ok := ParseCategory(input)
		if !ok || got != want {
			t.Fatalf("ParseCategory(%q) = %q, %v; want %q", input, got, ok, want)
		}
	}

	for _, input := range []string{"", "farm", "tractors", "farming equipment"} {
		if _, ok := ParseCategory(input); ok {
			t.Fatalf("expected no match for %q", input)
		}
	}
}

func TestValidateItem(t *testing.T) {
	valid := &Item{ID: 1, Name: "Massey Ferguson 240", Price: 8500, Category: CategoryFarming}
	if err := ValidateItem(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []*Item{
		{ID: 0, Name: "x", Price: 1, Category: CategoryFarming},
		{ID: 1, Name: " ", Price: 1, Category: CategoryFarming},
		{ID: 1, Name: "x", Price: 0, Category: CategoryFarming},
		{ID: 1, Name: "x", Price: 1, Category: Category("TOYS")},
	}
	for i, it := range bad {
		if err := ValidateItem(it); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}
