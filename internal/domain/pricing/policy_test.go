package pricing

import "testing"

func TestDefaultPolicyThreshold(t *testing.T) {
	policy, err := NewPolicy("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy.String() != DefaultPolicy {
		t.Fatalf("expected default policy, got %q", policy)
	}

	cases := []struct {
		offer  int64
		price  float64
		accept bool
	}{
		{9000, 10000, true},  // exactly 90%, inclusive
		{9500, 10000, true},
		{10000, 10000, true},
		{8999, 10000, false}, // floor(0.9P) - 1
		{1, 10000, false},
		{14176, 15750.55, true},  // ceil(0.9P) on a fractional price
		{14174, 15750.55, false}, // floor(0.9P) - 1 on a fractional price
		{5040, 5600, true},
		{5039, 5600, false},
	}
	for _, c := range cases {
		got, err := policy.Accepts(c.offer, c.price)
		if err != nil {
			t.Fatalf("Accepts(%d, %v): %v", c.offer, c.price, err)
		}
		if got != c.accept {
			t.Fatalf("Accepts(%d, %v) = %v, want %v", c.offer, c.price, got, c.accept)
		}
	}
}

func TestCustomPolicy(t *testing.T) {
	policy, err := NewPolicy("offer >= price")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, _ := policy.Accepts(9999, 10000); ok {
		t.Fatal("expected rejection under full-price policy")
	}
	if ok, _ := policy.Accepts(10000, 10000); !ok {
		t.Fatal("expected acceptance under full-price policy")
	}
}

func TestInvalidPolicy(t *testing.T) {
	if _, err := NewPolicy("offer >="); err == nil {
		t.Fatal("expected compile error")
	}

	policy, err := NewPolicy("offer + price")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := policy.Accepts(1, 1); err == nil {
		t.Fatal("expected non-boolean evaluation error")
	}
}

func TestFormatMinimum(t *testing.T) {
	if got := FormatMinimum(10000); got != "9000.00" {
		t.Fatalf("FormatMinimum(10000) = %q", got)
	}
	if got := FormatMinimum(5600); got != "5040.00" {
		t.Fatalf("FormatMinimum(5600) = %q", got)
	}
	if got := FormatMinimum(15750.55); got != "14175.49" {
		t.Fatalf("FormatMinimum(15750.55) = %q", got)
	}
}
