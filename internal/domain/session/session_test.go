package session

import "testing"

func TestValidateDisplayName(t *testing.T) {
	ok := map[string]string{
		"Jane Doe":      "Jane Doe",
		"  Jane Doe  ":  "Jane Doe",
		"O'Brien":       "O'Brien",
		"Mary-Ann":      "Mary-Ann",
		"Jo":            "Jo",
		"de la Cruz":    "de la Cruz",
		"D'Arcy-Smith ": "D'Arcy-Smith",
	}
	for input, want := range ok {
		got, err := ValidateDisplayName(input)
		if err != nil {
			t.Fatalf("expected valid name %q: %v", input, err)
		}
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}

	bad := []string{"", " ", "J", "  a  ", "Jane2", "Jane_Doe", "Jane!", "J@ne", "12", "browse3"}
	for _, input := range bad {
		if _, err := ValidateDisplayName(input); err == nil {
			t.Fatalf("expected invalid name %q", input)
		}
	}
}

func TestValidateStage(t *testing.T) {
	if err := ValidateStage(StageCollectingName); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateStage(StageCollectingOffer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateStage(StageNone); err == nil {
		t.Fatal("expected StageNone to be invalid for persistence")
	}
	if err := ValidateStage(Stage("DONE")); err == nil {
		t.Fatal("expected unknown stage to be invalid")
	}
}

func TestNegotiating(t *testing.T) {
	var nilSession *Session
	if nilSession.Negotiating(StageCollectingName) {
		t.Fatal("nil session must not negotiate")
	}

	s := New("+254700000001")
	if s.Negotiating(StageCollectingName) {
		t.Fatal("fresh session must not negotiate")
	}

	s.Negotiation = &Negotiation{ItemID: 2, Stage: StageCollectingName}
	if !s.Negotiating(StageCollectingName) {
		t.Fatal("expected collecting_name")
	}
	if s.Negotiating(StageCollectingOffer) {
		t.Fatal("unexpected collecting_offer")
	}
}

func TestClone(t *testing.T) {
	s := New("+254700000001")
	s.DisplayName = "Jane Doe"
	s.Negotiation = &Negotiation{ItemID: 2, Stage: StageCollectingOffer}

	copied := s.Clone()
	copied.DisplayName = "Someone Else"
	copied.Negotiation.Stage = StageCollectingName

	if s.DisplayName != "Jane Doe" {
		t.Fatal("clone aliased DisplayName")
	}
	if s.Negotiation.Stage != StageCollectingOffer {
		t.Fatal("clone aliased Negotiation")
	}
	if (*Session)(nil).Clone() != nil {
		t.Fatal("nil clone must stay nil")
	}
}
