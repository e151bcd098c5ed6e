package garden

import (
	"strings"
	"testing"
)

func TestNewAdvisor(t *testing.T) {
	a := NewAdvisor()
	if a == nil {
		t.Fatal("NewAdvisor returned nil")
	}
}

func TestAdvisor_Advise(t *testing.T) {
	a := NewAdvisor()

	text, errs := a.Advise("Summer", " Vegetables ")
	if len(errs) != 0 {
		t.Fatalf("Advise returned unexpected errors: %v", errs)
	}

	if !strings.Contains(text, "Water consistently") {
		t.Errorf("Advise text missing summer vegetable tip:\n%s", text)
	}

	if !strings.Contains(text, "Tomato") {
		t.Errorf("Advise text missing recommendation:\n%s", text)
	}
}

func TestAdvisor_Advise_Errors(t *testing.T) {
	a := NewAdvisor()

	text, errs := a.Advise("monsoon", "cactus")
	if text != "" {
		t.Errorf("Advise returned text despite invalid input: %q", text)
	}

	if len(errs) != 2 {
		t.Fatalf("Expected 2 errors, got %d: %v", len(errs), errs)
	}

	if !strings.Contains(errs[0].Error(), "monsoon") {
		t.Errorf("First error %q should mention the season input", errs[0])
	}

	if !strings.Contains(errs[1].Error(), "cactus") {
		t.Errorf("Second error %q should mention the plant input", errs[1])
	}
}
