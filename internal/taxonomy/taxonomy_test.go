package taxonomy

import (
	"sort"
	"testing"
)

func TestCatalogSize(t *testing.T) {
	if got := len(All()); got != 15 {
		t.Fatalf("catalog has %d kinds, want 15", got)
	}
}

func TestLookupKnownKinds(t *testing.T) {
	for _, id := range []string{"wrong_input", "missed_pop_casters", "safety_violation"} {
		if !Valid(id) {
			t.Errorf("Valid(%q) = false", id)
		}
		if Lookup(id) == nil {
			t.Errorf("Lookup(%q) = nil", id)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if Valid("panic_spiral") {
		t.Error("unknown kind accepted")
	}
	if Lookup("panic_spiral") != nil {
		t.Error("Lookup returned non-nil for unknown kind")
	}
}

func TestSeverities(t *testing.T) {
	tests := []struct {
		id   string
		want Severity
	}{
		{"wrong_input", SeverityMedium},
		{"wrong_direction", SeverityMedium},
		{"wrong_turn_direction", SeverityMedium},
		{"stopped_instead_of_moving", SeverityMedium},
		{"moved_instead_of_stopping", SeverityMedium},
		{"missed_pop_casters", SeverityHigh},
		{"timeout", SeverityHigh},
		{"wrong_sequence", SeverityMedium},
		{"timing_error", SeverityLow},
		{"missing_input", SeverityHigh},
		{"extra_input", SeverityLow},
		{"incomplete_action", SeverityMedium},
		{"balance_lost", SeverityHigh},
		{"collision", SeverityHigh},
		{"safety_violation", SeverityCritical},
	}
	for _, tt := range tests {
		et := Lookup(tt.id)
		if et == nil {
			t.Errorf("Lookup(%q) = nil", tt.id)
			continue
		}
		if et.Severity != tt.want {
			t.Errorf("%s severity = %s, want %s", tt.id, et.Severity, tt.want)
		}
	}
}

func TestAllSortedAndUnique(t *testing.T) {
	all := All()
	ids := make([]string, len(all))
	for i, et := range all {
		ids[i] = et.ID
	}
	if !sort.StringsAreSorted(ids) {
		t.Error("All() not sorted by ID")
	}
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID %q", id)
		}
		seen[id] = true
	}
}
