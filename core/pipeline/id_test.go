package pipeline

import "testing"

func TestIDGeneratorProducesFourChars(t *testing.T) {
	g := NewIDGenerator()
	id, err := g.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(id) != 4 {
		t.Errorf("expected a 4-character id, got %q", id)
	}
}

// TestIDGeneratorFirstCharIsLowercaseLetter grounds §3: "four characters,
// first is a lowercase letter, remaining three are lowercase alphanumerics."
func TestIDGeneratorFirstCharIsLowercaseLetter(t *testing.T) {
	g := NewIDGenerator()
	for i := 0; i < 500; i++ {
		id, err := g.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id[0] < 'a' || id[0] > 'z' {
			t.Fatalf("expected id[0] to be a lowercase letter, got %q in id %q", id[0], id)
		}
	}
}

// TestIDGeneratorUniqueAcrossWhollIssued grounds §8 invariant 3: ID
// uniqueness across the whole output.
func TestIDGeneratorUniqueAcrossWhollIssued(t *testing.T) {
	g := NewIDGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		id, err := g.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q issued", id)
		}
		seen[id] = true
	}
}
