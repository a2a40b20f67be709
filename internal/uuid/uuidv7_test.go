package uuid

import "testing"

func TestNew(t *testing.T) {
	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 1000; i++ {
		id := New()
		if !IsValid(id) {
			t.Fatalf("generated invalid uuid %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate uuid %q", id)
		}
		if prev != "" && id <= prev {
			t.Fatalf("uuid %q not after %q", id, prev)
		}
		seen[id] = true
		prev = id
	}
}

func TestIsValid(t *testing.T) {
	if IsValid("not-a-uuid") {
		t.Error("expected invalid")
	}
	if !IsValid("01890a5d-ac96-774b-bcce-b302099a8057") {
		t.Error("expected valid")
	}
}
