package ordering

import "testing"

func TestCatalogIntegrity(t *testing.T) {
	t.Parallel()

	entries := Catalog()
	if len(entries) != 50 {
		t.Fatalf("expected 50 catalog entries, got %d", len(entries))
	}

	for i, entry := range entries {
		if len(entry.Order) < 4 {
			t.Fatalf("entry %d has a suspiciously short order: %v", i, entry.Order)
		}
		if entry.Score < 6 || entry.Score > 10 {
			t.Fatalf("entry %d score %d outside the 6-10 reference range", i, entry.Score)
		}
	}
}

func TestCatalogFirstAndLastEntries(t *testing.T) {
	t.Parallel()

	entries := Catalog()

	first := entries[0]
	if first.Score != 10 || first.Order[0] != "Summary" || first.Order[1] != "Experience" {
		t.Fatalf("unexpected first catalog entry: %+v", first)
	}

	last := entries[len(entries)-1]
	if last.Score != 6 || last.Order[len(last.Order)-1] != "GitHub/Portfolio" {
		t.Fatalf("unexpected last catalog entry: %+v", last)
	}
}
