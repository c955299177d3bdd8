package catalog

import (
	"testing"
)

func TestCatalogKeysAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, ing := range Ingredients {
		if ing.Key == "" {
			t.Fatalf("record %q has empty key", ing.Name)
		}
		if seen[ing.Key] {
			t.Fatalf("duplicate key %q", ing.Key)
		}
		seen[ing.Key] = true
	}
}

func TestCatalogShape(t *testing.T) {
	if len(Ingredients) != 4 {
		t.Fatalf("catalog has %d records, want 4", len(Ingredients))
	}
	for _, ing := range Ingredients {
		if len(ing.Benefits) == 0 {
			t.Errorf("%s has no benefits", ing.Key)
		}
		if ing.Category == "" {
			t.Errorf("%s has no category", ing.Key)
		}
	}

	names := Names()
	if len(names) != len(Ingredients) {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(Ingredients))
	}
	if names[1] != "Vitamin C (L-Ascorbic Acid)" {
		t.Errorf("Names()[1] = %q", names[1])
	}
}

func TestSuggestionsCoverAllProductTypes(t *testing.T) {
	if len(ProductTypes) != 6 {
		t.Fatalf("got %d product types, want 6", len(ProductTypes))
	}
	for _, productType := range ProductTypes {
		items, ok := Suggestions[productType]
		if !ok {
			t.Errorf("no suggestions for %q", productType)
			continue
		}
		if len(items) != 3 {
			t.Errorf("%q has %d suggestions, want 3", productType, len(items))
		}
	}
}
