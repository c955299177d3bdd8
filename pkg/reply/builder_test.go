package reply

import (
	"strings"
	"testing"

	"skincare-assistant-be/internal/catalog"
	"skincare-assistant-be/pkg/compat"
)

func TestProductTypePromptKeyboard(t *testing.T) {
	payload := ProductTypePrompt()
	if payload.Keyboard == nil {
		t.Fatal("want a keyboard")
	}

	rows := payload.Keyboard.InlineKeyboard
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	var tokens []string
	for _, row := range rows {
		if len(row) != 2 {
			t.Fatalf("got row of %d buttons, want 2", len(row))
		}
		for _, btn := range row {
			tokens = append(tokens, btn.CallbackData)
		}
	}
	for i, productType := range catalog.ProductTypes {
		want := TokenProductPrefix + productType
		if tokens[i] != want {
			t.Errorf("tokens[%d] = %q, want %q", i, tokens[i], want)
		}
	}
}

func TestWelcomeKeyboardTokens(t *testing.T) {
	payload := Welcome()
	if payload.Keyboard == nil {
		t.Fatal("want a keyboard")
	}

	want := map[string]bool{
		TokenStartFormulation:   false,
		TokenBrowseIngredients:  false,
		TokenCheckCompatibility: false,
		TokenHelp:               false,
	}
	for _, row := range payload.Keyboard.InlineKeyboard {
		for _, btn := range row {
			if _, ok := want[btn.CallbackData]; !ok {
				t.Errorf("unexpected token %q", btn.CallbackData)
			}
			want[btn.CallbackData] = true
		}
	}
	for token, seen := range want {
		if !seen {
			t.Errorf("token %q missing from the menu", token)
		}
	}
}

func TestIngredientListDumpsTheCatalog(t *testing.T) {
	payload := IngredientList()
	for _, ing := range catalog.Ingredients {
		if !strings.Contains(payload.Text, ing.Name) {
			t.Errorf("listing misses %q", ing.Name)
		}
		if !strings.Contains(payload.Text, ing.Category) {
			t.Errorf("listing misses category %q", ing.Category)
		}
	}
}

func TestSuggestionsFallback(t *testing.T) {
	payload := Suggestions("toner")
	if payload.Text != unknownProductTypeText {
		t.Errorf("Text = %q", payload.Text)
	}
	if payload.Keyboard != nil {
		t.Error("fallback must not carry a keyboard")
	}
}

func TestCompatibilityReport(t *testing.T) {
	t.Run("no matches lists every catalog name", func(t *testing.T) {
		payload := CompatibilityReport(compat.Result{NotFound: []string{"xyz123"}})
		for _, name := range catalog.Names() {
			if !strings.Contains(payload.Text, name) {
				t.Errorf("guidance misses %q", name)
			}
		}
	})

	t.Run("conflicting pair produces one line per direction", func(t *testing.T) {
		result := compat.Match(catalog.Ingredients, "Retinol\nVitamin C")
		payload := CompatibilityReport(result)
		if !strings.Contains(payload.Text, "Retinol + Vitamin C (L-Ascorbic Acid)") {
			t.Error("missing retinol -> vitamin c line")
		}
		if !strings.Contains(payload.Text, "Vitamin C (L-Ascorbic Acid) + Retinol") {
			t.Error("missing vitamin c -> retinol line")
		}
	})

	t.Run("compatible set reports no incompatibilities", func(t *testing.T) {
		result := compat.Match(catalog.Ingredients, "Niacinamide\nHyaluronic Acid")
		payload := CompatibilityReport(result)
		if !strings.Contains(payload.Text, noIncompatibilityText) {
			t.Errorf("Text = %q", payload.Text)
		}
	})

	t.Run("unrecognized tokens are appended", func(t *testing.T) {
		result := compat.Match(catalog.Ingredients, "Retinol\nsnake oil")
		payload := CompatibilityReport(result)
		if !strings.Contains(payload.Text, "Unrecognized:") {
			t.Error("missing unrecognized section")
		}
		if !strings.Contains(payload.Text, "snake oil") {
			t.Error("missing the literal unmatched token")
		}
	})
}
