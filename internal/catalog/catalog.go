package catalog

import (
	"skincare-assistant-be/internal/entity"
)

// Ingredients is the full catalog in definition order. The matcher depends on
// this order: the first substring match wins.
var Ingredients = []*entity.IngredientRecord{
	{
		Key:              "retinol",
		Name:             "Retinol",
		Category:         "Anti-aging Retinoid",
		MaxConcentration: 1.0,
		Benefits: []string{
			"Stimulates collagen production",
			"Accelerates cell turnover",
			"Reduces fine lines and wrinkles",
		},
		IncompatibleWith: []string{"vitamin_c", "aha", "benzoyl_peroxide"},
		CompatibleWith:   []string{"hyaluronic", "niacinamide"},
	},
	{
		Key:              "vitamin_c",
		Name:             "Vitamin C (L-Ascorbic Acid)",
		Category:         "Antioxidant",
		MaxConcentration: 20.0,
		Benefits: []string{
			"Brightens skin tone",
			"Neutralizes free radicals",
			"Supports collagen synthesis",
		},
		IncompatibleWith: []string{"retinol", "benzoyl_peroxide"},
		CompatibleWith:   []string{"vitamin_e", "ferulic"},
	},
	{
		Key:              "niacinamide",
		Name:             "Niacinamide",
		Category:         "Skin Barrier Support",
		MaxConcentration: 10.0,
		Benefits: []string{
			"Strengthens the skin barrier",
			"Regulates sebum production",
			"Minimizes the look of pores",
		},
		CompatibleWith: []string{"hyaluronic", "retinol"},
	},
	{
		Key:              "hyaluronic_acid",
		Name:             "Hyaluronic Acid",
		Category:         "Hydrator",
		MaxConcentration: 2.0,
		Benefits: []string{
			"Binds up to 1000x its weight in water",
			"Plumps and hydrates the skin",
			"Suits all skin types",
		},
		CompatibleWith: []string{"everything"},
	},
}

// ProductTypes enumerates the formulation targets in menu order.
var ProductTypes = []string{"serum", "moisturizer", "cleanser", "sunscreen", "mask", "eye"}

// Suggestions maps a product type to its fixed three-item ingredient
// suggestion list.
var Suggestions = map[string][]string{
	"serum": {
		"Vitamin C (L-Ascorbic Acid) 10-20% for brightening",
		"Niacinamide 5-10% for barrier support",
		"Hyaluronic Acid 1-2% as a hydrating base",
	},
	"moisturizer": {
		"Hyaluronic Acid 1-2% for hydration",
		"Niacinamide 2-5% for barrier repair",
		"Retinol 0.25-0.5% for overnight renewal",
	},
	"cleanser": {
		"Niacinamide 2-4% for gentle sebum control",
		"Hyaluronic Acid 0.5-1% to prevent stripping",
		"Low-dose Vitamin C derivatives for brightening",
	},
	"sunscreen": {
		"Niacinamide 2-5% to calm the skin",
		"Hyaluronic Acid 0.5-1% for lightweight hydration",
		"Vitamin C (L-Ascorbic Acid) 5-10% for antioxidant boost",
	},
	"mask": {
		"Hyaluronic Acid 1-2% for an intensive moisture surge",
		"Niacinamide 5% for an even tone",
		"Retinol 0.1-0.3% for a gentle resurfacing treatment",
	},
	"eye": {
		"Retinol 0.1-0.25% for fine lines",
		"Hyaluronic Acid 0.5-1% for plumping",
		"Niacinamide 2% for dark circles",
	},
}

// Names returns the display names of all catalog records in definition order.
func Names() []string {
	names := make([]string, 0, len(Ingredients))
	for _, ing := range Ingredients {
		names = append(names, ing.Name)
	}
	return names
}
