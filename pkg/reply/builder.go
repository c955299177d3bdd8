package reply

import (
	"fmt"
	"strings"

	"skincare-assistant-be/internal/catalog"
	"skincare-assistant-be/pkg/compat"
	"skincare-assistant-be/pkg/telegram"
)

// Callback tokens carried by inline keyboard buttons.
const (
	TokenStartFormulation   = "start_formulation"
	TokenBrowseIngredients  = "browse_ingredients"
	TokenCheckCompatibility = "check_compatibility"
	TokenHelp               = "help"
	TokenProductPrefix      = "product_"
)

// ParseModeMarkdown marks rich-text payloads; plain payloads leave ParseMode
// empty.
const ParseModeMarkdown = "Markdown"

// Payload is one outbound reply: text plus optional keyboard.
type Payload struct {
	Text      string
	ParseMode string
	Keyboard  *telegram.InlineKeyboardMarkup
}

// Welcome is the /start reply with the 2x2 main menu.
func Welcome() Payload {
	return Payload{
		Text:      welcomeText,
		ParseMode: ParseModeMarkdown,
		Keyboard: &telegram.InlineKeyboardMarkup{
			InlineKeyboard: [][]telegram.InlineKeyboardButton{
				{
					{Text: "🧴 Formulate", CallbackData: TokenStartFormulation},
					{Text: "📋 Ingredients", CallbackData: TokenBrowseIngredients},
				},
				{
					{Text: "🔬 Compatibility", CallbackData: TokenCheckCompatibility},
					{Text: "ℹ️ Help", CallbackData: TokenHelp},
				},
			},
		},
	}
}

func Help() Payload {
	return Payload{Text: helpText, ParseMode: ParseModeMarkdown}
}

// IngredientList dumps the full catalog.
func IngredientList() Payload {
	var b strings.Builder
	b.WriteString("📋 *Ingredient Database*\n")
	for _, ing := range catalog.Ingredients {
		b.WriteString(fmt.Sprintf("\n*%s*\n", ing.Name))
		b.WriteString(fmt.Sprintf("Category: %s\n", ing.Category))
		b.WriteString(fmt.Sprintf("Max concentration: %g%%\n", ing.MaxConcentration))
		b.WriteString("Benefits:\n")
		for _, benefit := range ing.Benefits {
			b.WriteString(fmt.Sprintf("  • %s\n", benefit))
		}
	}
	return Payload{Text: b.String(), ParseMode: ParseModeMarkdown}
}

// ProductTypePrompt is the /formulate reply with the 2-column product-type
// grid.
func ProductTypePrompt() Payload {
	labels := map[string]string{
		"serum":       "💧 Serum",
		"moisturizer": "🧴 Moisturizer",
		"cleanser":    "🧼 Cleanser",
		"sunscreen":   "☀️ Sunscreen",
		"mask":        "🎭 Mask",
		"eye":         "👁 Eye Cream",
	}

	var rows [][]telegram.InlineKeyboardButton
	var row []telegram.InlineKeyboardButton
	for _, productType := range catalog.ProductTypes {
		row = append(row, telegram.InlineKeyboardButton{
			Text:         labels[productType],
			CallbackData: TokenProductPrefix + productType,
		})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return Payload{
		Text:      productTypePromptText,
		ParseMode: ParseModeMarkdown,
		Keyboard:  &telegram.InlineKeyboardMarkup{InlineKeyboard: rows},
	}
}

func CompatibilityPrompt() Payload {
	return Payload{Text: compatibilityPromptText, ParseMode: ParseModeMarkdown}
}

func UnknownCommand() Payload {
	return Payload{Text: unknownCommandText}
}

func UseCommandPrompt() Payload {
	return Payload{Text: useCommandText}
}

func GenericError() Payload {
	return Payload{Text: genericErrorText}
}

// Suggestions lists the fixed ingredient suggestions for a product type, or a
// fallback when the type is not one of the six known values.
func Suggestions(productType string) Payload {
	items, ok := catalog.Suggestions[productType]
	if !ok {
		return Payload{Text: unknownProductTypeText}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("✨ *Suggested ingredients for your %s:*\n\n", productType))
	for _, item := range items {
		b.WriteString(fmt.Sprintf("• %s\n", item))
	}
	b.WriteString("\nUse /compatibility to verify your final ingredient list.")
	return Payload{Text: b.String(), ParseMode: ParseModeMarkdown}
}

// CompatibilityReport renders a matcher result.
func CompatibilityReport(result compat.Result) Payload {
	if len(result.Found) == 0 {
		var b strings.Builder
		b.WriteString(noMatchHeader)
		for _, name := range catalog.Names() {
			b.WriteString(fmt.Sprintf("  • %s\n", name))
		}
		return Payload{Text: b.String()}
	}

	var b strings.Builder
	b.WriteString("🔬 *Compatibility report*\n\nFound:\n")
	for _, ing := range result.Found {
		b.WriteString(fmt.Sprintf("  • %s\n", ing.Name))
	}
	b.WriteString("\n")

	if len(result.Pairs) == 0 {
		b.WriteString(noIncompatibilityText)
		b.WriteString("\n")
	} else {
		b.WriteString("⚠️ *Incompatible combinations:*\n")
		for _, pair := range result.Pairs {
			b.WriteString(fmt.Sprintf("  • %s + %s\n", pair.A.Name, pair.B.Name))
		}
		b.WriteString("\n")
		b.WriteString(separationAdviceText)
		b.WriteString("\n")
	}

	if len(result.NotFound) > 0 {
		b.WriteString("\nUnrecognized:\n")
		for _, token := range result.NotFound {
			b.WriteString(fmt.Sprintf("  • %s\n", token))
		}
	}

	return Payload{Text: b.String(), ParseMode: ParseModeMarkdown}
}
