package reply

// Literal user-facing copy. These strings are the bot's visible contract;
// change them only deliberately.

const welcomeText = `🧪 *Welcome to the Skincare Formulation Assistant!*

I help you build skincare formulations and check ingredient compatibility.

What would you like to do?

/formulate - Start a new formulation
/ingredients - Browse the ingredient database
/compatibility - Check ingredient compatibility
/help - Show help`

const helpText = `ℹ️ *How to use this bot*

/start - Show the welcome menu
/formulate - Pick a product type and get ingredient suggestions
/ingredients - Browse the full ingredient database
/compatibility - Check if ingredients can be combined

For a compatibility check, send your ingredients one per line, for example:

Retinol
Vitamin C
Niacinamide`

const productTypePromptText = `🧴 *Let's formulate!*

Which product type are you working on?`

const compatibilityPromptText = `🔬 *Compatibility check*

Send me the ingredients you want to combine, one per line. For example:

Retinol
Vitamin C
Niacinamide`

const unknownCommandText = `🤔 I don't know that command. Try /help to see what I can do.`

const useCommandText = `💡 Please use a command to get started. Try /start to see the menu.`

const unknownProductTypeText = `🤷 I don't have suggestions for that product type yet. Try /formulate to pick one from the menu.`

const genericErrorText = `😓 Something went wrong while processing your message. Please try again.`

const noMatchHeader = "❌ I couldn't recognize any of those ingredients.\n\nI currently know about:\n"

const noIncompatibilityText = "✅ No major incompatibilities found. These ingredients can be combined."

const separationAdviceText = "⚠️ Recommendation: use conflicting ingredients in separate routines (e.g. one in the morning, one at night)."
