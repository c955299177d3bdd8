package store

// Step is the conversational position of a user. Only the three constants
// below are valid values.
type Step string

const (
	StepIdle               Step = "idle"
	StepSelectProductType  Step = "select_product_type"
	StepCompatibilityInput Step = "compatibility_input"
)

// Formulation accumulates the user's formulation choices. Only ProductType is
// ever written today.
type Formulation struct {
	ProductType string `json:"product_type"`
}

// Session represents the active per-user conversation state in memory.
type Session struct {
	UserID      int64       `json:"user_id"`
	CurrentStep Step        `json:"current_step"`
	Formulation Formulation `json:"formulation"`

	// SelectedIngredients is carried for parity with the source data model;
	// nothing appends to it yet.
	SelectedIngredients []string `json:"selected_ingredients"`
}

// NewSession returns a fresh idle session for the user.
func NewSession(userID int64) *Session {
	return &Session{
		UserID:      userID,
		CurrentStep: StepIdle,
	}
}
