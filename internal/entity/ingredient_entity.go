package entity

// IngredientRecord is a single entry of the static ingredient catalog.
// Records are defined once at package init and never mutated at runtime.
type IngredientRecord struct {
	// Key is the unique lowercase identifier, e.g. "retinol".
	Key      string
	Name     string
	Category string

	// MaxConcentration is an informational percentage ceiling. It is shown
	// to the user but never enforced against input.
	MaxConcentration float64

	Benefits []string

	// IncompatibleWith holds tags matched against other records' display
	// names (underscores become spaces before the substring check).
	IncompatibleWith []string

	// CompatibleWith is carried for display parity with the source data but
	// is never consulted by any algorithm.
	CompatibleWith []string
}
