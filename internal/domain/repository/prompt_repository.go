package repository

// PromptRepository asks the operator for values that were not supplied up front.
type PromptRepository interface {
	Text(message string) (string, error)
	Secret(message string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}
