package prompt

import (
	"github.com/pterm/pterm"

	"github.com/diillson/kazoo-billing-report/internal/domain/repository"
)

// PromptRepositoryImpl implementa o PromptRepository com os prompts interativos do pterm.
type PromptRepositoryImpl struct{}

// NewPromptRepository cria uma nova implementação do PromptRepository.
func NewPromptRepository() repository.PromptRepository {
	return &PromptRepositoryImpl{}
}

// Text lê uma linha de texto.
func (r *PromptRepositoryImpl) Text(message string) (string, error) {
	return pterm.DefaultInteractiveTextInput.Show(message)
}

// Secret lê um valor sem ecoá-lo no terminal.
func (r *PromptRepositoryImpl) Secret(message string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithMask("*").Show(message)
}

// Confirm faz uma pergunta de sim/não.
func (r *PromptRepositoryImpl) Confirm(message string, defaultValue bool) (bool, error) {
	return pterm.DefaultInteractiveConfirm.WithDefaultValue(defaultValue).Show(message)
}
