package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/diillson/kazoo-billing-report/internal/domain/repository"
	"github.com/diillson/kazoo-billing-report/internal/shared/types"
)

// BillingUseCase handles the billing report functionality.
type BillingUseCase struct {
	platformRepo repository.PlatformRepository
	exportRepo   repository.ExportRepository
	promptRepo   repository.PromptRepository
	console      types.ConsoleInterface
	logger       *zap.Logger
}

// NewBillingUseCase creates a new billing use case.
func NewBillingUseCase(
	platformRepo repository.PlatformRepository,
	exportRepo repository.ExportRepository,
	promptRepo repository.PromptRepository,
	console types.ConsoleInterface,
	logger *zap.Logger,
) *BillingUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BillingUseCase{
		platformRepo: platformRepo,
		exportRepo:   exportRepo,
		promptRepo:   promptRepo,
		console:      console,
		logger:       logger,
	}
}

// RunReport executa o relatório de faturamento de ponta a ponta.
func (uc *BillingUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	// Resolve configuração, flags e prompts
	if err := uc.ResolveSettings(args); err != nil {
		return err
	}

	session, err := uc.platformRepo.Authenticate(ctx, args.APIURL, args.APIKey)
	if err != nil {
		return err
	}
	uc.console.LogSuccess("Authenticated against %s", session.BaseURL)

	table, err := uc.RunForAllDescendants(ctx, session, args.AccountID, *args.IncludeRoot, uc.CollectBillableItems, args.Options)
	if err != nil {
		return err
	}

	dump, err := json.MarshalIndent(table, "", "    ")
	if err != nil {
		return fmt.Errorf("error encoding results: %w", err)
	}
	uc.console.Println("Results across all descendants:", string(dump))

	uc.displaySummary(table)

	return uc.exportReport(table, args)
}
