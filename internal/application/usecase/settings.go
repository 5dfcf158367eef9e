package usecase

import (
	"fmt"
	"strings"

	"github.com/diillson/kazoo-billing-report/internal/shared/types"
)

const defaultReportName = "billing_report"

var supportedReportTypes = map[string]bool{"csv": true, "json": true, "pdf": true}

// ResolveSettings completa os argumentos com valores padrão e, quando permitido,
// prompts interativos para o que não veio das flags nem do arquivo de configuração.
func (uc *BillingUseCase) ResolveSettings(args *types.CLIArgs) error {
	if args.ReportName == "" {
		args.ReportName = defaultReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = []string{"csv"}
	}
	for i, reportType := range args.ReportType {
		reportType = strings.ToLower(strings.TrimSpace(reportType))
		if !supportedReportTypes[reportType] {
			return fmt.Errorf("unsupported report type %q (supported: csv, json, pdf)", reportType)
		}
		args.ReportType[i] = reportType
	}

	var err error
	if args.APIURL, err = uc.askIfEmpty(args.APIURL, args.NoPrompt, "Enter the Kazoo API URL (e.g., https://api.kazoo.com/v2)", false, types.ErrMissingAPIURL); err != nil {
		return err
	}
	if args.APIKey, err = uc.askIfEmpty(args.APIKey, args.NoPrompt, "Enter your Kazoo API Key", true, types.ErrMissingAPIKey); err != nil {
		return err
	}
	if args.AccountID, err = uc.askIfEmpty(args.AccountID, args.NoPrompt, "Enter the root account ID from which descendants will be processed", false, types.ErrMissingAccountID); err != nil {
		return err
	}

	if args.IncludeRoot == nil {
		include := false
		if !args.NoPrompt {
			include, err = uc.promptRepo.Confirm("Include the root account itself in the processing?", false)
			if err != nil {
				return fmt.Errorf("error reading answer: %w", err)
			}
		}
		args.IncludeRoot = &include
	}

	return nil
}

func (uc *BillingUseCase) askIfEmpty(current string, noPrompt bool, message string, secret bool, missing error) (string, error) {
	if current = strings.TrimSpace(current); current != "" {
		return current, nil
	}
	if noPrompt {
		return "", missing
	}

	var (
		answer string
		err    error
	)
	if secret {
		answer, err = uc.promptRepo.Secret(message)
	} else {
		answer, err = uc.promptRepo.Text(message)
	}
	if err != nil {
		return "", fmt.Errorf("error reading answer: %w", err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", missing
	}
	return answer, nil
}
