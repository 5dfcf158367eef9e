package usecase

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/diillson/kazoo-billing-report/internal/domain/entity"
	"github.com/diillson/kazoo-billing-report/internal/shared/types"
)

// displaySummary exibe uma tabela com o total de itens faturáveis por conta.
func (uc *BillingUseCase) displaySummary(table *entity.ReportTable) {
	if table.Len() == 0 {
		return
	}

	summary := uc.console.CreateTable()
	summary.AddColumn("Account ID")
	summary.AddColumn("Account Name")
	summary.AddColumn("Metrics")
	summary.AddColumn("Billable Items")

	grandTotal := 0
	for id, metrics := range table.All() {
		total := metrics.Counts.Total()
		grandTotal += total
		summary.AddRow(
			pterm.FgMagenta.Sprintf("%s", id),
			metrics.DisplayName,
			len(metrics.Counts),
			total,
		)
	}

	uc.console.Print(summary.Render())
	fmt.Println()
	uc.console.LogInfo("%d accounts processed, %d billable items in total", table.Len(), grandTotal)
}

// exportReport grava o relatório em cada formato solicitado.
func (uc *BillingUseCase) exportReport(table *entity.ReportTable, args *types.CLIArgs) error {
	if table.Len() == 0 {
		uc.console.LogWarning("No data to write to CSV.")
		return nil
	}

	var errs []error
	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportReportToCSV(table, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportReportToJSON(table, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportReportToPDF(table, args.ReportName, args.Dir)
		default:
			err = fmt.Errorf("unsupported report type %q", reportType)
		}

		if err != nil {
			uc.console.LogError("Failed to export report to %s: %s", reportType, err)
			errs = append(errs, err)
			continue
		}
		uc.console.LogSuccess("Results automatically saved to %s", path)
	}

	return errors.Join(errs...)
}
