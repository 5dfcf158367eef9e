package repository

import (
	"github.com/diillson/kazoo-billing-report/internal/domain/entity"
)

// ExportRepository writes a billing report to disk. Each method returns the absolute path written.
type ExportRepository interface {
	ExportReportToCSV(table *entity.ReportTable, filename, outputDir string) (string, error)
	ExportReportToJSON(table *entity.ReportTable, filename, outputDir string) (string, error)
	ExportReportToPDF(table *entity.ReportTable, filename, outputDir string) (string, error)
}
