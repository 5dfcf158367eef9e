package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/diillson/kazoo-billing-report/internal/domain/entity"
	"github.com/diillson/kazoo-billing-report/internal/domain/repository"
	"github.com/diillson/kazoo-billing-report/internal/shared/types"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

func (r *ExportRepositoryImpl) ExportReportToCSV(table *entity.ReportTable, filename, outputDir string) (string, error) {
	if table == nil || table.Len() == 0 {
		return "", types.ErrEmptyReport
	}

	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	columns := table.Columns()
	if err := writer.Write(columns); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}
	if err := writer.WriteAll(table.Rows(columns)); err != nil {
		return "", fmt.Errorf("error writing CSV rows: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToJSON(table *entity.ReportTable, filename, outputDir string) (string, error) {
	if table == nil || table.Len() == 0 {
		return "", types.ErrEmptyReport
	}

	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(table); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToPDF(table *entity.ReportTable, filename, outputDir string) (string, error) {
	if table == nil || table.Len() == 0 {
		return "", types.ErrEmptyReport
	}

	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	// Página de resumo
	pdf.AddPage()
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Billing Report"), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Generated: %s", r.now().Format("2006-01-02 15:04:05"))), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 7, "Account ID", "B", 0, "L", false, 0, "")
	pdf.CellFormat(90, 7, "Account Name", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Items", "B", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for id, metrics := range table.All() {
		pdf.CellFormat(70, 6, tr(truncate(id, 40)), "", 0, "L", false, 0, "")
		pdf.CellFormat(90, 6, tr(truncate(metrics.DisplayName, 50)), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", metrics.Counts.Total()), "", 1, "R", false, 0, "")
	}

	// Uma página por conta
	for id, metrics := range table.All() {
		pdf.AddPage()

		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, tr("  "+truncate(metrics.DisplayName, 80)), "", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Account ID: %s", id)), "", 1, "L", true, 0, "")
		pdf.Ln(10)

		sections := map[string]*strings.Builder{}
		var order []string
		for _, key := range metrics.Keys()[1:] {
			title := sectionTitle(key)
			b, ok := sections[title]
			if !ok {
				b = &strings.Builder{}
				sections[title] = b
				order = append(order, title)
			}
			fmt.Fprintf(b, "%s: %d\n", key, metrics.Counts[key])
		}
		if len(order) == 0 {
			drawSection("Billable Items", "None")
		}
		for _, title := range order {
			drawSection(title, strings.TrimSpace(sections[title].String()))
		}
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// sectionTitle agrupa as métricas pelo tipo de recurso no PDF.
func sectionTitle(key string) string {
	switch {
	case key == "vm_transcription":
		return "Voicemail"
	case strings.HasPrefix(key, "app_store_"):
		return "App Store"
	case strings.HasPrefix(key, "did_"):
		return "Phone Numbers"
	case strings.HasPrefix(key, "devices_"):
		return "Devices"
	case strings.HasPrefix(key, "qubicle_"):
		return "Qubicle"
	default:
		return "Other"
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}
