package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/kazoo-billing-report/internal/domain/entity"
	"github.com/diillson/kazoo-billing-report/internal/shared/types"
)

func fixedRepo() *ExportRepositoryImpl {
	return &ExportRepositoryImpl{now: func() time.Time {
		return time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	}}
}

func sampleTable() *entity.ReportTable {
	root := entity.NewMetricMap(entity.RootAccountName)
	root.Counts["did_toll_free"] = 1
	root.Counts["did_local"] = 1

	child := entity.NewMetricMap("Child, Inc.")
	child.Counts["devices_sip_device"] = 3

	table := entity.NewReportTable()
	table.Set("A1", root)
	table.Set("A2", child)
	return table
}

func TestExportReportToCSV(t *testing.T) {
	t.Run("Writes union of columns with blanks", func(t *testing.T) {
		dir := t.TempDir()

		path, err := fixedRepo().ExportReportToCSV(sampleTable(), "billing_report", dir)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "billing_report_20240305_140709.csv"), path)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		records, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, []string{"acctName", "devices_sip_device", "did_local", "did_toll_free"}, records[0])
		assert.Equal(t, []string{"Root Account", "", "1", "1"}, records[1])
		assert.Equal(t, []string{"Child, Inc.", "3", "", ""}, records[2])
	})

	t.Run("Empty table produces no file", func(t *testing.T) {
		dir := t.TempDir()

		_, err := fixedRepo().ExportReportToCSV(entity.NewReportTable(), "billing_report", dir)

		assert.ErrorIs(t, err, types.ErrEmptyReport)
		entries, _ := os.ReadDir(dir)
		assert.Empty(t, entries)
	})

	t.Run("Creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "reports")

		path, err := fixedRepo().ExportReportToCSV(sampleTable(), "custom", dir)

		require.NoError(t, err)
		assert.FileExists(t, path)
	})
}

func TestExportReportToJSON(t *testing.T) {
	dir := t.TempDir()

	path, err := fixedRepo().ExportReportToJSON(sampleTable(), "billing_report", dir)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Root Account", decoded["A1"]["acctName"])
	assert.EqualValues(t, 1, decoded["A1"]["did_toll_free"])
	assert.EqualValues(t, 3, decoded["A2"]["devices_sip_device"])

	// Insertion order is kept in the file.
	assert.Less(t, strings.Index(string(raw), `"A1"`), strings.Index(string(raw), `"A2"`))
}

func TestExportReportToPDF(t *testing.T) {
	dir := t.TempDir()

	path, err := fixedRepo().ExportReportToPDF(sampleTable(), "billing_report", dir)

	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Equal(t, ".pdf", filepath.Ext(path))
}

func TestSectionTitle(t *testing.T) {
	assert.Equal(t, "Voicemail", sectionTitle("vm_transcription"))
	assert.Equal(t, "App Store", sectionTitle("app_store_callflows"))
	assert.Equal(t, "Phone Numbers", sectionTitle("did_feature_cnam"))
	assert.Equal(t, "Devices", sectionTitle("devices_unknownType"))
	assert.Equal(t, "Qubicle", sectionTitle("qubicle_queues_premium"))
	assert.Equal(t, "Other", sectionTitle("users_admin"))
}
