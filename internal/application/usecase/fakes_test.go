package usecase

import (
	"context"
	"fmt"
	"iter"
	"net/url"

	"github.com/diillson/kazoo-billing-report/internal/domain/entity"
	"github.com/diillson/kazoo-billing-report/internal/shared/types"
)

// fakePlatform serves canned records per path. An error registered for a path is
// yielded after that path's records.
type fakePlatform struct {
	pages   map[string][]entity.Record
	errs    map[string]error
	authErr error
	calls   []string
	queries map[string]url.Values
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		pages:   map[string][]entity.Record{},
		errs:    map[string]error{},
		queries: map[string]url.Values{},
	}
}

func (f *fakePlatform) Authenticate(_ context.Context, baseURL, apiKey string) (*entity.Session, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	return &entity.Session{BaseURL: baseURL, AuthToken: "token-" + apiKey}, nil
}

func (f *fakePlatform) PagedFetch(_ context.Context, _ *entity.Session, _ string, path string, query url.Values) iter.Seq2[entity.Record, error] {
	return func(yield func(entity.Record, error) bool) {
		f.calls = append(f.calls, path)
		f.queries[path] = query
		for _, rec := range f.pages[path] {
			if !yield(rec, nil) {
				return
			}
		}
		if err := f.errs[path]; err != nil {
			yield(nil, err)
		}
	}
}

type fakeStatus struct{ updates []string }

func (s *fakeStatus) Update(message string) { s.updates = append(s.updates, message) }
func (s *fakeStatus) Stop()                 {}

type fakeTable struct {
	columns []string
	rows    [][]interface{}
}

func (t *fakeTable) AddColumn(name string, _ ...interface{}) { t.columns = append(t.columns, name) }
func (t *fakeTable) AddRow(cells ...interface{})             { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string                          { return fmt.Sprint(t.columns, t.rows) }

type fakeConsole struct {
	printed  []string
	infos    []string
	warnings []string
	errors   []string
	success  []string
	status   *fakeStatus
	tables   []*fakeTable
}

func newFakeConsole() *fakeConsole {
	return &fakeConsole{status: &fakeStatus{}}
}

func (c *fakeConsole) Print(a ...interface{}) { c.printed = append(c.printed, fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{}) {
	c.printed = append(c.printed, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Println(a ...interface{}) { c.printed = append(c.printed, fmt.Sprintln(a...)) }
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Status(message string) types.StatusHandle {
	c.status.updates = append(c.status.updates, message)
	return c.status
}
func (c *fakeConsole) CreateTable() types.TableInterface {
	t := &fakeTable{}
	c.tables = append(c.tables, t)
	return t
}

type exportCall struct {
	kind     string
	filename string
	dir      string
}

type fakeExport struct {
	calls []exportCall
	err   error
}

func (e *fakeExport) record(kind string, filename, dir string) (string, error) {
	e.calls = append(e.calls, exportCall{kind: kind, filename: filename, dir: dir})
	if e.err != nil {
		return "", e.err
	}
	return dir + "/" + filename + "." + kind, nil
}

func (e *fakeExport) ExportReportToCSV(_ *entity.ReportTable, filename, dir string) (string, error) {
	return e.record("csv", filename, dir)
}
func (e *fakeExport) ExportReportToJSON(_ *entity.ReportTable, filename, dir string) (string, error) {
	return e.record("json", filename, dir)
}
func (e *fakeExport) ExportReportToPDF(_ *entity.ReportTable, filename, dir string) (string, error) {
	return e.record("pdf", filename, dir)
}

type fakePrompt struct {
	texts   []string
	secrets []string
	confirm bool
	asked   []string
}

func (p *fakePrompt) Text(message string) (string, error) {
	p.asked = append(p.asked, message)
	if len(p.texts) == 0 {
		return "", nil
	}
	answer := p.texts[0]
	p.texts = p.texts[1:]
	return answer, nil
}

func (p *fakePrompt) Secret(message string) (string, error) {
	p.asked = append(p.asked, message)
	if len(p.secrets) == 0 {
		return "", nil
	}
	answer := p.secrets[0]
	p.secrets = p.secrets[1:]
	return answer, nil
}

func (p *fakePrompt) Confirm(message string, _ bool) (bool, error) {
	p.asked = append(p.asked, message)
	return p.confirm, nil
}

type fixture struct {
	platform *fakePlatform
	export   *fakeExport
	prompt   *fakePrompt
	console  *fakeConsole
	uc       *BillingUseCase
}

func newFixture() *fixture {
	f := &fixture{
		platform: newFakePlatform(),
		export:   &fakeExport{},
		prompt:   &fakePrompt{},
		console:  newFakeConsole(),
	}
	f.uc = NewBillingUseCase(f.platform, f.export, f.prompt, f.console, nil)
	return f
}

func records(items ...map[string]any) []entity.Record {
	out := make([]entity.Record, len(items))
	for i, item := range items {
		out[i] = entity.Record(item)
	}
	return out
}
