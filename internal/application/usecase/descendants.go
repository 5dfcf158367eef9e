package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/diillson/kazoo-billing-report/internal/domain/entity"
)

// AccountFunc is applied to every account visited by RunForAllDescendants.
type AccountFunc func(ctx context.Context, session *entity.Session, account entity.Account, options map[string]string) (entity.MetricMap, error)

// RunForAllDescendants aplica fn à conta raiz (opcional) e a cada descendente, em sequência.
// O primeiro erro interrompe a execução.
func (uc *BillingUseCase) RunForAllDescendants(
	ctx context.Context,
	session *entity.Session,
	rootID string,
	includeRoot bool,
	fn AccountFunc,
	options map[string]string,
) (*entity.ReportTable, error) {
	table := entity.NewReportTable()

	status := uc.console.Status("Collecting billable items...")
	defer status.Stop()

	process := func(account entity.Account) error {
		status.Update(fmt.Sprintf("Processing account %s (%s)...", account.Name, account.ID))
		uc.logger.Debug("processing account",
			zap.String("account_id", account.ID),
			zap.String("name", account.Name),
		)

		metrics, err := fn(ctx, session, account, options)
		if err != nil {
			return fmt.Errorf("error processing account %s: %w", account.ID, err)
		}
		table.Set(account.ID, metrics)
		return nil
	}

	if includeRoot {
		if err := process(entity.Account{ID: rootID, Name: entity.RootAccountName}); err != nil {
			return nil, err
		}
	}

	path := "/accounts/" + url.PathEscape(rootID) + "/descendants"
	for rec, err := range uc.platformRepo.PagedFetch(ctx, session, http.MethodGet, path, nil) {
		if err != nil {
			return nil, fmt.Errorf("error listing descendants of %s: %w", rootID, err)
		}

		id, _ := rec.String("id")
		if id == "" {
			continue
		}
		name, _ := rec.String("name")

		if err := process(entity.Account{ID: id, Name: name}); err != nil {
			return nil, err
		}
	}

	return table, nil
}
