package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/diillson/kazoo-billing-report/internal/domain/entity"
)

var tollFreePrefixes = map[string]struct{}{
	"+1800": {}, "+1833": {}, "+1844": {}, "+1855": {},
	"+1866": {}, "+1877": {}, "+1888": {}, "+1822": {},
}

// objectCount describes one generic resource tally. Every item adds one to
// "<resource>_<value>" for each segregation field.
type objectCount struct {
	resource    string
	segregateOn []string
	tolerant    bool
}

// users has no segregation fields, so it is fetched but never produces a key.
var objectCounts = []objectCount{
	{resource: "users"},
	{resource: "devices", segregateOn: []string{"device_type"}},
	{resource: "qubicle_queues", segregateOn: []string{"offering"}, tolerant: true},
	{resource: "qubicle_recipients", segregateOn: []string{"recipient", "offering"}, tolerant: true},
}

// CollectBillableItems builds the MetricMap of a single account. Options are accepted for
// signature compatibility with other account functions and are not read.
func (uc *BillingUseCase) CollectBillableItems(
	ctx context.Context,
	session *entity.Session,
	account entity.Account,
	_ map[string]string,
) (entity.MetricMap, error) {
	items := entity.NewMetricMap(account.Name)
	base := "/accounts/" + url.PathEscape(account.ID)

	transcriptions, err := uc.countTranscriptions(ctx, session, base)
	if err != nil {
		return entity.MetricMap{}, fmt.Errorf("error counting voicemail transcriptions: %w", err)
	}
	items.Counts.Merge(transcriptions)

	apps, err := uc.countAppStore(ctx, session, base)
	if err != nil {
		return entity.MetricMap{}, fmt.Errorf("error counting app store installs: %w", err)
	}
	items.Counts.Merge(apps)

	numbers, err := uc.countPhoneNumbers(ctx, session, base)
	if err != nil {
		return entity.MetricMap{}, fmt.Errorf("error counting phone numbers: %w", err)
	}
	items.Counts.Merge(numbers)

	for _, oc := range objectCounts {
		counts, err := uc.countObjects(ctx, session, base, oc.resource, oc.segregateOn)
		if err != nil {
			if !oc.tolerant {
				return entity.MetricMap{}, fmt.Errorf("error counting %s: %w", oc.resource, err)
			}
			uc.console.LogWarning("Error processing %s: %s", oc.resource, err)
			uc.logger.Warn("skipping resource",
				zap.String("account_id", account.ID),
				zap.String("resource", oc.resource),
				zap.Error(err),
			)
			continue
		}
		items.Counts.Merge(counts)
	}

	return items, nil
}

// each applies fn to every record of a collection, stopping at the first fetch error.
func (uc *BillingUseCase) each(
	ctx context.Context,
	session *entity.Session,
	path string,
	query url.Values,
	fn func(entity.Record),
) error {
	for rec, err := range uc.platformRepo.PagedFetch(ctx, session, http.MethodGet, path, query) {
		if err != nil {
			return err
		}
		fn(rec)
	}
	return nil
}

func (uc *BillingUseCase) countTranscriptions(ctx context.Context, session *entity.Session, base string) (entity.Counts, error) {
	query := url.Values{
		"has_key":           {"transcribe"},
		"filter_transcribe": {"true"},
	}
	total := 0
	err := uc.each(ctx, session, base+"/vmboxes", query, func(entity.Record) {
		total++
	})
	if err != nil {
		return nil, err
	}
	return entity.Counts{"vm_transcription": total}, nil
}

func (uc *BillingUseCase) countAppStore(ctx context.Context, session *entity.Session, base string) (entity.Counts, error) {
	counts := entity.Counts{}
	err := uc.each(ctx, session, base+"/apps_store", nil, func(app entity.Record) {
		name, ok := app.String("name")
		if !ok {
			name = entity.UnknownType
		}
		counts.Inc("app_store_" + name)
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (uc *BillingUseCase) countPhoneNumbers(ctx context.Context, session *entity.Session, base string) (entity.Counts, error) {
	counts := entity.Counts{}
	err := uc.each(ctx, session, base+"/phone_numbers", nil, func(page entity.Record) {
		numbers, ok := page.Object("numbers")
		if !ok {
			numbers = page
		}
		for number := range numbers {
			if isTollFree(number) {
				counts.Inc("did_toll_free")
			} else {
				counts.Inc("did_local")
			}

			details, _ := numbers.Object(number)
			for _, feature := range details.Strings("features") {
				counts.Inc("did_feature_" + feature)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func isTollFree(number string) bool {
	prefix := number
	if len(prefix) > 5 {
		prefix = prefix[:5]
	}
	_, ok := tollFreePrefixes[prefix]
	return ok
}

// countObjects tallies a resource collection by segregation field values. A partially
// read collection returns no counts.
func (uc *BillingUseCase) countObjects(
	ctx context.Context,
	session *entity.Session,
	base, resource string,
	segregateOn []string,
) (entity.Counts, error) {
	counts := entity.Counts{}
	err := uc.each(ctx, session, base+"/"+resource, nil, func(item entity.Record) {
		for _, field := range segregateOn {
			value, ok := item.String(field)
			if !ok {
				value = entity.UnknownType
			}
			counts.Inc(resource + "_" + value)
		}
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
