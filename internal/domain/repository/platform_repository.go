package repository

import (
	"context"
	"iter"
	"net/url"

	"github.com/diillson/kazoo-billing-report/internal/domain/entity"
)

// PlatformRepository defines the interface for telephony platform API interactions.
type PlatformRepository interface {
	// Authenticate exchanges an API key for a session.
	Authenticate(ctx context.Context, baseURL, apiKey string) (*entity.Session, error)

	// PagedFetch reads a paged collection endpoint until exhaustion. The returned sequence
	// issues its requests lazily and again on every traversal. A failed request is yielded
	// once as an error and ends the sequence.
	PagedFetch(ctx context.Context, session *entity.Session, method, path string, query url.Values) iter.Seq2[entity.Record, error]
}
