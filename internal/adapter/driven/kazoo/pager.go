package kazoo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/diillson/kazoo-billing-report/internal/domain/entity"
)

var errNoSession = errors.New("no authenticated session")

// PagedFetch percorre um endpoint paginado até o fim, seguindo next_start_key.
func (r *KazooRepositoryImpl) PagedFetch(
	ctx context.Context,
	session *entity.Session,
	method, path string,
	query url.Values,
) iter.Seq2[entity.Record, error] {
	return func(yield func(entity.Record, error) bool) {
		if session == nil {
			yield(nil, errNoSession)
			return
		}

		params := url.Values{}
		for k, v := range query {
			params[k] = append([]string(nil), v...)
		}
		if r.pageSize > 0 {
			params.Set("page_size", strconv.Itoa(r.pageSize))
		}

		for page := 1; ; page++ {
			endpoint := session.BaseURL + path
			if encoded := params.Encode(); encoded != "" {
				endpoint += "?" + encoded
			}

			var env envelope
			if err := r.do(ctx, method, endpoint, session.AuthToken, nil, &env); err != nil {
				yield(nil, err)
				return
			}

			items, err := pageItems(env.Data)
			if err != nil {
				yield(nil, fmt.Errorf("error reading page %d of %s: %w", page, path, err))
				return
			}

			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}

			next := startKey(env.NextStartKey)
			r.logger.Debug("page fetched",
				zap.String("path", path),
				zap.Int("page", page),
				zap.Int("items", len(items)),
				zap.String("next_start_key", next),
			)

			// A repeated start key would loop forever.
			if len(items) == 0 || next == "" || next == params.Get("start_key") {
				return
			}
			params.Set("start_key", next)
		}
	}
}

// pageItems flattens the data field of a page. Lists yield their object elements,
// a single object is yielded as one record.
func pageItems(data json.RawMessage) ([]entity.Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	switch trimmed[0] {
	case '[':
		var list []any
		if err := dec.Decode(&list); err != nil {
			return nil, err
		}
		items := make([]entity.Record, 0, len(list))
		for _, v := range list {
			if obj, ok := v.(map[string]any); ok {
				items = append(items, entity.Record(obj))
			}
		}
		return items, nil
	case '{':
		var obj map[string]any
		if err := dec.Decode(&obj); err != nil {
			return nil, err
		}
		return []entity.Record{obj}, nil
	default:
		return nil, fmt.Errorf("unexpected data payload %.32q", string(trimmed))
	}
}

// startKey renders next_start_key as a query value. Strings are unquoted, other JSON
// values (numbers, compound keys) are passed through verbatim.
func startKey(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}
