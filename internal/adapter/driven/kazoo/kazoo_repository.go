package kazoo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/diillson/kazoo-billing-report/internal/domain/entity"
	"github.com/diillson/kazoo-billing-report/internal/domain/repository"
	"github.com/diillson/kazoo-billing-report/internal/shared/types"
)

const defaultTimeout = 60 * time.Second

// Config holds the settings of the Kazoo API adapter.
type Config struct {
	HTTPClient *http.Client
	PageSize   int
	Timeout    time.Duration
	Logger     *zap.Logger
}

// KazooRepositoryImpl implementa o PlatformRepository sobre a API REST v2 do Kazoo.
type KazooRepositoryImpl struct {
	httpClient *http.Client
	pageSize   int
	logger     *zap.Logger
}

// NewKazooRepository cria uma nova implementação do PlatformRepository.
func NewKazooRepository(cfg Config) repository.PlatformRepository {
	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KazooRepositoryImpl{
		httpClient: client,
		pageSize:   cfg.PageSize,
		logger:     logger,
	}
}

// envelope is the response wrapper shared by every Kazoo endpoint.
type envelope struct {
	AuthToken    string          `json:"auth_token"`
	Data         json.RawMessage `json:"data"`
	NextStartKey json.RawMessage `json:"next_start_key"`
	Status       string          `json:"status"`
	Message      string          `json:"message"`
}

// Authenticate troca uma API key por um auth token.
func (r *KazooRepositoryImpl) Authenticate(ctx context.Context, baseURL, apiKey string) (*entity.Session, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, types.ErrMissingAPIURL
	}
	if apiKey == "" {
		return nil, types.ErrMissingAPIKey
	}

	payload := map[string]any{"data": map[string]string{"api_key": apiKey}}

	var env envelope
	if err := r.do(ctx, http.MethodPut, baseURL+"/api_auth", "", payload, &env); err != nil {
		return nil, fmt.Errorf("error authenticating against %s: %w", baseURL, err)
	}

	var data struct {
		AccountID string `json:"account_id"`
		AuthToken string `json:"auth_token"`
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, fmt.Errorf("error decoding authentication response: %w", err)
		}
	}

	token := env.AuthToken
	if token == "" {
		token = data.AuthToken
	}
	if token == "" {
		return nil, errors.New("authentication response did not include an auth token")
	}

	r.logger.Debug("authenticated", zap.String("base_url", baseURL), zap.String("account_id", data.AccountID))

	return &entity.Session{
		BaseURL:   baseURL,
		AuthToken: token,
		AccountID: data.AccountID,
	}, nil
}

func (r *KazooRepositoryImpl) do(ctx context.Context, method, endpoint, token string, body any, out *envelope) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("error building request %s %s: %w", method, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Auth-Token", token)
	}

	start := time.Now()
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response from %s: %w", endpoint, err)
	}

	r.logger.Debug("kazoo request",
		zap.String("method", method),
		zap.String("url", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(raw)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(method, endpoint, resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("error decoding response from %s: %w", endpoint, err)
	}
	return nil
}
