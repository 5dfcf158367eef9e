package types

import "errors"

var (
	ErrMissingAPIURL    = errors.New("no API URL provided. Use --api-url, the config file or the interactive prompt")
	ErrMissingAPIKey    = errors.New("no API key provided. Use --api-key, the config file or the interactive prompt")
	ErrMissingAccountID = errors.New("no root account ID provided. Use --account-id, the config file or the interactive prompt")
	ErrEmptyReport      = errors.New("no data to write to report")
)
