package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	APIURL      string            `json:"api_url" yaml:"api_url" toml:"api_url"`
	APIKey      string            `json:"api_key" yaml:"api_key" toml:"api_key"`
	AccountID   string            `json:"account_id" yaml:"account_id" toml:"account_id"`
	IncludeRoot *bool             `json:"include_root" yaml:"include_root" toml:"include_root"`
	ReportName  string            `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType  []string          `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir         string            `json:"dir" yaml:"dir" toml:"dir"`
	PageSize    int               `json:"page_size" yaml:"page_size" toml:"page_size"`
	Timeout     int               `json:"timeout" yaml:"timeout" toml:"timeout"`
	LogLevel    string            `json:"log_level" yaml:"log_level" toml:"log_level"`
	Options     map[string]string `json:"options" yaml:"options" toml:"options"`
}
