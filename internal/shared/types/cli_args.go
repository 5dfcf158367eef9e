package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile  string
	APIURL      string
	APIKey      string
	AccountID   string
	IncludeRoot *bool
	ReportName  string
	ReportType  []string
	Dir         string
	PageSize    int
	Timeout     int
	LogLevel    string
	NoPrompt    bool
	NoColor     bool
	Options     map[string]string
}

// ApplyConfig copies file values into the arguments wherever no flag was given.
func (a *CLIArgs) ApplyConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	if a.APIURL == "" {
		a.APIURL = cfg.APIURL
	}
	if a.APIKey == "" {
		a.APIKey = cfg.APIKey
	}
	if a.AccountID == "" {
		a.AccountID = cfg.AccountID
	}
	if a.IncludeRoot == nil && cfg.IncludeRoot != nil {
		include := *cfg.IncludeRoot
		a.IncludeRoot = &include
	}
	if a.ReportName == "" {
		a.ReportName = cfg.ReportName
	}
	if len(a.ReportType) == 0 {
		a.ReportType = append([]string(nil), cfg.ReportType...)
	}
	if a.Dir == "" {
		a.Dir = cfg.Dir
	}
	if a.PageSize == 0 {
		a.PageSize = cfg.PageSize
	}
	if a.Timeout == 0 {
		a.Timeout = cfg.Timeout
	}
	if a.LogLevel == "" {
		a.LogLevel = cfg.LogLevel
	}
	if len(cfg.Options) > 0 {
		merged := make(map[string]string, len(cfg.Options)+len(a.Options))
		for k, v := range cfg.Options {
			merged[k] = v
		}
		for k, v := range a.Options {
			merged[k] = v
		}
		a.Options = merged
	}
}
