package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/diillson/kazoo-billing-report/pkg/version"

	"github.com/diillson/kazoo-billing-report/internal/domain/repository"
	"github.com/diillson/kazoo-billing-report/internal/shared/types"
)

// ReportRunner executa o relatório a partir dos argumentos da CLI.
type ReportRunner interface {
	RunReport(ctx context.Context, args *types.CLIArgs) error
}

// RunnerFactory monta o runner depois que as flags foram lidas, para que logger,
// cliente HTTP e console respeitem --log-level, --page-size e --no-color.
type RunnerFactory func(args *types.CLIArgs) (ReportRunner, error)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	configRepo    repository.ConfigRepository
	runnerFactory RunnerFactory
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository) *CLIApp {
	app := &CLIApp{
		version:    versionStr,
		configRepo: configRepo,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "kazoo-billing",
		Short:         "Billable item report across a Kazoo account hierarchy",
		Version:       formattedVersion,
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "Kazoo Billing Report version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("api-url", "u", "", "Kazoo API URL (e.g., https://api.kazoo.com/v2)")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "Kazoo API key")
	rootCmd.PersistentFlags().StringP("account-id", "a", "", "Root account ID from which descendants will be processed")
	rootCmd.PersistentFlags().BoolP("include-root", "i", false, "Include the root account itself in the processing")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for the report file (default: billing_report)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Report types: csv, json, pdf (default: csv)")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Int("page-size", 0, "Page size requested from collection endpoints (default: server side)")
	rootCmd.PersistentFlags().Int("timeout", 0, "HTTP request timeout in seconds (default: 60)")
	rootCmd.PersistentFlags().String("log-level", "", "Diagnostic log level: debug, info, warn, error (default: warn)")
	rootCmd.PersistentFlags().StringToString("option", nil, "Extra key=value options forwarded to the account report")
	rootCmd.PersistentFlags().Bool("no-prompt", false, "Fail instead of prompting for missing values")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetArgs overrides os.Args, used by tests.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	apiURL, _ := flags.GetString("api-url")
	apiKey, _ := flags.GetString("api-key")
	accountID, _ := flags.GetString("account-id")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	pageSize, _ := flags.GetInt("page-size")
	timeout, _ := flags.GetInt("timeout")
	logLevel, _ := flags.GetString("log-level")
	options, _ := flags.GetStringToString("option")
	noPrompt, _ := flags.GetBool("no-prompt")
	noColor, _ := flags.GetBool("no-color")

	// Só consideramos --include-root quando informado; caso contrário vale o arquivo ou o prompt
	var includeRoot *bool
	if flags.Changed("include-root") {
		include, _ := flags.GetBool("include-root")
		includeRoot = &include
	}

	// Converte para caminho absoluto; vazio fica para o arquivo de configuração
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:  configFile,
		APIURL:      apiURL,
		APIKey:      apiKey,
		AccountID:   accountID,
		IncludeRoot: includeRoot,
		ReportName:  reportName,
		ReportType:  reportType,
		Dir:         dir,
		PageSize:    pageSize,
		Timeout:     timeout,
		LogLevel:    logLevel,
		NoPrompt:    noPrompt,
		NoColor:     noColor,
		Options:     options,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Lida com o arquivo de configuração, se especificado
	if cliArgs.ConfigFile != "" {
		cfg, err := app.configRepo.LoadConfigFile(cliArgs.ConfigFile)
		if err != nil {
			return err
		}
		cliArgs.ApplyConfig(cfg)
	}

	// Exibe o banner de boas-vindas
	displayWelcomeBanner(cliArgs.NoColor)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	runner, err := app.runnerFactory(cliArgs)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runner.RunReport(ctx, cliArgs)
}

// SetRunnerFactory sets the factory that builds the report runner.
func (app *CLIApp) SetRunnerFactory(factory RunnerFactory) {
	app.runnerFactory = factory
}
