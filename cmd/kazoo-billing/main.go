package main

import (
	"fmt"
	"os"
	"time"

	"github.com/diillson/kazoo-billing-report/internal/adapter/driven/config"
	"github.com/diillson/kazoo-billing-report/internal/adapter/driven/export"
	"github.com/diillson/kazoo-billing-report/internal/adapter/driven/kazoo"
	"github.com/diillson/kazoo-billing-report/internal/adapter/driven/prompt"
	"github.com/diillson/kazoo-billing-report/internal/adapter/driving/cli"
	"github.com/diillson/kazoo-billing-report/internal/application/usecase"
	"github.com/diillson/kazoo-billing-report/internal/shared/types"
	"github.com/diillson/kazoo-billing-report/pkg/console"
	"github.com/diillson/kazoo-billing-report/pkg/logger"
	"github.com/diillson/kazoo-billing-report/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, config.NewConfigRepository())

	// Os repositórios dependem das flags, então são montados depois do parse
	app.SetRunnerFactory(func(args *types.CLIArgs) (cli.ReportRunner, error) {
		log, err := logger.NewLogger(args.LogLevel)
		if err != nil {
			return nil, err
		}

		var consoleOpts []console.Option
		if args.NoColor {
			consoleOpts = append(consoleOpts, console.WithoutColor())
		}
		if args.NoPrompt {
			consoleOpts = append(consoleOpts, console.WithoutSpinner())
		}

		platformRepo := kazoo.NewKazooRepository(kazoo.Config{
			PageSize: args.PageSize,
			Timeout:  time.Duration(args.Timeout) * time.Second,
			Logger:   log,
		})

		return usecase.NewBillingUseCase(
			platformRepo,
			export.NewExportRepository(),
			prompt.NewPromptRepository(),
			console.NewConsole(consoleOpts...),
			log,
		), nil
	})

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
