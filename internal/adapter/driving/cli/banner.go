package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/kazoo-billing-report/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(noColor bool) {
	banner := `
     _  __                         ____  _ _ _ _
    | |/ /__ _ _______   ___      | __ )(_) | (_)_ __   __ _
    | ' // _' |_  / _ \ / _ \     |  _ \| | | | | '_ \ / _' |
    | . \ (_| |/ / (_) | (_) |    | |_) | | | | | | | | (_| |
    |_|\_\__,_/___\___/ \___/     |____/|_|_|_|_|_| |_|\__, |
                                                       |___/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()
	if noColor {
		red, blue = fmt.Sprint, fmt.Sprint
	}

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Kazoo Billing Report CLI (v%s)", formattedVersion)))
}
