// Package cli implements the discourse command line: browsing the topic
// catalog, printing or copying cards, and one-shot proposal and
// polishing requests.
package cli

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/discourse/internal/cards"
	"github.com/JaimeStill/discourse/internal/catalog"
	"github.com/JaimeStill/discourse/internal/composer"
	"github.com/JaimeStill/discourse/internal/infrastructure"
)

// App holds the systems CLI commands use.
type App struct {
	Catalog   *catalog.Catalog
	Formatter *cards.Formatter
	Composer  *composer.Composer
	Clipboard func(string) error
	Version   string
}

// NewApp builds an App from initialized infrastructure, copying to the
// system clipboard.
func NewApp(infra *infrastructure.Infrastructure, version string) *App {
	return &App{
		Catalog:   infra.Catalog,
		Formatter: infra.Formatter,
		Composer:  infra.Composer,
		Clipboard: clipboard.WriteAll,
		Version:   version,
	}
}

// NewRootCmd creates the top-level "discourse" command and registers all
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "discourse",
		Short:         "Conversation cards and AI drafting for outreach",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTopicsCmd(app),
		newModesCmd(),
		newStylesCmd(),
		newCardCmd(app),
		newProposeCmd(app),
		newPolishCmd(app),
	)

	return root
}
