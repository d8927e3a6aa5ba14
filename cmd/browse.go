package cmd

import (
	"animalsctl/internal/app"

	"github.com/spf13/cobra"
)

var browseTab string

// browseCmd starts the interactive terminal UI.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse animals and environments interactively",
	Long: `Starts the interactive terminal UI.

The Animals and Environments tabs list everything the service knows about.
Press enter to open an item, esc to go back, r to reload the current screen,
y / Y to copy the selected id / image URL and ? for all key bindings.

Every screen fetches fresh data each time it is shown.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	application, err := newApplication(cmd, func(cfg *app.Config) {
		cfg.StartTab = browseTab
	})
	if err != nil {
		return err
	}
	return application.Run(commandContext(cmd))
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVar(&browseTab, "tab", "", "Tab to open first: animals or environments (overrides ui.startTab)")
}
