package cmd

import (
	"animalsctl/internal/cli"
	"animalsctl/internal/screen"

	"github.com/spf13/cobra"
)

var environmentsOutputFormat string

// environmentsCmd represents the environments command
var environmentsCmd = &cobra.Command{
	Use:     "environments",
	Aliases: []string{"env"},
	Short:   "List and inspect environments",
	Long: `Query environments from the Animals service.

Available commands:
  list  - List all environments
  get   - Show one environment and the animals living in it`,
}

// environmentsListCmd lists all environments
var environmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all environments",
	Args:  cobra.NoArgs,
	RunE:  runEnvironmentsList,
}

// environmentsGetCmd shows one environment
var environmentsGetCmd = &cobra.Command{
	Use:   "get <environment-id>",
	Short: "Show one environment with its animals",
	Long: `Show one environment by its id, followed by the animals that live in it.

Use 'animalsctl environments list' to see available ids.`,
	Args: cobra.ExactArgs(1),
	RunE: runEnvironmentsGet,
}

func runEnvironmentsList(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter(cmd, environmentsOutputFormat)
	if err != nil {
		return err
	}
	application, err := newApplication(cmd, nil)
	if err != nil {
		return err
	}

	s := screen.NewEnvironmentList(application.Services().API, nil).Load(commandContext(cmd))
	if err := settled(s); err != nil {
		return err
	}
	return printer.Environments(s.Data)
}

func runEnvironmentsGet(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter(cmd, environmentsOutputFormat)
	if err != nil {
		return err
	}
	application, err := newApplication(cmd, nil)
	if err != nil {
		return err
	}

	s := screen.NewEnvironmentDetail(application.Services().API, args[0], nil).Load(commandContext(cmd))
	if err := settled(s); err != nil {
		return err
	}
	return printer.EnvironmentDetail(s.Data)
}

func init() {
	rootCmd.AddCommand(environmentsCmd)
	environmentsCmd.AddCommand(environmentsListCmd)
	environmentsCmd.AddCommand(environmentsGetCmd)

	environmentsCmd.PersistentFlags().StringVarP(&environmentsOutputFormat, "output", "o", string(cli.OutputFormatTable), "Output format (table, json, yaml)")
}
