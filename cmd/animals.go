package cmd

import (
	"animalsctl/internal/cli"
	"animalsctl/internal/screen"

	"github.com/spf13/cobra"
)

var animalsOutputFormat string

// animalsCmd represents the animals command
var animalsCmd = &cobra.Command{
	Use:   "animals",
	Short: "List and inspect animals",
	Long: `Query animals from the Animals service.

Available commands:
  list  - List all animals
  get   - Show one animal with its gallery and facts`,
}

// animalsListCmd lists all animals
var animalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all animals",
	Args:  cobra.NoArgs,
	RunE:  runAnimalsList,
}

// animalsGetCmd shows one animal
var animalsGetCmd = &cobra.Command{
	Use:   "get <animal-id>",
	Short: "Show one animal",
	Long: `Show one animal by its id.

Use 'animalsctl animals list' to see available ids.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnimalsGet,
}

func runAnimalsList(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter(cmd, animalsOutputFormat)
	if err != nil {
		return err
	}
	application, err := newApplication(cmd, nil)
	if err != nil {
		return err
	}

	s := screen.NewAnimalList(application.Services().API, nil).Load(commandContext(cmd))
	if err := settled(s); err != nil {
		return err
	}
	return printer.Animals(s.Data)
}

func runAnimalsGet(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter(cmd, animalsOutputFormat)
	if err != nil {
		return err
	}
	application, err := newApplication(cmd, nil)
	if err != nil {
		return err
	}

	s := screen.NewAnimalDetail(application.Services().API, args[0]).Load(commandContext(cmd))
	if err := settled(s); err != nil {
		return err
	}
	return printer.Animal(s.Data)
}

func init() {
	rootCmd.AddCommand(animalsCmd)
	animalsCmd.AddCommand(animalsListCmd)
	animalsCmd.AddCommand(animalsGetCmd)

	animalsCmd.PersistentFlags().StringVarP(&animalsOutputFormat, "output", "o", string(cli.OutputFormatTable), "Output format (table, json, yaml)")
}
