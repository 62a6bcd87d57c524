package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pkgsmith/pkgsmith/pkg/licenses"
)

var licensesCmd = &cobra.Command{
	Use:   "licenses",
	Short: "List available licenses",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := licenses.NewEmbedded()

		rows := pterm.TableData{{"ID", "Name"}}
		for _, l := range store.Known() {
			rows = append(rows, []string{l.ID, l.Name})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}

var licensesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the text of a license",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := licenses.NewEmbedded().Text(args[0])
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	},
}

func init() {
	licensesCmd.AddCommand(licensesShowCmd)
}
