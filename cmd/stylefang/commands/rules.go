package commands

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/stylefang/pkg/config"
)

// NewRulesCommand creates the rules listing command.
func NewRulesCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the registered checkers",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			registry := NewRegistry(cfg)

			tbl := table.NewWriter()
			tbl.SetOutputMirror(os.Stdout)
			tbl.AppendHeader(table.Row{"Checker", "Description"})

			for _, name := range registry.Names() {
				checker, _ := registry.Get(name)
				tbl.AppendRow(table.Row{name, checker.Description()})
			}

			tbl.SetStyle(table.StyleLight)
			tbl.Render()

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default: stylefang.yaml)")

	return cmd
}
