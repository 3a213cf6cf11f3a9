package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/pulseboard/internal/model"
	"github.com/sells-group/pulseboard/internal/registry"
)

var verticalsCmd = &cobra.Command{
	Use:   "verticals",
	Short: "Inspect the vertical catalog",
	Long:  "Commands for listing and viewing the registered industry verticals.",
}

// -- verticals list --

var verticalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered verticals",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := registry.Open(cfg.Catalog.Path)
		if err != nil {
			return err
		}

		feature, _ := cmd.Flags().GetString("feature")
		regulation, _ := cmd.Flags().GetString("regulation")

		var verticals []model.VerticalModule
		switch {
		case feature != "":
			verticals = reg.FilterByFeature(feature)
		case regulation != "":
			verticals = reg.FilterByRegulation(regulation)
		default:
			verticals = reg.List()
		}

		if len(verticals) == 0 {
			fmt.Fprintln(os.Stderr, "No verticals found.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tUSE CASES\tMETRICS\tREGULATIONS")
		for _, v := range verticals {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
				v.ID, v.Name, len(v.UseCases), len(v.Metrics),
				strings.Join(v.Regulations, ", "),
			)
		}
		return w.Flush()
	},
}

// -- verticals show --

var verticalsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one vertical as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.Open(cfg.Catalog.Path)
		if err != nil {
			return err
		}

		v, ok := reg.Lookup(args[0])
		if !ok {
			return eris.Errorf("verticals show: unknown vertical %q", args[0])
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	},
}

func init() {
	verticalsListCmd.Flags().String("feature", "", "filter by feature substring")
	verticalsListCmd.Flags().String("regulation", "", "filter by regulation substring")

	verticalsCmd.AddCommand(verticalsListCmd)
	verticalsCmd.AddCommand(verticalsShowCmd)
	rootCmd.AddCommand(verticalsCmd)
}
