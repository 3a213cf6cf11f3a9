package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/pulseboard/internal/compose"
	"github.com/sells-group/pulseboard/internal/mockdata"
	"github.com/sells-group/pulseboard/internal/model"
	"github.com/sells-group/pulseboard/internal/registry"
)

var (
	renderOut   string
	renderTheme string
	renderTab   string
)

var renderCmd = &cobra.Command{
	Use:   "render <vertical-id>",
	Short: "Render a vertical's dashboard to a standalone HTML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.Open(cfg.Catalog.Path)
		if err != nil {
			return err
		}

		v, ok := reg.Lookup(args[0])
		if !ok {
			return eris.Errorf("render: unknown vertical %q", args[0])
		}

		theme, err := model.ParseThemeMode(renderTheme)
		if err != nil {
			return eris.Wrap(err, "render: parse theme")
		}

		dashCfg := mockdata.Dashboard(v)
		state := compose.NewState(dashCfg)
		if renderTab != "" {
			state, err = compose.SwitchTab(dashCfg, state, renderTab)
			if err != nil {
				return err
			}
		}

		page, err := compose.Compose(dashCfg, state, theme)
		if err != nil {
			return err
		}
		html, err := page.HTML()
		if err != nil {
			return err
		}

		if renderOut == "" || renderOut == "-" {
			_, err = cmd.OutOrStdout().Write([]byte(html))
			return err
		}
		if err := os.WriteFile(renderOut, []byte(html), 0o644); err != nil {
			return eris.Wrap(err, "render: write output")
		}
		zap.L().Info("render: wrote dashboard",
			zap.String("vertical", v.ID),
			zap.String("path", renderOut),
		)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output path (default stdout)")
	renderCmd.Flags().StringVar(&renderTheme, "theme", "light", "theme: light or dark")
	renderCmd.Flags().StringVar(&renderTab, "tab", "", "tab to activate (default first)")
	rootCmd.AddCommand(renderCmd)
}
