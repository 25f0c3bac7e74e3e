package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plebishub/plebisadmin/internal/admin/footer"
	"github.com/plebishub/plebisadmin/internal/config"
	"github.com/plebishub/plebisadmin/internal/server"
	"github.com/plebishub/plebisadmin/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		pretty    bool
		configDir string
	)

	cmd := &cobra.Command{
		Use:   "render footer|dashboard",
		Short: "Print the HTML of an admin view",
		Long: `Render an admin view to stdout without starting the server.

Examples:
  plebisadmin render footer
  plebisadmin render dashboard --pretty`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"footer", "dashboard"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configDir)
			if err != nil {
				return err
			}
			r := render.NewRenderer(render.RendererConfig{Pretty: pretty})
			out := cmd.OutOrStdout()

			switch args[0] {
			case "footer":
				html, err := r.RenderComponent(footer.New())
				if err != nil {
					return err
				}
				fmt.Fprintln(out, html)
				return nil
			case "dashboard":
				return r.RenderPage(out, server.DashboardPage(cfg.Site.Title, cfg.Site.Lang))
			default:
				return fmt.Errorf("unknown view %q (want footer or dashboard)", args[0])
			}
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")
	cmd.Flags().StringVarP(&configDir, "config", "c", ".", "Directory containing plebisadmin.json")

	return cmd
}
