package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Zachkp/portfolio/config"
	"github.com/Zachkp/portfolio/internal/site"
	"github.com/Zachkp/portfolio/web"
)

var (
	exportOut      string
	exportEndpoint string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the page and its assets as static files",
	Long: `Render index.html with every section and copy the static assets into a
directory ready for static hosting. The contact form in the exported page
posts to --endpoint, which should be a running "portfolio serve".

Examples:
  portfolio export --out dist
  portfolio export --out dist --endpoint https://api.example.com/contact`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "Output directory")
	exportCmd.Flags().StringVar(&exportEndpoint, "endpoint", site.DefaultContactEndpoint, "URL the contact form posts to")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	s, err := site.New(web.FS, nil)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	if err := s.Export(exportOut, site.ExportOptions{
		ContactEndpoint: exportEndpoint,
		BannerDuration:  cfg.App.BannerDuration,
	}); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported site to %s\n", exportOut)
	return nil
}
