package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/export"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/observability"
)

func exportCmd(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the landing page and assets as static files",
		Long: `Render index.html without hover interaction and copy the bundled
assets next to it. Fails when the page references a missing asset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger, err := observability.NewLogger(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			result, err := export.Run(observability.WithLogger(cmd.Context(), logger), export.Options{
				OutDir: out,
				Site:   cfg.Site,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d files to %s\n", len(result.Files), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	return cmd
}
