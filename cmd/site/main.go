package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/config"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type rootOptions struct {
	siteFile string
	envFile  string
}

func (o *rootOptions) load() (config.Config, error) {
	var opts []config.Option
	if o.envFile != "" {
		opts = append(opts, config.WithEnvFile(o.envFile))
	}
	if o.siteFile != "" {
		opts = append(opts, config.WithSiteFile(o.siteFile))
	}
	return config.Load(opts...)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "site",
		Short: "Upstash documentation landing page",
		Long: `Serve or export the Upstash documentation landing page.

The served page tints the hero heading with the colours of the
product card under the pointer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.siteFile, "config", "", "site YAML file (overrides SITE_CONFIG_FILE)")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "dotenv file to load (default .env)")

	rootCmd.AddCommand(
		serveCmd(opts),
		exportCmd(opts),
		versionCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
