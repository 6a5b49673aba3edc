package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "oceanai",
	Short: "Live ocean monitoring demo site",
	Long: `OceanAI serves the interactive ocean monitoring landing page: live
charts of simulated ARGO float readings, rotating ocean facts, the
scripted chat demo and the contact form. It also exposes the charts and
facts to AI agents via MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".oceanai.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
