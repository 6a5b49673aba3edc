package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/oceanai/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long: `Starts a Model Context Protocol (MCP) server on stdio, exposing the live
ocean charts, current readings and fact search to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		mon, err := buildMonitor(cfg)
		if err != nil {
			return err
		}
		idx, err := buildIndex(context.Background())
		if err != nil {
			return err
		}

		mon.Start()
		defer mon.Stop()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		logrus.WithFields(logrus.Fields{
			"documents": idx.Len(),
			"resample":  cfg.Intervals.Resample,
		}).Info("oceanai MCP server started on stdio")

		srv := mcpserver.NewServer(mon, idx, buildAnswerer(cfg))
		if err := srv.Serve(); err != nil {
			return fmt.Errorf("serving MCP: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
