package main

import (
	"github.com/spf13/cobra"

	"github.com/standardbeagle/growthkit/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP tool server on stdio",
	Long: `Expose every calculator and validator as an MCP tool over stdio, for use
from agent clients. All diagnostics go to stderr so the protocol stream on
stdout stays clean.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcp.ServeStdio(mcp.NewServer(Version))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
