// Package cmd implements the CLI commands for the keja-match server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "keja-match",
	Short: "Rent-to-own property matching service for the Kenyan market",
	Long:  "An API-first service that ingests property listings from partner feeds, maintains per-location market statistics, scores listings against buyer preferences and income, and handles rent-to-own application intake.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
