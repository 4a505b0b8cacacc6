// Package main is the entry point for the mech armor gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mech-armor-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "mech-armor-api",
	Short: "Mech armor gRPC server",
	Long:  `Mech armor API provides a gRPC interface for allocating, validating and saving BattleMech armor.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
