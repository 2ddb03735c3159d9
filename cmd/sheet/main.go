// Package main is the entry point for the sheet CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Tabuleiro do Caos character sheet manager",
	Long:  `sheet manages Tabuleiro do Caos RPG character sheets: attributes, archetypes, skills, currency and progression, with derived stats recalculated on every change.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", defaultRedisAddr(), "redis address")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(setAttributeCmd)
	rootCmd.AddCommand(payCmd)
	rootCmd.AddCommand(grantXPCmd)
}

func defaultRedisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}
