// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command typack packs a Typst package: it generates public export facades
// from annotated implementation files, substitutes package metadata into
// the README, and assembles the versioned distribution directory.
// Implements: prd009-technology-stack R4.1-R4.8;
//
//	docs/ARCHITECTURE § Project Structure.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "typack",
		Short: "Typst package publishing helper",
		Long: "typack scans annotated implementation files under src/_impl, generates the\n" +
			"public export facades, rewrites the README from its template, and assembles\n" +
			"packed/<version> for submission to the Typst packages repository.\n\n" +
			"With no subcommand it runs the full pipeline against the project directory.",
		RunE:          runPack,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().StringP("project", "C", ".", "Package root directory")
	rootCmd.PersistentFlags().Bool("check", false, "Report out-of-date facades without writing")
	rootCmd.PersistentFlags().Bool("prune", false, "Remove stale generated facades")
	rootCmd.PersistentFlags().Bool("no-git", false, "Skip the dirty-worktree warning")

	// Bind flags to viper.
	viper.BindPFlag("project", rootCmd.PersistentFlags().Lookup("project"))
	viper.BindPFlag("check", rootCmd.PersistentFlags().Lookup("check"))
	viper.BindPFlag("prune", rootCmd.PersistentFlags().Lookup("prune"))
	viper.BindPFlag("no-git", rootCmd.PersistentFlags().Lookup("no-git"))

	// Env vars: TYPACK_PROJECT, TYPACK_PRUNE, etc.
	viper.SetEnvPrefix("TYPACK")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".typack")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newReadmeCmd())
	rootCmd.AddCommand(newDistCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print typack version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("typack %s\n", version)
		},
	}
}
