// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd009-technology-stack R4.3-R4.8.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/typack/internal/dist"
	"github.com/petar-djukic/typack/internal/export"
	"github.com/petar-djukic/typack/internal/manifest"
	"github.com/petar-djukic/typack/internal/readme"
	"github.com/petar-djukic/typack/internal/scaffold"
	"github.com/petar-djukic/typack/pkg/packer"
)

// runPack executes the full pipeline: export, readme, dist.
func runPack(cmd *cobra.Command, args []string) error {
	cfg := packer.Config{
		ProjectDir: viper.GetString("project"),
		Check:      viper.GetBool("check"),
		Prune:      viper.GetBool("prune"),
		NoGit:      viper.GetBool("no-git"),
	}

	p, err := packer.New(cfg)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	result, err := p.Pack()
	if err != nil {
		return err
	}
	if cfg.Check {
		fmt.Println("All facades are up to date.")
		return nil
	}

	fmt.Printf("Package `%s:%s` packed successfully.\n", result.PackageName, result.PackageVersion)
	fmt.Println("Now copy it to Typst's `packages` repository and submit a PR.")
	return nil
}

// newExportCmd creates the "export" command, running facade generation only.
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Generate export facades from src/_impl",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir := viper.GetString("project")
			result, err := export.Run(projectDir, export.Options{
				Check: viper.GetBool("check"),
				Prune: viper.GetBool("prune"),
			})
			if err != nil {
				return err
			}
			if viper.GetBool("check") && len(result.Drifted) > 0 {
				return packer.ErrDrift
			}
			return nil
		},
	}
}

// newReadmeCmd creates the "readme" command, regenerating README.md only.
func newReadmeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "readme",
		Short: "Regenerate README.md from README.orig.md",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir := viper.GetString("project")
			if err := export.EnsureProject(projectDir); err != nil {
				return err
			}
			m, err := manifest.Load(projectDir)
			if err != nil {
				return err
			}
			return readme.Generate(projectDir, m)
		},
	}
}

// newDistCmd creates the "dist" command, assembling packed/<version> only.
func newDistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dist",
		Short: "Assemble the packed/<version> distribution directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir := viper.GetString("project")
			if err := export.EnsureProject(projectDir); err != nil {
				return err
			}
			m, err := manifest.Load(projectDir)
			if err != nil {
				return err
			}
			target, err := dist.Assemble(projectDir, m)
			if err != nil {
				return err
			}
			fmt.Printf("Assembled `%s`.\n", target)
			return nil
		},
	}
}

// newNewCmd creates the "new" command, scaffolding a fresh package.
func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <dir> [name]",
		Short: "Create a new Typst package skeleton",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 1 {
				name = args[1]
			}
			if err := scaffold.Create(args[0], name); err != nil {
				return err
			}
			fmt.Printf("Created package skeleton in `%s`.\n", args[0])
			return nil
		},
	}
}
