// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"log"
	"log/slog"

	"github.com/AleutianAI/surreal/pkg/logging"
	"github.com/AleutianAI/surreal/pkg/ux"
	"github.com/spf13/cobra"
)

var config Config

var (
	// --- Global flags ---
	personalityLevel string
	configPath       string
	logLevelFlag     string

	// --- Genesis flags ---
	genesisFull    bool
	genesisWorkers int
	genesisPrint   bool

	// --- Multiply flags ---
	multiplyTables bool

	// --- Convert flags ---
	convertVerbose bool
	convertDepth   int

	// --- Infinite flags ---
	infiniteWidth int

	rootCmd = &cobra.Command{
		Use:   "surreal",
		Short: "Explore Conway's surreal numbers from the command line",
		Long: `surreal is an interactive playground for Conway's surreal numbers.

A surreal number is a pair of option sets { L | R } where every member
of L is less than every member of R. Starting from { | } on day zero,
each day constructs new numbers out of the ones already known. The
subcommands walk that construction, multiply integers through the
memoized arithmetic engine, convert floats into surreal form, and
sketch the first transfinite numbers.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			loaded, err := loadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				log.Fatalf("Error loading config: %v", err)
			}
			config = loaded

			// Flag beats config file beats terminal detection.
			switch {
			case personalityLevel != "":
				ux.SetPersonalityLevel(ux.ParsePersonalityLevel(personalityLevel))
			case config.Personality != "":
				ux.SetPersonalityLevel(ux.ParsePersonalityLevel(config.Personality))
			default:
				ux.InitPersonality()
			}

			level := config.Log.Level
			if logLevelFlag != "" {
				level = logLevelFlag
			}
			logger := logging.New(logging.Config{
				Level:   logging.ParseLevel(level),
				LogDir:  config.Log.Dir,
				Service: "surreal",
			})
			slog.SetDefault(logger.Slog())
		},
	}

	// --- Genesis ---
	genesisCmd = &cobra.Command{
		Use:   "genesis [day]",
		Short: "Construct all surreal numbers day by day",
		Long: `Starting from { | } on day zero, genesis constructs every number each
following day: for each known A it tries { A | } and { | A }, and for
each known pair A < B it tries { A | B }. With --full, each day is also
closed under negation, addition and multiplication.`,
		Args: cobra.MaximumNArgs(1),
		Run:  runGenesis, // Defined in cmd_genesis.go
	}

	// --- Multiply ---
	multiplyCmd = &cobra.Command{
		Use:   "multiply [a] [b]",
		Short: "Multiply two integers as surreal numbers",
		Long: `Converts two integers to surreal form and multiplies them through the
memoized engine, then offers to dump the addition and multiplication
tables the computation built up.`,
		Args: cobra.MaximumNArgs(2),
		Run:  runMultiply, // Defined in cmd_multiply.go
	}

	// --- Convert ---
	convertCmd = &cobra.Command{
		Use:   "convert [values...]",
		Short: "Convert float values to surreal numbers",
		Long: `Converts each float64 value into its canonical surreal form and shows
the approximate rendering, the construction depth, and optionally the
fully expanded structure.`,
		Run: runConvert, // Defined in cmd_convert.go
	}

	// --- Infinite ---
	infiniteCmd = &cobra.Command{
		Use:   "infinite",
		Short: "Showcase lazily generated transfinite numbers",
		Long: `Builds omega as { 0 1 2 ... | }, negative omega as its mirror image,
and epsilon as { 0 | ... 1/4 1/2 1 }, using generator-backed option
sets that are only evaluated as far as the display width requires.`,
		Run: runInfinite, // Defined in cmd_infinite.go
	}
)

// init runs when the Go program starts
func init() {
	// Global UX personality flag
	rootCmd.PersistentFlags().StringVar(&personalityLevel, "personality", "",
		"Output style: full (default), standard, minimal, or machine (scripting)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml",
		"Path to an optional YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, or error")

	rootCmd.AddCommand(genesisCmd)
	genesisCmd.Flags().BoolVar(&genesisFull, "full", false,
		"Close each day under negation, addition and multiplication")
	genesisCmd.Flags().IntVar(&genesisWorkers, "workers", 0,
		"Parallel expansion workers (default: number of CPUs)")
	genesisCmd.Flags().BoolVar(&genesisPrint, "print", false,
		"Print every known number without prompting")

	rootCmd.AddCommand(multiplyCmd)
	multiplyCmd.Flags().BoolVar(&multiplyTables, "tables", false,
		"Dump the addition and multiplication tables without prompting")

	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolVar(&convertVerbose, "verbose", false,
		"Also print the fully expanded structural form")
	convertCmd.Flags().IntVar(&convertDepth, "depth", 0,
		"Structural depth to render before switching to float approximations")

	rootCmd.AddCommand(infiniteCmd)
	infiniteCmd.Flags().IntVar(&infiniteWidth, "width", 5,
		"Options to show per side of an infinite set")
}
