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
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/AleutianAI/surreal"
	"github.com/AleutianAI/surreal/genesis"
	"github.com/AleutianAI/surreal/pkg/ux"
	"github.com/spf13/cobra"
)

// runGenesis drives the day-by-day construction demo.
//
// The target day comes from the argument or an interactive prompt. Once
// reached, the universe can be printed and the construction continued
// one day at a time.
func runGenesis(cmd *cobra.Command, args []string) {
	ux.Title("Surreal Genesis")
	ux.Box("Day by day", "Starting from { | } on day zero, each day tries { A | } and { | A }\n"+
		"for every known number A, and { A | B } for every known pair A < B.")
	if genesisFull {
		ux.Info("Closure mode: each day also negates, adds and multiplies what it knows.")
	}

	reader := NewInteractiveInputReader(20)

	target, err := genesisTarget(reader, args)
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}
	if config.Genesis.MaxDay > 0 && target > config.Genesis.MaxDay {
		ux.Error(fmt.Sprintf("Day %d is beyond the configured maximum of %d", target, config.Genesis.MaxDay))
		os.Exit(1)
	}

	workers := genesisWorkers
	if workers == 0 {
		workers = config.Genesis.Workers
	}
	cfg := genesis.Config{Workers: workers}
	if genesisFull {
		cfg.Closure = surreal.NewContext()
	}

	// Ctrl+C cancels the in-flight expansion instead of killing the process
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	err = genesisLoop(ctx, reader, target, config.Genesis.MaxDay, cfg, genesisPrint)
	if errors.Is(err, context.Canceled) {
		ux.Warning("Interrupted.")
		return
	}
	if err != nil {
		log.Fatalf("Genesis failed: %v", err)
	}
}

// genesisTarget resolves the target day from args or a prompt.
func genesisTarget(reader InputReader, args []string) (int, error) {
	input := ""
	if len(args) == 1 {
		input = args[0]
	} else {
		line, err := promptLine(reader, "Input target day: ")
		if err != nil {
			return 0, fmt.Errorf("reading target day: %w", err)
		}
		input = line
	}

	day, err := strconv.Atoi(input)
	if err != nil || day < 0 {
		return 0, fmt.Errorf("invalid day %q: expected a non-negative integer", input)
	}
	return day, nil
}

// genesisLoop expands the universe until the target day, reports what was
// born, and keeps going while the user asks for one more day.
//
// alwaysPrint dumps the universe without prompting, which is also the
// only way to see it in non-interactive runs.
func genesisLoop(ctx context.Context, reader InputReader, target, maxDay int, cfg genesis.Config, alwaysPrint bool) error {
	universe := []surreal.Number{{}}
	day := 0

	for {
		if day < target {
			spin := ux.NewSpinner(fmt.Sprintf("Calculating numbers for day %d", day+1)).WithType(ux.SpinnerCompass)
			spin.Start()
			for day < target {
				next, err := genesis.Expand(ctx, universe, cfg)
				if err != nil {
					spin.StopWithError(fmt.Sprintf("Day %d failed: %v", day+1, err))
					return err
				}
				universe = next
				day++
				spin.UpdateMessage(fmt.Sprintf("Calculating numbers for day %d", day+1))
			}
			spin.StopWithSuccess(fmt.Sprintf("Day %d reached", day))
		}

		ux.Box(fmt.Sprintf("Day %d", day), fmt.Sprintf("There are now %d known numbers.", len(universe)))

		if alwaysPrint || confirm(reader, "Print them out?") {
			printUniverse(universe)
		}

		if !confirm(reader, "Continue to day "+strconv.Itoa(day+1)+"?") {
			return nil
		}
		if maxDay > 0 && day+1 > maxDay {
			ux.Warning(fmt.Sprintf("Day %d is beyond the configured maximum of %d.", day+1, maxDay))
			return nil
		}
		target = day + 1
	}
}

// printUniverse dumps every known number as value and reduced form.
func printUniverse(universe []surreal.Number) {
	for _, n := range universe {
		ux.NumberLine(formatValue(n.Float()), n.String(), "")
	}
}

// formatValue renders a float the shortest way that round-trips.
func formatValue(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
