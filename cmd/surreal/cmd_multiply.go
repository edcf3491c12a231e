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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AleutianAI/surreal"
	"github.com/AleutianAI/surreal/pkg/ux"
	"github.com/spf13/cobra"
)

// runMultiply multiplies integer pairs through one shared engine.
//
// The memo tables persist across pairs in the same session, so a second
// multiplication reuses everything the first one derived.
func runMultiply(cmd *cobra.Command, args []string) {
	ux.Title("Surreal Multiplication")

	reader := NewInteractiveInputReader(20)
	engine := surreal.NewContext()

	if len(args) > 0 {
		a, b, err := parseOperandPair(strings.Join(args, " "))
		if err != nil {
			ux.Error(err.Error())
			os.Exit(1)
		}
		multiplyOnce(engine, reader, a, b)
		if !confirm(reader, "Continue with another pair?") {
			return
		}
	}

	ux.Info("Enter two integers separated by a space. Empty input exits.")
	for {
		line, err := promptLine(reader, "integers> ")
		if err != nil || line == "" {
			return
		}
		a, b, err := parseOperandPair(line)
		if err != nil {
			ux.Error(err.Error())
			continue
		}
		multiplyOnce(engine, reader, a, b)
		if !confirm(reader, "Continue?") {
			return
		}
	}
}

// multiplyOnce multiplies a*b, reports the result, and offers the memo
// table dumps the computation built up.
func multiplyOnce(engine *surreal.Context, reader InputReader, a, b int) {
	if a > 10 || a < -10 || b > 10 || b < -10 {
		ux.Muted("This might take a while for operands past ten.")
	}

	spin := ux.NewSpinner(fmt.Sprintf("Multiplying %d * %d", a, b))
	spin.Start()
	product := engine.Mul(surreal.NewInt(a), surreal.NewInt(b))
	spin.StopWithSuccess(fmt.Sprintf("%d * %d = %s", a, b, formatValue(product.Float())))

	ux.NumberLine(formatValue(product.Float()), product.String(), fmt.Sprintf("depth %d", product.Depth()))

	stats := engine.Stats()
	ux.CacheSummary("add", stats.Add.Entries, stats.Add.Hits, stats.Add.Misses)
	if multiplyTables || confirm(reader,
		fmt.Sprintf("The addition table has %d entries. Print them?", stats.Add.Entries)) {
		printTable("+", engine.AddEntries())
	}

	ux.CacheSummary("mul", stats.Mul.Entries, stats.Mul.Hits, stats.Mul.Misses)
	if multiplyTables || confirm(reader,
		fmt.Sprintf("The multiplication table has %d entries. Print them?", stats.Mul.Entries)) {
		printTable("*", engine.MulEntries())
	}
}

// printTable dumps memo entries as "a op b = result" in reduced form.
func printTable(op string, entries []surreal.Entry) {
	for _, e := range entries {
		ux.Info(fmt.Sprintf("%s %s %s = %s", e.A, op, e.B, e.Result))
	}
}

// parseOperandPair extracts two integers from a line like "3 -4".
func parseOperandPair(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected two integers, got %q", line)
	}
	a, errA := strconv.Atoi(fields[0])
	b, errB := strconv.Atoi(fields[1])
	if errA != nil || errB != nil {
		return 0, 0, fmt.Errorf("expected two integers, got %q", line)
	}
	if a > 1000 || a < -1000 || b > 1000 || b < -1000 {
		return 0, 0, fmt.Errorf("operands are limited to [-1000, 1000]: integers that large nest too deep to multiply")
	}
	return a, b, nil
}
