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

	"github.com/AleutianAI/surreal"
	"github.com/AleutianAI/surreal/pkg/ux"
	"github.com/spf13/cobra"
)

// runConvert converts float values into their surreal form.
//
// Values come from the arguments or an interactive prompt loop. Each
// result shows the round-tripped value, the reduced form, and the
// construction depth.
func runConvert(cmd *cobra.Command, args []string) {
	ux.Title("Float to Surreal")

	reader := NewInteractiveInputReader(20)

	if len(args) > 0 {
		failed := false
		for _, arg := range args {
			if err := convertOnce(reader, arg); err != nil {
				ux.Error(err.Error())
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
		return
	}

	ux.Info("Enter a float to convert. Empty input exits.")
	for {
		line, err := promptLine(reader, "float> ")
		if err != nil || line == "" {
			return
		}
		if err := convertOnce(reader, line); err != nil {
			// Bad input re-prompts rather than ending the session
			ux.Error(err.Error())
			continue
		}
		if !confirm(reader, "Convert another?") {
			return
		}
	}
}

// convertOnce parses one value, converts it, and reports the result.
func convertOnce(reader InputReader, input string) error {
	parsed, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return fmt.Errorf("could not parse %q as a float", input)
	}
	if parsed > 1e6 || parsed < -1e6 {
		return fmt.Errorf("%g is out of range: the integer part is built by nesting, so magnitudes stop at 1e6", parsed)
	}

	// Convert at single precision: 24 mantissa bits keep the bisection
	// chain and its rendering within interactive depths.
	value := float64(float32(parsed))

	n, err := surreal.NewFloat(value)
	if err != nil {
		return err
	}

	depth := convertDepth
	if depth == 0 {
		depth = config.Display.Depth
	}
	ux.NumberLine(formatValue(n.Float()), n.Approx(depth), fmt.Sprintf("depth %d", n.Depth()))

	if convertVerbose || confirm(reader, "Print the verbose structural form?") {
		ux.Info(n.Verbose())
	}
	return nil
}
