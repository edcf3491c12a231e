// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package main implements the surreal CLI, an interactive tour of Conway's
// surreal numbers.
//
// Command structure:
//
//	surreal genesis [day]       construct all numbers day by day
//	surreal multiply [a b]      multiply integers, inspect the memo tables
//	surreal convert [values]    convert float64 values to surreal form
//	surreal infinite            omega, negative omega and epsilon
//
// Global flags select the output personality and log level. An optional
// YAML config file supplies defaults for all of them; flags win over the
// file, and the file wins over the built-in defaults.
package main

import "log"

func main() {
	// Execute the root command. Cobra handles parsing the arguments.
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
