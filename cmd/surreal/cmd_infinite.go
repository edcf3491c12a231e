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
	"log"
	"math"

	"github.com/AleutianAI/surreal/lazy"
	"github.com/AleutianAI/surreal/pkg/ux"
	"github.com/spf13/cobra"
)

// runInfinite sketches the first transfinite numbers.
//
// Each one is a lazy number whose option sets come from generators, so
// only the handful of options the display width asks for ever exist.
func runInfinite(cmd *cobra.Command, args []string) {
	ux.Title("Beyond the Finite " + ux.IconInfinity.Render())

	width := infiniteWidth
	if !cmd.Flags().Changed("width") && config.Display.Width > 0 {
		width = config.Display.Width
	}

	// The empty pair, spelled lazily this time
	zero := lazy.New(nil, nil, 0, 0)
	showLazy("zero", "", zero, width, 0)

	// A finite number carried across the bridge
	two := lazy.FromInt(2)
	showLazy("two", "", two, width, 0)

	// omega: above every natural number
	naturals := lazy.GeneratorFunc(func(i int) *lazy.Number {
		return lazy.FromInt(i)
	})
	omega := lazy.New(naturals, nil, lazy.SizeInfinite, 0)
	showLazy("omega", ux.IconInfinity.Render(), omega, width, 0)

	// Its mirror image, below every negative one
	negNaturals := lazy.GeneratorFunc(func(i int) *lazy.Number {
		return lazy.FromInt(-i)
	})
	negOmega := lazy.New(nil, negNaturals, 0, lazy.SizeInfinite)
	showLazy("negative omega", "-"+ux.IconInfinity.Render(), negOmega, width, 0)

	// epsilon: above zero, below every positive fraction 1/2^i
	fractions := lazy.GeneratorFunc(func(i int) *lazy.Number {
		return dyadicFraction(i)
	})
	epsilon := lazy.New(lazy.Constant(lazy.FromInt(0)), fractions, 1, lazy.SizeInfinite)
	showLazy("epsilon", "ε", epsilon, width, 1)

	if _, err := omega.Finite(); err != nil {
		ux.Muted(fmt.Sprintf("omega cannot cross back to the finite side: %v", err))
	}
}

// showLazy prints one lazy number: the exact value when the finite
// bridge applies, the fallback marker when it does not.
func showLazy(name, marker string, n *lazy.Number, width, depth int) {
	form := n.Approx(width, depth)
	if fin, err := n.Finite(); err == nil {
		ux.NumberLine(formatValue(fin.Float()), form, name)
		return
	}
	ux.NumberLine(marker, form, name)
}

// dyadicFraction builds 1/2^i as a lazy number.
func dyadicFraction(i int) *lazy.Number {
	n, err := lazy.FromFloat(math.Ldexp(1, -i))
	if err != nil {
		log.Fatalf("building 1/2^%d: %v", i, err)
	}
	return n
}
