// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package genesis enumerates the finite surreal universe day by day.
//
// Day 0 holds only { | }. Each following day constructs every number
// reachable from the known set: { A | } and { | A } for every known A, and
// { A | B } for every known pair A < B. The universe is a set of values,
// deduplicated by equivalence, so a value discovered twice keeps its first
// representation.
//
// An optional arithmetic closure additionally tries -A, A+B and A*B
// through a surreal.Context, which grows the universe faster and exercises
// the context's memo tables across days.
//
// # Thread Safety
//
// Expand and Days are safe for concurrent use. Candidate rows are built in
// parallel on a bounded worker group; the merge that dedupes by value runs
// serially in row order, so the resulting values (and, without a closure,
// the exact representations) are deterministic for a given input.
package genesis

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/surreal"
)

var tracer = otel.Tracer("surreal.genesis")

// Config tunes a day expansion.
type Config struct {
	// Workers bounds the number of candidate rows built concurrently.
	// Zero or negative means one worker per CPU.
	Workers int

	// Closure, when non-nil, extends each day with arithmetic results:
	// -A for every known A, and A+B, A*B for every known pair. The
	// context's memo tables carry over between days.
	Closure *surreal.Context
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// Expand computes one day of growth: the union of known and every number
// constructible from it. The result is sorted by value with equivalent
// members collapsed, keeping the earliest representation of each value.
//
// Construction work is fanned out across Config.Workers goroutines, one
// row per known number; cancellation of ctx aborts the expansion.
func Expand(ctx context.Context, known []surreal.Number, cfg Config) ([]surreal.Number, error) {
	ctx, span := tracer.Start(ctx, "genesis.Expand",
		trace.WithAttributes(
			attribute.Int("known", len(known)),
			attribute.Int("workers", cfg.workers()),
		),
	)
	defer span.End()

	base := dedupe(known)

	rows := make([][]surreal.Number, len(base))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())
	for i := range base {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := buildRow(base, i, cfg.Closure)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.AddEvent("expansion_aborted")
		return nil, err
	}

	universe := base
	for _, row := range rows {
		for _, cand := range row {
			universe = insertByValue(universe, cand)
		}
	}

	span.SetAttributes(attribute.Int("universe", len(universe)))
	slog.Debug("day expanded",
		slog.Int("known", len(base)),
		slog.Int("universe", len(universe)),
	)
	return universe, nil
}

// Days runs the construction from day 0 through the target day. It returns
// one universe snapshot per day, beginning with the day-0 universe that
// holds only { | }.
func Days(ctx context.Context, days int, cfg Config) ([][]surreal.Number, error) {
	if days < 0 {
		return nil, fmt.Errorf("days must be non-negative, got %d", days)
	}
	ctx, span := tracer.Start(ctx, "genesis.Days",
		trace.WithAttributes(attribute.Int("days", days)),
	)
	defer span.End()

	universe := []surreal.Number{{}}
	snapshots := make([][]surreal.Number, 0, days+1)
	snapshots = append(snapshots, append([]surreal.Number(nil), universe...))

	for day := 1; day <= days; day++ {
		next, err := Expand(ctx, universe, cfg)
		if err != nil {
			return nil, fmt.Errorf("day %d: %w", day, err)
		}
		universe = next
		snapshots = append(snapshots, append([]surreal.Number(nil), universe...))
		slog.Info("genesis day complete",
			slog.Int("day", day),
			slog.Int("numbers", len(universe)),
		)
	}
	return snapshots, nil
}

// buildRow generates every candidate derived from base[i]: the two
// one-sided constructions, one pair construction per later member, and the
// closure's arithmetic when enabled. base is sorted by value with no
// equivalent members, so every pair is strictly ordered and construction
// cannot fail on valid input.
func buildRow(base []surreal.Number, i int, closure *surreal.Context) ([]surreal.Number, error) {
	a := base[i]
	row := make([]surreal.Number, 0, 2+(len(base)-i-1))

	left, err := surreal.New([]surreal.Number{a}, nil, true)
	if err != nil {
		return nil, fmt.Errorf("single {%v |}: %w", a, err)
	}
	right, err := surreal.New(nil, []surreal.Number{a}, true)
	if err != nil {
		return nil, fmt.Errorf("single {| %v}: %w", a, err)
	}
	row = append(row, left, right)
	if closure != nil {
		row = append(row, a.Neg())
	}

	for j := i + 1; j < len(base); j++ {
		b := base[j]
		pair, err := surreal.NewPair(a, b)
		if err != nil {
			return nil, fmt.Errorf("pair {%v | %v}: %w", a, b, err)
		}
		row = append(row, pair)
		if closure != nil {
			row = append(row, closure.Add(a, b), closure.Mul(a, b))
		}
	}
	return row, nil
}

// dedupe returns known sorted by value with equivalent members collapsed,
// keeping the first occurrence of each value.
func dedupe(known []surreal.Number) []surreal.Number {
	out := make([]surreal.Number, 0, len(known))
	for _, n := range known {
		out = insertByValue(out, n)
	}
	return out
}

// insertByValue inserts n into the value-sorted slice s unless an
// equivalent value is already present. Like append, it may grow s in place
// and returns the updated slice.
func insertByValue(s []surreal.Number, n surreal.Number) []surreal.Number {
	i := sort.Search(len(s), func(k int) bool { return !s[k].Less(n) })
	if i < len(s) && s[i].Eq(n) {
		return s
	}
	s = append(s, surreal.Number{})
	copy(s[i+1:], s[i:])
	s[i] = n
	return s
}
