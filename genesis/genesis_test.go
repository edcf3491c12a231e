// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package genesis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/surreal"
)

func day(t *testing.T, target int, cfg Config) []surreal.Number {
	t.Helper()
	snaps, err := Days(context.Background(), target, cfg)
	require.NoError(t, err)
	require.Len(t, snaps, target+1)
	return snaps[target]
}

func floats(nums []surreal.Number) []float64 {
	out := make([]float64, len(nums))
	for i, n := range nums {
		out[i] = n.Float()
	}
	return out
}

func TestDayZero(t *testing.T) {
	universe := day(t, 0, Config{})
	assert.Equal(t, []float64{0}, floats(universe))
}

func TestDayOne(t *testing.T) {
	universe := day(t, 1, Config{})
	assert.Equal(t, []float64{-1, 0, 1}, floats(universe))
}

func TestDayTwo(t *testing.T) {
	universe := day(t, 2, Config{})
	assert.Equal(t, []float64{-2, -1, -0.5, 0, 0.5, 1, 2}, floats(universe))
}

func TestDayThree(t *testing.T) {
	universe := day(t, 3, Config{})
	assert.Equal(t, []float64{
		-3, -2, -1.5, -1, -0.75, -0.5, -0.25,
		0,
		0.25, 0.5, 0.75, 1, 1.5, 2, 3,
	}, floats(universe))
}

func TestSnapshotsAreCumulative(t *testing.T) {
	snaps, err := Days(context.Background(), 3, Config{})
	require.NoError(t, err)

	for d := 1; d < len(snaps); d++ {
		require.Greater(t, len(snaps[d]), len(snaps[d-1]), "day %d should grow", d)
		for _, old := range snaps[d-1] {
			found := false
			for _, n := range snaps[d] {
				if n.Eq(old) {
					found = true
					break
				}
			}
			assert.True(t, found, "day %d lost value %v", d, old)
		}
	}
}

func TestExpandEmptyUniverse(t *testing.T) {
	universe, err := Expand(context.Background(), nil, Config{})
	require.NoError(t, err)
	assert.Empty(t, universe)
}

func TestExpandKeepsFirstRepresentation(t *testing.T) {
	// {0|2} is numerically 1 but structurally distinct from NewInt(1).
	wide, err := surreal.New(
		[]surreal.Number{surreal.NewInt(0)},
		[]surreal.Number{surreal.NewInt(2)},
		false,
	)
	require.NoError(t, err)

	universe, err := Expand(context.Background(), []surreal.Number{wide, surreal.NewInt(1)}, Config{})
	require.NoError(t, err)

	ones := 0
	for _, n := range universe {
		if n.Eq(surreal.NewInt(1)) {
			ones++
			assert.True(t, n.Identical(wide), "first representation should survive dedup")
		}
	}
	assert.Equal(t, 1, ones)
}

func TestExpandCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Expand(ctx, []surreal.Number{{}}, Config{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDaysCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Days(ctx, 2, Config{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDaysRejectsNegative(t *testing.T) {
	_, err := Days(context.Background(), -1, Config{})
	require.Error(t, err)
}

func TestWorkerCountDoesNotChangeResult(t *testing.T) {
	serial := day(t, 3, Config{Workers: 1})
	parallel := day(t, 3, Config{Workers: 4})

	require.Equal(t, len(serial), len(parallel))
	for i := range serial {
		assert.True(t, serial[i].Identical(parallel[i]),
			"member %d differs: %v vs %v", i, serial[i], parallel[i])
	}
}

func TestClosureDayTwoMatchesPlain(t *testing.T) {
	universe := day(t, 2, Config{Closure: surreal.NewContext()})
	assert.Equal(t, []float64{-2, -1, -0.5, 0, 0.5, 1, 2}, floats(universe))
}

func TestClosureDayThree(t *testing.T) {
	// Arithmetic reaches three values plain construction cannot by day 3:
	// -4 = -2*2, and -5/2, 5/2 from sums of non-adjacent knowns.
	universe := day(t, 3, Config{Workers: 4, Closure: surreal.NewContext()})

	expected := []float64{
		-4, -3, -2.5, -2, -1.5, -1, -0.75, -0.5, -0.25,
		0,
		0.25, 0.5, 0.75, 1, 1.5, 2, 2.5, 3,
	}
	require.Equal(t, len(expected), len(universe))
	for i, f := range expected {
		want, err := surreal.NewFloat(f)
		require.NoError(t, err)
		assert.True(t, universe[i].Eq(want), "member %d should equal %v, got %v", i, f, universe[i])
	}
}
