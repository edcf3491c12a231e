// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package surreal

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	metricsOnce    sync.Once
	lookupCounter  metric.Int64Counter
	adoptCounter   metric.Int64Counter
	rewriteCounter metric.Int64Counter
)

// initMetrics lazily creates the instruments against whatever global meter
// provider is installed. Without an SDK these are no-ops.
func initMetrics() {
	metricsOnce.Do(func() {
		meter := otel.Meter("surreal.engine")
		lookupCounter, _ = meter.Int64Counter(
			"surreal.memo.lookups",
			metric.WithDescription("Memo table lookups, partitioned by operation and outcome."),
		)
		adoptCounter, _ = meter.Int64Counter(
			"surreal.memo.adoptions",
			metric.WithDescription("Raw results replaced by an equivalent cached representation."),
		)
		rewriteCounter, _ = meter.Int64Counter(
			"surreal.memo.rewrites",
			metric.WithDescription("Cached entries rewritten in place by a leaner representation."),
		)
	})
}

func recordLookup(op string, hit bool) {
	initMetrics()
	if lookupCounter == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	lookupCounter.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("outcome", outcome),
	))
}

func recordAdopt(op string) {
	initMetrics()
	if adoptCounter == nil {
		return
	}
	adoptCounter.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("op", op),
	))
}

func recordRewrite(op string) {
	initMetrics()
	if rewriteCounter == nil {
		return
	}
	rewriteCounter.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("op", op),
	))
}
