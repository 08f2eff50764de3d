//-------------------------------------------------------------------------
//
// pgEdge Credit Profile Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package credit

import (
	"math"

	"github.com/pgEdge/pgedge-creditgen/internal/datagen"
)

var (
	incomeOutlierFactors = []float64{2, 3}
	debtOutlierFactors   = []float64{1.5, 2}
)

// OutlierCount returns how many of n rows an outlier rate selects.
func OutlierCount(n int, rate float64) int {
	return min(n, int(math.Round(rate*float64(n))))
}

// InjectOutliers picks OutlierCount rows without replacement and inflates
// their income and total debt. Scores and DTI are left as derived. It
// returns the chosen indices.
func InjectOutliers(f *datagen.Faker, rows []Profile, rate float64) []int {
	idx := f.Sample(len(rows), OutlierCount(len(rows), rate))
	for _, i := range idx {
		rows[i].Income *= datagen.Choose(f, incomeOutlierFactors)
	}
	for _, i := range idx {
		rows[i].TotalDebt *= datagen.Choose(f, debtOutlierFactors)
	}
	return idx
}
