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
	"github.com/pgEdge/pgedge-creditgen/internal/datagen"
)

// Final bounds.
const (
	MinAge          = 18
	MaxAge          = 70
	MinFinalIncome  = 20000
	MaxFinalIncome  = 400000
	maxExistingDebt = 0.5
)

// Finalize clips every row to its realistic range and assigns the score
// category. Credit history is capped at the adult years of the clipped age.
func Finalize(rows []Profile) {
	for i := range rows {
		r := &rows[i]
		r.Age = min(max(r.Age, MinAge), MaxAge)
		r.Income = datagen.Clip(r.Income, MinFinalIncome, MaxFinalIncome)
		r.CreditScore = datagen.Clip(r.CreditScore, MinScore, MaxScore)
		r.ExistingDebt = datagen.Clip(r.ExistingDebt, 0, r.Income*maxExistingDebt)
		r.HistoryLength = min(r.HistoryLength, r.Age-adultAge)
		r.ScoreCategory = Category(r.CreditScore)
	}
}
