//-------------------------------------------------------------------------
//
// pgEdge Credit Profile Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package credit

import "github.com/pgEdge/pgedge-creditgen/internal/datagen"

// DeriveDebts fills card, mortgage and auto debt as fractions of income,
// totals them with existing debt and recomputes DTI. Renters carry no
// mortgage.
func DeriveDebts(f *datagen.Faker, rows []Profile) {
	for i := range rows {
		rows[i].CardDebt = rows[i].Income * f.Float64(0.05, 0.2)
	}
	for i := range rows {
		r := &rows[i]
		if r.Housing == HousingOwn {
			r.MortgageDebt = r.Income * f.Float64(1.0, 3.0)
		} else {
			r.MortgageDebt = 0
		}
	}
	for i := range rows {
		rows[i].AutoDebt = rows[i].Income * f.Float64(0.1, 0.5)
	}
	for i := range rows {
		r := &rows[i]
		r.TotalDebt = r.ExistingDebt + r.CardDebt + r.MortgageDebt + r.AutoDebt
		r.DTI = r.TotalDebt / r.Income
	}
}
