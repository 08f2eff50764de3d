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
	"fmt"

	"github.com/google/uuid"

	"github.com/pgEdge/pgedge-creditgen/internal/datagen"
)

// SampleBase draws every column that has no dependency on another column.
// Columns are filled one at a time so a seed maps to the same values
// regardless of how many rows follow.
func SampleBase(f *datagen.Faker, p Params, n int) ([]Profile, error) {
	rows := make([]Profile, n)

	for i := range rows {
		id, err := uuid.NewRandomFromReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to generate customer id: %w", err)
		}
		rows[i].ID = id
	}
	for i := range rows {
		rows[i].Name = f.Name()
	}
	for i := range rows {
		rows[i].Age = int(f.Normal(p.AgeMean, p.AgeStdDev))
	}
	for i := range rows {
		rows[i].Gender = datagen.Choose(f, p.Genders)
	}
	for i := range rows {
		rows[i].Region = datagen.Choose(f, p.Regions)
	}
	for i := range rows {
		rows[i].Education = datagen.Choose(f, p.Educations)
	}
	for i := range rows {
		rows[i].Employment = datagen.Choose(f, p.Employments)
	}
	for i := range rows {
		rows[i].LoanBalance = f.Normal(p.LoanBalanceMean, p.LoanBalanceStdDev)
	}
	for i := range rows {
		rows[i].Inquiries = f.IntN(0, 10)
	}
	bankruptcy := []bool{true, false}
	bankruptcyWeights := []int{p.BankruptcyPercent, 100 - p.BankruptcyPercent}
	for i := range rows {
		rows[i].Bankruptcy = datagen.ChooseWeighted(f, bankruptcy, bankruptcyWeights)
	}
	for i := range rows {
		rows[i].Delinquencies = f.IntN(0, 5)
	}
	for i := range rows {
		rows[i].Utilization = datagen.Round2(f.Float64(0, 1))
	}
	for i := range rows {
		rows[i].YearsAtAddress = f.IntN(0, 30)
	}
	for i := range rows {
		rows[i].Dependents = f.IntN(0, 4)
	}
	for i := range rows {
		rows[i].Housing = datagen.Choose(f, p.Housing)
	}

	return rows, nil
}
