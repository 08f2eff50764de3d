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
	"time"

	"github.com/pgEdge/pgedge-creditgen/internal/datagen"
)

// DeriveIncome scales a normal income draw by the region, education and
// employment multipliers and clips it to the configured floor and ceiling.
func DeriveIncome(f *datagen.Faker, p Params, rows []Profile) error {
	for i := range rows {
		r := &rows[i]
		region, err := lookup(p.RegionIncome, "region", r.Region)
		if err != nil {
			return err
		}
		education, err := lookup(p.EducationIncome, "education level", r.Education)
		if err != nil {
			return err
		}
		employment, err := lookup(p.EmploymentIncome, "employment status", r.Employment)
		if err != nil {
			return err
		}
		income := f.Normal(p.IncomeMean, p.IncomeStdDev) * region * education * employment
		r.Income = datagen.Clip(income, p.IncomeFloor, p.IncomeCeiling)
	}
	return nil
}

// DeriveYearsWithEmployer draws tenure from an age-dependent range. Older
// customers occasionally get a long tenure of 15 to 29 years.
func DeriveYearsWithEmployer(f *datagen.Faker, rows []Profile) {
	for i := range rows {
		r := &rows[i]
		switch {
		case r.Age < 30:
			r.YearsWithEmployer = f.IntN(0, 5)
		case r.Age < 50:
			r.YearsWithEmployer = f.IntN(0, 15)
		default:
			short := f.IntN(0, 15)
			long := f.IntN(15, 30)
			r.YearsWithEmployer = datagen.ChooseWeighted(f, []int{short, long}, []int{80, 20})
		}
	}
}

// maxBankruptcyAgeDays bounds how far back a bankruptcy may be dated.
const maxBankruptcyAgeDays = 365 * 20

// DeriveBankruptcyDates dates each flagged bankruptcy within the 20 years
// before now. Unflagged rows keep a nil date.
func DeriveBankruptcyDates(f *datagen.Faker, rows []Profile, now time.Time) {
	for i := range rows {
		r := &rows[i]
		if !r.Bankruptcy {
			r.BankruptcyDate = nil
			continue
		}
		days := f.IntN(0, maxBankruptcyAgeDays)
		d := now.Add(-time.Duration(days) * 24 * time.Hour)
		r.BankruptcyDate = &d
	}
}
