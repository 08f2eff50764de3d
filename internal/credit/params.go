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
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned when a categorical value has no entry in a
// multiplier table. The tables cover exactly the sampled label sets, so this
// always indicates a configuration defect.
var ErrUnknownCategory = errors.New("unknown category")

// Params holds the distribution constants for a generation run.
type Params struct {
	AgeMean   float64
	AgeStdDev float64

	IncomeMean    float64
	IncomeStdDev  float64
	IncomeFloor   float64
	IncomeCeiling float64

	LoanBalanceMean   float64
	LoanBalanceStdDev float64

	// BankruptcyPercent is the share of customers with a bankruptcy, in percent.
	BankruptcyPercent int

	// OutlierRate is the fraction of rows inflated by InjectOutliers.
	OutlierRate float64

	Genders     []string
	Regions     []string
	Educations  []string
	Employments []string
	Housing     []string

	RegionIncome       map[string]float64
	RegionCostOfLiving map[string]float64
	EducationIncome    map[string]float64
	EmploymentIncome   map[string]float64
}

// DefaultParams returns the standard distribution constants.
func DefaultParams() Params {
	return Params{
		AgeMean:   40,
		AgeStdDev: 12,

		IncomeMean:    75000,
		IncomeStdDev:  30000,
		IncomeFloor:   20000,
		IncomeCeiling: 500000,

		LoanBalanceMean:   10000,
		LoanBalanceStdDev: 5000,

		BankruptcyPercent: 10,
		OutlierRate:       0.01,

		Genders: []string{"Male", "Female"},
		Regions: []string{"Northeast", "Midwest", "South", "West"},
		Educations: []string{
			"Less than High School",
			"High School",
			"Associate's Degree",
			"Bachelor's Degree",
			"Master's Degree",
			"Doctorate",
		},
		Employments: []string{"Full-Time", "Part-Time", "Self-Employed", "Unemployed", "Retired"},
		Housing:     []string{HousingRent, HousingOwn},

		RegionIncome: map[string]float64{
			"Northeast": 1.1,
			"Midwest":   0.9,
			"South":     0.8,
			"West":      1.0,
		},
		RegionCostOfLiving: map[string]float64{
			"Northeast": 1.2,
			"Midwest":   0.8,
			"South":     0.9,
			"West":      1.1,
		},
		EducationIncome: map[string]float64{
			"Less than High School": 0.6,
			"High School":           0.8,
			"Associate's Degree":    1.0,
			"Bachelor's Degree":     1.2,
			"Master's Degree":       1.4,
			"Doctorate":             1.6,
		},
		EmploymentIncome: map[string]float64{
			"Full-Time":     1.0,
			"Part-Time":     0.6,
			"Self-Employed": 0.9,
			"Unemployed":    0.2,
			"Retired":       0.7,
		},
	}
}

func lookup(table map[string]float64, column, value string) (float64, error) {
	m, ok := table[value]
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrUnknownCategory, column, value)
	}
	return m, nil
}
