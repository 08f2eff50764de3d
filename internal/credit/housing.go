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

	"github.com/pgEdge/pgedge-creditgen/internal/datagen"
)

// Monthly payment ranges by tenure, upper bound exclusive.
var housingPaymentRange = map[string][2]int{
	HousingRent: {500, 3500},
	HousingOwn:  {900, 4500},
}

// DeriveHousingPayments draws a monthly payment for the row's tenure and
// scales it by regional cost of living and household size.
func DeriveHousingPayments(f *datagen.Faker, p Params, rows []Profile) error {
	for i := range rows {
		r := &rows[i]
		rng, ok := housingPaymentRange[r.Housing]
		if !ok {
			return fmt.Errorf("%w: housing %q", ErrUnknownCategory, r.Housing)
		}
		col, err := lookup(p.RegionCostOfLiving, "region", r.Region)
		if err != nil {
			return err
		}
		base := float64(f.IntN(rng[0], rng[1]))
		r.HousingPayment = base * col * (1 + float64(r.Dependents)*0.1)
	}
	return nil
}
