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

const adultAge = 18

var (
	strongPayment   = []string{PaymentExcellent, PaymentGood}
	moderatePayment = []string{PaymentGood, PaymentAverage}
	weakPayment     = []string{PaymentAverage, PaymentPoor}

	strongWeights   = []int{70, 30}
	moderateWeights = []int{40, 60}
	weakWeights     = []int{30, 70}
)

// PaymentHistory picks a payment history label. Bankruptcy or more than
// three delinquencies always give Poor; otherwise the label is drawn from
// a pair keyed by score band.
func PaymentHistory(f *datagen.Faker, score float64, delinquencies int, bankruptcy bool) string {
	switch {
	case bankruptcy:
		return PaymentPoor
	case delinquencies > 3:
		return PaymentPoor
	case score >= 750:
		return datagen.ChooseWeighted(f, strongPayment, strongWeights)
	case score >= 650:
		return datagen.ChooseWeighted(f, moderatePayment, moderateWeights)
	default:
		return datagen.ChooseWeighted(f, weakPayment, weakWeights)
	}
}

// SimulatePaymentHistory sets the payment history of every row from its
// current score.
func SimulatePaymentHistory(f *datagen.Faker, rows []Profile) {
	for i := range rows {
		r := &rows[i]
		r.PaymentHistory = PaymentHistory(f, r.CreditScore, r.Delinquencies, r.Bankruptcy)
	}
}

// DeriveAccountHistory draws account age from the customer's adult years
// and gives the remainder to credit history length.
func DeriveAccountHistory(f *datagen.Faker, rows []Profile) {
	for i := range rows {
		r := &rows[i]
		if r.Age > adultAge {
			r.AccountAge = f.IntN(0, min(r.Age-adultAge, r.Age))
		} else {
			r.AccountAge = 0
		}
	}
	for i := range rows {
		r := &rows[i]
		r.HistoryLength = max(0, r.Age-adultAge-r.AccountAge)
	}
}
