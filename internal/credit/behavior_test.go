//-------------------------------------------------------------------------
//
// pgEdge Credit Profile Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package credit

import "testing"

func TestPaymentHistory(t *testing.T) {
	f := newTestFaker()

	tests := []struct {
		name          string
		score         float64
		delinquencies int
		bankruptcy    bool
		allowed       []string
	}{
		{"bankruptcy overrides a high score", 820, 0, true, []string{PaymentPoor}},
		{"many delinquencies", 820, 4, false, []string{PaymentPoor}},
		{"three delinquencies still use the band", 820, 3, false, []string{PaymentExcellent, PaymentGood}},
		{"high band", 750, 0, false, []string{PaymentExcellent, PaymentGood}},
		{"middle band", 700, 1, false, []string{PaymentGood, PaymentAverage}},
		{"middle band floor", 650, 0, false, []string{PaymentGood, PaymentAverage}},
		{"low band", 649.9, 0, false, []string{PaymentAverage, PaymentPoor}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				got := PaymentHistory(f, tt.score, tt.delinquencies, tt.bankruptcy)
				if !contains(tt.allowed, got) {
					t.Fatalf("PaymentHistory = %q, want one of %v", got, tt.allowed)
				}
			}
		})
	}
}

func TestPaymentHistoryWeights(t *testing.T) {
	f := newTestFaker()
	excellent := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if PaymentHistory(f, 800, 0, false) == PaymentExcellent {
			excellent++
		}
	}
	if excellent < 6700 || excellent > 7300 {
		t.Errorf("Expected about 70%% Excellent, got %d of %d", excellent, n)
	}
}

func TestDeriveAccountHistory(t *testing.T) {
	f := newTestFaker()
	ages := []int{-3, 0, 17, 18, 19, 25, 40, 69, 85}
	rows := make([]Profile, 0, len(ages)*50)
	for i := 0; i < 50; i++ {
		for _, a := range ages {
			rows = append(rows, Profile{Age: a})
		}
	}
	DeriveAccountHistory(f, rows)

	for _, r := range rows {
		if r.Age <= 18 {
			if r.AccountAge != 0 || r.HistoryLength != 0 {
				t.Errorf("Age %d: account age %d history %d, want 0 and 0", r.Age, r.AccountAge, r.HistoryLength)
			}
			continue
		}
		if r.AccountAge < 0 || r.AccountAge >= r.Age-18 {
			t.Errorf("Age %d: account age %d outside [0, %d)", r.Age, r.AccountAge, r.Age-18)
		}
		if r.HistoryLength != r.Age-18-r.AccountAge {
			t.Errorf("Age %d: history %d, want %d", r.Age, r.HistoryLength, r.Age-18-r.AccountAge)
		}
	}
}

func contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}
