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
	"testing"
	"time"
)

func daysAgo(days int) *time.Time {
	d := testNow.Add(-time.Duration(days) * 24 * time.Hour)
	return &d
}

func TestBankruptcyPenalty(t *testing.T) {
	tests := []struct {
		name string
		date *time.Time
		want float64
	}{
		{"no bankruptcy", nil, 0},
		{"this year", daysAgo(30), 50},
		{"just under seven years", daysAgo(7*365 - 1), 50},
		{"seven years", daysAgo(7 * 365), 20},
		{"nine years", daysAgo(9 * 365), 20},
		{"ten years", daysAgo(10 * 365), 5},
		{"nineteen years", daysAgo(19 * 365), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BankruptcyPenalty(tt.date, testNow); got != tt.want {
				t.Errorf("BankruptcyPenalty = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUtilizationPenalty(t *testing.T) {
	tests := []struct {
		utilization float64
		want        float64
	}{
		{0.0, 0},
		{0.5, 0},
		{0.51, 10},
		{0.75, 10},
		{0.76, 25},
		{1.0, 25},
	}

	for _, tt := range tests {
		if got := UtilizationPenalty(tt.utilization); got != tt.want {
			t.Errorf("UtilizationPenalty(%v) = %v, want %v", tt.utilization, got, tt.want)
		}
	}
}

func TestApplyProvisionalDTI(t *testing.T) {
	f := newTestFaker()
	rows := []Profile{
		{Income: 50000, CreditScore: 700},
		{Income: 120000, CreditScore: 700},
	}
	ApplyProvisionalDTI(f, rows)

	for _, r := range rows {
		if r.ExistingDebt < 0.1*r.Income || r.ExistingDebt >= 0.5*r.Income {
			t.Errorf("Existing debt %v outside [0.1, 0.5) x income", r.ExistingDebt)
		}
		wantScore := 700 - r.ExistingDebt/r.Income*50
		if math.Abs(r.CreditScore-wantScore) > 1e-9 {
			t.Errorf("Score %v, want %v", r.CreditScore, wantScore)
		}
	}
}

func TestScoreAdjustmentsAccumulate(t *testing.T) {
	rows := []Profile{
		{CreditScore: 700, HistoryLength: 20, Utilization: 0.8, BankruptcyDate: daysAgo(365)},
		{CreditScore: 700, HistoryLength: 0, Utilization: 0.2},
	}
	ApplyBankruptcyPenalty(rows, testNow)
	ApplyHistoryBonus(rows)
	ApplyUtilizationPenalty(rows)

	if rows[0].CreditScore != 700-50+10-25 {
		t.Errorf("Row 0 score = %v", rows[0].CreditScore)
	}
	if rows[1].CreditScore != 700 {
		t.Errorf("Row 1 score = %v", rows[1].CreditScore)
	}
}
