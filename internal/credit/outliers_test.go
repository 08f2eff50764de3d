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

func TestOutlierCount(t *testing.T) {
	tests := []struct {
		n    int
		rate float64
		want int
	}{
		{10000, 0.01, 100},
		{320, 0.01, 3},
		{370, 0.01, 4},
		{40, 0.01, 0},
		{10, 0, 0},
		{10, 1, 10},
	}
	for _, tt := range tests {
		if got := OutlierCount(tt.n, tt.rate); got != tt.want {
			t.Errorf("OutlierCount(%d, %v) = %d, want %d", tt.n, tt.rate, got, tt.want)
		}
	}
}

func TestInjectOutliers(t *testing.T) {
	f := newTestFaker()
	rows := make([]Profile, 1000)
	for i := range rows {
		rows[i].Income = 50000
		rows[i].TotalDebt = 30000
		rows[i].CreditScore = 700
	}

	idx := InjectOutliers(f, rows, 0.01)
	if len(idx) != 10 {
		t.Fatalf("Expected 10 outliers, got %d", len(idx))
	}

	chosen := map[int]bool{}
	for _, i := range idx {
		chosen[i] = true
	}
	if len(chosen) != 10 {
		t.Fatal("Outlier indices are not distinct")
	}

	for i, r := range rows {
		if !chosen[i] {
			if r.Income != 50000 || r.TotalDebt != 30000 {
				t.Errorf("Row %d changed without being selected", i)
			}
			continue
		}
		if r.Income != 100000 && r.Income != 150000 {
			t.Errorf("Row %d income %v, want 2x or 3x", i, r.Income)
		}
		if r.TotalDebt != 45000 && r.TotalDebt != 60000 {
			t.Errorf("Row %d total debt %v, want 1.5x or 2x", i, r.TotalDebt)
		}
		if r.CreditScore != 700 {
			t.Errorf("Row %d score recomputed", i)
		}
	}
}
