//-------------------------------------------------------------------------
//
// pgEdge Credit Profile Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"math"
	"testing"
)

func TestNewFakerWithSeed(t *testing.T) {
	seed := uint64(12345)
	f1 := NewFakerWithSeed(seed)
	f2 := NewFakerWithSeed(seed)

	// Same seed should produce same sequence
	for i := 0; i < 10; i++ {
		v1 := f1.Int(0, 1000)
		v2 := f2.Int(0, 1000)
		if v1 != v2 {
			t.Errorf("Same seed produced different values: %d != %d", v1, v2)
		}
	}
	if f1.Name() != f2.Name() {
		t.Error("Same seed produced different names")
	}
}

func TestFakerName(t *testing.T) {
	f := NewFakerWithSeed(1)
	if f.Name() == "" {
		t.Error("Name returned empty string")
	}
}

func TestFakerInt(t *testing.T) {
	f := NewFakerWithSeed(2)
	for i := 0; i < 100; i++ {
		v := f.Int(10, 20)
		if v < 10 || v > 20 {
			t.Errorf("Int %d not in range [10, 20]", v)
		}
	}
}

func TestFakerIntN(t *testing.T) {
	f := NewFakerWithSeed(3)
	seenZero, seenFour := false, false
	for i := 0; i < 1000; i++ {
		v := f.IntN(0, 5)
		if v < 0 || v >= 5 {
			t.Fatalf("IntN %d not in range [0, 5)", v)
		}
		seenZero = seenZero || v == 0
		seenFour = seenFour || v == 4
	}
	if !seenZero || !seenFour {
		t.Error("IntN never reached the ends of its range")
	}
	if v := f.IntN(7, 7); v != 7 {
		t.Errorf("Empty range should return min, got %d", v)
	}
}

func TestFakerFloat64(t *testing.T) {
	f := NewFakerWithSeed(4)
	for i := 0; i < 100; i++ {
		v := f.Float64(0.1, 0.5)
		if v < 0.1 || v >= 0.5 {
			t.Errorf("Float64 %f not in range [0.1, 0.5)", v)
		}
	}
}

func TestFakerNormal(t *testing.T) {
	f := NewFakerWithSeed(5)
	const n = 20000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := f.Normal(40, 12)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Normal produced %v", v)
		}
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	stddev := math.Sqrt(sumSq/n - mean*mean)
	if math.Abs(mean-40) > 0.5 {
		t.Errorf("Sample mean %f too far from 40", mean)
	}
	if math.Abs(stddev-12) > 0.5 {
		t.Errorf("Sample stddev %f too far from 12", stddev)
	}
}

func TestFakerNormalSharesSeededStream(t *testing.T) {
	f1 := NewFakerWithSeed(11)
	f2 := NewFakerWithSeed(11)
	for i := 0; i < 100; i++ {
		// Interleave draws so normals and uniform draws advance one stream.
		a, b := f1.Normal(0, 1), f2.Normal(0, 1)
		if a != b {
			t.Fatalf("draw %d: Normal diverged for equal seeds: %v vs %v", i, a, b)
		}
		if x, y := f1.Int(0, 1000), f2.Int(0, 1000); x != y {
			t.Fatalf("draw %d: Int diverged after Normal: %d vs %d", i, x, y)
		}
	}
}

func TestFakerRead(t *testing.T) {
	f1 := NewFakerWithSeed(6)
	f2 := NewFakerWithSeed(6)
	b1 := make([]byte, 16)
	b2 := make([]byte, 16)

	n, err := f1.Read(b1)
	if err != nil || n != 16 {
		t.Fatalf("Read returned (%d, %v)", n, err)
	}
	_, _ = f2.Read(b2)
	if string(b1) != string(b2) {
		t.Error("Same seed produced different bytes")
	}
}

func TestChoose(t *testing.T) {
	f := NewFakerWithSeed(7)
	items := []string{"a", "b", "c"}

	for i := 0; i < 100; i++ {
		v := Choose(f, items)
		if v != "a" && v != "b" && v != "c" {
			t.Errorf("Choose returned unexpected value: %s", v)
		}
	}

	var empty []string
	if v := Choose(f, empty); v != "" {
		t.Errorf("Choose on empty slice should return zero value, got %s", v)
	}
}

func TestChooseWeighted(t *testing.T) {
	f := NewFakerWithSeed(8)
	items := []string{"rare", "common"}
	weights := []int{10, 90}

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[ChooseWeighted(f, items, weights)]++
	}
	if counts["rare"] < 800 || counts["rare"] > 1200 {
		t.Errorf("Expected roughly 1000 rare picks, got %d", counts["rare"])
	}

	if v := ChooseWeighted(f, []string{}, []int{}); v != "" {
		t.Errorf("ChooseWeighted on empty slice should return zero value, got %s", v)
	}
}

func TestSample(t *testing.T) {
	f := NewFakerWithSeed(9)

	picked := f.Sample(1000, 100)
	if len(picked) != 100 {
		t.Fatalf("Expected 100 indices, got %d", len(picked))
	}
	seen := map[int]bool{}
	for _, i := range picked {
		if i < 0 || i >= 1000 {
			t.Errorf("Index %d out of range", i)
		}
		if seen[i] {
			t.Errorf("Index %d picked twice", i)
		}
		seen[i] = true
	}

	if got := f.Sample(3, 10); len(got) != 3 {
		t.Errorf("Sample should cap at n, got %d", len(got))
	}
	if got := f.Sample(10, 0); got != nil {
		t.Errorf("Sample with k=0 should be nil, got %v", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.123, 0.12},
		{0.125, 0.13},
		{0.999, 1.0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClip(t *testing.T) {
	if v := Clip(5, 18, 70); v != 18 {
		t.Errorf("Clip below range = %v", v)
	}
	if v := Clip(90, 18, 70); v != 70 {
		t.Errorf("Clip above range = %v", v)
	}
	if v := Clip(42, 18, 70); v != 42 {
		t.Errorf("Clip inside range = %v", v)
	}
}
