//-------------------------------------------------------------------------
//
// pgEdge Credit Profile Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides data generation utilities.
package datagen

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker provides fake data generation using gofakeit. Every random draw in
// a generation run goes through one Faker so a seed fixes the whole run.
type Faker struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
}

// NewFakerWithSeed creates a new Faker with a specific seed for reproducibility.
func NewFakerWithSeed(seed uint64) *Faker {
	fk := gofakeit.New(seed)
	return &Faker{
		faker: fk,
		rng:   rand.New(fk),
	}
}

// ClockSeed returns a seed derived from the current time.
func ClockSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// Name generates a random full name.
func (f *Faker) Name() string {
	return f.faker.Name()
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// IntN generates a random integer in [min, max). It returns min when the
// range is empty.
func (f *Faker) IntN(min, max int) int {
	if max <= min {
		return min
	}
	return f.faker.IntRange(min, max-1)
}

// Float64 generates a random float64 in [min, max).
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Normal draws from a normal distribution with the given mean and
// standard deviation.
func (f *Faker) Normal(mean, stddev float64) float64 {
	return mean + stddev*f.rng.NormFloat64()
}

// Read fills p from the random stream, so a Faker can back an io.Reader
// consumer such as UUID generation. It never returns an error.
func (f *Faker) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = f.faker.Uint8()
	}
	return len(p), nil
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}

// ChooseWeighted returns a random element based on weights.
func ChooseWeighted[T any](f *Faker, items []T, weights []int) T {
	if len(items) == 0 || len(weights) == 0 {
		var zero T
		return zero
	}

	totalWeight := 0
	for _, w := range weights {
		totalWeight += w
	}

	r := f.Int(1, totalWeight)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return items[i]
		}
	}

	return items[len(items)-1]
}

// Sample returns k distinct indices from [0, n) using a partial
// Fisher-Yates shuffle. k is capped at n.
func (f *Faker) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := f.Int(i, n-1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k:k]
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clip bounds v to [lo, hi].
func Clip(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
