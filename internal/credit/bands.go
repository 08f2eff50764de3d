//-------------------------------------------------------------------------
//
// pgEdge Credit Profile Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package credit

// Score limits.
const (
	MinScore = 300
	MaxScore = 850
)

// ScoreBand is one of the five population bands used both for base score
// sampling and for the final category label.
type ScoreBand struct {
	Label string

	// Min and Max are the category edges; a score belongs to the band when
	// Min <= score < Max, except the last band which includes Max.
	Min float64
	Max float64

	// SampleMin and SampleMax bound the uniform base-score draw.
	SampleMin float64
	SampleMax float64

	// Weight is the band's share of the population, in percent.
	Weight int
}

// ScoreBands lists the bands in ascending order.
var ScoreBands = []ScoreBand{
	{Label: "Very Poor", Min: 300, Max: 580, SampleMin: 300, SampleMax: 579, Weight: 16},
	{Label: "Fair", Min: 580, Max: 670, SampleMin: 580, SampleMax: 669, Weight: 18},
	{Label: "Good", Min: 670, Max: 740, SampleMin: 670, SampleMax: 739, Weight: 21},
	{Label: "Very Good", Min: 740, Max: 800, SampleMin: 740, SampleMax: 799, Weight: 25},
	{Label: "Excellent", Min: 800, Max: 850, SampleMin: 800, SampleMax: 850, Weight: 20},
}

// Category returns the band label for a final (clipped) score.
func Category(score float64) string {
	last := len(ScoreBands) - 1
	for _, b := range ScoreBands[:last] {
		if score < b.Max {
			return b.Label
		}
	}
	return ScoreBands[last].Label
}

// CategoryLabels returns the labels in band order.
func CategoryLabels() []string {
	labels := make([]string, len(ScoreBands))
	for i, b := range ScoreBands {
		labels[i] = b.Label
	}
	return labels
}

func bandWeights() []int {
	w := make([]int, len(ScoreBands))
	for i, b := range ScoreBands {
		w[i] = b.Weight
	}
	return w
}
