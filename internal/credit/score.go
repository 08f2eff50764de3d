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

// Score adjustment constants.
const (
	dtiPenaltyFactor     = 50
	historyBonusPerYear  = 0.5
	highUtilization      = 0.75
	highUtilPenalty      = 25
	moderateUtilization  = 0.5
	moderateUtilPenalty  = 10
	recentBankruptcyYrs  = 7
	midBankruptcyYrs     = 10
	recentBankruptcyCost = 50
	midBankruptcyCost    = 20
	oldBankruptcyCost    = 5
)

// SampleBaseScores draws a score for each row by picking a population band
// by weight and then a uniform value inside it.
func SampleBaseScores(f *datagen.Faker, rows []Profile) {
	weights := bandWeights()
	for i := range rows {
		b := datagen.ChooseWeighted(f, ScoreBands, weights)
		rows[i].CreditScore = f.Float64(b.SampleMin, b.SampleMax)
	}
}

// ApplyProvisionalDTI sets existing debt, computes a first-pass DTI from it
// and lowers the score by DTI x 50. DeriveDebts later overwrites the DTI
// with the full figure; the score keeps this first-pass penalty.
func ApplyProvisionalDTI(f *datagen.Faker, rows []Profile) {
	for i := range rows {
		rows[i].ExistingDebt = rows[i].Income * f.Float64(0.1, 0.5)
	}
	for i := range rows {
		r := &rows[i]
		r.DTI = r.ExistingDebt / r.Income
		r.CreditScore -= r.DTI * dtiPenaltyFactor
	}
}

// BankruptcyPenalty returns the score penalty for a bankruptcy filed on
// date, as seen from now. A nil date carries no penalty.
func BankruptcyPenalty(date *time.Time, now time.Time) float64 {
	if date == nil {
		return 0
	}
	days := int(now.Sub(*date).Hours() / 24)
	years := float64(days) / 365
	switch {
	case years < recentBankruptcyYrs:
		return recentBankruptcyCost
	case years < midBankruptcyYrs:
		return midBankruptcyCost
	default:
		return oldBankruptcyCost
	}
}

// ApplyBankruptcyPenalty lowers scores by how recent the bankruptcy was.
func ApplyBankruptcyPenalty(rows []Profile, now time.Time) {
	for i := range rows {
		rows[i].CreditScore -= BankruptcyPenalty(rows[i].BankruptcyDate, now)
	}
}

// ApplyHistoryBonus adds half a point per year of credit history.
func ApplyHistoryBonus(rows []Profile) {
	for i := range rows {
		rows[i].CreditScore += float64(rows[i].HistoryLength) * historyBonusPerYear
	}
}

// UtilizationPenalty returns the score penalty for a card utilization ratio.
func UtilizationPenalty(utilization float64) float64 {
	switch {
	case utilization > highUtilization:
		return highUtilPenalty
	case utilization > moderateUtilization:
		return moderateUtilPenalty
	default:
		return 0
	}
}

// ApplyUtilizationPenalty lowers scores for heavy card utilization.
func ApplyUtilizationPenalty(rows []Profile) {
	for i := range rows {
		rows[i].CreditScore -= UtilizationPenalty(rows[i].Utilization)
	}
}
