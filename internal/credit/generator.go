package credit

import (
	"context"
	"fmt"
	"time"

	"github.com/pgEdge/pgedge-creditgen/internal/datagen"
	"github.com/pgEdge/pgedge-creditgen/internal/logging"
)

// TableName is the logical name of the generated dataset.
const TableName = "credit_profiles"

// Generator builds credit profile tables.
type Generator struct {
	faker  *datagen.Faker
	params Params
	now    func() time.Time
}

// NewGenerator creates a generator drawing from f.
func NewGenerator(f *datagen.Faker, params Params) *Generator {
	return &Generator{
		faker:  f,
		params: params,
		now:    time.Now,
	}
}

// WithClock replaces the reference clock used for bankruptcy dates.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

type stage struct {
	name string
	run  func(t *Table) error
}

// stages returns the pipeline in execution order. Later stages read columns
// written by earlier ones, so the order is fixed.
func (g *Generator) stages(n int) []stage {
	f, p := g.faker, g.params
	return []stage{
		{"base", func(t *Table) error {
			rows, err := SampleBase(f, p, n)
			t.Profiles = rows
			return err
		}},
		{"income", func(t *Table) error { return DeriveIncome(f, p, t.Profiles) }},
		{"years_with_employer", func(t *Table) error { DeriveYearsWithEmployer(f, t.Profiles); return nil }},
		{"bankruptcy_date", func(t *Table) error { DeriveBankruptcyDates(f, t.Profiles, t.GeneratedAt); return nil }},
		{"base_score", func(t *Table) error { SampleBaseScores(f, t.Profiles); return nil }},
		{"provisional_dti", func(t *Table) error { ApplyProvisionalDTI(f, t.Profiles); return nil }},
		{"bankruptcy_penalty", func(t *Table) error { ApplyBankruptcyPenalty(t.Profiles, t.GeneratedAt); return nil }},
		{"debt", func(t *Table) error { DeriveDebts(f, t.Profiles); return nil }},
		{"payment_history", func(t *Table) error { SimulatePaymentHistory(f, t.Profiles); return nil }},
		{"account_history", func(t *Table) error { DeriveAccountHistory(f, t.Profiles); return nil }},
		{"history_bonus", func(t *Table) error { ApplyHistoryBonus(t.Profiles); return nil }},
		{"utilization_penalty", func(t *Table) error { ApplyUtilizationPenalty(t.Profiles); return nil }},
		{"outliers", func(t *Table) error {
			t.Outliers = InjectOutliers(f, t.Profiles, p.OutlierRate)
			return nil
		}},
		{"housing_payment", func(t *Table) error { return DeriveHousingPayments(f, p, t.Profiles) }},
		{"finalize", func(t *Table) error { Finalize(t.Profiles); return nil }},
	}
}

// Generate produces a table of n profiles.
func (g *Generator) Generate(ctx context.Context, n int) (*Table, error) {
	if n < 1 {
		return nil, fmt.Errorf("row count must be at least 1, got %d", n)
	}

	t := &Table{GeneratedAt: g.now()}
	stages := g.stages(n)
	progress := datagen.NewProgressReporter(TableName, len(stages), n)

	logging.Info().
		Int("rows", n).
		Float64("outlier_rate", g.params.OutlierRate).
		Msg("Generating credit profiles")

	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.run(t); err != nil {
			return nil, fmt.Errorf("stage %s failed: %w", s.name, err)
		}
		progress.StageDone(s.name)
	}

	logging.Debug().
		Int("outliers", len(t.Outliers)).
		Msg("Injected outliers")
	progress.Done()

	return t, nil
}
