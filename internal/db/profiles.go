//-------------------------------------------------------------------------
//
// pgEdge Credit Profile Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-creditgen/internal/credit"
	"github.com/pgEdge/pgedge-creditgen/internal/logging"
)

// copyColumns are the destination columns in credit.Columns order.
var copyColumns = []string{
	"customer_id",
	"name",
	"age",
	"gender",
	"region",
	"education_level",
	"employment_status",
	"income",
	"credit_score",
	"existing_debt",
	"credit_card_debt",
	"mortgage_debt",
	"auto_loan_debt",
	"loan_balance",
	"credit_inquiries_last_6_months",
	"bankruptcy_history",
	"bankruptcy_date",
	"delinquency_history",
	"credit_card_utilization",
	"years_at_current_address",
	"dependents",
	"payment_history",
	"account_age",
	"years_with_employer",
	"housing",
	"housing_payment",
	"dti",
	"total_debt",
	"credit_history_length",
	"credit_score_category",
}

// Schema SQL for the profile table. %s is the sanitized table identifier.
const createProfilesSQL = `
CREATE TABLE IF NOT EXISTS %s (
    customer_id                    UUID PRIMARY KEY,
    name                           TEXT NOT NULL,
    age                            INTEGER NOT NULL CHECK (age BETWEEN 18 AND 70),
    gender                         TEXT NOT NULL,
    region                         TEXT NOT NULL,
    education_level                TEXT NOT NULL,
    employment_status              TEXT NOT NULL,
    income                         DOUBLE PRECISION NOT NULL,
    credit_score                   DOUBLE PRECISION NOT NULL CHECK (credit_score BETWEEN 300 AND 850),
    existing_debt                  DOUBLE PRECISION NOT NULL,
    credit_card_debt               DOUBLE PRECISION NOT NULL,
    mortgage_debt                  DOUBLE PRECISION NOT NULL,
    auto_loan_debt                 DOUBLE PRECISION NOT NULL,
    loan_balance                   DOUBLE PRECISION NOT NULL,
    credit_inquiries_last_6_months INTEGER NOT NULL,
    bankruptcy_history             BOOLEAN NOT NULL,
    bankruptcy_date                TIMESTAMP,
    delinquency_history            INTEGER NOT NULL,
    credit_card_utilization        DOUBLE PRECISION NOT NULL,
    years_at_current_address       INTEGER NOT NULL,
    dependents                     INTEGER NOT NULL,
    payment_history                TEXT NOT NULL,
    account_age                    INTEGER NOT NULL,
    years_with_employer            INTEGER NOT NULL,
    housing                        TEXT NOT NULL,
    housing_payment                DOUBLE PRECISION NOT NULL,
    dti                            DOUBLE PRECISION NOT NULL,
    total_debt                     DOUBLE PRECISION NOT NULL,
    credit_history_length          INTEGER NOT NULL,
    credit_score_category          TEXT NOT NULL
)`

func quoteTable(table string) string {
	return pgx.Identifier{table}.Sanitize()
}

// CreateSchema creates the profile table if it does not exist.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool, table string) error {
	_, err := pool.Exec(ctx, fmt.Sprintf(createProfilesSQL, quoteTable(table)))
	return err
}

// DropSchema drops the profile table.
func DropSchema(ctx context.Context, pool *pgxpool.Pool, table string) error {
	_, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteTable(table)))
	return err
}

// rowValues returns p as COPY values in copyColumns order.
func rowValues(p *credit.Profile) []any {
	return []any{
		[16]byte(p.ID),
		p.Name,
		p.Age,
		p.Gender,
		p.Region,
		p.Education,
		p.Employment,
		p.Income,
		p.CreditScore,
		p.ExistingDebt,
		p.CardDebt,
		p.MortgageDebt,
		p.AutoDebt,
		p.LoanBalance,
		p.Inquiries,
		p.Bankruptcy,
		p.BankruptcyDate,
		p.Delinquencies,
		p.Utilization,
		p.YearsAtAddress,
		p.Dependents,
		p.PaymentHistory,
		p.AccountAge,
		p.YearsWithEmployer,
		p.Housing,
		p.HousingPayment,
		p.DTI,
		p.TotalDebt,
		p.HistoryLength,
		p.ScoreCategory,
	}
}

// LoadProfiles copies every row of t into table and returns the number of
// rows written.
func LoadProfiles(ctx context.Context, pool *pgxpool.Pool, table string, t *credit.Table) (int64, error) {
	src := pgx.CopyFromSlice(t.Len(), func(i int) ([]any, error) {
		return rowValues(&t.Profiles[i]), nil
	})

	n, err := pool.CopyFrom(ctx, pgx.Identifier{table}, copyColumns, src)
	if err != nil {
		return 0, fmt.Errorf("failed to copy profiles into %s: %w", table, err)
	}

	logging.Info().
		Str("table", table).
		Int64("rows", n).
		Msg("Loaded profiles")

	return n, nil
}

// CountProfiles returns the row count of table.
func CountProfiles(ctx context.Context, pool *pgxpool.Pool, table string) (int64, error) {
	var n int64
	err := pool.QueryRow(ctx, fmt.Sprintf("SELECT count(*) FROM %s", quoteTable(table))).Scan(&n)
	return n, err
}
