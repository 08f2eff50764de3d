//-------------------------------------------------------------------------
//
// pgEdge Credit Profile Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package credit generates synthetic consumer credit profiles.
//
// A Table is built once by a Generator, which runs a fixed sequence of
// stages over every row. Each stage reads columns written by earlier stages
// and writes new ones; nothing is revisited once the table is final.
package credit

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Housing tenure types.
const (
	HousingRent = "Rent"
	HousingOwn  = "Own"
)

// Payment history labels.
const (
	PaymentExcellent = "Excellent"
	PaymentGood      = "Good"
	PaymentAverage   = "Average"
	PaymentPoor      = "Poor"
)

// BankruptcyDateLayout is the output format for bankruptcy dates.
const BankruptcyDateLayout = "2006-01-02 15:04:05"

// Profile is one simulated customer.
type Profile struct {
	ID         uuid.UUID
	Name       string
	Age        int
	Gender     string
	Region     string
	Education  string
	Employment string

	Income       float64
	CreditScore  float64
	ExistingDebt float64
	CardDebt     float64
	MortgageDebt float64
	AutoDebt     float64
	LoanBalance  float64

	Inquiries      int
	Bankruptcy     bool
	BankruptcyDate *time.Time
	Delinquencies  int
	Utilization    float64
	YearsAtAddress int
	Dependents     int

	PaymentHistory    string
	AccountAge        int
	YearsWithEmployer int
	Housing           string
	HousingPayment    float64

	DTI           float64
	TotalDebt     float64
	HistoryLength int
	ScoreCategory string
}

// Table is a generated dataset.
type Table struct {
	Profiles []Profile

	// Outliers holds the row indices whose income and total debt were inflated.
	Outliers []int

	// GeneratedAt is the reference time used for date-relative columns.
	GeneratedAt time.Time
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Profiles)
}

// Columns lists the output column names in file order.
var Columns = []string{
	"Customer_ID",
	"Name",
	"Age",
	"Gender",
	"Region",
	"Education_Level",
	"Employment_Status",
	"Income",
	"Credit_Score",
	"Existing_Debt",
	"Credit_Card_Debt",
	"Mortgage_Debt",
	"Auto_Loan_Debt",
	"Loan_Balance",
	"Credit_Inquiries_Last_6_Months",
	"Bankruptcy_History",
	"Bankruptcy_Date",
	"Delinquency_History",
	"Credit_Card_Utilization",
	"Years_At_Current_Address",
	"Dependents",
	"Payment_History",
	"Account_Age",
	"Years_With_Employer",
	"Housing",
	"Housing_Payment",
	"DTI",
	"Total_Debt",
	"Credit_History_Length",
	"Credit_Score_Category",
}

// Values renders the profile as strings in Columns order. Floats use two
// decimal places and a missing bankruptcy date is an empty string.
func (p *Profile) Values() []string {
	return []string{
		p.ID.String(),
		p.Name,
		strconv.Itoa(p.Age),
		p.Gender,
		p.Region,
		p.Education,
		p.Employment,
		money(p.Income),
		money(p.CreditScore),
		money(p.ExistingDebt),
		money(p.CardDebt),
		money(p.MortgageDebt),
		money(p.AutoDebt),
		money(p.LoanBalance),
		strconv.Itoa(p.Inquiries),
		YesNo(p.Bankruptcy),
		p.BankruptcyDateString(),
		strconv.Itoa(p.Delinquencies),
		money(p.Utilization),
		strconv.Itoa(p.YearsAtAddress),
		strconv.Itoa(p.Dependents),
		p.PaymentHistory,
		strconv.Itoa(p.AccountAge),
		strconv.Itoa(p.YearsWithEmployer),
		p.Housing,
		money(p.HousingPayment),
		money(p.DTI),
		money(p.TotalDebt),
		strconv.Itoa(p.HistoryLength),
		p.ScoreCategory,
	}
}

// BankruptcyDateString formats the bankruptcy date, or "" when absent.
func (p *Profile) BankruptcyDateString() string {
	if p.BankruptcyDate == nil {
		return ""
	}
	return p.BankruptcyDate.Format(BankruptcyDateLayout)
}

// YesNo renders a flag the way the dataset stores it.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
